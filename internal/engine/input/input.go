// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for viewer use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type EventType
	Key  sdl.Scancode
	// KeyName is the SDL scancode name, e.g. "Left" or "F12".
	KeyName string
	Repeat  bool
	Width   int
	Height  int
	MouseX  int
	MouseY  int
	DeltaX  int
	DeltaY  int
	Wheel   int
	Button  uint8
	// LeftHeld is set on motion events while the left button is down.
	LeftHeld bool
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			ev := Event{
				Key:     e.Keysym.Scancode,
				KeyName: sdl.GetScancodeName(e.Keysym.Scancode),
				Repeat:  e.Repeat != 0,
			}
			if e.Type == sdl.KEYDOWN {
				ev.Type = EventKeyDown
				i.events = append(i.events, ev)
			} else if e.Type == sdl.KEYUP {
				ev.Type = EventKeyUp
				i.events = append(i.events, ev)
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:     EventMouseMove,
				MouseX:   int(e.X),
				MouseY:   int(e.Y),
				DeltaX:   int(e.XRel),
				DeltaY:   int(e.YRel),
				LeftHeld: e.State&sdl.ButtonLMask() != 0,
			})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.events = append(i.events, Event{
					Type:   EventMouseUp,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			}

		case *sdl.MouseWheelEvent:
			wheel := int(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				wheel = -wheel
			}
			if wheel != 0 {
				i.events = append(i.events, Event{
					Type:  EventMouseWheel,
					Wheel: wheel,
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
