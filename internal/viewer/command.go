package viewer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Faultbox/shellview/internal/engine/camera"
	"github.com/Faultbox/shellview/internal/engine/render"
	"github.com/Faultbox/shellview/internal/surface"
)

// CommandKind identifies what a Command does.
type CommandKind int

const (
	CommandCamera CommandKind = iota
	CommandShading
	CommandOutline
	CommandShape
	CommandReset
	CommandScreenshot
	CommandQuit
)

// Command is a viewer action bound to a key.
type Command struct {
	Kind    CommandKind
	Camera  camera.Action
	Shading render.ShadingMode
	Field   surface.Field
	Steps   int
}

func (c Command) String() string {
	switch c.Kind {
	case CommandCamera:
		return c.Camera.String()
	case CommandShading:
		return "shading:" + c.Shading.String()
	case CommandOutline:
		return "outline"
	case CommandShape:
		sign := "+"
		if c.Steps < 0 {
			sign = "-"
		}
		return "shape:" + c.Field.String() + sign
	case CommandReset:
		return "reset"
	case CommandScreenshot:
		return "screenshot"
	case CommandQuit:
		return "quit"
	}
	return fmt.Sprintf("Command(%d)", int(c.Kind))
}

var cameraCommands = map[string]camera.Action{
	"theta+": camera.ThetaIncrease,
	"theta-": camera.ThetaDecrease,
	"phi+":   camera.PhiIncrease,
	"phi-":   camera.PhiDecrease,
	"zoom+":  camera.ZoomIn,
	"zoom-":  camera.ZoomOut,
}

// ParseCommand parses a binding value such as "theta+", "shading:wireframe"
// or "shape:outer_radius-".
func ParseCommand(s string) (Command, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if a, ok := cameraCommands[s]; ok {
		return Command{Kind: CommandCamera, Camera: a}, nil
	}

	switch s {
	case "outline":
		return Command{Kind: CommandOutline}, nil
	case "reset":
		return Command{Kind: CommandReset}, nil
	case "screenshot":
		return Command{Kind: CommandScreenshot}, nil
	case "quit":
		return Command{Kind: CommandQuit}, nil
	}

	if mode, ok := strings.CutPrefix(s, "shading:"); ok {
		m, err := render.ParseShadingMode(mode)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandShading, Shading: m}, nil
	}

	if rest, ok := strings.CutPrefix(s, "shape:"); ok && len(rest) > 1 {
		steps := 0
		switch rest[len(rest)-1] {
		case '+':
			steps = 1
		case '-':
			steps = -1
		default:
			return Command{}, fmt.Errorf("shape command %q must end in + or -", s)
		}
		f, err := surface.ParseField(rest[:len(rest)-1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CommandShape, Field: f, Steps: steps}, nil
	}

	return Command{}, fmt.Errorf("unknown command %q", s)
}

// Bindings maps SDL key names to commands.
type Bindings map[string]Command

// ParseBindings converts the configured key → command names. Key names are
// matched case-insensitively.
func ParseBindings(raw map[string]string) (Bindings, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := make(Bindings, len(raw))
	for _, key := range keys {
		cmd, err := ParseCommand(raw[key])
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", key, err)
		}
		b[strings.ToLower(key)] = cmd
	}
	return b, nil
}

// Lookup returns the command bound to key.
func (b Bindings) Lookup(key string) (Command, bool) {
	cmd, ok := b[strings.ToLower(key)]
	return cmd, ok
}
