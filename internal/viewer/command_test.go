package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shellview/internal/config"
	"github.com/Faultbox/shellview/internal/engine/camera"
	"github.com/Faultbox/shellview/internal/engine/render"
	"github.com/Faultbox/shellview/internal/surface"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"theta+", Command{Kind: CommandCamera, Camera: camera.ThetaIncrease}},
		{"PHI-", Command{Kind: CommandCamera, Camera: camera.PhiDecrease}},
		{"zoom+", Command{Kind: CommandCamera, Camera: camera.ZoomIn}},
		{"shading:per_fragment", Command{Kind: CommandShading, Shading: render.PerFragment}},
		{"shading:per-vertex", Command{Kind: CommandShading, Shading: render.PerVertex}},
		{"outline", Command{Kind: CommandOutline}},
		{"reset", Command{Kind: CommandReset}},
		{"screenshot", Command{Kind: CommandScreenshot}},
		{" quit ", Command{Kind: CommandQuit}},
		{"shape:a+", Command{Kind: CommandShape, Field: surface.FieldA, Steps: 1}},
		{"shape:outer_radius-", Command{Kind: CommandShape, Field: surface.FieldOuterRadius, Steps: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCommand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, in := range []string{"", "spin", "shading:toon", "shape:a", "shape:nope+", "shape:+"} {
		_, err := ParseCommand(in)
		assert.Error(t, err, in)
	}
}

func TestCommandStringRoundTrip(t *testing.T) {
	for _, name := range config.DefaultBindings() {
		cmd, err := ParseCommand(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.String())
	}
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(config.DefaultBindings())
	require.NoError(t, err)

	cmd, ok := b.Lookup("left")
	require.True(t, ok)
	assert.Equal(t, camera.ThetaDecrease, cmd.Camera)

	cmd, ok = b.Lookup("F12")
	require.True(t, ok)
	assert.Equal(t, CommandScreenshot, cmd.Kind)

	_, ok = b.Lookup("F1")
	assert.False(t, ok)

	_, err = ParseBindings(map[string]string{"X": "explode"})
	assert.ErrorContains(t, err, `binding "X"`)
}
