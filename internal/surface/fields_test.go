package surface

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for f := FieldA; f <= FieldColumnSegments; f++ {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("radius")
	assert.Error(t, err)
}

func TestAdjustClampsToRange(t *testing.T) {
	p := DefaultParameters()

	p, changed := p.Adjust(FieldB, 100)
	assert.True(t, changed)
	assert.Equal(t, 16.0, p.B)

	_, changed = p.Adjust(FieldB, 1)
	assert.False(t, changed, "b already at its maximum")

	p, changed = p.Adjust(FieldRowSegments, -1000)
	assert.True(t, changed)
	assert.Equal(t, 2, p.RowSegments)
	assert.NoError(t, p.Validate())
}

func TestAdjustSteps(t *testing.T) {
	p := DefaultParameters()

	p, changed := p.Adjust(FieldJ, 1)
	assert.True(t, changed)
	assert.Equal(t, 3.0, p.J)

	p, _ = p.Adjust(FieldA, 1)
	assert.InDelta(t, 1.21, p.A, 1e-9)

	p, _ = p.Adjust(FieldColumnSegments, -3)
	assert.Equal(t, 37, p.ColumnSegments)
}

func TestAdjustKeepsOriginalUntouched(t *testing.T) {
	p := DefaultParameters()
	_, _ = p.Adjust(FieldK, 2)
	assert.Equal(t, DefaultParameters(), p)
}

func TestSetSegmentCountSaturates(t *testing.T) {
	p := DefaultParameters()

	assert.Equal(t, 13, p.Set(FieldRowSegments, 12.6).RowSegments)
	assert.Equal(t, gomath.MaxInt32, p.Set(FieldRowSegments, 1e30).RowSegments)
	assert.Equal(t, gomath.MinInt32, p.Set(FieldColumnSegments, -1e30).ColumnSegments)

	nan := p.Set(FieldColumnSegments, gomath.NaN())
	assert.ErrorIs(t, nan.Validate(), ErrTooFewSegments)
}

func TestFieldIsCount(t *testing.T) {
	for f := FieldA; f <= FieldColumnSegments; f++ {
		assert.Equal(t, f == FieldRowSegments || f == FieldColumnSegments, f.IsCount(), f.String())
	}
}
