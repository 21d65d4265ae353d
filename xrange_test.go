package sparkline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveXRange_DerivedFromData(t *testing.T) {
	ds := NewDataset().AddColumn("value", Floats(5.1, 4.9, 4.7))

	r := resolveXRange(ds, []string{"value"}, nil, DefaultOptions())
	assert.InDelta(t, 4.2, r.Lo, 1e-12)
	assert.InDelta(t, 5.6, r.Hi, 1e-12)
}

func TestResolveXRange_ExplicitWins(t *testing.T) {
	ds := NewDataset().AddColumn("value", Floats(5.1, 4.9, 4.7))

	r := resolveXRange(ds, []string{"value"}, &AxisRange{Lo: -1, Hi: 1}, DefaultOptions())
	assert.Equal(t, AxisRange{Lo: -1, Hi: 1}, r)
}

func TestResolveXRange_SpansAllColumns(t *testing.T) {
	ds := NewDataset().
		AddColumn("a", Floats(1, 2)).
		AddColumn("b", Floats(10, 9))

	r := resolveXRange(ds, []string{"a", "b"}, nil, DefaultOptions())
	assert.Equal(t, AxisRange{Lo: 0.5, Hi: 10.5}, r)
}

func TestResolveXRange_SkipsNulls(t *testing.T) {
	v := 3.0
	ds := NewDataset().AddColumn("value", []*float64{nil, &v, nil})

	r := resolveXRange(ds, []string{"value"}, nil, DefaultOptions())
	assert.Equal(t, AxisRange{Lo: 2.5, Hi: 3.5}, r)
}

func TestResolveXRange_AllNullFallsBack(t *testing.T) {
	ds := NewDataset().AddColumn("value", []*float64{nil, nil, nil})

	r := resolveXRange(ds, []string{"value"}, nil, DefaultOptions())
	assert.Equal(t, AxisRange{Lo: 0, Hi: 1}, r)
}

func TestYRange(t *testing.T) {
	assert.Equal(t, AxisRange{Lo: 0, Hi: 4}, yRange(3))
	assert.Equal(t, AxisRange{Lo: 0, Hi: 2}, yRange(1))
}
