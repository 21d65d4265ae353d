// models.go
package sparkline

import (
	"encoding/json"
	"fmt"
)

// --- Request Structs ---

// StringOrList holds a parameter that may be supplied either as a single
// value or as one value per series. It is resolved to a per-series slice
// exactly once, during normalization, and never inspected again downstream.
type StringOrList struct {
	values []string
	scalar bool
}

// Scalar wraps a single value; it broadcasts to every series on resolve.
func Scalar(v string) StringOrList {
	return StringOrList{values: []string{v}, scalar: true}
}

// List wraps an explicit per-series sequence.
func List(vs ...string) StringOrList {
	return StringOrList{values: vs}
}

// IsZero reports whether the parameter was omitted entirely.
func (s StringOrList) IsZero() bool { return s.values == nil }

// Values returns the raw entries without broadcasting.
func (s StringOrList) Values() []string { return s.values }

func (s *StringOrList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*s = Scalar(one)
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*s = List(many...)
	return nil
}

// resolve broadcasts a scalar to n entries, or checks an explicit sequence
// against the series count. An omitted parameter resolves to nil.
func (s StringOrList) resolve(param string, n int) ([]string, error) {
	if s.values == nil {
		return nil, nil
	}
	if s.scalar {
		out := make([]string, n)
		for i := range out {
			out[i] = s.values[0]
		}
		return out, nil
	}
	if len(s.values) != n {
		return nil, &ShapeMismatchError{Param: param, Got: len(s.values), Want: n}
	}
	return append([]string(nil), s.values...), nil
}

// AxisRange is a closed numeric interval [Lo, Hi]. Once derived during a
// generation call it is fixed for the remainder of that call.
type AxisRange struct {
	Lo float64
	Hi float64
}

func (r *AxisRange) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("axis range must have exactly two values, got %d", len(pair))
	}
	r.Lo, r.Hi = pair[0], pair[1]
	return nil
}

// Margin is a four-value box: [bottom, left, top, right].
type Margin [4]float64

// PlotRequest is the full parameter set for one generation call. It is owned
// by that call and treated as immutable once validation begins.
type PlotRequest struct {
	X              StringOrList `json:"x"`                         // value column name(s), one per series
	Type           string       `json:"type,omitempty"`            // render context: "cell" (default), "header", "footer"
	XLower         StringOrList `json:"x_lower,omitempty"`         // lower error bound column name(s)
	XUpper         StringOrList `json:"x_upper,omitempty"`         // upper error bound column name(s); defaults to x_lower
	XLim           *AxisRange   `json:"xlim,omitempty"`            // explicit horizontal range; derived from data when nil
	XLab           string       `json:"xlab,omitempty"`            // horizontal axis label
	Y              []float64    `json:"y,omitempty"`               // vertical offset per series; defaults to 1..N
	VLine          *float64     `json:"vline,omitempty"`           // vertical reference line position
	Text           StringOrList `json:"text,omitempty"`            // hover text fragment(s), emitted verbatim
	Height         float64      `json:"height,omitempty"`          // plot height in px
	Width          float64      `json:"width,omitempty"`           // plot width in px
	Color          StringOrList `json:"color,omitempty"`           // point/line color(s)
	ColorErrorbar  StringOrList `json:"color_errorbar,omitempty"`  // error bar color(s); defaults to point color
	ColorVLine     string       `json:"color_vline,omitempty"`     // vertical line color
	Legend         bool         `json:"legend,omitempty"`          // legend visibility
	LegendLabel    []string     `json:"legend_label,omitempty"`    // per-series legend labels
	LegendTitle    string       `json:"legend_title,omitempty"`    // legend title text
	LegendPosition float64      `json:"legend_position,omitempty"` // legend vertical anchor
	LegendType     string       `json:"legend_type,omitempty"`     // "point", "line" or "point+line"
	Margin         *Margin      `json:"margin,omitempty"`          // [bottom, left, top, right]
}

// SeriesSpec is the fully resolved description of one series. Colors are
// stored in their canonical quoted form. Never mutated after creation.
type SeriesSpec struct {
	Column        string  // value column reference
	Lower         string  // lower bound column; empty when error bars are off
	Upper         string  // upper bound column; empty when error bars are off
	Color         string  // canonical point/line color literal
	ColorErrorbar string  // canonical error bar color literal
	Y             float64 // vertical offset
	Text          string  // hover text fragment
	LegendLabel   string  // legend name; empty when labels were not supplied
}

// --- Defaults ---

const (
	defaultPointColor   = "#FFD700"
	defaultVLineColor   = "#00000050"
	hiddenErrorbarColor = "#FFFFFF00"
)

// Defaults gathers every implicit generation default in one place so the
// default policy stays auditable and testable in isolation.
type Defaults struct {
	Color         string    // point/line color when none is supplied
	ColorVLine    string    // vertical reference line color
	ColorHidden   string    // fully transparent error bar color
	Height        float64   // plot height in px
	Width         float64   // plot width in px
	RangePadding  float64   // margin applied to a derived axis range
	FallbackRange AxisRange // range used when no data is available
	Margin        Margin    // zero box
	RenderType    string    // render context
	Mode          string    // trace mode for unrecognized legend types
}

// DefaultOptions returns the stock generation defaults.
func DefaultOptions() *Defaults {
	return &Defaults{
		Color:         defaultPointColor,
		ColorVLine:    defaultVLineColor,
		ColorHidden:   hiddenErrorbarColor,
		Height:        30,
		Width:         150,
		RangePadding:  0.5,
		FallbackRange: AxisRange{Lo: 0, Hi: 1},
		Margin:        Margin{0, 0, 0, 0},
		RenderType:    "cell",
		Mode:          "markers",
	}
}
