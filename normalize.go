// normalize.go
package sparkline

// traceModes maps the requested legend style to its Plotly mode literal.
var traceModes = map[string]string{
	"point":      "markers",
	"line":       "lines",
	"point+line": "markers+lines",
}

// plotParams is the fully normalized form of a PlotRequest: every
// scalar-or-list field resolved to per-series values, every default applied,
// colors canonical. Built once, read-only afterwards.
type plotParams struct {
	series         []SeriesSpec
	renderType     string
	xlim           *AxisRange
	xlab           string
	vline          *float64
	height         float64
	width          float64
	colorVLine     string
	showLegend     bool
	legendTitle    string
	legendPosition float64
	mode           string
	margin         Margin
	showBars       bool
}

func (p *plotParams) columns() []string {
	cols := make([]string, len(p.series))
	for i, s := range p.series {
		cols[i] = s.Column
	}
	return cols
}

// validateColumns confirms that every column referenced by the request
// exists in the dataset schema, checking value columns first, then
// lower-bound, then upper-bound columns. Purely a precondition check.
func validateColumns(ds *Dataset, req PlotRequest) error {
	for _, group := range [][]string{req.X.Values(), req.XLower.Values(), req.XUpper.Values()} {
		for _, col := range group {
			if !ds.HasColumn(col) {
				return &MissingColumnError{Column: col}
			}
		}
	}
	return nil
}

// normalizeRequest expands every scalar-or-list parameter to a per-series
// sequence of length len(x), applies defaults for omitted parameters, and
// canonicalizes all colors. Any post-broadcast length mismatch is a
// ShapeMismatchError.
func normalizeRequest(req PlotRequest, defs *Defaults) (*plotParams, error) {
	xs := req.X.Values()
	if len(xs) == 0 {
		return nil, ErrNoValueColumns
	}
	n := len(xs)

	renderType := req.Type
	if renderType == "" {
		renderType = defs.RenderType
	}

	lower, err := req.XLower.resolve("x_lower", n)
	if err != nil {
		return nil, err
	}
	// Upper bounds without lower bounds are ignored; upper defaults to lower
	// (symmetric errors carried through the asymmetric plumbing).
	upperIn := req.XUpper
	if upperIn.IsZero() {
		upperIn = req.XLower
	}
	upper, err := upperIn.resolve("x_upper", n)
	if err != nil {
		return nil, err
	}

	colorIn := req.Color
	if colorIn.IsZero() {
		colorIn = Scalar(defs.Color)
	}
	colors, err := colorIn.resolve("color", n)
	if err != nil {
		return nil, err
	}
	errbarIn := req.ColorErrorbar
	if errbarIn.IsZero() {
		errbarIn = colorIn
	}
	errbarColors, err := errbarIn.resolve("color_errorbar", n)
	if err != nil {
		return nil, err
	}

	ys := req.Y
	if ys == nil {
		ys = make([]float64, n)
		for i := range ys {
			ys[i] = float64(i + 1) // one stacked row per series
		}
	} else if len(ys) != n {
		return nil, &ShapeMismatchError{Param: "y", Got: len(ys), Want: n}
	}

	textIn := req.Text
	if textIn.IsZero() {
		textIn = Scalar(`""`)
	}
	texts, err := textIn.resolve("text", n)
	if err != nil {
		return nil, err
	}

	labels := req.LegendLabel
	if labels == nil {
		labels = make([]string, n)
	} else if len(labels) != n {
		return nil, &ShapeMismatchError{Param: "legend_label", Got: len(labels), Want: n}
	}

	margin := defs.Margin
	if req.Margin != nil {
		margin = *req.Margin
	}
	height := req.Height
	if height == 0 {
		height = defs.Height
	}
	width := req.Width
	if width == 0 {
		width = defs.Width
	}
	colorVLine := req.ColorVLine
	if colorVLine == "" {
		colorVLine = defs.ColorVLine
	}
	mode, ok := traceModes[req.LegendType]
	if !ok {
		mode = defs.Mode
	}

	// Error bars render only in the cell context and only when lower bounds
	// were configured; otherwise they collapse to zero length with a fully
	// transparent color.
	showBars := lower != nil && renderType == "cell"

	series := make([]SeriesSpec, n)
	for i := range series {
		s := SeriesSpec{
			Column:      xs[i],
			Color:       ToRGBA(colors[i]),
			Y:           ys[i],
			Text:        texts[i],
			LegendLabel: labels[i],
		}
		if showBars {
			s.Lower = lower[i]
			s.Upper = upper[i]
			s.ColorErrorbar = ToRGBA(errbarColors[i])
		} else {
			s.ColorErrorbar = ToRGBA(defs.ColorHidden)
		}
		series[i] = s
	}

	return &plotParams{
		series:         series,
		renderType:     renderType,
		xlim:           req.XLim,
		xlab:           req.XLab,
		vline:          req.VLine,
		height:         height,
		width:          width,
		colorVLine:     ToRGBA(colorVLine),
		showLegend:     req.Legend,
		legendTitle:    req.LegendTitle,
		legendPosition: req.LegendPosition,
		mode:           mode,
		margin:         margin,
		showBars:       showBars,
	}, nil
}
