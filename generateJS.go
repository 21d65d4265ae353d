// generateJS.go
package sparkline

import (
	_ "embed"
)

// The template is embedded at build time: loaded once, process-wide
// immutable, instantiated per generation call by pure substitution.
//
//go:embed templates/sparkline.js.tmpl
var jsTemplate string

// GenerateJS converts a dataset plus a parameter set into the JavaScript
// source of a sparkline cell renderer: a function taking a row/cell context
// and a renderer style context and returning a mountable render-tree value.
//
// Generation either fully succeeds or fully fails; identical inputs produce
// byte-identical output. Safe for concurrent use.
func GenerateJS(ds *Dataset, req PlotRequest) (string, error) {
	if err := validateColumns(ds, req); err != nil {
		return "", err
	}
	defs := DefaultOptions()
	p, err := normalizeRequest(req, defs)
	if err != nil {
		return "", err
	}

	xr := resolveXRange(ds, p.columns(), p.xlim, defs)
	yr := yRange(len(p.series))

	return substitute(jsTemplate, placeholderValues(p, xr, yr)), nil
}

// placeholderValues assembles the substitution map consumed by the template.
// The keys are the stable contract between the emitter and the template.
func placeholderValues(p *plotParams, xr, yr AxisRange) map[string]string {
	n := len(p.series)

	var jsX string
	if p.renderType == "cell" {
		jsX = cellRefs(p.columns())
	} else {
		// Header/footer contexts have no row to index; points sit at fixed
		// index positions instead.
		jsX = indexRefs(n)
	}

	jsLower, jsUpper := "0", "0"
	if p.showBars {
		lower := make([]string, n)
		upper := make([]string, n)
		for i, s := range p.series {
			lower[i] = s.Lower
			upper[i] = s.Upper
		}
		jsLower = cellRefs(lower)
		jsUpper = cellRefs(upper)
	}

	jsVLine := "[]"
	if p.vline != nil {
		jsVLine = formatFloat(*p.vline)
	}

	ys := make([]float64, n)
	texts := make([]string, n)
	colors := make([]string, n)
	errbarColors := make([]string, n)
	labels := make([]string, n)
	for i, s := range p.series {
		ys[i] = s.Y
		texts[i] = s.Text
		colors[i] = s.Color
		errbarColors[i] = s.ColorErrorbar
		labels[i] = s.LegendLabel
	}

	showLegend := "false"
	if p.showLegend {
		showLegend = "true"
	}

	return map[string]string{
		"js_x":               jsX,
		"js_y":               joinFloats(ys),
		"js_x_lower":         jsLower,
		"js_x_upper":         jsUpper,
		"js_x_range":         formatFloat(xr.Lo) + ", " + formatFloat(xr.Hi),
		"js_y_range":         formatFloat(yr.Lo) + ", " + formatFloat(yr.Hi),
		"js_vline":           jsVLine,
		"js_text":            joinStrings(texts),
		"js_height":          formatFloat(p.height),
		"js_width":           formatFloat(p.width),
		"js_color":           joinStrings(colors),
		"js_color_errorbar":  joinStrings(errbarColors),
		"js_color_vline":     p.colorVLine,
		"js_margin":          joinFloats(p.margin[:]),
		"js_xlab":            p.xlab,
		"js_showlegend":      showLegend,
		"js_legend_title":    p.legendTitle,
		"js_legend_position": formatFloat(p.legendPosition),
		"js_legend_label":    joinQuoted(labels),
		"data_trace":         buildTraces(n, p.mode),
	}
}
