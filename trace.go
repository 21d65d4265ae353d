// trace.go
package sparkline

import (
	"fmt"
	"strings"
)

// traceFragment is the per-series Plotly trace descriptor. It indexes into
// the x/y/bound/color/text/label arrays declared by the outer template, so
// the emitted fragments stay independent of the resolved values themselves.
const traceFragment = `{
        "x": [x[%[1]d]],
        "y": [y[%[1]d]],
        "error_x": {
            type: "data",
            symmetric: false,
            array: [x_upper[%[1]d]],
            arrayminus: [x_lower[%[1]d]],
            "color": color_errorbar[%[1]d]
        },
        "text": text[%[1]d],
        "hoverinfo": "text",
        "mode": "%[2]s",
        "alpha_stroke": 1,
        "sizes": [10, 100],
        "spans": [1, 20],
        "type": "scatter",
        "name": legend_label[%[1]d],
        "marker": {
            "color": [color[%[1]d]],
            "line": {
                "color": color[%[1]d]
            }
        },
        "line": {
            "color": color[%[1]d]
        }
    }`

// buildTraces renders one trace descriptor per series, in series order,
// which fixes the emission order of the output.
func buildTraces(seriesCount int, mode string) string {
	traces := make([]string, seriesCount)
	for i := range traces {
		traces[i] = fmt.Sprintf(traceFragment, i, mode)
	}
	return strings.Join(traces, ",\n      ")
}
