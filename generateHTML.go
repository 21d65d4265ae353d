// generateHTML.go
package sparkline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CDN assets loaded by the standalone harness page.
const (
	reactCDN    = "https://unpkg.com/react@17/umd/react.production.min.js"
	reactDOMCDN = "https://unpkg.com/react-dom@17/umd/react-dom.production.min.js"
	plotlyCDN   = "https://cdn.plot.ly/plotly-2.18.2.min.js"
)

// GenerateHTML wraps the generated sparkline code in a standalone HTML page:
// it loads React, ReactDOM and Plotly, builds a mock cell context from the
// first dataset row, and mounts the rendered sparkline. Useful for eyeballing
// output in a browser and as the input to the preview image renderer.
func GenerateHTML(ds *Dataset, req PlotRequest) (string, error) {
	jsCode, err := GenerateJS(ds, req)
	if err != nil {
		return "", err
	}

	cellJSON, err := mockCell(ds, req)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Sparkline Preview</title>\n")
	fmt.Fprintf(&b, "<script src=%q></script>\n", reactCDN)
	fmt.Fprintf(&b, "<script src=%q></script>\n", reactDOMCDN)
	fmt.Fprintf(&b, "<script src=%q></script>\n", plotlyCDN)
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<div id=\"sparkline\"></div>\n\n")
	b.WriteString("<script>\n")
	b.WriteString("const renderSparkline = ")
	b.WriteString(jsCode)
	b.WriteString(";\n\n")
	fmt.Fprintf(&b, "const cell = %s;\n\n", cellJSON)
	b.WriteString("ReactDOM.render(renderSparkline(cell, {}), document.getElementById(\"sparkline\"));\n")
	b.WriteString("</script>\n</body>\n</html>\n")
	return b.String(), nil
}

// mockCell builds the {row: {...}} context from the first row of every
// column the request references. Nulls stay null.
func mockCell(ds *Dataset, req PlotRequest) ([]byte, error) {
	row := make(map[string]*float64)
	for _, group := range [][]string{req.X.Values(), req.XLower.Values(), req.XUpper.Values()} {
		for _, col := range group {
			if values := ds.Column(col); len(values) > 0 {
				row[col] = values[0]
			} else {
				row[col] = nil
			}
		}
	}
	cellJSON, err := json.Marshal(map[string]any{"row": row})
	if err != nil {
		return nil, fmt.Errorf("encoding mock cell: %w", err)
	}
	return cellJSON, nil
}
