package sparkline

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Formatting Helpers ---

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ", ")
}

func joinStrings(vs []string) string {
	return strings.Join(vs, ", ")
}

func joinQuoted(vs []string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Quote(v)
	}
	return strings.Join(parts, ", ")
}

// cellRefs renders per-row column accesses for the cell render context.
func cellRefs(cols []string) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf("cell.row[%q]", col)
	}
	return strings.Join(parts, ", ")
}

// indexRefs renders fixed index positions for non-cell render contexts.
func indexRefs(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}

// --- Placeholder Substitution ---

// substitute replaces every ${name} placeholder that has an entry in values.
// Placeholders without a matching value are left untouched, so template
// revisions that add placeholders do not break existing callers. Pure
// function: no state, no escaping of the substituted fragments.
func substitute(template string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		if template[i] == '$' && i+1 < len(template) && template[i+1] == '{' {
			if end := strings.IndexByte(template[i:], '}'); end >= 0 {
				name := template[i+2 : i+end]
				if v, ok := values[name]; ok {
					b.WriteString(v)
					i += end + 1
					continue
				}
			}
		}
		b.WriteByte(template[i])
		i++
	}
	return b.String()
}
