// colors.go
package sparkline

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ToRGBA maps a color descriptor to a canonical, quoted color literal.
//
// Hex descriptors (3 or 6 digits) become "rgba(r, g, b, 1)". Descriptors
// that already start with rgb/rgba are passed through re-quoted. Anything
// else — named colors, custom formats, malformed hex — is passed through
// unchanged for the downstream renderer to interpret; this function never
// fails.
func ToRGBA(color string) string {
	s := strings.TrimSpace(color)

	// Only 3- and 6-digit hex values canonicalize; anything else (including
	// 8-digit hex with an alpha channel) passes through for the renderer.
	if strings.HasPrefix(s, "#") && (len(s) == 4 || len(s) == 7) {
		if c, err := colorful.Hex(s); err == nil {
			r, g, b := c.RGB255()
			return fmt.Sprintf(`"rgba(%d, %d, %d, 1)"`, r, g, b)
		}
	}

	if strings.HasPrefix(strings.ToLower(s), "rgb") {
		return `"` + s + `"`
	}

	return `"` + color + `"`
}
