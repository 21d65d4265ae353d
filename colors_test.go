package sparkline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"six digit hex", "#FFD700", `"rgba(255, 215, 0, 1)"`},
		{"lowercase hex", "#ffd700", `"rgba(255, 215, 0, 1)"`},
		{"three digit hex expands", "#ABC", `"rgba(170, 187, 204, 1)"`},
		{"surrounding whitespace trimmed", "  #FFD700 ", `"rgba(255, 215, 0, 1)"`},
		{"rgba passthrough", "rgba(10,10,10,0.5)", `"rgba(10,10,10,0.5)"`},
		{"rgb passthrough keeps case", "RGB(1, 2, 3)", `"RGB(1, 2, 3)"`},
		{"named color passthrough", "gold", `"gold"`},
		{"eight digit hex passthrough", "#FFFFFF00", `"#FFFFFF00"`},
		{"malformed hex passthrough", "#GGHHII", `"#GGHHII"`},
		{"bare marker passthrough", "#", `"#"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToRGBA(tt.in))
		})
	}
}

func TestToRGBA_ShortHexMatchesLongHex(t *testing.T) {
	assert.Equal(t, ToRGBA("#AABBCC"), ToRGBA("#ABC"))
}
