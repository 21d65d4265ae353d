package sparkline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	values := map[string]string{"name": "world", "empty": ""}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple replacement", "hello ${name}", "hello world"},
		{"repeated placeholder", "${name} ${name}", "world world"},
		{"unknown left untouched", "hello ${missing}", "hello ${missing}"},
		{"mixed known and unknown", "${name} ${missing}", "world ${missing}"},
		{"empty value", "[${empty}]", "[]"},
		{"no placeholders", "plain text", "plain text"},
		{"bare dollar", "cost: $5", "cost: $5"},
		{"unterminated placeholder", "oops ${name", "oops ${name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, substitute(tt.in, values))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1", formatFloat(1))
	assert.Equal(t, "4.2", formatFloat(4.7-0.5))
	assert.Equal(t, "5.6", formatFloat(5.1+0.5))
	assert.Equal(t, "-0.25", formatFloat(-0.25))
}

func TestCellRefs(t *testing.T) {
	assert.Equal(t, `cell.row["a"], cell.row["b"]`, cellRefs([]string{"a", "b"}))
	assert.Equal(t, "", cellRefs(nil))
}

func TestIndexRefs(t *testing.T) {
	assert.Equal(t, "0, 1, 2", indexRefs(3))
	assert.Equal(t, "0", indexRefs(1))
}
