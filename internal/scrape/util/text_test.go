package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a  b\n\tc  "))
	assert.Equal(t, "", CleanText("   "))
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"html flattened", "<p>Builds <b>reliable</b> systems.</p>", "Builds reliable systems."},
		{"nested markup", "<div><ul><li>Go</li><li>SQL</li></ul></div>", "GoSQL"},
		{"whitespace collapsed", "  lots \n of   space ", "lots of space"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.in))
		})
	}
}
