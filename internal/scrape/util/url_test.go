package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractUsername(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/in/janedoe", "janedoe"},
		{"https://linkedin.com/in/jane-doe-123/", "jane-doe-123"},
		{"https://www.linkedin.com/in/janedoe?miniProfile=abc", "janedoe"},
		{"https://www.linkedin.com/in/janedoe#section", "janedoe"},
		{"http://linkedin.com/in/j%C3%A1n", "j%C3%A1n"},
		{"https://www.linkedin.com/company/acme", ""},
		{"https://example.com/in/janedoe", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractUsername(tt.url), "url %q", tt.url)
	}
}

func TestIsProfileURL(t *testing.T) {
	assert.True(t, IsProfileURL("https://www.linkedin.com/in/someone"))
	assert.False(t, IsProfileURL("https://www.linkedin.com/jobs/view/123"))
}
