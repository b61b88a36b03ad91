package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragment_Text(t *testing.T) {
	sep := strings.Repeat("=", 40)

	tests := []struct {
		name     string
		fragment *Fragment
		expected string
	}{
		{
			name:     "nil fragment",
			fragment: nil,
			expected: "",
		},
		{
			name:     "empty body emits no header",
			fragment: &Fragment{Name: "main.py", Body: ""},
			expected: "",
		},
		{
			name:     "document body",
			fragment: &Fragment{Name: "README.md", Kind: KindDocument, Body: "Hello"},
			expected: "\n" + sep + "\nREADME.md\n" + sep + "\nHello\n\n",
		},
		{
			name:     "comment body keeps its newline",
			fragment: &Fragment{Name: "main.py", Kind: KindSource, Body: "# comment\n"},
			expected: "\n" + sep + "\nmain.py\n" + sep + "\n# comment\n\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fragment.Text())
		})
	}
}

func TestRunOptions_Validate(t *testing.T) {
	assert.NoError(t, RunOptions{Locator: "https://github.com/acme/widgets"}.Validate())

	err := RunOptions{Locator: "   "}.Validate()
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "locator", vErr.Field)
}
