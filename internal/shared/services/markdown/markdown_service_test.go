package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("**vazamento** no bloco B\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>vazamento</strong>")
	assert.NotContains(t, out, "<script>")

	out, err = svc.ToHTMLSanitized("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPlainText(t *testing.T) {
	svc := NewMarkdownService()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"strips tags", "<b>hi</b> <img src=x onerror=alert(1)>", "hi"},
		{"keeps ampersand", "R&D team", "R&D team"},
		{"trims", "  ok  ", "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.PlainText(tt.in))
		})
	}
}
