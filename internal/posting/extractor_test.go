package posting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	e := NewExtractor(t.TempDir())
	got, err := e.ExtractText("posting.txt", strings.NewReader("Go developer wanted"))
	require.NoError(t, err)
	assert.Equal(t, "Go developer wanted", got)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	e := NewExtractor(t.TempDir())
	_, err := e.ExtractText("posting.exe", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractText_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	e := NewExtractor(dir)
	// A filename with path separators must not escape the uploads dir.
	got, err := e.ExtractText("../escape.txt", strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, "content", got)
	assert.NoFileExists(t, dir+"/../escape.txt")
}
