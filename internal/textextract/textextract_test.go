package textextract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupported(t *testing.T) {
	e := New(Config{})

	for _, path := range []string{"notes.txt", "notes.md", "paper.pdf", "thesis.docx", "old.doc", "README"} {
		assert.True(t, e.IsSupported(path), "path %s", path)
	}
	for _, path := range []string{"img.png", "deck.key", "archive.zip"} {
		assert.False(t, e.IsSupported(path), "path %s", path)
	}
}

func TestExtractFilePlainText(t *testing.T) {
	e := New(Config{})
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Concept: definition\n"), 0o644))

	text, err := e.ExtractFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Concept: definition\n", text)
}

func TestExtractFileUnsupportedExtension(t *testing.T) {
	e := New(Config{})

	_, err := e.ExtractFile(context.Background(), "slides.pptx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractFileMissingFile(t *testing.T) {
	e := New(Config{})

	_, err := e.ExtractFile(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractFileViaTika(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tika", r.URL.Path)
		assert.Equal(t, "application/pdf", r.Header.Get("Content-Type"))
		w.Write([]byte("Extracted: text"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644))

	e := New(Config{TikaURL: server.URL})
	text, err := e.ExtractFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Extracted: text", text)
}

func TestExtractFileTikaFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unparsable document", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a docx"), 0o644))

	e := New(Config{TikaURL: server.URL})
	_, err := e.ExtractFile(context.Background(), path)
	assert.ErrorIs(t, err, ErrExtraction)
}
