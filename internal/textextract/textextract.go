// Package textextract extracts plain text from source documents. Plain
// text files are read directly; PDF and Word documents go through an
// Apache Tika server.
package textextract

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedFormat marks a file extension no decoder handles.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrExtraction marks an unreadable or corrupt document.
	ErrExtraction = errors.New("document extraction failed")
)

// tikaTypes maps extensions routed through Tika to their MIME type.
var tikaTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// plainTypes are read from disk without decoding.
var plainTypes = map[string]bool{
	".txt": true,
	".md":  true,
	"":     true,
}

// Config holds the Tika server settings.
type Config struct {
	TikaURL string
	Timeout time.Duration
}

// Extractor decodes documents into text.
type Extractor struct {
	config     Config
	httpClient *http.Client
}

func New(config Config) *Extractor {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &Extractor{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// IsSupported reports whether the file's extension has a decoder.
func (e *Extractor) IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return plainTypes[ext] || tikaTypes[ext] != ""
}

// ExtractFile returns the plain text of the document at path.
// Unknown extensions fail with ErrUnsupportedFormat; unreadable or
// corrupt documents fail with ErrExtraction.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if plainTypes[ext] {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(ErrExtraction, "read %s: %v", path, err)
		}
		return string(data), nil
	}

	contentType, ok := tikaTypes[ext]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(ErrExtraction, "read %s: %v", path, err)
	}
	return e.extractFromServer(ctx, data, contentType)
}

// extractFromServer sends the document to Tika's /tika endpoint and reads
// back plain text.
func (e *Extractor) extractFromServer(ctx context.Context, data []byte, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		e.config.TikaURL+"/tika", bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "failed to create tika request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "text/plain")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(ErrExtraction, "tika server request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.Wrapf(ErrExtraction, "tika server returned status %d: %s", resp.StatusCode, string(body))
	}

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(ErrExtraction, "read tika response: %v", err)
	}
	return string(text), nil
}
