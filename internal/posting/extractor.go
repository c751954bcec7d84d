// Package posting acquires job-posting text for the compare flow, either
// from an uploaded document or from a URL.
package posting

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/pkg/errors"
)

// Extractor pulls plain text out of uploaded posting documents.
type Extractor struct {
	uploadsDir string
}

func NewExtractor(uploadsDir string) *Extractor {
	return &Extractor{uploadsDir: uploadsDir}
}

// ExtractText saves the upload under the extractor's working directory and
// extracts its plain text. Supported types: PDF, DOCX, DOC, RTF, ODT, TXT.
func (e *Extractor) ExtractText(filename string, reader io.Reader) (string, error) {
	if err := os.MkdirAll(e.uploadsDir, 0o755); err != nil {
		return "", errors.Wrap(err, "create uploads dir")
	}

	filePath := filepath.Join(e.uploadsDir, filepath.Base(filename))
	file, err := os.Create(filePath)
	if err != nil {
		return "", errors.Wrap(err, "save upload")
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", errors.Wrap(err, "save upload")
	}

	fileType := strings.ToLower(filepath.Ext(filename))
	switch fileType {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(filePath)
		if err != nil {
			return "", errors.Wrap(err, "parse document")
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", errors.Wrap(err, "read text file")
		}
		return string(content), nil
	default:
		return "", errors.Errorf("unsupported file type: %s", fileType)
	}
}
