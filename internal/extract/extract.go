// Package extract converts candidate documents (plain text, PDF, DOCX) into
// the plain text the evaluation pipeline consumes.
package extract

import (
	"bytes"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"hirescreen/internal/errors"
	"hirescreen/internal/utils"
)

// FromFile reads the document at path and returns its plain text. The format
// is chosen by file extension; unsupported extensions are rejected before any
// bytes are read.
func FromFile(path string) (string, error) {
	if err := utils.ValidateInputFile(path); err != nil {
		return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
			"cannot read input document", err).WithContext("path", path)
	}

	switch {
	case utils.IsPDFFile(path):
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
				"cannot read input document", err).WithContext("path", path)
		}
		return FromPDF(data)
	case utils.IsDocxFile(path):
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
				"cannot read input document", err).WithContext("path", path)
		}
		return FromDocx(data)
	case utils.IsTextFile(path):
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.NewIOError(errors.ErrCodeFileNotReadable,
				"cannot read input document", err).WithContext("path", path)
		}
		return Normalize(string(data)), nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnsupportedFile,
			"unsupported document type", nil).
			WithContext("path", path).
			WithContext("extension", utils.GetFileExtension(path))
	}
}

// FromPDF extracts the plain text of every page in the PDF. Pages that fail
// to decode are skipped; an error is returned only when no text at all could
// be recovered.
func FromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"failed to parse PDF document", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := Normalize(textBuilder.String())
	if text == "" {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"no text content found in PDF", nil)
	}
	return text, nil
}

// FromDocx extracts the text content of a DOCX document.
func FromDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"failed to parse DOCX document", err)
	}
	defer func() { _ = doc.Close() }()

	text := Normalize(stripTags(doc.Editable().GetContent()))
	if text == "" {
		return "", errors.NewIOError(errors.ErrCodeExtractionFailed,
			"no text content found in DOCX", nil)
	}
	return text, nil
}

// Normalize trims each line and drops empty ones so downstream prompts see
// compact text regardless of the source format.
func Normalize(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}
	return strings.Join(cleanedLines, "\n")
}

// stripTags removes XML markup from raw document.xml content, inserting
// newlines at paragraph boundaries.
func stripTags(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
