package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hirescreen/internal/errors"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already clean",
			input:    "line one\nline two",
			expected: "line one\nline two",
		},
		{
			name:     "blank lines dropped",
			input:    "line one\n\n\nline two\n",
			expected: "line one\nline two",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "   padded line   \n\t indented \n",
			expected: "padded line\nindented",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "  \n \t \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	input := `<w:body><w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p></w:body>`
	got := Normalize(stripTags(input))
	expected := "First paragraph\nSecond paragraph"
	if got != expected {
		t.Errorf("stripTags() = %q, want %q", got, expected)
	}
}

func TestFromFileTextDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	content := "Jane Doe\n\nSenior Engineer\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	text, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile() unexpected error: %v", err)
	}
	if text != "Jane Doe\nSenior Engineer" {
		t.Errorf("FromFile() = %q", text)
	}
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.odt")
	if err := os.WriteFile(path, []byte("data"), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := FromFile(path)
	if err == nil {
		t.Fatal("FromFile() expected error for unsupported extension")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("FromFile() error type = %T, want *errors.AppError", err)
	}
	if appErr.Code != errors.ErrCodeUnsupportedFile {
		t.Errorf("FromFile() error code = %q, want %q", appErr.Code, errors.ErrCodeUnsupportedFile)
	}
}

func TestFromFileMissingFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("FromFile() expected error for missing file")
	}
	if !strings.Contains(err.Error(), errors.ErrCodeFileNotReadable) {
		t.Errorf("FromFile() error = %v, want code %s", err, errors.ErrCodeFileNotReadable)
	}
}

func TestFromPDFInvalidData(t *testing.T) {
	_, err := FromPDF([]byte("not a pdf"))
	if err == nil {
		t.Fatal("FromPDF() expected error for invalid data")
	}
}

func TestFromDocxInvalidData(t *testing.T) {
	_, err := FromDocx([]byte("not a docx"))
	if err == nil {
		t.Fatal("FromDocx() expected error for invalid data")
	}
}
