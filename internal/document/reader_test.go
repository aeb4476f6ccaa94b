package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReader_ExtractFile_PlainText(t *testing.T) {
	reader := NewReader()
	path := writeTemp(t, "contract.txt", "The Vendor shall deliver all goods on time.")

	result, err := reader.ExtractFile(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.FileType != "txt" {
		t.Errorf("expected file type txt, got %s", result.FileType)
	}
	if result.WordCount != 8 {
		t.Errorf("expected 8 words, got %d", result.WordCount)
	}
	if result.CharCount != len(result.Text) {
		t.Errorf("char count %d does not match text length %d", result.CharCount, len(result.Text))
	}
}

func TestReader_ExtractFile_HTML(t *testing.T) {
	reader := NewReader()
	html := `<html><head><script>alert("x")</script><style>.a{}</style></head>
<body><h1>Service Agreement</h1><p>The Client shall pay monthly.</p></body></html>`
	path := writeTemp(t, "contract.html", html)

	result, err := reader.ExtractFile(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if !strings.Contains(result.Text, "Service Agreement") {
		t.Errorf("expected visible text, got %q", result.Text)
	}
	if strings.Contains(result.Text, "alert") {
		t.Error("script content must be skipped")
	}
	if strings.Contains(result.Text, "<p>") {
		t.Error("tags must be stripped")
	}
}

func TestReader_ExtractFile_UnsupportedFormat(t *testing.T) {
	reader := NewReader()
	path := writeTemp(t, "contract.pdf", "%PDF-1.4 fake")

	result, err := reader.ExtractFile(path)
	if err != nil {
		t.Fatalf("unsupported format must not be a Go error: %v", err)
	}

	if result.Success {
		t.Error("expected failure for .pdf")
	}
	if !strings.Contains(result.Error, "unsupported file format") {
		t.Errorf("unexpected error message: %q", result.Error)
	}
	if result.FileType != "pdf" {
		t.Errorf("expected file type pdf, got %s", result.FileType)
	}
}

func TestReader_ExtractFile_MissingFile(t *testing.T) {
	reader := NewReader()

	if _, err := reader.ExtractFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace",
			in:   "clause  one\n\nclause\ttwo",
			want: "clause one clause two",
		},
		{
			name: "keeps contract punctuation and currency",
			in:   `Fee: ₹5,000 (50%) due "on signing" [Annexure-A]`,
			want: `Fee: ₹5,000 (50%) due "on signing" [Annexure-A]`,
		},
		{
			name: "drops stray symbols",
			in:   "payment§ due† now*",
			want: "payment due now",
		},
		{
			name: "keeps Devanagari",
			in:   "यह अनुबंध बाध्यकारी है",
			want: "यह अनुबंध बाध्यकारी है",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"english", "This agreement is binding on both parties.", "en"},
		{"hindi", "यह अनुबंध दोनों पक्षों पर बाध्यकारी है", "hi"},
		{"mixed", "Agreement अनुबंध between the parties and their assigns", "mixed"},
		{"empty", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.in); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
