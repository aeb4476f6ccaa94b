// Package document reads contract files into plain text and normalizes
// them for analysis. Plain text and HTML are handled natively; binary
// formats report a structured failure instead of an error.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ExtractResult carries the text pulled from a contract file
type ExtractResult struct {
	Success   bool   `json:"success"`
	Text      string `json:"text,omitempty"`
	CharCount int    `json:"char_count"`
	WordCount int    `json:"word_count"`
	FileType  string `json:"file_type"`
	Error     string `json:"error,omitempty"`
}

// cleanPattern keeps letters (any script, so Devanagari survives),
// digits, and the punctuation that matters in contracts. Everything
// else is dropped before analysis.
var cleanPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s.,;:\-()\[\]"'₹$%@]`)

// whitespaceRun collapses whitespace runs to a single space
var whitespaceRun = regexp.MustCompile(`\s+`)

// devanagari matches the Devanagari Unicode block used by Hindi
var devanagari = regexp.MustCompile(`[\x{0900}-\x{097F}]`)

// Reader extracts text from contract files
type Reader struct{}

// NewReader creates a document reader
func NewReader() *Reader {
	return &Reader{}
}

// ExtractFile reads a contract file and returns its text.
// Unsupported formats produce Success=false with an explanation rather
// than a Go error, so callers can report them uniformly.
func (r *Reader) ExtractFile(path string) (ExtractResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	fileType := strings.TrimPrefix(ext, ".")

	switch ext {
	case ".txt", ".text", ".html", ".htm":
	default:
		return ExtractResult{
			Success:  false,
			FileType: fileType,
			Error:    fmt.Sprintf("unsupported file format: %s (supported: .txt, .html)", ext),
		}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ExtractResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	if ext == ".html" || ext == ".htm" {
		text, err = htmlToText(text)
		if err != nil {
			return ExtractResult{
				Success:  false,
				FileType: fileType,
				Error:    fmt.Sprintf("parse HTML: %v", err),
			}, nil
		}
	}

	return ExtractResult{
		Success:   true,
		Text:      text,
		CharCount: len(text),
		WordCount: len(strings.Fields(text)),
		FileType:  fileType,
	}, nil
}

// Preprocess normalizes raw contract text for the analysis passes
func Preprocess(text string) string {
	text = cleanPattern.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// DetectLanguage reports "en", "hi", or "mixed" based on script counts
func DetectLanguage(text string) string {
	hindi := len(devanagari.FindAllString(text, -1))
	if hindi == 0 {
		return "en"
	}

	total := 0
	for _, r := range text {
		if !strings.ContainsRune(" \t\n\r", r) {
			total++
		}
	}
	if total == 0 {
		return "en"
	}

	ratio := float64(hindi) / float64(total)
	if ratio > 0.5 {
		return "hi"
	}
	return "mixed"
}

// htmlToText extracts visible text from HTML, skipping non-content tags
func htmlToText(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}
