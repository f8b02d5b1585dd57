// Package ingestion extracts plain text from uploaded resume documents.
//
// PDF extraction shells out to pdftotext (poppler-utils); DOCX files are
// read directly. The engine only ever sees the extracted, cleaned text.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// MinExtractedTextLength is the minimum cleaned text length for an
// extraction to count as successful. Anything shorter is an unreadable or
// image-only document.
const MinExtractedTextLength = 50

// AllowedExtensions lists the upload types the analyzer accepts.
var AllowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

// Allowed reports whether the filename has a supported extension.
func Allowed(filename string) bool {
	return AllowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ExtractText extracts cleaned plain text from a resume file on disk.
func ExtractText(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		text, err = extractTXT(path)
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx", ".doc":
		text, err = extractDOCX(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
	if err != nil {
		return "", err
	}

	text = CleanText(text)
	if len(text) < MinExtractedTextLength {
		return "", fmt.Errorf("extracted text is too short (likely failed extraction) from: %s", path)
	}
	return text, nil
}

// ExtractUpload writes an uploaded document to a temp file, extracts its
// text and removes the temp file again.
func ExtractUpload(r io.Reader, filename string) (string, error) {
	if !Allowed(filename) {
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}

	tmp, err := os.CreateTemp("", "upload-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to buffer upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return ExtractText(tmp.Name())
}

func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	content := string(data)
	if IsBinaryData(content) {
		return "", fmt.Errorf("file %s contains binary data, not plain text", path)
	}
	return content, nil
}

// extractPDF extracts text via pdftotext, which handles layout far better
// than any pure-Go reader.
func extractPDF(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("PDF extraction requires 'pdftotext' (install poppler-utils): %w", err)
	}
	return string(output), nil
}

// docx document XML: paragraph closers become newlines, remaining tags are
// stripped.
var (
	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	docxTagRe       = regexp.MustCompile(`<[^>]+>`)
)

func extractDOCX(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX file: %w", err)
	}
	defer func() { _ = reader.Close() }()

	content := reader.Editable().GetContent()
	content = docxParagraphRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	return content, nil
}
