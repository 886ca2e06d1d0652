// Package document decodes résumé files into plain text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"mime"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePlain = "text/plain"
	MimePDF   = "application/pdf"
	MimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedType = errors.New("unsupported document type")
	ErrEmptyInput      = errors.New("empty document")
)

var extensionTypes = map[string]string{
	".txt":  MimePlain,
	".pdf":  MimePDF,
	".docx": MimeDocx,
}

var (
	reXMLTag   = regexp.MustCompile(`<[^>]+>`)
	wordBreaks = strings.NewReplacer(
		"</w:p>", "\n",
		"<w:tab/>", "\t",
		"<w:br/>", "\n",
		"<w:cr/>", "\n",
	)
)

// Supported reports whether the file extension of name can be decoded.
func Supported(name string) bool {
	_, ok := extensionTypes[strings.ToLower(filepath.Ext(name))]
	return ok
}

// TypeOf resolves the MIME type used to decode a document. An explicit
// mediaType wins; otherwise the extension of name decides.
func TypeOf(name, mediaType string) string {
	if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
		switch mt {
		case MimePlain, MimePDF, MimeDocx:
			return mt
		}
	}
	return extensionTypes[strings.ToLower(filepath.Ext(name))]
}

// Decode turns the raw bytes of a PDF, DOCX or plain text file into text.
func Decode(name, mediaType string, data []byte) (string, error) {
	switch TypeOf(name, mediaType) {
	case MimePlain:
		// Undecodable bytes are dropped rather than failing the document.
		return strings.ToValidUTF8(string(data), ""), nil
	case MimePDF:
		if len(data) == 0 {
			return "", fmt.Errorf("%s: %w", name, ErrEmptyInput)
		}
		return extractPDFText(data)
	case MimeDocx:
		if len(data) == 0 {
			return "", fmt.Errorf("%s: %w", name, ErrEmptyInput)
		}
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %q (%s)", ErrUnsupportedType, name, mediaType)
	}
}

// LoadFile reads a local file and decodes it by extension.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(filepath.Base(path), "", data)
}

func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	pages := make([]string, 0, pdfReader.NumPage())
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return xmlToText(doc.Editable().GetContent()), nil
}

// xmlToText flattens WordprocessingML into text, one paragraph per line.
func xmlToText(content string) string {
	content = wordBreaks.Replace(content)
	content = reXMLTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
