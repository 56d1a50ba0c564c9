package service

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// ExtractText turns an uploaded resume into plain text. Files ending in .pdf
// (any case) go through the PDF parser; everything else is read as UTF-8.
func ExtractText(data []byte, filename string) (string, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".pdf" {
		text, err := extractPDFText(data)
		if err != nil {
			return "", &ExtractionError{PDF: true, Err: err}
		}
		return text, nil
	}

	// Invalid sequences become U+FFFD rather than failing the request.
	return strings.ToValidUTF8(string(data), "�"), nil
}

func extractPDFText(data []byte) (text string, err error) {
	// The parser panics on some truncated xref tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}

	return collectPageText(reader.NumPage(), func(i int) (string, error) {
		page := reader.Page(i)
		if page.V.IsNull() {
			return "", errNullPage
		}
		return page.GetPlainText(nil)
	})
}

var errNullPage = errors.New("null page")

// collectPageText joins the text of pages 1..numPages with blank lines.
// Null pages are skipped and unreadable pages are logged and skipped. When
// pages exist but none of them could be read the document is an error.
func collectPageText(numPages int, pageText func(i int) (string, error)) (string, error) {
	var (
		sb       strings.Builder
		read     int
		failed   int
		firstErr error
	)

	for i := 1; i <= numPages; i++ {
		text, err := pageText(i)
		if errors.Is(err, errNullPage) {
			continue
		}
		if err != nil {
			log.Warn().Int("page", i).Err(err).Msg("Failed to extract text from PDF page")
			failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if read > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
		read++
	}

	if read == 0 && failed > 0 {
		return "", fmt.Errorf("no readable pages (%d failed): %w", failed, firstErr)
	}
	return sb.String(), nil
}
