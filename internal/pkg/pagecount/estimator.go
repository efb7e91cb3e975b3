package pagecount

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	pdf "github.com/ledongthuc/pdf"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
)

const (
	pdfMediaType     = "application/pdf"
	genericMediaType = "application/octet-stream"
)

// ErrNoPages is returned for documents that parse but report no pages.
var ErrNoPages = errors.New("document has no pages")

// Counter counts pages of an uploaded document.
type Counter interface {
	Count(data []byte) (int, error)
	Estimate(name, mediaType string, data []byte) int
}

// Estimator determines billable page counts. PDFs are introspected, anything
// else is billed as a single page.
type Estimator struct {
	logger *slog.Logger
}

// NewEstimator constructs Estimator.
func NewEstimator(logger *slog.Logger) *Estimator {
	return &Estimator{logger: logger}
}

// Count parses a PDF and returns its page count. Content that does not sniff
// as PDF fails with ErrUnsupportedDocument.
func (e *Estimator) Count(data []byte) (count int, err error) {
	if !mimetype.Detect(data).Is(pdfMediaType) {
		return 0, domainErrors.ErrUnsupportedDocument
	}
	defer func() {
		// the pdf reader panics on some malformed xref tables
		if r := recover(); r != nil {
			count, err = 0, fmt.Errorf("parse pdf: %v", r)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("parse pdf: %w", err)
	}
	n := doc.NumPage()
	if n <= 0 {
		return 0, ErrNoPages
	}
	return n, nil
}

// Estimate returns the billable page count. It never fails: parse errors are
// logged and billed as one page.
func (e *Estimator) Estimate(name, mediaType string, data []byte) int {
	if !IsPDF(mediaType, data) {
		return 1
	}
	n, err := e.Count(data)
	if err != nil {
		e.logger.Warn("page count fallback",
			slog.String("file", name),
			slog.String("error", err.Error()),
		)
		return 1
	}
	return n
}

// IsPDF reports whether the declared media type is PDF. Content is sniffed
// only when nothing usable was declared.
func IsPDF(declared string, data []byte) bool {
	mediaType := normalize(declared)
	if mediaType == "" || mediaType == genericMediaType {
		return mimetype.Detect(data).Is(pdfMediaType)
	}
	return mediaType == pdfMediaType
}

func normalize(mediaType string) string {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
