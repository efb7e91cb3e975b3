package pagecount

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainErrors "github.com/polkiloo/printdesk/internal/domain/errors"
	testhelpers "github.com/polkiloo/printdesk/internal/test"
)

func newEstimator(buf io.Writer) *Estimator {
	return NewEstimator(slog.New(slog.NewJSONHandler(buf, nil)))
}

func TestCountReturnsPages(t *testing.T) {
	e := newEstimator(io.Discard)
	for _, pages := range []int{1, 3, 7} {
		n, err := e.Count(testhelpers.BuildPDF(pages))
		if err != nil {
			t.Fatalf("count %d pages: %v", pages, err)
		}
		if n != pages {
			t.Fatalf("expected %d pages, got %d", pages, n)
		}
	}
}

func TestCountRejectsGarbage(t *testing.T) {
	e := newEstimator(io.Discard)
	if _, err := e.Count([]byte("definitely not a pdf")); !errors.Is(err, domainErrors.ErrUnsupportedDocument) {
		t.Fatalf("expected unsupported document, got %v", err)
	}
	if _, err := e.Count(nil); !errors.Is(err, domainErrors.ErrUnsupportedDocument) {
		t.Fatalf("expected unsupported document for empty input, got %v", err)
	}
	_, err := e.Count([]byte("%PDF-1.4 garbage"))
	if err == nil || errors.Is(err, domainErrors.ErrUnsupportedDocument) {
		t.Fatalf("expected parse error for broken pdf, got %v", err)
	}
}

func TestEstimateNonPDFIsOnePage(t *testing.T) {
	e := newEstimator(io.Discard)
	if n := e.Estimate("photo.png", "image/png", testhelpers.BuildPDF(4)); n != 1 {
		t.Fatalf("expected declared image to bill one page, got %d", n)
	}
}

func TestEstimatePDF(t *testing.T) {
	e := newEstimator(io.Discard)
	if n := e.Estimate("doc.pdf", "application/pdf", testhelpers.BuildPDF(5)); n != 5 {
		t.Fatalf("expected 5 pages, got %d", n)
	}
	if n := e.Estimate("doc.pdf", "", testhelpers.BuildPDF(2)); n != 2 {
		t.Fatalf("expected sniffed pdf with 2 pages, got %d", n)
	}
}

func TestEstimateFallsBackAndLogs(t *testing.T) {
	var buf bytes.Buffer
	e := newEstimator(&buf)
	if n := e.Estimate("broken.pdf", "application/pdf; charset=binary", []byte("%PDF-1.4 garbage")); n != 1 {
		t.Fatalf("expected fallback to 1, got %d", n)
	}
	if !strings.Contains(buf.String(), "page count fallback") {
		t.Fatalf("expected fallback to be logged, got %q", buf.String())
	}
}

func TestIsPDF(t *testing.T) {
	doc := testhelpers.BuildPDF(1)
	cases := []struct {
		name     string
		declared string
		data     []byte
		want     bool
	}{
		{"declared pdf", "application/pdf", nil, true},
		{"declared upper case", "Application/PDF", nil, true},
		{"declared image wins over content", "image/jpeg", doc, false},
		{"octet stream sniffed", "application/octet-stream", doc, true},
		{"empty sniffed text", "", []byte("hello"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPDF(tc.declared, tc.data); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
