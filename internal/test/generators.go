package test

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/polkiloo/printdesk/internal/pkg/vcode"
)

// CodeGeneratorStub returns queued codes, then a fixed fallback.
type CodeGeneratorStub struct {
	mu    sync.Mutex
	Codes []string
	Err   error
}

// Generate pops the next configured code.
func (s *CodeGeneratorStub) Generate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Codes) == 0 {
		return "12345", nil
	}
	code := s.Codes[0]
	s.Codes = s.Codes[1:]
	return code, nil
}

// ValidCode reports whether code has the issued shape: exactly vcode.Length
// ASCII digits within [vcode.Min, vcode.Max].
func ValidCode(code string) bool {
	if len(code) != vcode.Length {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= vcode.Min && n <= vcode.Max
}

// CounterStub implements page counting with fixed results.
type CounterStub struct {
	Pages    int
	CountErr error
}

// Count returns configured pages or error.
func (s CounterStub) Count(data []byte) (int, error) {
	if s.CountErr != nil {
		return 0, s.CountErr
	}
	if s.Pages == 0 {
		return 1, nil
	}
	return s.Pages, nil
}

// Estimate bills configured pages for PDFs declared as such, one otherwise.
func (s CounterStub) Estimate(name, mediaType string, data []byte) int {
	if mediaType != "application/pdf" {
		return 1
	}
	n, err := s.Count(data)
	if err != nil {
		return 1
	}
	return n
}

// PaymentQueueStub records enqueued orders.
type PaymentQueueStub struct {
	mu       sync.Mutex
	Enqueued []string
	Err      error
}

// Enqueue records order id.
func (s *PaymentQueueStub) Enqueue(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Enqueued = append(s.Enqueued, orderID)
	return nil
}

// Count returns number of enqueued orders.
func (s *PaymentQueueStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Enqueued)
}

// ErrStub is a generic failure used across tests.
var ErrStub = errors.New("stub failure")

// NotPDF is a small payload that no sniffer classifies as PDF.
var NotPDF = bytes.Repeat([]byte{0x89, 'P', 'N', 'G'}, 4)

var _ vcode.Generator = (*CodeGeneratorStub)(nil)

// HealthCheckerStub returns the configured error.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck implements storage health probing.
func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}
