package vcode

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

const (
	// Min and Max bound issued codes; every code has exactly Length digits.
	Min    = 10000
	Max    = 99999
	Length = 5
)

// Generator mints pickup verification codes.
type Generator interface {
	Generate() (string, error)
}

// RandomGenerator draws codes uniformly from [Min, Max].
type RandomGenerator struct {
	source io.Reader
}

// NewRandomGenerator builds a generator backed by crypto/rand.
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{source: rand.Reader}
}

// Generate returns a fresh code.
func (g *RandomGenerator) Generate() (string, error) {
	n, err := rand.Int(g.source, big.NewInt(Max-Min+1))
	if err != nil {
		return "", fmt.Errorf("draw verification code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+Min, 10), nil
}
