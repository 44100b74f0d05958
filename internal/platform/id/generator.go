package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync/atomic"
)

// Generator creates opaque IDs for sync runs and other internal references.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	prefix string
}

// NewPrefixedGenerator returns IDs shaped "{prefix}_{32 hex chars}".
func NewPrefixedGenerator(prefix string) *RandomGenerator {
	return &RandomGenerator{prefix: prefix}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return withPrefix(g.prefix, hex.EncodeToString(buf)), nil
}

// SequenceGenerator yields "{prefix}_1", "{prefix}_2", ... and is meant for tests.
type SequenceGenerator struct {
	prefix string
	next   atomic.Int64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() (string, error) {
	return withPrefix(g.prefix, strconv.FormatInt(g.next.Add(1), 10)), nil
}

func withPrefix(prefix, value string) string {
	if prefix == "" {
		return value
	}
	return prefix + "_" + value
}
