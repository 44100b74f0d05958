package id

import (
	"strings"
	"testing"
)

func TestPrefixedGenerator(t *testing.T) {
	t.Parallel()

	gen := NewPrefixedGenerator("sync")
	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, _ := gen.NewID()

	if !strings.HasPrefix(first, "sync_") || len(first) != len("sync_")+32 {
		t.Fatalf("unexpected id shape: %s", first)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got=%s twice", first)
	}
}

func TestSequenceGenerator(t *testing.T) {
	t.Parallel()

	gen := NewSequenceGenerator("run")
	a, _ := gen.NewID()
	b, _ := gen.NewID()
	if a != "run_1" || b != "run_2" {
		t.Fatalf("unexpected sequence: got=%s,%s", a, b)
	}
}
