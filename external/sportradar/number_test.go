package sportradar

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestNumber_AcceptsNumbersAndNumericStrings(t *testing.T) {
	t.Parallel()

	var payload struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
		E Number `json:"e"`
	}
	raw := []byte(`{"a": 23, "b": "7", "c": "six", "d": null, "e": 74.5}`)
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := payload.A.Int(); got == nil || *got != 23 {
		t.Fatalf("expected a=23, got=%v", got)
	}
	if got := payload.B.Int(); got == nil || *got != 7 {
		t.Fatalf("expected b=7, got=%v", got)
	}
	if payload.C.Set {
		t.Fatalf("expected non numeric string to stay unset")
	}
	if payload.D.Set {
		t.Fatalf("expected null to stay unset")
	}
	if got := payload.E.Float(); got == nil || *got != 74.5 {
		t.Fatalf("expected e=74.5, got=%v", got)
	}
}

func TestText_AcceptsStringsAndNumbers(t *testing.T) {
	t.Parallel()

	var payload struct {
		Jersey Text `json:"jersey_number"`
		Weight Text `json:"weight"`
		Height Text `json:"height"`
	}
	raw := []byte(`{"jersey_number": 12, "weight": "180", "height": "6'2\""}`)
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := payload.Jersey.Int(); got == nil || *got != 12 {
		t.Fatalf("expected jersey=12, got=%v", got)
	}
	if got := payload.Weight.Int(); got == nil || *got != 180 {
		t.Fatalf("expected weight=180, got=%v", got)
	}
	if payload.Height.Int() != nil {
		t.Fatalf("expected height text to not parse as int")
	}
	if got := payload.Height.Ptr(); got == nil || *got != `6'2"` {
		t.Fatalf("expected height text preserved, got=%v", got)
	}
}
