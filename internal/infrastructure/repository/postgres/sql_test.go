package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/riskibarqy/hoops-feed/internal/domain/team"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation teams does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	city := "Miami"
	raw, err := encodeSnapshot(team.Team{ID: "h1", Name: "Lunar Owls", Abbreviation: "LUN", City: &city})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := decodeSnapshot[team.Team](raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.City == nil || *got.City != city {
		t.Fatalf("unexpected decoded team: %+v", got)
	}

	if _, err := decodeSnapshot[team.Team]("{"); err == nil {
		t.Fatalf("expected decode error for truncated snapshot")
	}
}

func TestLastByKey(t *testing.T) {
	items := []team.Team{{ID: "h1", Name: "old"}, {ID: "a1"}, {ID: ""}, {ID: "h1", Name: "new"}}
	got := lastByKey(items, func(item team.Team) string { return item.ID })
	if len(got) != 2 {
		t.Fatalf("unexpected length: got=%d want=2", len(got))
	}
	if got[0].Name != "new" {
		t.Fatalf("expected later duplicate to win, got=%s", got[0].Name)
	}
}

func TestNullString(t *testing.T) {
	if nullString(nil).Valid {
		t.Fatalf("expected invalid for nil")
	}
	v := "East"
	if got := nullString(&v); !got.Valid || got.String != "East" {
		t.Fatalf("unexpected null string: %+v", got)
	}
	if nullableString("") != nil {
		t.Fatalf("expected nil for empty string")
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
