package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	parsed, err := Parse("2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != New(2024, time.June, 15) {
		t.Fatalf("expected 2024-06-15, got %s", parsed)
	}

	if _, err := Parse("15/06/2024"); err == nil {
		t.Fatalf("expected an error for a non-ISO date")
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := json.Marshal(New(2024, time.June, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"2024-06-15"` {
		t.Fatalf("expected quoted ISO date, got %s", data)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-06-15"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != New(2024, time.June, 15) {
		t.Fatalf("expected 2024-06-15, got %s", d)
	}

	var nullable *Date
	if err := json.Unmarshal([]byte(`null`), &nullable); err != nil {
		t.Fatalf("unexpected error for null: %v", err)
	}
	if nullable != nil {
		t.Fatalf("expected null to stay nil, got %v", nullable)
	}

	if err := json.Unmarshal([]byte(`"not a date"`), &d); err == nil {
		t.Fatalf("expected an error for a malformed date")
	}
}

func TestString(t *testing.T) {
	if got := New(2020, time.January, 1).String(); got != "2020-01-01" {
		t.Fatalf("expected 2020-01-01, got %s", got)
	}
}
