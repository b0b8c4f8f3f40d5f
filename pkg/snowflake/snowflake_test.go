package snowflake

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()

	id, err := Parse("175928847299117063")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if id != 175928847299117063 {
		t.Fatalf("got %d", id)
	}

	if _, err := Parse("not-a-number"); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

func TestTime(t *testing.T) {
	t.Parallel()

	id := ID(175928847299117063)
	want := time.Date(2016, 4, 30, 11, 18, 25, 796e6, time.UTC)
	if got := id.Time(); !got.Equal(want) {
		t.Fatalf("Time: got %v want %v", got, want)
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"string", `"175928847299117063"`, 175928847299117063},
		{"number", `175928847299117063`, 175928847299117063},
		{"null", `null`, Null},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if id != tt.want {
				t.Fatalf("got %d want %d", id, tt.want)
			}
		})
	}

	out, err := json.Marshal(ID(42))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"42"` {
		t.Fatalf("marshal: got %s", out)
	}
}
