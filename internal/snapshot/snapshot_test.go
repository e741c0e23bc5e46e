package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/claude/pulseplan/internal/planner"
)

// TestEncodeDecodeRoundTrip verifies that a state survives the codec intact
// and comes back carrying the current schema version.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := planner.DefaultState()

	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("encoded snapshot is not a JSON object: %v", err)
	}
	for _, field := range []string{"version", "workouts", "schedule"} {
		if _, ok := doc[field]; !ok {
			t.Errorf("encoded snapshot missing %q field", field)
		}
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(got.Workouts) != len(orig.Workouts) {
		t.Errorf("workouts = %d, want %d", len(got.Workouts), len(orig.Workouts))
	}
	for _, d := range planner.Days() {
		if len(got.Schedule[d]) != len(orig.Schedule[d]) {
			t.Errorf("day %s = %d slots, want %d", d, len(got.Schedule[d]), len(orig.Schedule[d]))
		}
	}
}

// TestDecodePartialDocument verifies that documents with missing pieces are
// repaired: absent days become empty lists, absent workouts fall back to the
// seeds, and a pre-versioning document (no version field) still decodes.
func TestDecodePartialDocument(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		wantWorkouts int
	}{
		{
			name:         "schedule missing days",
			data:         `{"version":1,"workouts":[],"schedule":{"monday":[{"id":"s1","workoutId":"w1","timeOfDay":"Morning"}]}}`,
			wantWorkouts: 0,
		},
		{
			name:         "no workouts field falls back to seeds",
			data:         `{"version":1,"schedule":{}}`,
			wantWorkouts: 3,
		},
		{
			name:         "legacy document without version",
			data:         `{"workouts":[],"schedule":{}}`,
			wantWorkouts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Decode([]byte(tt.data))
			if err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if len(st.Workouts) != tt.wantWorkouts {
				t.Errorf("workouts = %d, want %d", len(st.Workouts), tt.wantWorkouts)
			}
			if len(st.Schedule) != 7 {
				t.Errorf("schedule has %d keys, want 7", len(st.Schedule))
			}
			// Must be safe input for the aggregator.
			_ = planner.Summarize(st.Workouts, st.Schedule)
		})
	}
}

// TestDecodeRejectsGarbage verifies that unparsable and future-versioned
// documents fail decoding (callers then fall back to defaults).
func TestDecodeRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not JSON", data: "hello planner"},
		{name: "wrong shape", data: `{"workouts":"yes"}`},
		{name: "future schema version", data: `{"version":99,"workouts":[],"schedule":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}
