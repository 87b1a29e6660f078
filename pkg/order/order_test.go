package order

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFromDetailDerivesIdentityFromPosition(t *testing.T) {
	d := Detail{
		OrderFrom:   "Jakarta",
		OrderTo:     "Bandung",
		OrderedAt:   "2026-05-01T09:00:00Z",
		Quantity:    3,
		Description: "fragile",
	}
	o := FromDetail(7, d)

	if o.ID != 7 {
		t.Fatalf("expected id 7, got %d", o.ID)
	}
	if o.Name != "Order 7" {
		t.Fatalf("expected derived name, got %q", o.Name)
	}
	if o.From != "Jakarta" || o.To != "Bandung" || o.Quantity != 3 {
		t.Fatalf("detail fields not carried over: %+v", o)
	}
	want := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
	if !o.OrderedAt.Equal(want) {
		t.Fatalf("expected ordered at %v, got %v", want, o.OrderedAt)
	}
}

func TestFromDetailToleratesBadDate(t *testing.T) {
	o := FromDetail(1, Detail{OrderFrom: "A", OrderTo: "B", OrderedAt: "not a date", Quantity: 1})
	if !o.OrderedAt.IsZero() {
		t.Fatalf("expected zero timestamp for unparseable date, got %v", o.OrderedAt)
	}
	if o.OrderedAt.Display() != "" {
		t.Fatalf("expected empty display for zero timestamp, got %q", o.OrderedAt.Display())
	}
}

func TestDescriptionOrNA(t *testing.T) {
	o := &Order{Description: ""}
	if got := o.DescriptionOrNA(); got != "N/A" {
		t.Fatalf("expected N/A, got %q", got)
	}
	o.Description = "keep cold"
	if got := o.DescriptionOrNA(); got != "keep cold" {
		t.Fatalf("expected description, got %q", got)
	}
}

func TestParseTimeLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-05-01T09:00:00Z", time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)},
		{"2026-05-01T09:00:00", time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)},
		{"2026-05-01", time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseTime(tc.in)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseTime("May first"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	ts := Timestamp{Time: time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(&ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("round trip changed the time: %v vs %v", back, ts)
	}

	var zero Timestamp
	data, err = json.Marshal(&zero)
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("expected empty string for zero timestamp, got %s", data)
	}
	var backZero Timestamp
	if err := json.Unmarshal(data, &backZero); err != nil {
		t.Fatalf("unmarshal zero: %v", err)
	}
	if !backZero.IsZero() {
		t.Fatalf("expected zero timestamp back, got %v", backZero)
	}
}
