package order

import (
	"encoding/json"
	"time"
)

const (
	layoutISO     = "2006-01-02"
	layoutNoZone  = "2006-01-02T15:04:05"
	layoutDisplay = "1/2/2006, 3:04:05 PM"
)

// ParseTime parses the date strings the backend hands out. The backend is
// not consistent about zone suffixes, so fall through a few layouts before
// giving up.
func ParseTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutNoZone, v); err == nil {
		return t, nil
	}
	return time.Parse(layoutISO, v)
}

type Timestamp struct {
	time.Time
}

// ParseTimestamp is the lenient form used when building grid snapshots: an
// unparseable date yields a zero Timestamp rather than dropping the order.
func ParseTimestamp(v string) Timestamp {
	t, err := ParseTime(v)
	if err != nil {
		return Timestamp{}
	}
	return Timestamp{Time: t}
}

// Display renders the timestamp the way the grid and the detail popup show
// it, in local time.
func (t Timestamp) Display() string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(layoutDisplay)
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
