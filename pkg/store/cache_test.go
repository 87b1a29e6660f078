package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/ordo/pkg/order"
)

type testConfig struct {
	path string
}

func (c *testConfig) Backend() string        { return "http://localhost:3000/api/be" }
func (c *testConfig) CachePath() string      { return c.path }
func (c *testConfig) Timeout() time.Duration { return time.Second }

func testOrders() []*order.Order {
	at := order.Timestamp{Time: time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)}
	return []*order.Order{
		{ID: 3, Name: "Order 3", From: "Jakarta", To: "Bandung", OrderedAt: at, Quantity: 3},
		{ID: 1, Name: "Order 1", From: "Medan", To: "Padang", OrderedAt: at, Quantity: 1, Description: "fragile"},
		{ID: 2, Name: "Order 2", From: "Solo", To: "Malang", OrderedAt: at, Quantity: 2},
	}
}

func TestSnapshotPutListRoundTrip(t *testing.T) {
	s, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := s.Put(testOrders()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got := s.List(context.Background())
	if len(got) != 3 {
		t.Fatalf("expected 3 cached orders, got %d", len(got))
	}
	// List sorts by id regardless of write order.
	for i, o := range got {
		if o.ID != i+1 {
			t.Fatalf("position %d holds order %d", i, o.ID)
		}
	}
	if got[0].Description != "fragile" {
		t.Fatalf("description lost in round trip: %+v", got[0])
	}
	if !got[0].OrderedAt.Equal(time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("timestamp lost in round trip: %v", got[0].OrderedAt)
	}
}

func TestSnapshotPutReplacesPrevious(t *testing.T) {
	s, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := s.Put(testOrders()); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := s.Put(testOrders()[:1]); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	got := s.List(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected snapshot replaced, got %d orders", len(got))
	}
	if got[0].ID != 3 {
		t.Fatalf("unexpected surviving order %d", got[0].ID)
	}
}

func TestSnapshotClear(t *testing.T) {
	s, err := Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := s.Put(testOrders()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := s.List(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty cache after Clear, got %d orders", len(got))
	}
}
