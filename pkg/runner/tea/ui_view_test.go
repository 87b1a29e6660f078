package teaui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
)

func TestViewShowsLoadingBeforeFirstSnapshot(t *testing.T) {
	m := New(newFakeBackend(3), nil)
	if got := m.View(); got != "Loading...\n" {
		t.Fatalf("expected loading screen, got %q", got)
	}
}

func TestViewRendersPageRowsAndFooter(t *testing.T) {
	m := loadedModel(t, newFakeBackend(12))

	view := stripANSI(m.View())
	for _, want := range []string{"Orders", "NAME", "Order 1", "Order 5", "Page 1 of 3"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q; view=%q", want, view)
		}
	}
	if strings.Contains(view, "Order 6") {
		t.Fatalf("expected rows past the page boundary to be hidden; view=%q", view)
	}
	if !strings.Contains(view, "» ") {
		t.Fatalf("expected cursor marker on the current row; view=%q", view)
	}
}

func TestViewMarksSelectedRows(t *testing.T) {
	m := loadedModel(t, newFakeBackend(6))

	m, _ = press(t, m, key(' '))
	m, _ = press(t, m, key('j'))
	m, _ = press(t, m, key(' '))

	view := stripANSI(m.View())
	if got := strings.Count(view, "[x]"); got != 2 {
		t.Fatalf("expected 2 checked rows, got %d; view=%q", got, view)
	}
	if !strings.Contains(view, "2 selected (D to delete)") {
		t.Fatalf("expected selection count in footer; view=%q", view)
	}
}

func TestViewDetailPopupShowsAllFields(t *testing.T) {
	m := loadedModel(t, newFakeBackend(3))

	m, _ = press(t, m, key('v'))
	view := stripANSI(m.View())
	for _, want := range []string{"Order Detail", "Order ID:    1", "From:        From1", "To:          To1", "Quantity:    1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected detail popup to contain %q; view=%q", want, view)
		}
	}
	// The fake's orders carry no description; the popup falls back to N/A.
	if !strings.Contains(view, "Description: N/A") {
		t.Fatalf("expected N/A description; view=%q", view)
	}
}

func TestViewDeletePopupNamesTheOrder(t *testing.T) {
	m := loadedModel(t, newFakeBackend(3))

	m, _ = press(t, m, key('j'))
	m, _ = press(t, m, key('d'))
	view := stripANSI(m.View())
	if !strings.Contains(view, "Are you sure you want to delete Order 2?") {
		t.Fatalf("expected confirmation text for order 2; view=%q", view)
	}
	if !strings.Contains(view, "Confirmation") {
		t.Fatalf("expected confirmation title; view=%q", view)
	}
}

func TestViewEmptyFilteredPage(t *testing.T) {
	m := loadedModel(t, newFakeBackend(6))

	m, _ = press(t, m, key('/'))
	for _, r := range "zzz" {
		m, _ = press(t, m, key(r))
	}
	m, _ = press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	view := stripANSI(m.View())
	if !strings.Contains(view, "no orders on this page") {
		t.Fatalf("expected empty-page placeholder; view=%q", view)
	}
	if !strings.Contains(view, `filter: "zzz" (0 matches)`) {
		t.Fatalf("expected filter summary in footer; view=%q", view)
	}
	if !strings.Contains(view, "Page 1 of 0") {
		t.Fatalf("expected zero total pages in footer; view=%q", view)
	}
}

func TestViewFooterSingularMatch(t *testing.T) {
	m := loadedModel(t, newFakeBackend(6))

	m, _ = press(t, m, key('/'))
	for _, r := range "from3" {
		m, _ = press(t, m, key(r))
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, `filter: "from3" (1 match)`) {
		t.Fatalf("expected singular match count; view=%q", view)
	}
}

func TestViewHelpOverlay(t *testing.T) {
	m := loadedModel(t, newFakeBackend(3))

	m, _ = press(t, m, key('?'))
	view := stripANSI(m.View())
	if !strings.Contains(view, "Keys: j/k move") {
		t.Fatalf("expected help overlay; view=%q", view)
	}
}
