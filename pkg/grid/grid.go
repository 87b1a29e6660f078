// Package grid holds the order grid's state machine: the in-memory order
// snapshot plus derived filtering, pagination, multi-select, and the two
// popup slots. Derived values are recomputed on every call rather than
// cached, so they cannot drift from the snapshot.
package grid

import (
	"sort"
	"strconv"
	"strings"

	"tableflip.dev/ordo/pkg/order"
)

// PageSize is the fixed number of rows per page.
const PageSize = 5

// Controller owns the snapshot and all grid state. It is not safe for
// concurrent use; the UI event loop is its only writer.
type Controller struct {
	orders      []*order.Order
	currentPage int
	searchValue string
	selected    map[int]bool

	pendingView   *order.Order
	pendingDelete *order.Order

	loading bool
}

// New returns an empty controller in the loading state, on page 1.
func New() *Controller {
	return &Controller{
		currentPage: 1,
		selected:    make(map[int]bool),
		loading:     true,
	}
}

// SetOrders replaces the snapshot and clears the loading flag. It does not
// touch the page, search, or selection state.
func (c *Controller) SetOrders(orders []*order.Order) {
	c.orders = orders
	c.loading = false
}

// FailLoad records that the initial fetch settled without producing a
// snapshot: the list stays empty and loading ends.
func (c *Controller) FailLoad() {
	c.orders = nil
	c.loading = false
}

// BeginLoad flips the controller back into the loading state ahead of a
// refetch.
func (c *Controller) BeginLoad() {
	c.loading = true
}

func (c *Controller) Loading() bool { return c.loading }

// Orders returns the full snapshot in fetch order.
func (c *Controller) Orders() []*order.Order { return c.orders }

// Search reports the current filter string.
func (c *Controller) Search() string { return c.searchValue }

// SetSearch updates the filter. The current page is deliberately left
// alone; a narrowed result set can leave the user on an empty page.
func (c *Controller) SetSearch(value string) {
	c.searchValue = value
}

// Filtered derives the visible subset: orders whose name, endpoints,
// displayed timestamp, or quantity contain the search string,
// case-insensitively.
func (c *Controller) Filtered() []*order.Order {
	if c.searchValue == "" {
		return c.orders
	}
	q := strings.ToLower(c.searchValue)
	filtered := make([]*order.Order, 0, len(c.orders))
	for _, o := range c.orders {
		if matches(o, q) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func matches(o *order.Order, q string) bool {
	for _, field := range []string{
		o.Name,
		o.From,
		o.To,
		o.OrderedAt.Display(),
		strconv.Itoa(o.Quantity),
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// TotalPages is ceil(len(filtered) / PageSize); zero when nothing matches.
func (c *Controller) TotalPages() int {
	return (len(c.Filtered()) + PageSize - 1) / PageSize
}

func (c *Controller) CurrentPage() int { return c.currentPage }

// PageStart is the index within Filtered of the first visible row.
func (c *Controller) PageStart() int {
	return (c.currentPage - 1) * PageSize
}

// Page returns the visible slice for the current page. When the filter has
// shrunk past the current page the slice is empty; the page number is not
// auto-corrected.
func (c *Controller) Page() []*order.Order {
	filtered := c.Filtered()
	first := c.PageStart()
	if first >= len(filtered) {
		return nil
	}
	last := first + PageSize
	if last > len(filtered) {
		last = len(filtered)
	}
	return filtered[first:last]
}

// NextPage advances, clamped to TotalPages.
func (c *Controller) NextPage() {
	if c.currentPage+1 <= c.TotalPages() {
		c.currentPage++
	}
}

// PrevPage retreats, clamped to 1.
func (c *Controller) PrevPage() {
	if c.currentPage > 1 {
		c.currentPage--
	}
}

// IsLastPage is the strict comparison currentPage == TotalPages. With an
// empty filtered set TotalPages is 0 and this reports false, so "next"
// stays enabled on an empty grid.
func (c *Controller) IsLastPage() bool {
	return c.currentPage == c.TotalPages()
}

// ToggleSelection adds the id to the bulk-action set, or removes it if
// already present.
func (c *Controller) ToggleSelection(id int) {
	if c.selected[id] {
		delete(c.selected, id)
		return
	}
	c.selected[id] = true
}

func (c *Controller) IsSelected(id int) bool { return c.selected[id] }

func (c *Controller) HasSelection() bool { return len(c.selected) > 0 }

// SelectedIDs returns the selection in ascending id order.
func (c *Controller) SelectedIDs() []int {
	ids := make([]int, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// OpenDetail stages an order for the read-only detail popup.
func (c *Controller) OpenDetail(o *order.Order) { c.pendingView = o }

// CloseDetail clears the staged order.
func (c *Controller) CloseDetail() { c.pendingView = nil }

func (c *Controller) PendingView() *order.Order { return c.pendingView }

// OpenDeletePrompt stages an order for the single-delete confirmation.
func (c *Controller) OpenDeletePrompt(o *order.Order) { c.pendingDelete = o }

// CloseDeletePrompt clears the staged order.
func (c *Controller) CloseDeletePrompt() { c.pendingDelete = nil }

func (c *Controller) PendingDelete() *order.Order { return c.pendingDelete }

// RemoveOrder drops the order with the given id from the snapshot, for use
// after the backend confirmed a single delete. The selection set is not
// pruned; a selected id deleted through the single flow lingers there
// until the next bulk action or reload.
func (c *Controller) RemoveOrder(id int) {
	kept := make([]*order.Order, 0, len(c.orders))
	for _, o := range c.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	c.orders = kept
}

// RemoveSelected drops every selected order from the snapshot and clears
// the selection, for use after the backend confirmed a bulk delete.
func (c *Controller) RemoveSelected() {
	kept := make([]*order.Order, 0, len(c.orders))
	for _, o := range c.orders {
		if !c.selected[o.ID] {
			kept = append(kept, o)
		}
	}
	c.orders = kept
	c.selected = make(map[int]bool)
}
