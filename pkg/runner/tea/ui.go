package teaui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/grid"
	"tableflip.dev/ordo/pkg/order"
	"tableflip.dev/ordo/pkg/runner/tea/internal/popup"
	"tableflip.dev/ordo/pkg/store"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeDetail
	modeConfirmDelete
	modeHelp
)

const normalStatus = "NORMAL: j/k move, h/l page, / search, space select, enter view, d delete, D delete selected, r reload, ? help"

// Model contains the grid UI state. All list/page/selection semantics live
// in grid.Controller; the model owns modes, the cursor within the visible
// page, and the async plumbing.
type Model struct {
	backend client.Backend
	cache   store.Snapshot
	ctx     context.Context

	mode mode
	grid *grid.Controller

	input  textinput.Model
	cursor int

	status string

	// loadGen tags every fetch; a response carrying an older generation is
	// from a superseded load and is dropped instead of clobbering state.
	loadGen    int
	fetchCount int

	termWidth  int
	termHeight int
}

// New creates a grid model backed by the given backend. The cache, when
// present, receives a copy of every successful snapshot.
func New(backend client.Backend, cache store.Snapshot) Model {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 64
	ti.Prompt = ""

	return Model{
		backend:    backend,
		cache:      cache,
		ctx:        context.Background(),
		mode:       modeNormal,
		grid:       grid.New(),
		input:      ti,
		status:     normalStatus,
		loadGen:    1,
		fetchCount: client.DefaultFetchCount,
	}
}

// Init kicks off the initial fan-out fetch.
func (m Model) Init() tea.Cmd {
	return m.loadOrders()
}

func (m *Model) loadOrders() tea.Cmd {
	gen := m.loadGen
	count := m.fetchCount
	backend := m.backend
	cache := m.cache
	ctx := m.ctx
	return func() tea.Msg {
		orders, err := backend.FetchOrders(ctx, count)
		if err != nil {
			return loadFailedMsg{gen: gen, err: err}
		}
		if cache != nil {
			_ = cache.Put(orders)
		}
		return ordersLoadedMsg{gen: gen, orders: orders}
	}
}

func (m *Model) reload() tea.Cmd {
	m.loadGen++
	m.grid.BeginLoad()
	m.status = "Loading..."
	return m.loadOrders()
}

// messages
type errMsg struct{ err error }
type ordersLoadedMsg struct {
	gen    int
	orders []*order.Order
}
type loadFailedMsg struct {
	gen int
	err error
}
type orderDeletedMsg struct{ id int }
type deleteFailedMsg struct{ err error }
type bulkDeletedMsg struct{ ids []int }
type bulkFailedMsg struct{ err error }

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case ordersLoadedMsg:
		if msg.gen != m.loadGen {
			break
		}
		m.grid.SetOrders(msg.orders)
		m.cursor = 0
		m.status = fmt.Sprintf("Loaded %d orders", len(msg.orders))

	case loadFailedMsg:
		if msg.gen != m.loadGen {
			break
		}
		m.grid.FailLoad()
		m.status = "ERR: " + msg.err.Error()

	case errMsg:
		m.status = "ERR: " + msg.err.Error()

	case orderDeletedMsg:
		m.grid.RemoveOrder(msg.id)
		m.grid.CloseDeletePrompt()
		m.mode = modeNormal
		m.clampCursor()
		m.status = fmt.Sprintf("Deleted order %d", msg.id)

	case deleteFailedMsg:
		// The confirmation closes on failure too; the snapshot is left
		// untouched.
		m.grid.CloseDeletePrompt()
		m.mode = modeNormal
		m.status = "ERR: " + msg.err.Error()

	case bulkDeletedMsg:
		m.grid.RemoveSelected()
		m.clampCursor()
		m.status = fmt.Sprintf("Deleted %d orders", len(msg.ids))

	case bulkFailedMsg:
		// All-or-nothing from the client's perspective: nothing is removed
		// locally and the selection survives, though deletes that already
		// landed on the backend stay deleted there.
		m.status = "ERR: " + msg.err.Error()

	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
				m.status = normalStatus
			}

		case modeDetail:
			switch msg.String() {
			case "esc", "q", "enter":
				m.grid.CloseDetail()
				m.mode = modeNormal
				m.status = normalStatus
			}

		case modeConfirmDelete:
			switch msg.String() {
			case "y", "enter":
				if o := m.grid.PendingDelete(); o != nil {
					m.status = fmt.Sprintf("Deleting order %d...", o.ID)
					cmds = append(cmds, m.deleteOrder(o.ID))
				}
			case "n", "esc", "q":
				m.grid.CloseDeletePrompt()
				m.mode = modeNormal
				m.status = "Delete cancelled"
			}

		case modeSearch:
			switch msg.String() {
			case "enter", "esc":
				m.mode = modeNormal
				m.input.Blur()
				m.status = normalStatus
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
				m.grid.SetSearch(m.input.Value())
				m.clampCursor()
			}

		case modeNormal:
			switch msg.String() {
			case "/":
				m.mode = modeSearch
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
				m.status = "SEARCH: type to filter, enter/esc to stop"

			case "j", "down":
				if page := m.grid.Page(); m.cursor+1 < len(page) {
					m.cursor++
				}
			case "k", "up":
				if m.cursor > 0 {
					m.cursor--
				}
			case "h", "left":
				m.grid.PrevPage()
				m.cursor = 0
			case "l", "right":
				m.grid.NextPage()
				m.cursor = 0

			case " ", "space":
				if o := m.currentOrder(); o != nil {
					m.grid.ToggleSelection(o.ID)
				}

			case "enter", "v":
				if o := m.currentOrder(); o != nil {
					m.grid.OpenDetail(o)
					m.mode = modeDetail
					m.status = "Order detail (esc to close)"
				}

			case "e":
				// Editing is delegated to the external edit flow; the grid
				// never mutates orders itself.
				if o := m.currentOrder(); o != nil {
					m.status = fmt.Sprintf("Edit externally: ordo edit %d", o.ID)
				}

			case "d":
				if o := m.currentOrder(); o != nil {
					m.grid.OpenDeletePrompt(o)
					m.mode = modeConfirmDelete
					m.status = "Confirm delete (y/n)"
				}

			case "D":
				if m.grid.HasSelection() {
					ids := m.grid.SelectedIDs()
					m.status = fmt.Sprintf("Deleting %d orders...", len(ids))
					cmds = append(cmds, m.deleteSelected(ids))
				}

			case "r":
				cmds = append(cmds, m.reload())

			case "?":
				m.mode = modeHelp

			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) deleteOrder(id int) tea.Cmd {
	backend := m.backend
	ctx := m.ctx
	return func() tea.Msg {
		if err := backend.DeleteOrder(ctx, id); err != nil {
			return deleteFailedMsg{err: err}
		}
		return orderDeletedMsg{id: id}
	}
}

func (m *Model) deleteSelected(ids []int) tea.Cmd {
	backend := m.backend
	ctx := m.ctx
	return func() tea.Msg {
		if err := backend.DeleteOrders(ctx, ids); err != nil {
			return bulkFailedMsg{err: err}
		}
		return bulkDeletedMsg{ids: ids}
	}
}

func (m *Model) currentOrder() *order.Order {
	page := m.grid.Page()
	if m.cursor < 0 || m.cursor >= len(page) {
		return nil
	}
	return page[m.cursor]
}

func (m *Model) clampCursor() {
	page := m.grid.Page()
	if m.cursor >= len(page) {
		m.cursor = len(page) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the table plus whichever popup is active.
func (m Model) View() string {
	if m.grid.Loading() {
		return "Loading...\n"
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Orders"))
	b.WriteString("\n\n")
	b.WriteString("Search: " + m.input.View() + "\n\n")

	page := m.grid.Page()
	if len(page) == 0 {
		b.WriteString(faintStyle.Render("  no orders on this page") + "\n")
	} else {
		b.WriteString(faintStyle.Render(fmt.Sprintf("    %-3s %-10s %-14s %-14s %-22s %-4s",
			"", "NAME", "FROM", "TO", "ORDERED AT", "QTY")) + "\n")
		for i, o := range page {
			marker := "  "
			if i == m.cursor {
				marker = "» "
			}
			check := "[ ]"
			if m.grid.IsSelected(o.ID) {
				check = "[x]"
			}
			name, from, to, at, qty := o.Row()
			row := fmt.Sprintf("%s%s %-3d %-10s %-14s %-14s %-22s %-4s",
				marker, check, o.ID, name, from, to, at, qty)
			if i == m.cursor {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(m.footer()))

	body := b.String()

	if p := m.detailPopup(); p.Show {
		body += "\n\n" + p.View()
	}
	if p := m.deletePopup(); p.Show {
		body += "\n\n" + p.View()
	}
	if m.mode == modeHelp {
		help := "Keys: j/k move, h/l or ←/→ page, / search, space select, enter/v view, e edit hint, d delete, D delete selected, r reload, q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	return body + "\n\n" + faintStyle.Render(m.status)
}

func (m Model) footer() string {
	total := m.grid.TotalPages()
	parts := []string{fmt.Sprintf("Page %d of %d", m.grid.CurrentPage(), total)}
	if n := len(m.grid.SelectedIDs()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected (D to delete)", n))
	}
	if q := m.grid.Search(); q != "" {
		n := len(m.grid.Filtered())
		word := "matches"
		if n == 1 {
			word = "match"
		}
		parts = append(parts, fmt.Sprintf("filter: %q (%d %s)", q, n, word))
	}
	return strings.Join(parts, " • ")
}

func (m Model) detailPopup() popup.Model {
	o := m.grid.PendingView()
	if o == nil {
		return popup.Model{}
	}
	lines := []string{
		"Order ID:    " + strconv.Itoa(o.ID),
		"Description: " + o.DescriptionOrNA(),
		"From:        " + o.From,
		"To:          " + o.To,
		"Ordered At:  " + o.OrderedAt.Display(),
		"Quantity:    " + strconv.Itoa(o.Quantity),
	}
	return popup.Model{
		Show:    true,
		Message: "Order Detail",
		Content: strings.Join(lines, "\n"),
	}
}

func (m Model) deletePopup() popup.Model {
	o := m.grid.PendingDelete()
	if o == nil {
		return popup.Model{}
	}
	return popup.Model{
		Show:    true,
		Message: "Confirmation",
		Content: fmt.Sprintf("Are you sure you want to delete %s?\n\ny: yes, delete    n: cancel", o.Name),
	}
}

// Run starts the grid UI.
func Run(backend client.Backend, cache store.Snapshot) error {
	p := tea.NewProgram(New(backend, cache), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
