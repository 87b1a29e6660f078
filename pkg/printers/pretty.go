package printers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ordo/pkg/order"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("24  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" order")
	default:
		_, _ = c.Println(" orders")
	}
}

// Orders prints the order table the way the grid shows it.
func (pp *PrettyPrint) Orders(orders ...*order.Order) {
	if len(orders) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("NAME", "FROM", "TO", "ORDERED AT", "QTY")
	for _, o := range orders {
		name, from, to, at, qty := o.Row()
		if pp.ShowID {
			name = strconv.Itoa(o.ID) + "  " + name
		}
		tbl.AddRow(name, from, to, at, qty)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Detail prints the fields the detail popup renders.
func (pp *PrettyPrint) Detail(o *order.Order) {
	k := color.New(color.Faint)
	v := color.New()

	row := func(label, value string) {
		_, _ = k.Printf("%-12s", label)
		_, _ = v.Println(value)
	}

	row("Order ID:", strconv.Itoa(o.ID))
	row("Description:", o.DescriptionOrNA())
	row("From:", o.From)
	row("To:", o.To)
	row("Ordered At:", o.OrderedAt.Display())
	row("Quantity:", strconv.Itoa(o.Quantity))
	fmt.Println("")
}
