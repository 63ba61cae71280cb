// Package cli implements the interactive menu session for stockroom.
// The session reads one line of operator input at a time, dispatches to the
// Store, and prints results. Recoverable errors re-prompt; "0" or end of
// input terminates the session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adiprasetio/stockroom/internal/export"
	"github.com/adiprasetio/stockroom/internal/ui"
	"github.com/adiprasetio/stockroom/pkg/types"
)

// DefaultExportPath is used when the operator does not name an export file.
const DefaultExportPath = "inventory.csv"

// Session drives the numbered menu over an injected reader and writer.
type Session struct {
	store      types.Store
	in         *bufio.Scanner
	out        io.Writer
	exportPath string
}

// NewSession creates a menu session. exportPath is the default CSV target;
// empty means DefaultExportPath.
func NewSession(store types.Store, in io.Reader, out io.Writer, exportPath string) *Session {
	if exportPath == "" {
		exportPath = DefaultExportPath
	}
	return &Session{
		store:      store,
		in:         bufio.NewScanner(in),
		out:        out,
		exportPath: exportPath,
	}
}

// Run loops over the menu until the operator chooses exit or input ends.
func (s *Session) Run() error {
	for {
		s.printMenu()
		choice, ok := s.prompt("Choose (0-8): ")
		if !ok {
			return nil
		}

		switch choice {
		case "0":
			fmt.Fprintln(s.out, "Bye.")
			return nil
		case "1":
			s.doAdd()
		case "2":
			s.doList()
		case "3":
			s.doEdit()
		case "4":
			s.doDelete()
		case "5":
			s.doSearch()
		case "6":
			s.doStock()
		case "7":
			s.doExport()
		case "8":
			s.doReport()
		default:
			s.fail("unknown choice %q", choice)
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.Title("STOCKROOM"))
	fmt.Fprintln(s.out, "1. Add item")
	fmt.Fprintln(s.out, "2. List items")
	fmt.Fprintln(s.out, "3. Edit item")
	fmt.Fprintln(s.out, "4. Delete item")
	fmt.Fprintln(s.out, "5. Search items")
	fmt.Fprintln(s.out, "6. Update stock")
	fmt.Fprintln(s.out, "7. Export to CSV")
	fmt.Fprintln(s.out, "8. Report")
	fmt.Fprintln(s.out, "0. Exit")
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (s *Session) prompt(label string) (line string, ok bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) ok(format string, args ...any) {
	fmt.Fprintln(s.out, ui.Ok(fmt.Sprintf(format, args...)))
}

func (s *Session) fail(format string, args ...any) {
	fmt.Fprintln(s.out, ui.Fail(fmt.Sprintf(format, args...)))
}

func (s *Session) doAdd() {
	name, ok := s.prompt("Item name: ")
	if !ok {
		return
	}
	if name == "" {
		s.fail("item name must not be empty")
		return
	}

	stockStr, ok := s.prompt("Stock: ")
	if !ok {
		return
	}
	stock, err := strconv.ParseInt(stockStr, 10, 64)
	if err != nil {
		s.fail("not a number: %s", stockStr)
		return
	}

	priceStr, ok := s.prompt("Unit price: ")
	if !ok {
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		s.fail("not a number: %s", priceStr)
		return
	}

	item, err := s.store.Add(name, stock, price)
	if errors.Is(err, types.ErrDuplicateName) {
		s.addToExisting(name, stock)
		return
	}
	if err != nil {
		s.fail("add: %s", err)
		return
	}
	s.ok("added %q with id %s", item.Name, item.ID)
}

// addToExisting offers to merge the new stock into the item that already
// carries the name.
func (s *Session) addToExisting(name string, stock int64) {
	existing, err := s.store.Get(name)
	if err != nil {
		s.fail("add: %s", err)
		return
	}

	answer, ok := s.prompt(fmt.Sprintf("%q already exists (stock %d). Add to its stock? (y/n): ", existing.Name, existing.Stock))
	if !ok || !strings.EqualFold(answer, "y") {
		s.fail("add cancelled")
		return
	}

	updated, err := s.store.AdjustStock(existing.Name, existing.Stock+stock)
	if err != nil {
		s.fail("update stock: %s", err)
		return
	}
	s.ok("stock of %q is now %d", updated.Name, updated.Stock)
}

func (s *Session) doList() {
	items, err := s.store.List()
	if err != nil {
		s.fail("list: %s", err)
		return
	}
	fmt.Fprintln(s.out, ui.ItemTable(items))
}

func (s *Session) doEdit() {
	name, ok := s.prompt("Item to edit: ")
	if !ok {
		return
	}

	item, err := s.store.Get(name)
	if errors.Is(err, types.ErrNotFound) {
		s.fail("no item named %q", name)
		return
	}
	if err != nil {
		s.fail("edit: %s", err)
		return
	}
	fmt.Fprintln(s.out, ui.ItemDetail(item))

	// Empty input keeps the current value.
	var upd types.ItemUpdate
	if v, ok := s.prompt("New name (empty keeps current): "); !ok {
		return
	} else if v != "" {
		upd.Name = &v
	}
	if v, ok := s.prompt("New stock (empty keeps current): "); !ok {
		return
	} else if v != "" {
		stock, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.fail("not a number: %s", v)
			return
		}
		upd.Stock = &stock
	}
	if v, ok := s.prompt("New price (empty keeps current): "); !ok {
		return
	} else if v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.fail("not a number: %s", v)
			return
		}
		upd.Price = &price
	}

	if upd.Empty() {
		fmt.Fprintln(s.out, ui.Muted("nothing to change"))
		return
	}

	updated, err := s.store.Update(item.Name, upd)
	if err != nil {
		s.fail("edit: %s", err)
		return
	}
	s.ok("updated %q", updated.Name)
}

func (s *Session) doDelete() {
	name, ok := s.prompt("Item to delete: ")
	if !ok {
		return
	}

	item, err := s.store.Get(name)
	if errors.Is(err, types.ErrNotFound) {
		s.fail("no item named %q", name)
		return
	}
	if err != nil {
		s.fail("delete: %s", err)
		return
	}

	answer, ok := s.prompt(fmt.Sprintf("Delete %q (stock %d)? (y/n): ", item.Name, item.Stock))
	if !ok || !strings.EqualFold(answer, "y") {
		fmt.Fprintln(s.out, ui.Muted("delete cancelled"))
		return
	}

	if err := s.store.Delete(item.Name); err != nil {
		s.fail("delete: %s", err)
		return
	}
	s.ok("deleted %q", item.Name)
}

func (s *Session) doSearch() {
	keyword, ok := s.prompt("Search keyword: ")
	if !ok {
		return
	}

	items, err := s.store.Search(keyword)
	if err != nil {
		s.fail("search: %s", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, ui.Muted(fmt.Sprintf("no items match %q", keyword)))
		return
	}
	fmt.Fprintln(s.out, ui.ItemTable(items))
}

func (s *Session) doStock() {
	name, ok := s.prompt("Item name: ")
	if !ok {
		return
	}

	item, err := s.store.Get(name)
	if errors.Is(err, types.ErrNotFound) {
		s.fail("no item named %q", name)
		return
	}
	if err != nil {
		s.fail("update stock: %s", err)
		return
	}
	fmt.Fprintln(s.out, ui.Muted(fmt.Sprintf("current stock: %d", item.Stock)))

	mode, ok := s.prompt("1 set, 2 add, 3 subtract: ")
	if !ok {
		return
	}

	amountStr, ok := s.prompt("Amount: ")
	if !ok {
		return
	}
	amount, err := strconv.ParseInt(amountStr, 10, 64)
	if err != nil {
		s.fail("not a number: %s", amountStr)
		return
	}

	var stock int64
	switch mode {
	case "1":
		stock = amount
	case "2":
		stock = item.Stock + amount
	case "3":
		// Subtracting below zero empties the stock instead of failing.
		stock = item.Stock - amount
		if stock < 0 {
			stock = 0
		}
	default:
		s.fail("unknown choice %q", mode)
		return
	}

	updated, err := s.store.AdjustStock(item.Name, stock)
	if err != nil {
		s.fail("update stock: %s", err)
		return
	}
	if updated.Stock == 0 && mode == "3" {
		fmt.Fprintln(s.out, ui.Muted("stock is now empty"))
	}
	s.ok("stock of %q is now %d", updated.Name, updated.Stock)
}

func (s *Session) doExport() {
	path, ok := s.prompt(fmt.Sprintf("Export path (empty for %s): ", s.exportPath))
	if !ok {
		return
	}
	if path == "" {
		path = s.exportPath
	}

	items, err := s.store.List()
	if err != nil {
		s.fail("export: %s", err)
		return
	}
	if err := export.WriteCSVFile(path, items); err != nil {
		s.fail("export: %s", err)
		return
	}
	s.ok("exported %d items to %s", len(items), path)
}

func (s *Session) doReport() {
	report, err := s.store.Report()
	if err != nil {
		s.fail("report: %s", err)
		return
	}
	fmt.Fprintln(s.out, ui.ReportPanel(report))
}
