// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/gallery/pkg/types"
)

const (
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"

	descriptionWidth = 72
)

// Console writes to a terminal or any io.Writer. It is safe for use by the
// rotation timer and the interactive loop at the same time.
type Console struct {
	mu       sync.Mutex
	w        io.Writer
	colorize bool
	rendered bool
}

var _ Display = (*Console)(nil)

// NewConsole returns a console writing to w. ANSI colour is used only when
// w is a terminal.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, colorize: shouldColorize(w)}
}

// Render prints the caption line followed by an info table.
func (c *Console) Render(p types.Painting) {
	c.mu.Lock()
	defer c.mu.Unlock()

	caption := p.Caption()
	if c.colorize {
		caption = ansiBold + caption + ansiReset
	}
	fmt.Fprintf(c.w, "\n%s\n", caption)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendRows([]table.Row{
		{"Title", p.Title},
		{"Artist", p.Artist},
		{"Year", p.Year},
		{"Style", p.Style},
		{"Description", p.Description},
		{"Image", p.ImageURL},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: descriptionWidth},
	})
	fmt.Fprintln(c.w, tw.Render())
	c.rendered = true
}

// Rendered reports whether any painting has been shown yet.
func (c *Console) Rendered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rendered
}

// ReportProgress prints one line per fetched artwork.
func (c *Console) ReportProgress(current, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "fetching artwork %d of %d\n", current, total)
}

// Notify prints a notice; errors are prefixed and coloured on a terminal.
func (c *Console) Notify(msg string, sev Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sev == Error {
		line := "error: " + msg
		if c.colorize {
			line = ansiRed + line + ansiReset
		}
		fmt.Fprintln(c.w, line)
		return
	}
	fmt.Fprintln(c.w, msg)
}

// List prints the collection as a table in insertion order.
func (c *Console) List(paintings []types.Painting) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(paintings) == 0 {
		fmt.Fprintln(c.w, "The collection is empty.")
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Artist", "Year", "Source"})
	for i, p := range paintings {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), p.Title, p.Artist, p.Year, p.Source})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: 48},
	})
	fmt.Fprintln(c.w, tw.Render())
	fmt.Fprintf(c.w, "%d paintings\n", len(paintings))
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
