package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/large-farva/duim/internal/du"
)

// ZeroTotalMessage is printed in place of a report when du sums to nothing.
const ZeroTotalMessage = "Total size is 0. Nothing to display."

// Renderer prints usage as one bar line per child directory followed by a
// total line.
type Renderer struct {
	Width         int
	HumanReadable bool
	Fill          string // defaults to "="
	Empty         string // defaults to " "
	Color         bool
}

// Render writes the report for root to w. Every entry except root itself is
// printed as
//
//	<percent>% [<bar>] <size> <path>
//
// in the order du reported it. A zero total prints ZeroTotalMessage and
// returns nil.
func (r Renderer) Render(w io.Writer, usage du.Usage, root string) error {
	total := usage.Total(root)
	if total == 0 {
		fmt.Fprintln(w, ZeroTotalMessage)
		return nil
	}

	for _, e := range usage.Entries() {
		if e.Path == root {
			continue
		}
		percent := float64(e.Size) / float64(total) * 100
		b, err := r.bar(percent)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Path, err)
		}
		fmt.Fprintf(w, "%4.0f%% [%s] %10s %s\n", percent, b, FormatSize(e.Size, r.HumanReadable), e.Path)
	}

	fmt.Fprintf(w, "\nTotal: %s   %s\n", FormatSize(total, r.HumanReadable), root)
	return nil
}

func (r Renderer) bar(percent float64) (string, error) {
	fill, empty := r.Fill, r.Empty
	if fill == "" {
		fill = DefaultFill
	}
	if empty == "" {
		empty = DefaultEmpty
	}
	if !r.Color {
		return bar(percent, r.Width, fill, empty)
	}
	filled, err := filledCells(percent, r.Width)
	if err != nil {
		return "", err
	}
	return green + strings.Repeat(fill, filled) + reset + strings.Repeat(empty, r.Width-filled), nil
}
