// Package report renders du usage as percentage lines with ASCII bar charts.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI escape codes for terminal formatting.
const (
	reset = "\033[0m"
	green = "\033[32m"
)

var (
	// ErrPercentRange is returned by Bar for a percentage outside [0, 100].
	ErrPercentRange = errors.New("percent must be between 0 and 100")
	// ErrWidth is returned by Bar for a negative width.
	ErrWidth = errors.New("bar width must be >= 0")
)

// Default bar characters.
const (
	DefaultFill  = "="
	DefaultEmpty = " "
)

// ColorEnabled reports whether w should receive ANSI colour for the given
// mode ("always", "never" or "auto"). In auto mode colour is used only when
// w is a terminal, so piped or redirected output stays plain.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Bar builds a bar of exactly width characters using the default fill and
// empty characters.
func Bar(percent float64, width int) (string, error) {
	return bar(percent, width, DefaultFill, DefaultEmpty)
}

// filledCells rounds half to even, so 2.5 cells become 2.
func filledCells(percent float64, width int) (int, error) {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return 0, fmt.Errorf("%w: got %v", ErrPercentRange, percent)
	}
	if width < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrWidth, width)
	}
	return int(math.RoundToEven(percent / 100 * float64(width))), nil
}

func bar(percent float64, width int, fill, empty string) (string, error) {
	filled, err := filledCells(percent, width)
	if err != nil {
		return "", err
	}
	return strings.Repeat(fill, filled) + strings.Repeat(empty, width-filled), nil
}

var sizeUnits = []string{"B", "K", "M", "G", "T"}

// HumanSize renders a byte count with one decimal place in the first unit
// where the value drops below 1024, e.g. "1.5 K". Anything past terabytes
// is reported in petabytes. A value that would round up to "1024.0" moves
// on to the next unit instead.
func HumanSize(bytes int64) string {
	n := float64(bytes)
	for _, unit := range sizeUnits {
		if math.Round(n*10)/10 < 1024 {
			return fmt.Sprintf("%.1f %s", n, unit)
		}
		n /= 1024
	}
	return fmt.Sprintf("%.1f P", n)
}

// FormatSize renders bytes either human-readable or as a raw "<n> B" count.
func FormatSize(bytes int64, human bool) string {
	if human {
		return HumanSize(bytes)
	}
	return fmt.Sprintf("%d B", bytes)
}
