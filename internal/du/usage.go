// Package du runs the external disk usage tool and turns its tabular output
// into an ordered path to size mapping.
package du

import (
	"strconv"
	"strings"
)

// Entry is a single line of du output.
type Entry struct {
	Path string
	Size int64
}

// Usage holds entries in the order du first reported each path.
type Usage struct {
	entries []Entry
	index   map[string]int
}

// Set records size for path. A repeated path keeps its original position
// and takes the newer size.
func (u *Usage) Set(path string, size int64) {
	if u.index == nil {
		u.index = make(map[string]int)
	}
	if i, ok := u.index[path]; ok {
		u.entries[i].Size = size
		return
	}
	u.index[path] = len(u.entries)
	u.entries = append(u.entries, Entry{Path: path, Size: size})
}

// Get returns the size recorded for path.
func (u Usage) Get(path string) (int64, bool) {
	i, ok := u.index[path]
	if !ok {
		return 0, false
	}
	return u.entries[i].Size, true
}

// Entries returns a copy of the entries in report order.
func (u Usage) Entries() []Entry {
	out := make([]Entry, len(u.entries))
	copy(out, u.entries)
	return out
}

func (u Usage) Len() int { return len(u.entries) }

// Sum adds up every recorded size.
func (u Usage) Sum() int64 {
	var total int64
	for _, e := range u.entries {
		total += e.Size
	}
	return total
}

// Total returns the size du reported for root itself, falling back to the
// sum of all entries when root is absent.
func (u Usage) Total(root string) int64 {
	if size, ok := u.Get(root); ok {
		return size
	}
	return u.Sum()
}

// ParseLines converts "<size>\t<path>" lines into a Usage. Lines that do not
// have exactly two tab-separated fields, or whose size is not an integer,
// are skipped; the number skipped is returned alongside.
func ParseLines(lines []string) (Usage, int) {
	var (
		u       Usage
		skipped int
	)
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			skipped++
			continue
		}
		size, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			skipped++
			continue
		}
		u.Set(fields[1], size)
	}
	return u, skipped
}
