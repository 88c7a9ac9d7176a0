package report

import (
	"bytes"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		want    string
	}{
		{0, 4, "    "},
		{50, 4, "==  "},
		{100, 4, "===="},
		{25, 4, "=   "},
		{33.333, 10, "===       "},
		{66.667, 10, "=======   "},
		{12.5, 4, "    "}, // 0.5 cells rounds to even
		{37.5, 4, "==  "}, // 1.5 cells rounds to even
		{50, 0, ""},
	}
	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.percent, 'f', -1, 64)+"/"+strconv.Itoa(tt.width), func(t *testing.T) {
			got, err := Bar(tt.percent, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBarLengthAndFill(t *testing.T) {
	for w := 0; w <= 40; w++ {
		for p := 0.0; p <= 100; p += 0.7 {
			got, err := Bar(p, w)
			require.NoError(t, err)
			require.Len(t, got, w)

			filled := int(math.RoundToEven(p / 100 * float64(w)))
			assert.Equal(t, strings.Repeat("=", filled)+strings.Repeat(" ", w-filled), got, "p=%v w=%d", p, w)
		}
	}
}

func TestBarOutOfRange(t *testing.T) {
	for _, p := range []float64{-0.001, -50, 100.0001, 250, math.NaN(), math.Inf(1)} {
		_, err := Bar(p, 10)
		assert.ErrorIs(t, err, ErrPercentRange, "percent %v", p)
	}
}

func TestBarNegativeWidth(t *testing.T) {
	_, err := Bar(50, -1)
	assert.ErrorIs(t, err, ErrWidth)
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0 B"},
		{1, "1.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 K"},
		{1536, "1.5 K"},
		{1024*1024 - 1, "1.0 M"},
		{1024 * 1024, "1.0 M"},
		{5 * 1024 * 1024 * 1024, "5.0 G"},
		{1 << 40, "1.0 T"},
		{1 << 50, "1.0 P"},
		{1 << 60, "1024.0 P"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanSize(tt.bytes))
		})
	}
}

func TestHumanSizeBelow1024UnlessPetabytes(t *testing.T) {
	for b := int64(0); b < math.MaxInt64/3; b = b*3 + 7 {
		got := HumanSize(b)
		num, unit, ok := strings.Cut(got, " ")
		require.True(t, ok, got)
		require.Contains(t, []string{"B", "K", "M", "G", "T", "P"}, unit)

		v, err := strconv.ParseFloat(num, 64)
		require.NoError(t, err)
		if unit != "P" {
			assert.Less(t, v, 1024.0, "bytes %d rendered as %s", b, got)
		}
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "300 B", FormatSize(300, false))
	assert.Equal(t, "2048 B", FormatSize(2048, false))
	assert.Equal(t, "2.0 K", FormatSize(2048, true))
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled("always", &buf))
	assert.False(t, ColorEnabled("never", &buf))
	assert.False(t, ColorEnabled("auto", &buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ColorEnabled("auto", f))
}
