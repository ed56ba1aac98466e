package calendar

import (
	"strconv"
	"strings"
)

// Grid lays out month blocks side by side, Columns blocks per row
type Grid struct {
	Columns int
	// Gutter separates adjacent blocks within a row
	Gutter string
	// Banner, when set, is centered above the first row followed by a
	// blank line.
	Banner string
}

// Width returns the display width of a full row of blocks
func (g Grid) Width(n int) int {
	if n > g.Columns {
		n = g.Columns
	}
	if n < 1 {
		return 0
	}
	return n*MonthWidth + (n-1)*len(g.Gutter)
}

// Compose joins the blocks into text. There is no trailing newline.
func (g Grid) Compose(blocks []Block) string {
	columns := g.Columns
	if columns < 1 {
		columns = 1
	}
	var lines []string
	if g.Banner != "" {
		lines = append(lines, Center(g.Banner, g.Width(len(blocks))), "")
	}
	for i := 0; i < len(blocks); i += columns {
		end := i + columns
		if end > len(blocks) {
			end = len(blocks)
		}
		lines = append(lines, interleave(blocks[i:end], g.Gutter)...)
	}
	return strings.Join(lines, "\n")
}

// interleave zips the same line position across a row of blocks
func interleave(row []Block, gutter string) []string {
	lines := make([]string, BlockLines)
	parts := make([]string, len(row))
	for i := 0; i < BlockLines; i++ {
		for j := range row {
			parts[j] = row[j][i]
		}
		lines[i] = strings.Join(parts, gutter)
	}
	return lines
}

// yearBanner is the title printed above a whole-year grid
func yearBanner(year int) string {
	return strconv.Itoa(year)
}
