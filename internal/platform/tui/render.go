package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"raycaster/internal/graphics"
)

const halfBlock = "▀"

var overlayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0"))

// cellColors is the foreground (top pixel) and background (bottom pixel) of one cell.
type cellColors [2]uint32

// screenRenderer downsamples a framebuffer onto a grid of terminal cells.
type screenRenderer struct {
	styles map[cellColors]lipgloss.Style
}

func newScreenRenderer() *screenRenderer {
	return &screenRenderer{styles: make(map[cellColors]lipgloss.Style)}
}

func (r *screenRenderer) style(c cellColors) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(graphics.HexRGB(c[0]))).
		Background(lipgloss.Color(graphics.HexRGB(c[1])))
	r.styles[c] = s
	return s
}

// Render draws fb into cols x rows cells. Each cell covers two sampled pixel
// rows. Adjacent cells with the same colors share one styled run.
func (r *screenRenderer) Render(fb *graphics.Framebuffer, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	pixelRows := rows * 2
	var sb strings.Builder
	sb.Grow(cols*rows*len(halfBlock) + rows)

	cell := func(x, y int) cellColors {
		px := x * fb.Width / cols
		top := (2 * y) * fb.Height / pixelRows
		bottom := (2*y + 1) * fb.Height / pixelRows
		return cellColors{fb.At(px, top), fb.At(px, bottom)}
	}

	for y := range rows {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			start := cell(x, y)
			n := 0
			for x < cols && cell(x, y) == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

// renderOverlay styles the overlay lines, cut to the terminal width.
func renderOverlay(lines []string, cols int) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) > cols {
			line = line[:cols]
		}
		out[i] = overlayStyle.Render(line)
	}
	return strings.Join(out, "\n")
}
