package ui

import (
	"fmt"
	"math"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/folio/internal/candle"
	"github.com/olivier-w/folio/internal/catalog"
)

var candleBlocks = []string{" ", "▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

func renderProgressBar(ratio float64, width int) string {
	if width < 10 {
		width = 10
	}
	barWidth := width - 2

	if ratio < 0 || math.IsNaN(ratio) {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(barWidth))
	return strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)
}

// panStrip scrolls the hero image name across width cells; pan is the
// image position in percent, 30 to 70.
func panStrip(hero string, width int, pan float64) string {
	if width <= 0 {
		return ""
	}
	name := strings.TrimSuffix(path.Base(hero), path.Ext(hero))
	if name == "" || name == "." || name == "/" {
		name = "img"
	}
	pattern := []rune(strings.Repeat(name+" · ", width/len([]rune(name+" · "))+3))
	shift := int(math.Round((pan - 30) / 40 * float64(len(pattern)-width)))
	shift = max(0, min(len(pattern)-width, shift))
	return string(pattern[shift : shift+width])
}

func renderCard(it catalog.Item, width, height int, focused bool, pan float64) string {
	inner := width - 2
	rows := height - 2
	lines := []string{
		titleStyle.Render(ansi.Truncate(it.Title, inner, "…")),
		panStyle.Render(panStrip(it.HeroImage, inner, pan)),
		metaStyle.Render(ansi.Truncate(it.Role, inner, "…")),
		metaStyle.Render(ansi.Truncate(it.Ecosystem, inner, "…")),
		metaStyle.Render(it.Date.Format("Jan 2006")),
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}
	style := cardStyle
	if focused {
		style = cardFocusStyle
	}
	return style.Width(inner).Height(rows).Render(strings.Join(lines, "\n"))
}

// renderCandles draws the indicator bars; the candle at index focus is
// underlined.
func renderCandles(cs []candle.Candle, l layout, maxMagnitude float64, focus int) []string {
	rows := make([]string, candleRows)
	n := len(cs)
	if n == 0 || maxMagnitude <= 0 {
		return rows
	}
	col := l.candleColumn(n)
	bar := max(1, col-1)
	for r := range rows {
		var sb strings.Builder
		sb.WriteString(spaces(sidePad))
		level := float64(candleRows - 1 - r)
		for _, c := range cs {
			h := c.Magnitude / maxMagnitude * candleRows
			fill := h - level
			idx := int(math.Round(fill * 8))
			idx = max(0, min(8, idx))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Paint.Hex())).Underline(c.Index == focus)
			sb.WriteString(style.Render(strings.Repeat(candleBlocks[idx], bar)))
			sb.WriteString(spaces(col - bar))
		}
		rows[r] = sb.String()
	}
	return rows
}

func renderDetail(it catalog.Item, width, height int, opacity float64, bg colorful.Color) string {
	inner := width - 4
	rows := height - 2
	if inner < 1 || rows < 1 {
		return ""
	}
	accent, _ := colorful.Hex(accentHex)
	text, _ := colorful.Hex("#EEEEEE")
	fg := lipgloss.Color(fade(bg, text, opacity))
	border := lipgloss.Color(fade(bg, accent, opacity))

	body := []string{
		lipgloss.NewStyle().Bold(true).Foreground(fg).Render(it.Title),
		"",
		fmt.Sprintf("%s · %s · %s", it.Role, it.Ecosystem, it.Date.Format("2 Jan 2006")),
	}
	if len(it.Tags) > 0 {
		body = append(body, "#"+strings.Join(it.Tags, " #"))
	}
	body = append(body, "", it.Description, "")
	for _, img := range it.Gallery {
		body = append(body, "▣ "+img)
	}
	if it.Website != "" {
		body = append(body, "↗ "+it.Website)
	}
	if it.Source != "" {
		body = append(body, "⌥ "+it.Source)
	}

	var lines []string
	for _, b := range body {
		wrapped := strings.Split(ansi.Wordwrap(b, inner, ""), "\n")
		for _, w := range wrapped {
			lines = append(lines, ansi.Truncate(w, inner, "…"))
		}
	}
	if len(lines) > rows {
		lines = lines[:rows]
	}

	return detailStyle.
		BorderForeground(border).
		Foreground(fg).
		Width(width - 2).
		Height(rows).
		Render(strings.Join(lines, "\n"))
}

// fade blends c over bg by opacity and returns a hex colour.
func fade(bg, c colorful.Color, opacity float64) string {
	return bg.BlendRgb(c, math.Max(0, math.Min(1, opacity))).Clamped().Hex()
}

// composite paints block over base with its top-left corner at (x, y).
// Parts of block outside the screen are cut.
func composite(base []string, block string, x, y, width int) []string {
	out := make([]string, len(base))
	copy(out, base)
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}
		lw := ansi.StringWidth(line)
		left, right := max(0, -x), min(lw, width-x)
		if right <= left {
			continue
		}
		start := max(0, x)
		under := out[row]
		if pad := start - ansi.StringWidth(under); pad > 0 {
			under += spaces(pad)
		}
		out[row] = ansi.Cut(under, 0, start) + ansi.Cut(line, left, right) + ansi.Cut(under, start+right-left, width)
	}
	return out
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
