package ui

import (
	"math"

	"github.com/olivier-w/folio/internal/morph"
)

const (
	sidePad       = 2
	headerRows    = 3
	candleRows    = 4
	footerRows    = 2
	minCardHeight = 6
)

// layout places the carousel slots, candles and detail target on screen,
// in terminal cells.
type layout struct {
	width      int
	height     int
	slotWidth  int
	cardWidth  int
	cardTop    int
	cardHeight int
	candleTop  int
}

func newLayout(width, height, slotWidth int) layout {
	l := layout{
		width:     width,
		height:    height,
		slotWidth: slotWidth,
		cardWidth: slotWidth - 2,
		cardTop:   headerRows,
	}
	l.cardHeight = height - headerRows - 1 - candleRows - footerRows
	if l.cardHeight < minCardHeight {
		l.cardHeight = minCardHeight
	}
	l.candleTop = l.cardTop + l.cardHeight + 1
	return l
}

func (l layout) bodyRows() int {
	return l.candleTop + candleRows
}

func (l layout) contentWidth(n int) int {
	return 2*sidePad + n*l.slotWidth
}

func (l layout) slotX(i int, offset float64) int {
	return sidePad + i*l.slotWidth + int(math.Round(offset))
}

func (l layout) slotRect(i int, offset float64) morph.Rect {
	return morph.Rect{
		X:      float64(l.slotX(i, offset)),
		Y:      float64(l.cardTop),
		Width:  float64(l.cardWidth),
		Height: float64(l.cardHeight),
	}
}

func (l layout) visible(i int, offset float64) bool {
	x := l.slotX(i, offset)
	return x+l.cardWidth > 0 && x < l.width
}

// target is the detail placeholder: the whole body below the header line.
func (l layout) target() morph.Rect {
	return morph.Rect{
		X:      1,
		Y:      1,
		Width:  float64(l.width - 2),
		Height: float64(l.bodyRows() - 1),
	}
}

// focusIndex is the slot under the middle of the viewport.
func (l layout) focusIndex(n int, offset float64) int {
	if n == 0 {
		return -1
	}
	center := float64(l.width)/2 - sidePad - offset
	i := int(math.Floor(center / float64(l.slotWidth)))
	return max(0, min(n-1, i))
}

func (l layout) candleColumn(n int) int {
	if n == 0 {
		return 0
	}
	return max(1, (l.width-2*sidePad)/n)
}

// candleAt maps a screen cell to a candle index.
func (l layout) candleAt(n, x, y int) (int, bool) {
	if y < l.candleTop || y >= l.candleTop+candleRows || n == 0 {
		return 0, false
	}
	i := (x - sidePad) / l.candleColumn(n)
	if x < sidePad || i >= n {
		return 0, false
	}
	return i, true
}

func contains(r morph.Rect, x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= r.X && fx < r.X+r.Width && fy >= r.Y && fy < r.Y+r.Height
}
