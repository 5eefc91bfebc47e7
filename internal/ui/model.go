package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/folio/internal/catalog"
	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/frame"
	"github.com/olivier-w/folio/internal/morph"
	"github.com/olivier-w/folio/internal/showcase"
	"go.uber.org/zap"
)

// Model is the Bubbletea model for the folio showcase.
type Model struct {
	sc     *showcase.Showcase
	keys   keyMap
	help   help.Model
	search textinput.Model
	log    *zap.Logger

	interval     time.Duration
	debounce     time.Duration
	nudge        float64
	slotWidth    int
	maxMagnitude float64
	background   colorful.Color

	width     int
	height    int
	layout    layout
	sized     bool
	ticking   bool
	searching bool
	query     string
	quitting  bool

	dragging bool
	pressX   int
	lastX    int
	moved    bool
}

// New creates a Model over an already configured showcase.
func New(sc *showcase.Showcase, cfg *config.Config, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	bg, err := colorful.Hex(cfg.Candle.Background)
	if err != nil {
		bg = colorful.Color{}
	}
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "title, tag, role..."
	ti.CharLimit = 64
	ti.Width = 30

	h := help.New()
	h.Styles.ShortKey = statusStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.ShortSeparator = helpStyle

	return Model{
		sc:           sc,
		keys:         defaultKeyMap(),
		help:         h,
		search:       ti,
		log:          log,
		interval:     frame.Interval(cfg.UI.FPS),
		debounce:     cfg.UI.ResizeDebounce,
		nudge:        cfg.UI.NudgeStep,
		slotWidth:    cfg.UI.SlotWidth,
		maxMagnitude: cfg.Candle.Base + cfg.Candle.MaxScale*cfg.Candle.MaxScale,
		background:   bg,
		layout:       newLayout(80, 24, cfg.UI.SlotWidth),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("folio")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = newLayout(msg.Width, msg.Height, m.slotWidth)
		m.help.Width = msg.Width
		if !m.sized {
			m.sized = true
			m.sc.SetBounds(m.contentWidth(), float64(msg.Width))
			m.measure()
			return m, nil
		}
		m.measure()
		seq := m.sc.Resize(float64(msg.Width), time.Now())
		return m, resizeDebounceCmd(seq, m.debounce)

	case resizeDebounceMsg:
		if m.sc.ResizeSettled(msg.seq, time.Now(), m.contentWidth()) {
			m.measure()
			return m.withTicking()
		}
		return m, nil

	case frameMsg:
		m.sc.Tick(time.Time(msg))
		m.measure()
		if m.sc.Animating() {
			return m, frameCmd(m.interval)
		}
		m.ticking = false
		m.sc.Pause()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Close):
		if m.sc.Escape() {
			return m.withTicking()
		}
		if m.query != "" {
			m.setQuery("")
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.sc.Nudge(m.nudge)
	case key.Matches(msg, m.keys.Right):
		m.sc.Nudge(-m.nudge)

	case key.Matches(msg, m.keys.Select):
		if !m.sc.Interactive() {
			m.sc.RequestClose()
			break
		}
		items := m.visibleItems()
		if i := m.layout.focusIndex(len(items), m.sc.Offset()); i >= 0 {
			m.selectItem(items[i].ID)
		}

	case key.Matches(msg, m.keys.Search):
		if m.sc.Interactive() {
			m.searching = true
			m.search.SetValue(m.query)
			cmd := m.search.Focus()
			return m, cmd
		}

	case key.Matches(msg, m.keys.CycleSort):
		next := catalog.ByDate
		if c, ok := m.sc.SortedBy(); ok {
			next = catalog.Criteria[(int(c)+1)%len(catalog.Criteria)]
		}
		m.sortBy(next)
	case key.Matches(msg, m.keys.SortDate):
		m.sortBy(catalog.ByDate)
	case key.Matches(msg, m.keys.SortEco):
		m.sortBy(catalog.ByEcosystem)
	case key.Matches(msg, m.keys.SortRole):
		m.sortBy(catalog.ByRole)
	case key.Matches(msg, m.keys.SortRandom):
		m.sortBy(catalog.ByRandom)
	}
	return m.withTicking()
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		if msg.String() == "esc" {
			m.setQuery("")
		}
		return m.withTicking()
	case "ctrl+c":
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.query {
		m.setQuery(m.search.Value())
	}
	m, tick := m.withTicking()
	return m, tea.Batch(cmd, tick)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if !m.sc.Interactive() {
				m.sc.RequestClose()
				return m.withTicking()
			}
			m.dragging = true
			m.moved = false
			m.pressX, m.lastX = msg.X, msg.X
			m.sc.DragStart()
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.sc.Nudge(m.nudge / 2)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.sc.Nudge(-m.nudge / 2)
		}

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		m.sc.DragMove(float64(msg.X - m.lastX))
		m.lastX = msg.X
		if abs(msg.X-m.pressX) > 1 {
			m.moved = true
		}

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		m.sc.DragEnd()
		if !m.moved {
			m.click(msg.X, msg.Y)
		}
	}
	return m.withTicking()
}

// click selects the slot or candle under (x, y).
func (m *Model) click(x, y int) {
	reg := m.sc.Registry()
	for _, it := range m.visibleItems() {
		if r, ok := reg.Lookup(it.ID); ok && contains(r, x, y) {
			m.selectItem(it.ID)
			return
		}
	}
	if i, ok := m.layout.candleAt(m.sc.Catalog().Len(), x, y); ok {
		m.sc.RequestJump(i)
	}
}

func (m *Model) selectItem(id string) {
	if err := m.sc.RequestSelect(id); err != nil && !errors.Is(err, morph.ErrTransitionBusy) {
		m.log.Warn("select failed", zap.String("id", id), zap.Error(err))
	}
}

func (m *Model) sortBy(c catalog.Criterion) {
	if !m.sc.Interactive() {
		return
	}
	if err := m.sc.RequestSort(c); err != nil {
		return
	}
	m.measure()
}

func (m *Model) setQuery(q string) {
	m.query = q
	if m.sized {
		m.sc.SetBounds(m.contentWidth(), float64(m.width))
	}
	m.measure()
}

func (m Model) withTicking() (Model, tea.Cmd) {
	cmd := m.ensureTicking()
	return m, cmd
}

// ensureTicking starts the frame loop if something needs animating and no
// frame is already scheduled.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.sc.Animating() {
		return nil
	}
	m.ticking = true
	return frameCmd(m.interval)
}

// measure records where every mounted slot is on screen. Slots scrolled out
// of view or filtered out by the search are forgotten.
func (m *Model) measure() {
	reg := m.sc.Registry()
	reg.SetTarget(m.layout.target())
	offset := m.sc.Offset()
	mounted := make(map[string]bool)
	for i, it := range m.visibleItems() {
		if m.layout.visible(i, offset) {
			reg.Measure(it.ID, m.layout.slotRect(i, offset))
			mounted[it.ID] = true
		}
	}
	for _, it := range m.sc.Catalog().Items() {
		if !mounted[it.ID] {
			reg.Forget(it.ID)
		}
	}
}

// focusedCandle returns the catalog index of the slot under the middle of
// the viewport, or -1 when nothing is mounted.
func (m Model) focusedCandle() int {
	items := m.visibleItems()
	i := m.layout.focusIndex(len(items), m.sc.Offset())
	if i < 0 {
		return -1
	}
	return m.sc.Catalog().Index(items[i].ID)
}

// contentWidth is the carousel width for the items currently mounted.
func (m Model) contentWidth() float64 {
	return float64(m.layout.contentWidth(len(m.visibleItems())))
}

func (m Model) visibleItems() []catalog.Item {
	return filterItems(m.sc.Order(), m.query)
}

func (m Model) View() string {
	if m.quitting || !m.sized {
		return ""
	}
	l := m.layout

	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderHeader())
	rows = append(rows, m.renderSortPanel())
	rows = append(rows, "")
	rows = append(rows, m.renderCarousel()...)
	rows = append(rows, "")
	rows = append(rows, renderCandles(m.sc.Candles(), l, m.maxMagnitude, m.focusedCandle())...)

	if m.sc.State() != morph.Idle {
		rows = m.renderOverlay(rows)
	}

	for len(rows) < m.height-footerRows {
		rows = append(rows, "")
	}
	rows = append(rows, "")
	if m.searching {
		rows = append(rows, "  "+m.search.View())
	} else {
		rows = append(rows, "  "+m.help.View(m.keys))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHeader() string {
	label := fmt.Sprintf("%3.0f%%", m.sc.Progress()*100)
	barWidth := m.width - len("folio") - len(label) - 8
	bar := statusStyle.Render(renderProgressBar(m.sc.Progress(), barWidth))
	return "  " + headerStyle.Render("folio") + "  " + bar + " " + statusStyle.Render(label)
}

func (m Model) renderSortPanel() string {
	if m.sc.SortPanelHidden() {
		return ""
	}
	active, sorted := m.sc.SortedBy()
	parts := make([]string, 0, len(catalog.Criteria)+2)
	parts = append(parts, sortStyle.Render("sort"))
	for _, c := range catalog.Criteria {
		if sorted && c == active {
			parts = append(parts, sortActiveStyle.Render(c.String()))
			continue
		}
		parts = append(parts, sortStyle.Render(c.String()))
	}
	if m.query != "" {
		parts = append(parts, metaStyle.Render("/"+m.query))
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderCarousel() []string {
	l := m.layout
	rows := make([]string, l.cardHeight)
	items := m.visibleItems()
	offset := m.sc.Offset()
	focus := l.focusIndex(len(items), offset)
	pan := m.sc.Pan()

	cursor := 0
	for i, it := range items {
		if !l.visible(i, offset) {
			continue
		}
		x := l.slotX(i, offset)
		cutL, cutR := max(0, -x), min(l.cardWidth, l.width-x)
		start := max(0, x)
		card := strings.Split(renderCard(it, l.cardWidth, l.cardHeight, m.sc.Interactive() && i == focus, pan), "\n")
		for r := range rows {
			line := ""
			if r < len(card) {
				line = ansi.Cut(card[r], cutL, cutR)
			}
			rows[r] += spaces(start-cursor) + line
		}
		cursor = start + cutR - cutL
	}
	return rows
}

func (m Model) renderOverlay(rows []string) []string {
	it, ok := m.sc.Selection()
	if !ok {
		return rows
	}
	rect, opacity := m.sc.Overlay()
	w, h := int(math.Round(rect.Width)), int(math.Round(rect.Height))
	if w < 6 || h < 3 || opacity < 0.02 {
		return rows
	}
	for len(rows) < m.layout.bodyRows() {
		rows = append(rows, "")
	}
	block := renderDetail(it, w, h, opacity, m.background)
	return composite(rows, block, int(math.Round(rect.X)), int(math.Round(rect.Y)), m.width)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
