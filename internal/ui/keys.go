package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Close      key.Binding
	Search     key.Binding
	CycleSort  key.Binding
	SortDate   key.Binding
	SortEco    key.Binding
	SortRole   key.Binding
	SortRandom key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "scroll")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "scroll")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		CycleSort:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		SortDate:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "date")),
		SortEco:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "ecosystem")),
		SortRole:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "role")),
		SortRandom: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "random")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Close, k.Search, k.CycleSort, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Select, k.Close},
		{k.CycleSort, k.SortDate, k.SortEco, k.SortRole, k.SortRandom},
		{k.Search, k.Quit},
	}
}
