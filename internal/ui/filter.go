package ui

import (
	"strings"

	"github.com/olivier-w/folio/internal/catalog"
	"github.com/sahilm/fuzzy"
)

// filterItems keeps the items fuzzily matching query, in their given order.
// Items filtered out are not mounted, so they have no measured slot.
func filterItems(items []catalog.Item, query string) []catalog.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	targets := make([]string, len(items))
	for i, it := range items {
		targets[i] = strings.Join(append([]string{it.Title, it.Ecosystem, it.Role}, it.Tags...), " ")
	}
	keep := make([]bool, len(items))
	for _, m := range fuzzy.Find(query, targets) {
		keep[m.Index] = true
	}
	out := make([]catalog.Item, 0, len(items))
	for i, it := range items {
		if keep[i] {
			out = append(out, it)
		}
	}
	return out
}
