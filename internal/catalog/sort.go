package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// ErrUnknownCriterion is returned for sort keys the engine does not know.
var ErrUnknownCriterion = errors.New("unknown sort criterion")

// Criterion selects a catalog ordering.
type Criterion int

const (
	ByDate Criterion = iota
	ByEcosystem
	ByRole
	ByRandom
)

// Criteria lists every criterion in menu order.
var Criteria = []Criterion{ByDate, ByEcosystem, ByRole, ByRandom}

// String returns the name of the criterion.
func (c Criterion) String() string {
	switch c {
	case ByDate:
		return "date"
	case ByEcosystem:
		return "ecosystem"
	case ByRole:
		return "role"
	case ByRandom:
		return "random"
	default:
		return fmt.Sprintf("criterion(%d)", int(c))
	}
}

// Valid reports whether c is one of the known criteria.
func (c Criterion) Valid() bool {
	return c >= ByDate && c <= ByRandom
}

// ParseCriterion maps a sort key to a Criterion.
func ParseCriterion(name string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "date":
		return ByDate, nil
	case "ecosystem", "eco":
		return ByEcosystem, nil
	case "role":
		return ByRole, nil
	case "random", "shuffle":
		return ByRandom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
}

// Sort returns a reordered copy of items. items is never modified and the
// result is always a permutation of it. rng drives ByRandom and may be nil
// for the other criteria; a nil rng with ByRandom returns input order.
func Sort(items []Item, c Criterion, rng *rand.Rand) ([]Item, error) {
	out := slices.Clone(items)
	switch c {
	case ByDate:
		slices.SortStableFunc(out, newestFirst)
	case ByEcosystem:
		slices.SortStableFunc(out, func(a, b Item) int {
			if d := strings.Compare(a.Ecosystem, b.Ecosystem); d != 0 {
				return d
			}
			return newestFirst(a, b)
		})
	case ByRole:
		slices.SortStableFunc(out, func(a, b Item) int {
			if d := strings.Compare(b.Role, a.Role); d != 0 {
				return d
			}
			return newestFirst(a, b)
		})
	case ByRandom:
		if rng != nil {
			shuffle(out, rng)
		}
	default:
		return out, fmt.Errorf("%w: %v", ErrUnknownCriterion, c)
	}
	return out, nil
}

func newestFirst(a, b Item) int {
	return b.Date.Compare(a.Date)
}

// shuffle is a Fisher-Yates shuffle over rng.
func shuffle(items []Item, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
