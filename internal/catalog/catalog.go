// Package catalog holds the read-only project catalog shown by the showcase.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyID is returned for an item without an id.
	ErrEmptyID = errors.New("item has no id")

	// ErrDuplicateID is returned when two items share an id.
	ErrDuplicateID = errors.New("duplicate item id")

	// ErrNoDate is returned for an item without a date.
	ErrNoDate = errors.New("item has no date")

	// ErrEmpty is returned for a catalog with no items.
	ErrEmpty = errors.New("catalog is empty")
)

//go:embed default.yaml
var defaultCatalog []byte

// Item is a single project. Items are created once at load and never mutated.
type Item struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	HeroImage   string    `yaml:"hero_image"`
	Gallery     []string  `yaml:"gallery"`
	Description string    `yaml:"description"`
	Tags        []string  `yaml:"tags"`
	Role        string    `yaml:"role"`
	Ecosystem   string    `yaml:"ecosystem"`
	Website     string    `yaml:"website,omitempty"`
	Source      string    `yaml:"source,omitempty"`
	Date        time.Time `yaml:"date"`
}

// Catalog is an ordered, immutable list of items with lookup by id.
type Catalog struct {
	items []Item
	index map[string]int
}

type document struct {
	Projects []Item `yaml:"projects"`
}

// New validates items and builds a catalog. The slice is copied.
func New(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, it := range items {
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrEmptyID)
		}
		if _, dup := c.index[it.ID]; dup {
			return nil, fmt.Errorf("item %q: %w", it.ID, ErrDuplicateID)
		}
		if it.Date.IsZero() {
			return nil, fmt.Errorf("item %q: %w", it.ID, ErrNoDate)
		}
		if it.Title == "" {
			it.Title = it.ID
		}
		c.index[it.ID] = i
		c.items[i] = it
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Projects)
}

// Load reads a catalog file. An empty path returns the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Items returns a copy of the items in load order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item returns the item with the given id.
func (c *Catalog) Item(id string) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Index returns the load-order position of id, or -1.
func (c *Catalog) Index(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

// Has reports whether id names an item.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}
