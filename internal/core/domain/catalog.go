package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCatalogEmpty       = errors.New("catalog has no content units")
	ErrUnitNameEmpty      = errors.New("content unit name cannot be empty")
	ErrUnitSubUnitsNotPos = errors.New("content unit must have at least one sub-unit")
	ErrBlockUnitCount     = errors.New("free-text block must be a single sub-unit")
)

// ContentUnit is a named item with an ordinal sequence of sub-units,
// e.g. a book with chapters 1..SubUnitCount.
type ContentUnit struct {
	Name         string `json:"name"`
	SubUnitCount int    `json:"sub_unit_count"`
	// Block marks a free-text unit whose label is the name itself.
	Block bool `json:"block,omitempty"`
}

// Catalog is the ordered list of units distributed across a plan.
// Slice order is reading order.
type Catalog []ContentUnit

// CatalogFromBlocks builds a catalog where every free-text block is a single
// sub-unit. Used for the weekly-block plans that have no chapter structure.
func CatalogFromBlocks(blocks []string) Catalog {
	c := make(Catalog, 0, len(blocks))
	for _, b := range blocks {
		c = append(c, ContentUnit{Name: strings.TrimSpace(b), SubUnitCount: 1, Block: true})
	}
	return c
}

func (c Catalog) TotalSubUnits() int {
	total := 0
	for _, u := range c {
		if u.SubUnitCount > 0 {
			total += u.SubUnitCount
		}
	}
	return total
}

// SubUnits expands the catalog into its full ordered label sequence.
func (c Catalog) SubUnits() []string {
	labels := make([]string, 0, c.TotalSubUnits())
	for _, u := range c {
		for i := 1; i <= u.SubUnitCount; i++ {
			labels = append(labels, u.label(i))
		}
	}
	return labels
}

// Validate reports structural problems. The generator itself never calls it;
// it is meant for configuration checks at start-up and in tests.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrCatalogEmpty
	}
	for i, u := range c {
		if strings.TrimSpace(u.Name) == "" {
			return fmt.Errorf("unit %d: %w", i, ErrUnitNameEmpty)
		}
		if u.SubUnitCount < 1 {
			return fmt.Errorf("unit %q: %w", u.Name, ErrUnitSubUnitsNotPos)
		}
		if u.Block && u.SubUnitCount != 1 {
			return fmt.Errorf("unit %q: %w", u.Name, ErrBlockUnitCount)
		}
	}
	return nil
}

func (u ContentUnit) label(index int) string {
	if u.Block {
		return u.Name
	}
	return fmt.Sprintf("%s %d", u.Name, index)
}
