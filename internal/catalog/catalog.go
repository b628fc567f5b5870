// Package catalog holds the static content catalogs and plan constants the
// generator is configured with.
package catalog

import (
	"fmt"
	"strings"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

const (
	NameBible   = "bible"
	NameGospels = "gospels"

	DefaultYear             = 2026
	DefaultReservedLeadDays = 2
	DefaultQuotaTiers       = "4x100,3"
)

// bible lists the 66 books in canonical order, 1189 chapters in total.
var bible = domain.Catalog{
	{Name: "Gênesis", SubUnitCount: 50}, {Name: "Êxodo", SubUnitCount: 40}, {Name: "Levítico", SubUnitCount: 27},
	{Name: "Números", SubUnitCount: 36}, {Name: "Deuteronômio", SubUnitCount: 34}, {Name: "Josué", SubUnitCount: 24},
	{Name: "Juízes", SubUnitCount: 21}, {Name: "Rute", SubUnitCount: 4}, {Name: "1 Samuel", SubUnitCount: 31},
	{Name: "2 Samuel", SubUnitCount: 24}, {Name: "1 Reis", SubUnitCount: 22}, {Name: "2 Reis", SubUnitCount: 25},
	{Name: "1 Crônicas", SubUnitCount: 29}, {Name: "2 Crônicas", SubUnitCount: 36}, {Name: "Esdras", SubUnitCount: 10},
	{Name: "Neemias", SubUnitCount: 13}, {Name: "Ester", SubUnitCount: 10}, {Name: "Jó", SubUnitCount: 42},
	{Name: "Salmos", SubUnitCount: 150}, {Name: "Provérbios", SubUnitCount: 31}, {Name: "Eclesiastes", SubUnitCount: 12},
	{Name: "Cantares", SubUnitCount: 8}, {Name: "Isaías", SubUnitCount: 66}, {Name: "Jeremias", SubUnitCount: 52},
	{Name: "Lamentações", SubUnitCount: 5}, {Name: "Ezequiel", SubUnitCount: 48}, {Name: "Daniel", SubUnitCount: 12},
	{Name: "Oseias", SubUnitCount: 14}, {Name: "Joel", SubUnitCount: 3}, {Name: "Amós", SubUnitCount: 9},
	{Name: "Obadias", SubUnitCount: 1}, {Name: "Jonas", SubUnitCount: 4}, {Name: "Miqueias", SubUnitCount: 7},
	{Name: "Naum", SubUnitCount: 3}, {Name: "Habacuque", SubUnitCount: 3}, {Name: "Sofonias", SubUnitCount: 3},
	{Name: "Ageu", SubUnitCount: 2}, {Name: "Zacarias", SubUnitCount: 14}, {Name: "Malaquias", SubUnitCount: 4},
	{Name: "Mateus", SubUnitCount: 28}, {Name: "Marcos", SubUnitCount: 16}, {Name: "Lucas", SubUnitCount: 24},
	{Name: "João", SubUnitCount: 21}, {Name: "Atos", SubUnitCount: 28}, {Name: "Romanos", SubUnitCount: 16},
	{Name: "1 Coríntios", SubUnitCount: 16}, {Name: "2 Coríntios", SubUnitCount: 13}, {Name: "Gálatas", SubUnitCount: 6},
	{Name: "Efésios", SubUnitCount: 6}, {Name: "Filipenses", SubUnitCount: 4}, {Name: "Colossenses", SubUnitCount: 4},
	{Name: "1 Tessalonicenses", SubUnitCount: 5}, {Name: "2 Tessalonicenses", SubUnitCount: 3}, {Name: "1 Timóteo", SubUnitCount: 6},
	{Name: "2 Timóteo", SubUnitCount: 4}, {Name: "Tito", SubUnitCount: 3}, {Name: "Filemom", SubUnitCount: 1},
	{Name: "Hebreus", SubUnitCount: 13}, {Name: "Tiago", SubUnitCount: 5}, {Name: "1 Pedro", SubUnitCount: 5},
	{Name: "2 Pedro", SubUnitCount: 3}, {Name: "1 João", SubUnitCount: 5}, {Name: "2 João", SubUnitCount: 1},
	{Name: "3 João", SubUnitCount: 1}, {Name: "Judas", SubUnitCount: 1}, {Name: "Apocalipse", SubUnitCount: 22},
}

// Bible returns a copy of the Bible catalog.
func Bible() domain.Catalog {
	return append(domain.Catalog(nil), bible...)
}

// ByName resolves a configured catalog name.
func ByName(name string) (domain.Catalog, error) {
	switch normalize(name) {
	case NameBible:
		return Bible(), nil
	case NameGospels:
		return Gospels(), nil
	}
	return nil, fmt.Errorf("unknown catalog %q", name)
}

// Names lists the catalogs ByName understands.
func Names() []string {
	return []string{NameBible, NameGospels}
}

// Preset is the lead and quota a catalog is meant to be read with.
type Preset struct {
	ReservedLeadDays int
	QuotaTiers       string
}

// PresetFor returns the preset of a catalog. Unknown names get the Bible
// preset; ByName reports them.
func PresetFor(name string) Preset {
	if normalize(name) == NameGospels {
		return Preset{ReservedLeadDays: 0, QuotaTiers: GospelsQuotaTiers}
	}
	return Preset{ReservedLeadDays: DefaultReservedLeadDays, QuotaTiers: DefaultQuotaTiers}
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return NameBible
	}
	return name
}
