package catalog

import (
	"fmt"
	"strings"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

const (
	gospelBlockCount = 52

	// GospelsQuotaTiers reads one block a day until the blocks run out.
	GospelsQuotaTiers = "1x52"
)

var gospelBooks = []string{"Mateus", "Marcos", "Lucas", "João"}

// Gospels returns the four Gospels as 52 free-text passage blocks, each a
// single sub-unit.
func Gospels() domain.Catalog {
	var books domain.Catalog
	for _, name := range gospelBooks {
		for _, u := range bible {
			if u.Name == name {
				books = append(books, u)
				break
			}
		}
	}
	return domain.CatalogFromBlocks(passageBlocks(books, gospelBlockCount))
}

type chapterRef struct {
	book    string
	chapter int
}

// passageBlocks splits the chapters of units into n contiguous blocks whose
// sizes differ by at most one.
func passageBlocks(units domain.Catalog, n int) []string {
	var refs []chapterRef
	for _, u := range units {
		for ch := 1; ch <= u.SubUnitCount; ch++ {
			refs = append(refs, chapterRef{book: u.Name, chapter: ch})
		}
	}
	if n > len(refs) {
		n = len(refs)
	}

	blocks := make([]string, 0, n)
	for i := 0; i < n; i++ {
		from, to := i*len(refs)/n, (i+1)*len(refs)/n
		blocks = append(blocks, formatPassage(refs[from:to]))
	}
	return blocks
}

// formatPassage renders consecutive chapters as "Mateus 2-3", joining
// ranges from different books with a comma.
func formatPassage(refs []chapterRef) string {
	var parts []string
	for start := 0; start < len(refs); {
		end := start
		for end+1 < len(refs) && refs[end+1].book == refs[start].book {
			end++
		}

		first, last := refs[start], refs[end]
		if first.chapter == last.chapter {
			parts = append(parts, fmt.Sprintf("%s %d", first.book, first.chapter))
		} else {
			parts = append(parts, fmt.Sprintf("%s %d-%d", first.book, first.chapter, last.chapter))
		}
		start = end + 1
	}
	return strings.Join(parts, ", ")
}
