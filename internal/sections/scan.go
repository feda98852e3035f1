package sections

import (
	"strings"

	"golang.org/x/net/html"
)

// Region is one tagged section found in a combined document.
type Region struct {
	ID string
	// Start and End are byte offsets into the scanned document; Markup is doc[Start:End].
	Start  int
	End    int
	Markup string
}

// Warning describes input the scanner tolerated but did not turn into a region.
type Warning struct {
	Offset  int
	ID      string
	Message string
}

// Scan tokenizes doc and returns every tagged region in document order.
func Scan(doc string) ([]Region, []Warning) {
	var (
		regions  []Region
		warnings []Warning
		open     *Region
		offset   int
	)

	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "section" {
				continue
			}
			id, ok := sectionID(z, hasAttr)
			if open != nil {
				warnings = append(warnings, Warning{
					Offset:  start,
					ID:      open.ID,
					Message: "nested <section> kept as content of the open region",
				})
				continue
			}
			if !ok {
				continue
			}
			open = &Region{ID: id, Start: start}
		case html.EndTagToken:
			if open == nil {
				continue
			}
			name, _ := z.TagName()
			if string(name) != "section" {
				continue
			}
			open.End = offset
			open.Markup = doc[open.Start:open.End]
			regions = append(regions, *open)
			open = nil
		}
	}

	if open != nil {
		warnings = append(warnings, Warning{
			Offset:  open.Start,
			ID:      open.ID,
			Message: "unterminated <section> dropped",
		})
	}
	return regions, warnings
}

func sectionID(z *html.Tokenizer, hasAttr bool) (string, bool) {
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if string(key) == "id" {
			id := string(val)
			return id, id != ""
		}
	}
	return "", false
}
