package sections

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
)

// FragmentExt is the file extension of a partial fragment.
const FragmentExt = ".html"

// ValidateID checks that id can be used as the stem of a partial file.
func ValidateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return errors.ValidationError("section id cannot be empty").Build()
	case id != strings.TrimSpace(id):
		return errors.ValidationError("section id has surrounding whitespace").WithContext("section", id).Build()
	case strings.ContainsAny(id, `/\`+"\x00"):
		return errors.ValidationError("section id contains a path separator").WithContext("section", id).Build()
	case id == "." || id == ".." || strings.Contains(id, ".."):
		return errors.ValidationError("section id contains a relative path element").WithContext("section", id).Build()
	}
	return nil
}

// FileName returns the partial file name for id.
func FileName(id string) string {
	return id + FragmentExt
}

// IDFromFileName returns the section id for a partial file name, or false when
// the name is not a fragment.
func IDFromFileName(name string) (string, bool) {
	if !strings.HasSuffix(name, FragmentExt) {
		return "", false
	}
	id := strings.TrimSuffix(name, FragmentExt)
	return id, id != ""
}

// Order is the Canonical Order: the hand-maintained sequence of section ids
// that defines the layout of the combined document.
type Order []string

// Validate enforces id syntax and uniqueness.
func (o Order) Validate() error {
	seen := make(map[string]int, len(o))
	for i, id := range o {
		if err := ValidateID(id); err != nil {
			return err
		}
		if prev, dup := seen[id]; dup {
			return errors.ValidationError(fmt.Sprintf("duplicate section id %q at positions %d and %d", id, prev, i)).
				WithContext("section", id).
				Build()
		}
		seen[id] = i
	}
	return nil
}

// Contains reports whether id is part of the order.
func (o Order) Contains(id string) bool {
	for _, v := range o {
		if v == id {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (o Order) Clone() Order {
	return append(Order(nil), o...)
}
