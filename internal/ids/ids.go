// Package ids generates the opaque identifiers used for categories, name
// lists, seo texts and menu items.
package ids

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator returns a new unique id
type Generator func() string

// New returns a random UUIDv4 string
func New() string {
	return uuid.NewString()
}

// Sequence returns a Generator that yields prefix-1, prefix-2, ... in order.
// Used where deterministic ids are wanted.
func Sequence(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
