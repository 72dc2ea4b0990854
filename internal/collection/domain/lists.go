// Package domain holds the pure list rules behind saved items: each function
// returns a new slice and leaves its input untouched.
package domain

import (
	"github.com/go-faster/errors"

	"github.com/tair/bookmypanditji/internal/validation"
)

// List names a per-visitor collection
type List string

const (
	Wishlist       List = "wishlist"
	CompareList    List = "compareList"
	RecentlyViewed List = "recentlyViewed"
)

// Caps
const (
	CompareCap = 3
	RecentCap  = 4
)

// ErrCompareFull is the message shown when a fourth item is compared
var ErrCompareFull = validation.NewRuleError("compare",
	"You can only compare up to 3 products. Please remove one first.")

// ErrUnknownItem is returned for ids that are not in the catalog
var ErrUnknownItem = errors.New("item is not in the catalog")

// Key is the store key of list for visitor
func Key(list List, visitor string) string {
	return string(list) + ":" + visitor
}

func indexOf(set []string, id string) int {
	for i, v := range set {
		if v == id {
			return i
		}
	}
	return -1
}

func without(set []string, i int) []string {
	out := make([]string, 0, len(set)-1)
	out = append(out, set[:i]...)
	return append(out, set[i+1:]...)
}

// Toggle removes id when present, otherwise appends it. With a positive limit
// an insertion into a full set is refused and set is returned unchanged.
func Toggle(set []string, id string, limit int) (out []string, added bool, err error) {
	if i := indexOf(set, id); i >= 0 {
		return without(set, i), false, nil
	}
	if limit > 0 && len(set) >= limit {
		return append([]string{}, set...), false, ErrCompareFull
	}
	out = make([]string, 0, len(set)+1)
	out = append(out, set...)
	return append(out, id), true, nil
}

// ToggleWishlist adds or removes id with no size limit
func ToggleWishlist(set []string, id string) ([]string, bool) {
	out, added, _ := Toggle(set, id, 0)
	return out, added
}

// ToggleCompare adds or removes id, refusing a fourth entry
func ToggleCompare(set []string, id string) ([]string, bool, error) {
	return Toggle(set, id, CompareCap)
}

// View moves id to the front of the recently viewed list, dropping the
// oldest entries beyond RecentCap
func View(recent []string, id string) []string {
	out := make([]string, 0, RecentCap)
	out = append(out, id)
	for _, v := range recent {
		if len(out) == RecentCap {
			break
		}
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
