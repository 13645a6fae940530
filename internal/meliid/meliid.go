// Package meliid formats the marketplace-style identifiers used across the
// toolkit. Identifiers are opaque keys; only their uniqueness matters, the
// textual patterns exist to look like real catalog data.
package meliid

import "fmt"

// Item returns the identifier for the n-th item, e.g. "MLA42".
func Item(n int) string {
	return fmt.Sprintf("MLA%d", n)
}

// Sequence returns n sequential item identifiers starting at "MLA0".
func Sequence(n int) []string {
	if n <= 0 {
		return nil
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = Item(i)
	}
	return ids
}

// RootCategory returns the identifier for the r-th root category (1-based),
// e.g. "MLA1001".
func RootCategory(r int) string {
	return fmt.Sprintf("MLA%d", 1000+r)
}

// LeafCategory returns the identifier for the l-th leaf under the r-th root
// (both 1-based), e.g. "MLA010200". The trailing zeros keep leaf identifiers
// disjoint from item and root identifiers.
func LeafCategory(r, l int) string {
	return fmt.Sprintf("MLA%02d%02d00", r, l)
}

// Seller returns the identifier for the s-th seller (1-based), e.g. "SELLER_7".
func Seller(s int) string {
	return fmt.Sprintf("SELLER_%d", s)
}
