package catalog

import (
	"fmt"

	"github.com/jaguzmanb1/meliload/internal/meliid"
)

// CategoryRef points at another category by identifier.
type CategoryRef struct {
	ID string `json:"id"`
}

// Category is one node of the synthetic category tree. Roots list their
// generated leaves as children; leaves always carry an empty, non-nil
// children list so it serializes as [] rather than null.
type Category struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	PathFromRoot       []CategoryRef `json:"path_from_root"`
	ChildrenCategories []CategoryRef `json:"children_categories"`
}

// CategoryFactory deterministically builds a bounded two-level category
// tree: a configured number of roots, each with a configured number of
// leaves.
type CategoryFactory struct {
	roots         int
	leavesPerRoot int
}

// NewCategoryFactory creates a factory for the given tree dimensions.
func NewCategoryFactory(roots, leavesPerRoot int) *CategoryFactory {
	return &CategoryFactory{roots: roots, leavesPerRoot: leavesPerRoot}
}

// Build returns every generated category keyed by identifier, plus the
// flat list of leaf identifiers in generation order for downstream
// product assignment.
func (f *CategoryFactory) Build() (map[string]Category, []string) {
	categories := make(map[string]Category, f.roots*(f.leavesPerRoot+1))
	leafIDs := make([]string, 0, f.roots*f.leavesPerRoot)

	for r := 1; r <= f.roots; r++ {
		rootID := meliid.RootCategory(r)
		root := Category{
			ID:                 rootID,
			Name:               fmt.Sprintf("Root Category %d", r),
			PathFromRoot:       []CategoryRef{{ID: rootID}},
			ChildrenCategories: []CategoryRef{},
		}

		for l := 1; l <= f.leavesPerRoot; l++ {
			leafID := meliid.LeafCategory(r, l)
			categories[leafID] = Category{
				ID:                 leafID,
				Name:               fmt.Sprintf("Leaf Category %d-%d", r, l),
				PathFromRoot:       []CategoryRef{{ID: rootID}, {ID: leafID}},
				ChildrenCategories: []CategoryRef{},
			}
			leafIDs = append(leafIDs, leafID)
			root.ChildrenCategories = append(root.ChildrenCategories, CategoryRef{ID: leafID})
		}

		categories[rootID] = root
	}

	return categories, leafIDs
}
