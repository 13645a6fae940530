package catalog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaguzmanb1/meliload/internal/catalog"
)

func TestCategoryFactoryBuild(t *testing.T) {
	categories, leafIDs := catalog.NewCategoryFactory(5, 10).Build()

	require.Len(t, categories, 55, "5 roots + 50 leaves")
	require.Len(t, leafIDs, 50)

	for r := 1; r <= 5; r++ {
		rootID := categories[leafIDs[(r-1)*10]].PathFromRoot[0].ID
		root, ok := categories[rootID]
		require.True(t, ok, "root %s should exist", rootID)
		assert.Len(t, root.ChildrenCategories, 10, "root %s children", rootID)
		assert.Len(t, root.PathFromRoot, 1, "root path is just itself")
		assert.Equal(t, rootID, root.PathFromRoot[0].ID)
	}

	seen := make(map[string]bool, len(leafIDs))
	for _, leafID := range leafIDs {
		require.False(t, seen[leafID], "leaf id %s duplicated", leafID)
		seen[leafID] = true

		leaf, ok := categories[leafID]
		require.True(t, ok, "leaf %s should exist", leafID)
		require.Len(t, leaf.PathFromRoot, 2, "leaf path is root then leaf")
		assert.Equal(t, leafID, leaf.PathFromRoot[1].ID)
		assert.Empty(t, leaf.ChildrenCategories)
		assert.NotNil(t, leaf.ChildrenCategories, "children must serialize as [], not null")
	}
}

func TestCategoryFactoryNaming(t *testing.T) {
	categories, leafIDs := catalog.NewCategoryFactory(2, 3).Build()

	root, ok := categories["MLA1001"]
	require.True(t, ok)
	assert.Equal(t, "Root Category 1", root.Name)

	require.Equal(t, []string{
		"MLA010100", "MLA010200", "MLA010300",
		"MLA020100", "MLA020200", "MLA020300",
	}, leafIDs, "leaf ids follow generation order")

	leaf := categories["MLA020300"]
	assert.Equal(t, "Leaf Category 2-3", leaf.Name)
	assert.Equal(t, "MLA1002", leaf.PathFromRoot[0].ID)
}

func TestCategoryFactoryRootChildrenMatchLeaves(t *testing.T) {
	categories, leafIDs := catalog.NewCategoryFactory(3, 4).Build()

	childIDs := make([]string, 0, len(leafIDs))
	for r := 1; r <= 3; r++ {
		root := categories[categories[leafIDs[(r-1)*4]].PathFromRoot[0].ID]
		for _, ref := range root.ChildrenCategories {
			childIDs = append(childIDs, ref.ID)
		}
	}

	assert.Equal(t, leafIDs, childIDs, "every root's children are exactly its leaves")
}

func TestCategoryMarshalsEmptyChildrenAsArray(t *testing.T) {
	categories, leafIDs := catalog.NewCategoryFactory(1, 1).Build()

	data, err := json.Marshal(categories[leafIDs[0]])
	require.NoError(t, err)

	assert.Contains(t, string(data), `"children_categories":[]`)
	assert.NotContains(t, string(data), `"children_categories":null`)
}
