package catalog_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaguzmanb1/meliload/internal/catalog"
)

const categoriesSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"properties": {
			"id": { "type": "string", "pattern": "^MLA" },
			"name": { "type": "string", "minLength": 1 },
			"path_from_root": {
				"type": "array",
				"minItems": 1,
				"maxItems": 2,
				"items": {
					"type": "object",
					"properties": { "id": { "type": "string", "pattern": "^MLA" } },
					"required": ["id"]
				}
			},
			"children_categories": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": { "id": { "type": "string", "pattern": "^MLA" } },
					"required": ["id"]
				}
			}
		},
		"required": ["id", "name", "path_from_root", "children_categories"]
	}
}`

const productsSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"properties": {
			"seller_id": { "type": "string", "pattern": "^SELLER_[0-9]+$" },
			"title": { "type": "string", "minLength": 1 },
			"category_id": { "type": "string", "pattern": "^MLA" },
			"price": { "type": "number", "minimum": 10, "maximum": 2000 },
			"date_created": { "type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}\\.[0-9]{6}Z$" },
			"last_updated": { "type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}\\.[0-9]{6}Z$" }
		},
		"required": ["seller_id", "title", "category_id", "price", "date_created", "last_updated"],
		"additionalProperties": false
	}
}`

func validateAgainstSchema(t *testing.T, path, schemaStr string) {
	t.Helper()

	compiler := jsonschema.NewCompiler()
	require.NoError(t, compiler.AddResource("schema.json", strings.NewReader(schemaStr)))
	schema, err := compiler.Compile("schema.json")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NoError(t, schema.Validate(doc), "%s must satisfy its schema", filepath.Base(path))
}

func runSeeder(t *testing.T, opts catalog.SeederOptions) (catalog.Result, string, string) {
	t.Helper()

	dir := t.TempDir()
	opts.ItemsPath = filepath.Join(dir, "items.json")
	opts.CategoriesPath = filepath.Join(dir, "categories.json")
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(7))
	}

	result, err := catalog.NewSeeder(opts).Run()
	require.NoError(t, err)
	return result, opts.ItemsPath, opts.CategoriesPath
}

func TestSeederRunCounts(t *testing.T) {
	result, itemsPath, categoriesPath := runSeeder(t, catalog.SeederOptions{
		Sellers:           3,
		ProductsPerSeller: 4,
		RootCategories:    2,
		LeavesPerRoot:     3,
	})

	assert.Equal(t, 8, result.Categories, "2 roots + 6 leaves")
	assert.Equal(t, 12, result.Products)

	data, err := os.ReadFile(itemsPath)
	require.NoError(t, err)
	var products map[string]catalog.Product
	require.NoError(t, json.Unmarshal(data, &products))
	require.Len(t, products, 12)

	// Identifiers are MLA1..MLA12: strictly increasing global index, 1-based.
	for i := 1; i <= 12; i++ {
		require.Contains(t, products, fmt.Sprintf("MLA%d", i))
	}
	assert.NotContains(t, products, "MLA0")
	assert.NotContains(t, products, "MLA13")

	data, err = os.ReadFile(categoriesPath)
	require.NoError(t, err)
	var categories map[string]catalog.Category
	require.NoError(t, json.Unmarshal(data, &categories))
	require.Len(t, categories, 8)
}

func TestSeederSellerAssignment(t *testing.T) {
	_, itemsPath, _ := runSeeder(t, catalog.SeederOptions{
		Sellers:           3,
		ProductsPerSeller: 4,
		RootCategories:    2,
		LeavesPerRoot:     3,
	})

	data, err := os.ReadFile(itemsPath)
	require.NoError(t, err)
	var products map[string]catalog.Product
	require.NoError(t, json.Unmarshal(data, &products))

	counts := map[string]int{}
	for _, p := range products {
		counts[p.SellerID]++
	}

	require.Len(t, counts, 3)
	for _, sellerID := range []string{"SELLER_1", "SELLER_2", "SELLER_3"} {
		assert.Equal(t, 4, counts[sellerID], "seller %s product count", sellerID)
	}
}

func TestSeederProductsReferenceLeaves(t *testing.T) {
	_, itemsPath, categoriesPath := runSeeder(t, catalog.SeederOptions{
		Sellers:           2,
		ProductsPerSeller: 25,
		RootCategories:    5,
		LeavesPerRoot:     10,
	})

	data, err := os.ReadFile(categoriesPath)
	require.NoError(t, err)
	var categories map[string]catalog.Category
	require.NoError(t, json.Unmarshal(data, &categories))

	leaves := map[string]bool{}
	for id, cat := range categories {
		if len(cat.PathFromRoot) == 2 {
			leaves[id] = true
		}
	}
	require.Len(t, leaves, 50, "5 roots x 10 leaves")

	data, err = os.ReadFile(itemsPath)
	require.NoError(t, err)
	var products map[string]catalog.Product
	require.NoError(t, json.Unmarshal(data, &products))

	for id, p := range products {
		require.True(t, leaves[p.CategoryID], "product %s references unknown category %s", id, p.CategoryID)
	}
}

func TestSeederOutputMatchesSchemas(t *testing.T) {
	_, itemsPath, categoriesPath := runSeeder(t, catalog.SeederOptions{
		Sellers:           2,
		ProductsPerSeller: 5,
		RootCategories:    2,
		LeavesPerRoot:     3,
	})

	validateAgainstSchema(t, categoriesPath, categoriesSchema)
	validateAgainstSchema(t, itemsPath, productsSchema)
}

func TestSeederRequiresLeaves(t *testing.T) {
	opts := catalog.SeederOptions{
		Sellers:           1,
		ProductsPerSeller: 1,
		RootCategories:    0,
		LeavesPerRoot:     0,
		ItemsPath:         filepath.Join(t.TempDir(), "items.json"),
		CategoriesPath:    filepath.Join(t.TempDir(), "categories.json"),
		Rand:              rand.New(rand.NewSource(1)),
	}

	_, err := catalog.NewSeeder(opts).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no leaf categories")
}

func TestSeederUnwritableCategoriesPath(t *testing.T) {
	dir := t.TempDir()
	opts := catalog.SeederOptions{
		Sellers:           1,
		ProductsPerSeller: 1,
		RootCategories:    1,
		LeavesPerRoot:     1,
		ItemsPath:         filepath.Join(dir, "items.json"),
		CategoriesPath:    filepath.Join(dir, "missing", "categories.json"),
		Rand:              rand.New(rand.NewSource(1)),
	}

	_, err := catalog.NewSeeder(opts).Run()
	require.Error(t, err)
}
