package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/jaguzmanb1/meliload/internal/catalog"
	"github.com/jaguzmanb1/meliload/internal/output"
)

// Fixture dimensions. The seeder deliberately takes no flags; these mirror
// the dataset the items service is exercised with.
const (
	totalSellers      = 1000
	productsPerSeller = 1000
	rootCategories    = 5
	leavesPerRoot     = 10

	itemsFile      = "items.json"
	categoriesFile = "categories.json"
)

func main() {
	if err := run(defaultOptions()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func defaultOptions() catalog.SeederOptions {
	return catalog.SeederOptions{
		Sellers:           totalSellers,
		ProductsPerSeller: productsPerSeller,
		RootCategories:    rootCategories,
		LeavesPerRoot:     leavesPerRoot,
		ItemsPath:         itemsFile,
		CategoriesPath:    categoriesFile,
		Rand:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func run(opts catalog.SeederOptions) error {
	result, err := catalog.NewSeeder(opts).Run()
	if err != nil {
		return err
	}

	ok := color.New(color.FgGreen)
	if !output.IsTerminal(os.Stdout) {
		ok.DisableColor()
	}
	fmt.Fprintf(os.Stdout, "%s %s: %d categories\n", ok.Sprint("✔"), opts.CategoriesPath, result.Categories)
	fmt.Fprintf(os.Stdout, "%s %s: %d products\n", ok.Sprint("✔"), opts.ItemsPath, result.Products)
	return nil
}
