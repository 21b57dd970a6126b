package catalog

import "catalog/sitegen/internal/domain"

// Categorize groups products by category. Products keep their relative order
// within a group and groups are ordered by first appearance.
func Categorize(products []*domain.Product) *domain.Categories {
	categories := domain.NewCategories()
	for _, product := range products {
		categories.Add(product)
	}
	return categories
}
