package services

import (
	"agrodirect/models"
	"agrodirect/repositories"
	"strings"
)

// FilterProducts keeps the products matching every predicate of f, in
// catalog order. Empty category or location strings mean "All".
func FilterProducts(catalog []models.Product, f models.ProductFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	category := normalizeWildcard(f.Category)
	location := normalizeWildcard(f.Location)

	filtered := []models.Product{}
	for _, p := range catalog {
		matchSearch := search == "" ||
			strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Description), search)
		matchCategory := category == models.FilterAll || string(p.Category) == category
		matchLocation := location == models.FilterAll || p.Location == location

		if matchSearch && matchCategory && matchLocation {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func normalizeWildcard(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return models.FilterAll
	}
	return v
}

type CatalogService struct {
	catalog *repositories.Catalog
	byID    map[string]int
}

func NewCatalogService(catalog *repositories.Catalog) *CatalogService {
	byID := make(map[string]int, len(catalog.Products))
	for i, p := range catalog.Products {
		byID[p.ID] = i
	}
	return &CatalogService{catalog: catalog, byID: byID}
}

func (s *CatalogService) ListProducts(f models.ProductFilter) []models.Product {
	return FilterProducts(s.catalog.Products, f)
}

func (s *CatalogService) GetProduct(id string) (models.Product, error) {
	idx, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return s.catalog.Products[idx], nil
}

func (s *CatalogService) Locations() []string {
	out := make([]string, len(s.catalog.Locations))
	copy(out, s.catalog.Locations)
	return out
}

// Categories returns the category filter options, wildcard first.
func (s *CatalogService) Categories() []string {
	out := []string{models.FilterAll}
	for _, c := range models.Categories {
		out = append(out, string(c))
	}
	return out
}
