package services

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"hardware-store/backend"
	"hardware-store/models"
)

// CatalogFilter mirrors the storefront's listing controls. Filtering
// and sorting run here, after the full list is fetched, the same way
// the product pages always did it.
type CatalogFilter struct {
	Search   string
	Category string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Sort     string // name | price-asc | price-desc
}

type CatalogService struct {
	backend *backend.Client
}

func NewCatalogService(bc *backend.Client) *CatalogService {
	return &CatalogService{backend: bc}
}

func (s *CatalogService) Products(ctx context.Context, filter CatalogFilter) ([]models.Product, error) {
	products, err := s.backend.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, filter), nil
}

func (s *CatalogService) Product(ctx context.Context, id int) (*models.Product, error) {
	return s.backend.FetchProduct(ctx, id)
}

func (s *CatalogService) Tools(ctx context.Context, filter CatalogFilter) ([]models.Tool, error) {
	tools, err := s.backend.FetchTools(ctx)
	if err != nil {
		return nil, err
	}
	return FilterTools(tools, filter), nil
}

func (s *CatalogService) Tool(ctx context.Context, id int) (*models.Tool, error) {
	return s.backend.FetchTool(ctx, id)
}

func FilterProducts(products []models.Product, filter CatalogFilter) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(filter.Search, p.Name, p.Description) {
			continue
		}
		if !matchesCategory(filter.Category, p.Category) {
			continue
		}
		if !withinPrice(filter, p.Price) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		switch filter.Sort {
		case "price-asc":
			return filtered[i].Price.LessThan(filtered[j].Price)
		case "price-desc":
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		default:
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		}
	})
	return filtered
}

func FilterTools(tools []models.Tool, filter CatalogFilter) []models.Tool {
	filtered := make([]models.Tool, 0, len(tools))
	for _, t := range tools {
		if !matchesSearch(filter.Search, t.Name, t.Description) {
			continue
		}
		if !matchesCategory(filter.Category, t.Category) {
			continue
		}
		if !withinPrice(filter, t.DailyRate) {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		switch filter.Sort {
		case "price-asc":
			return filtered[i].DailyRate.LessThan(filtered[j].DailyRate)
		case "price-desc":
			return filtered[i].DailyRate.GreaterThan(filtered[j].DailyRate)
		default:
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		}
	})
	return filtered
}

func matchesSearch(search, name, description string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(name), needle) ||
		strings.Contains(strings.ToLower(description), needle)
}

func matchesCategory(want, have string) bool {
	return want == "" || want == "all" || want == have
}

func withinPrice(filter CatalogFilter, price decimal.Decimal) bool {
	if !filter.MinPrice.IsZero() && price.LessThan(filter.MinPrice) {
		return false
	}
	if !filter.MaxPrice.IsZero() && price.GreaterThan(filter.MaxPrice) {
		return false
	}
	return true
}
