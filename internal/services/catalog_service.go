package services

import (
	"strings"

	"github.com/pkg/errors"

	"lamsa/internal/domain"
	"lamsa/internal/repos"
)

const relatedLimit = 4

type CatalogService struct {
	Cats  CategoryRepository
	Prods ProductRepository
}

func NewCatalogService(cats CategoryRepository, prods ProductRepository) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListAll() ([]domain.Product, error) {
	return s.Prods.List()
}

// ListByCategory filters on an exact category; "all" returns everything.
func (s *CatalogService) ListByCategory(category string) ([]domain.Product, error) {
	if category == domain.AllCategories {
		category = ""
	}
	return s.Prods.ListByCategory(category)
}

func (s *CatalogService) Categories() ([]string, error) {
	return s.Cats.List()
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, repos.ErrNoProduct) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

// Related lists up to four other products in p's category.
func (s *CatalogService) Related(p domain.Product) ([]domain.Product, error) {
	return s.Prods.Related(p.Category, p.ID, relatedLimit)
}

type ProductInput struct {
	Title       string
	Description string
	Price       float64
	Cost        float64
	ImageURL    string
	Category    string
	Badge       string
}

// AddProduct stores a new catalog entry. Blank category falls back to "general".
func (s *CatalogService) AddProduct(in ProductInput) (int64, error) {
	if in.Price < 0 || in.Cost < 0 {
		return 0, errors.New("price and cost must not be negative")
	}
	cat := strings.TrimSpace(in.Category)
	if cat == "" {
		cat = domain.DefaultCategory
	}
	return s.Prods.Create(domain.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		ImageURL:    in.ImageURL,
		Category:    cat,
		Badge:       in.Badge,
	})
}

// DeleteProduct removes the product; its sales stay for historical revenue.
func (s *CatalogService) DeleteProduct(id int64) error {
	return s.Prods.Delete(id)
}

func (s *CatalogService) CountProducts() (int, error) {
	return s.Prods.Count()
}
