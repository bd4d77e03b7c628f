package services

import (
	"lamsa/internal/clock"
	"lamsa/internal/domain"
)

type PurchaseService struct {
	Catalog *CatalogService
	Sales   SaleRepository
	Clock   clock.Clock
}

func NewPurchaseService(catalog *CatalogService, sales SaleRepository, clk clock.Clock) *PurchaseService {
	return &PurchaseService{Catalog: catalog, Sales: sales, Clock: clk}
}

// Buy records one sale of qty units at the product's current price. There is
// no stock to check; quantities below 1 count as 1.
func (s *PurchaseService) Buy(productID int64, qty int) (domain.Sale, error) {
	if qty < 1 {
		qty = 1
	}
	p, err := s.Catalog.GetProduct(productID)
	if err != nil {
		return domain.Sale{}, err
	}
	sale := domain.Sale{
		ProductID:  p.ID,
		Quantity:   qty,
		UnitPrice:  p.Price,
		TotalPrice: p.Price * float64(qty),
		SaleDate:   s.Clock.Now().Format(domain.SaleTimeLayout),
	}
	id, err := s.Sales.Insert(sale)
	if err != nil {
		return domain.Sale{}, err
	}
	sale.ID = id
	return sale, nil
}

// Stats reports quantity sold and order count for a product.
func (s *PurchaseService) Stats(productID int64) (domain.ProductStats, error) {
	return s.Sales.ProductStats(productID)
}
