package handlers

import (
	"github.com/jmoiron/sqlx"

	"lamsa/internal/clock"
	"lamsa/internal/repos"
	"lamsa/internal/services"
)

type Deps struct {
	Auth *services.AuthService

	CatalogHandler  *CatalogHandler
	ProductHandler  *ProductHandler
	PurchaseHandler *PurchaseHandler
	AdminHandler    *AdminHandler
	AuthHandler     *AuthHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService, clk clock.Clock) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	saleRepo := repos.NewSaleRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	purchaseSvc := services.NewPurchaseService(catalogSvc, saleRepo, clk)
	analyticsSvc := services.NewAnalyticsService(saleRepo, catalogSvc, clk)

	return &Deps{
		Auth:            auth,
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Purchases: purchaseSvc},
		PurchaseHandler: &PurchaseHandler{Purchases: purchaseSvc},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc, Analytics: analyticsSvc},
		AuthHandler:     &AuthHandler{Auth: auth, Clock: clk},
	}
}
