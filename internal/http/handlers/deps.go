package handlers

import (
	"github.com/jmoiron/sqlx"

	"yizer/internal/repos"
	"yizer/internal/services"
)

type Deps struct {
	CatalogHandler   *CatalogHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	CustomizeHandler *CustomizeHandler
	AuthHandler      *AuthHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	sessions := services.NewSessionStore()

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(sessions, prodRepo)
	orderSvc := services.NewOrderService(sessions)
	customizeSvc := services.NewCustomizeService(sessions, prodRepo)

	return &Deps{
		CatalogHandler:   &CatalogHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		OrderHandler:     &OrderHandler{Cart: cartSvc, Order: orderSvc},
		CustomizeHandler: &CustomizeHandler{Customize: customizeSvc, Catalog: catalogSvc},
		AuthHandler:      &AuthHandler{},
	}
}
