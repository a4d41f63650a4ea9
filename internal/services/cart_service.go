package services

import (
	"github.com/shopspring/decimal"

	"yizer/internal/cart"
	"yizer/internal/repos"
)

type CartService struct {
	Sessions *SessionStore
	Prods    *repos.ProductRepo
}

func NewCartService(sessions *SessionStore, prods *repos.ProductRepo) *CartService {
	return &CartService{Sessions: sessions, Prods: prods}
}

// Add puts a plain (uncustomized) catalog product in the session's cart.
func (s *CartService) Add(sid, productID string, qty int) error {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return err
	}
	_, err = s.Sessions.AddLine(sid, p, qty, nil)
	return err
}

// Remove drops the identified line; absent lines are a no-op.
func (s *CartService) Remove(sid, lineID string) {
	s.Sessions.RemoveLine(sid, lineID)
}

type CartView struct {
	Lines cart.Cart
	Total decimal.Decimal
}

func (s *CartService) View(sid string) (CartView, error) {
	c := s.Sessions.Cart(sid)
	total, err := c.Total()
	if err != nil {
		return CartView{}, err
	}
	return CartView{Lines: c, Total: total}, nil
}
