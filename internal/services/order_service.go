package services

import (
	"yizer/internal/cart"
)

type OrderService struct {
	Sessions *SessionStore
}

func NewOrderService(sessions *SessionStore) *OrderService {
	return &OrderService{Sessions: sessions}
}

// Place confirms the session's pending cart into a new order. Checkout on
// an empty cart surfaces cart.ErrEmptyCart and changes nothing.
func (s *OrderService) Place(sid string) (cart.Order, error) {
	return s.Sessions.Checkout(sid)
}

// History lists the session's confirmed orders, oldest first.
func (s *OrderService) History(sid string) cart.History {
	return s.Sessions.History(sid)
}
