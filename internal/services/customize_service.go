package services

import (
	"errors"
	"slices"

	"yizer/internal/cart"
	"yizer/internal/domain"
	"yizer/internal/repos"
)

var (
	ErrNoDraft   = errors.New("no customization in progress")
	ErrBadOption = errors.New("option not available for this product")
)

// CustomizeService drives the personalization wizard: a draft starts from
// a base product with defaults applied, takes field edits, and either
// becomes a cart line on confirm or is discarded.
type CustomizeService struct {
	Sessions *SessionStore
	Prods    *repos.ProductRepo
}

func NewCustomizeService(sessions *SessionStore, prods *repos.ProductRepo) *CustomizeService {
	return &CustomizeService{Sessions: sessions, Prods: prods}
}

// Start begins a draft for the base product, resetting to its first
// available size and color and the default print options.
func (s *CustomizeService) Start(sid, productID string) (cart.Draft, error) {
	p, err := s.Prods.Get(productID)
	if err != nil {
		return cart.Draft{}, err
	}
	return s.Sessions.StartDraft(sid, p), nil
}

func (s *CustomizeService) Current(sid string) (cart.Draft, bool) {
	return s.Sessions.Draft(sid)
}

// Update applies one field edit after checking the value against the base
// product's available options.
func (s *CustomizeService) Update(sid, key, value string) (cart.Draft, error) {
	d, ok := s.Sessions.Draft(sid)
	if !ok {
		return cart.Draft{}, ErrNoDraft
	}
	switch key {
	case "size":
		if !slices.Contains(d.Product.AvailableSizes, value) {
			return d, ErrBadOption
		}
	case "color":
		if !slices.Contains(d.Product.AvailableColors, value) {
			return d, ErrBadOption
		}
	case "printPosition":
		if !domain.ValidPrintPosition(value) {
			return d, ErrBadOption
		}
	case "printSize":
		if !domain.ValidPrintSize(value) {
			return d, ErrBadOption
		}
	}
	d, _ = s.Sessions.UpdateDraft(sid, key, value)
	return d, nil
}

// Confirm turns the draft into a cart line; the draft is discarded.
func (s *CustomizeService) Confirm(sid string) error {
	_, err := s.Sessions.ConfirmDraft(sid)
	return err
}

// Abandon drops the draft so the next base product starts clean.
func (s *CustomizeService) Abandon(sid string) {
	s.Sessions.AbandonDraft(sid)
}
