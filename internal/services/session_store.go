package services

import (
	"sync"

	"yizer/internal/cart"
	"yizer/internal/domain"
)

// SessionStore owns the live Cart, order History and customization Draft
// for each browser session. The cart package only produces new values;
// this store is the single place that swaps the live references, one
// whole value at a time, so every operation observes a consistent cart.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	cart    cart.Cart
	history cart.History
	draft   *cart.Draft
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]*session{}}
}

// get returns the session, creating it empty on first use. Caller holds mu.
func (s *SessionStore) get(sid string) *session {
	sess, ok := s.sessions[sid]
	if !ok {
		sess = &session{}
		s.sessions[sid] = sess
	}
	return sess
}

func (s *SessionStore) Cart(sid string) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(sid).cart
}

func (s *SessionStore) History(sid string) cart.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(sid).history
}

// AddLine merges or appends a line and installs the updated cart.
func (s *SessionStore) AddLine(sid string, p domain.Product, qty int, cu *cart.Customization) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	next, err := sess.cart.Add(p, qty, cu)
	if err != nil {
		return sess.cart, err
	}
	sess.cart = next
	return next, nil
}

// RemoveLine removes the line with the given identifier, if present.
// Removing an absent line leaves the cart unchanged.
func (s *SessionStore) RemoveLine(sid, lineID string) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	target, ok := sess.cart.Find(lineID)
	if !ok {
		return sess.cart
	}
	sess.cart = sess.cart.Remove(target)
	return sess.cart
}

// Checkout confirms the cart into a new order. On success the live cart
// is replaced by the returned empty one and the history grows by one; on
// error nothing changes.
func (s *SessionStore) Checkout(sid string) (cart.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	o, emptied, hist, err := cart.Checkout(sess.cart, sess.history)
	if err != nil {
		return cart.Order{}, err
	}
	sess.cart = emptied
	sess.history = hist
	return o, nil
}

// StartDraft begins a fresh draft for the base product, discarding any
// previous draft.
func (s *SessionStore) StartDraft(sid string, p domain.Product) cart.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := cart.NewDraft(p)
	s.get(sid).draft = &d
	return d
}

func (s *SessionStore) Draft(sid string) (cart.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.get(sid).draft
	if d == nil {
		return cart.Draft{}, false
	}
	return *d, true
}

// UpdateDraft applies a single key/value edit to the current draft.
func (s *SessionStore) UpdateDraft(sid, key, value string) (cart.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	if sess.draft == nil {
		return cart.Draft{}, false
	}
	d := *sess.draft
	d.Options = d.Options.Set(key, value)
	sess.draft = &d
	return d, true
}

// ConfirmDraft turns the draft into a cart line and discards the draft.
func (s *SessionStore) ConfirmDraft(sid string) (cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(sid)
	if sess.draft == nil {
		return sess.cart, ErrNoDraft
	}
	d := *sess.draft
	next, err := sess.cart.Add(d.Product, d.Options.Quantity, d.Customization())
	if err != nil {
		return sess.cart, err
	}
	sess.cart = next
	sess.draft = nil
	return next, nil
}

// AbandonDraft clears the draft without touching the cart.
func (s *SessionStore) AbandonDraft(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(sid).draft = nil
}
