package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"

	"g2-storefront/internal/domain"
	"g2-storefront/internal/session"
)

const storageKeyPrefix = "cart:"

// Event describes a cart mutation, published to an optional subscriber
// after the mutation has been applied and persisted.
type Event struct {
	Action     string
	SessionID  string
	ItemID     string
	TotalItems int
}

const (
	EventItemAdded       = "item_added"
	EventItemRemoved     = "item_removed"
	EventQuantityChanged = "quantity_changed"
	EventCleared         = "cleared"
)

// Service is the session-scoped source of truth for the visitor's
// prospective order. Line data goes through the storage port on every
// mutation; the drawer flag is transient and lives only in memory.
//
// Storage is best-effort: a read that fails or yields a malformed
// payload degrades to an empty cart, and a failed write never rolls
// back the in-memory mutation. Both are logged and swallowed.
type Service struct {
	storage session.Storage
	logger  *log.Logger
	notify  func(Event)

	mu      sync.Mutex
	drawers map[string]bool
}

func New(storage session.Storage, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		storage: storage,
		logger:  logger,
		drawers: make(map[string]bool),
	}
}

// Subscribe registers a single subscriber for cart change events. The
// presentation layer decides what to do with them; the store itself
// does not dictate UI beyond the drawer flag.
func (s *Service) Subscribe(fn func(Event)) {
	s.notify = fn
}

// Get returns the current cart for the session, restoring lines from
// storage when present.
func (s *Service) Get(ctx context.Context, sessionID string) domain.Cart {
	cart := s.load(ctx, sessionID)
	cart.Open = s.drawerOpen(sessionID)
	return cart
}

// AddItem adds one unit of the product to the session's cart, merging
// with an existing line for the same id. It never fails: there is no
// stock check, and persistence trouble is not the visitor's problem.
func (s *Service) AddItem(ctx context.Context, sessionID string, item domain.ItemSummary) domain.Cart {
	cart := s.load(ctx, sessionID)
	cart.AddItem(item)
	s.setDrawer(sessionID, true)
	s.save(ctx, sessionID, cart)
	s.publish(Event{Action: EventItemAdded, SessionID: sessionID, ItemID: item.ID, TotalItems: cart.TotalItems()})
	return cart
}

// RemoveItem drops the line with the given id; absent ids are a no-op.
func (s *Service) RemoveItem(ctx context.Context, sessionID, id string) domain.Cart {
	cart := s.load(ctx, sessionID)
	cart.RemoveItem(id)
	cart.Open = s.drawerOpen(sessionID)
	s.save(ctx, sessionID, cart)
	s.publish(Event{Action: EventItemRemoved, SessionID: sessionID, ItemID: id, TotalItems: cart.TotalItems()})
	return cart
}

// UpdateQuantity sets a line's quantity; zero or negative removes it.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) domain.Cart {
	cart := s.load(ctx, sessionID)
	cart.UpdateQuantity(id, quantity)
	cart.Open = s.drawerOpen(sessionID)
	s.save(ctx, sessionID, cart)
	s.publish(Event{Action: EventQuantityChanged, SessionID: sessionID, ItemID: id, TotalItems: cart.TotalItems()})
	return cart
}

// Clear empties the cart and erases the persisted record, so a store
// reconstructed for this session starts empty.
func (s *Service) Clear(ctx context.Context, sessionID string) domain.Cart {
	if err := s.storage.Delete(ctx, storageKeyPrefix+sessionID); err != nil {
		s.logger.Printf("cart: clear session=%s storage error: %v", sessionID, err)
	}
	cart := domain.Cart{Open: s.drawerOpen(sessionID)}
	s.publish(Event{Action: EventCleared, SessionID: sessionID})
	return cart
}

// SetDrawerOpen toggles the transient drawer flag for the session.
func (s *Service) SetDrawerOpen(ctx context.Context, sessionID string, open bool) domain.Cart {
	s.setDrawer(sessionID, open)
	cart := s.load(ctx, sessionID)
	cart.Open = open
	return cart
}

func (s *Service) load(ctx context.Context, sessionID string) domain.Cart {
	payload, err := s.storage.Get(ctx, storageKeyPrefix+sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			s.logger.Printf("cart: load session=%s storage error: %v", sessionID, err)
		}
		return domain.Cart{}
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		s.logger.Printf("cart: load session=%s malformed payload: %v", sessionID, err)
		return domain.Cart{}
	}
	return domain.Cart{Lines: lines}
}

func (s *Service) save(ctx context.Context, sessionID string, cart domain.Cart) {
	payload, err := json.Marshal(cart.Lines)
	if err != nil {
		s.logger.Printf("cart: save session=%s marshal error: %v", sessionID, err)
		return
	}
	if err := s.storage.Set(ctx, storageKeyPrefix+sessionID, payload); err != nil {
		s.logger.Printf("cart: save session=%s storage error: %v", sessionID, err)
	}
}

func (s *Service) publish(ev Event) {
	if s.notify != nil {
		s.notify(ev)
	}
}

func (s *Service) drawerOpen(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawers[sessionID]
}

func (s *Service) setDrawer(sessionID string, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if open {
		s.drawers[sessionID] = true
		return
	}
	delete(s.drawers, sessionID)
}
