package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"g2-storefront/internal/domain"
	cartsvc "g2-storefront/internal/service/cart"
)

// ErrEmptyCart is returned when checkout is attempted with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError carries the required fields missing from a form.
// Surfaced inline to the visitor; no hand-off link is composed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// CustomerInfo is the checkout form. Name, phone and address are
// required; the rest is optional.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Notes   string `json:"notes"`
}

// Options configures the hand-off target and the post-hand-off policy.
type Options struct {
	WhatsAppNumber string
	StoreName      string
	// ClearCart empties the session cart after a successful hand-off.
	// The behavior is a policy decision, so it is explicit config.
	ClearCart bool
}

// Service composes order summaries and hands them off to WhatsApp via
// a wa.me deep link. Nothing is awaited from the other side: the
// storefront's job ends at producing the link.
type Service struct {
	carts  *cartsvc.Service
	opts   Options
	logger *log.Logger
}

func New(carts *cartsvc.Service, opts Options, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{carts: carts, opts: opts, logger: logger}
}

// Result is a composed hand-off: the deep link plus the cart as it
// stands after the hand-off policy was applied.
type Result struct {
	URL  string
	Cart domain.Cart
}

// Checkout validates the form, composes the order summary for the
// session's cart and returns the WhatsApp deep link. The drawer is
// closed; the cart is cleared only when the policy says so.
func (s *Service) Checkout(ctx context.Context, sessionID string, info CustomerInfo) (*Result, error) {
	if err := validate(info); err != nil {
		return nil, err
	}

	cart := s.carts.Get(ctx, sessionID)
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	message := orderMessage(s.opts.StoreName, info, cart)
	link := Link(s.opts.WhatsAppNumber, message)

	if s.opts.ClearCart {
		cart = s.carts.Clear(ctx, sessionID)
	}
	cart = s.carts.SetDrawerOpen(ctx, sessionID, false)

	s.logger.Printf("checkout: session=%s lines=%d total=%d cleared=%t",
		sessionID, len(cart.Lines), cart.TotalPrice(), s.opts.ClearCart)

	return &Result{URL: link, Cart: cart}, nil
}

// ChatLink is the floating chat-now control: a fixed help message.
func (s *Service) ChatLink() string {
	message := fmt.Sprintf("Hi! I need help choosing the right gear from %s.", s.opts.StoreName)
	return Link(s.opts.WhatsAppNumber, message)
}

func validate(info CustomerInfo) error {
	var missing []string
	if strings.TrimSpace(info.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(info.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(info.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
