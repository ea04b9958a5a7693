package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"g2-storefront/internal/domain"
)

const divider = "━━━━━━━━━━━━━━━━━━━━"

// Link builds the wa.me deep link with the message percent-encoded as
// the text query parameter.
func Link(number, message string) string {
	// QueryEscape turns spaces into '+', which WhatsApp renders
	// literally; the deep link needs %20.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}

// orderMessage renders the plain-text order summary sent on checkout:
// customer block, numbered line items with per-line subtotals, the
// overall subtotal, and optional notes.
func orderMessage(storeName string, info CustomerInfo, cart domain.Cart) string {
	var parts []string

	parts = append(parts,
		fmt.Sprintf("🛒 *New Order from %s*", storeName),
		"",
		divider,
		"",
		"👤 *Customer Details:*",
	)
	parts = appendField(parts, "Name", info.Name)
	parts = appendField(parts, "Email", info.Email)
	parts = appendField(parts, "Phone", info.Phone)
	parts = appendField(parts, "Address", info.Address)
	parts = appendField(parts, "City", info.City)
	parts = appendField(parts, "Pincode", info.Pincode)

	parts = append(parts, "", divider, "", "📦 *Order Details:*")
	for i, line := range cart.Lines {
		subtotal := line.Price * int64(line.Quantity)
		parts = append(parts,
			fmt.Sprintf("%d. %s", i+1, line.Name),
			fmt.Sprintf("   Quantity: %d", line.Quantity),
			fmt.Sprintf("   Price: ₹%s x %d = ₹%s", FormatRupees(line.Price), line.Quantity, FormatRupees(subtotal)),
			"",
		)
	}

	parts = append(parts,
		divider,
		"",
		fmt.Sprintf("💰 *Subtotal: ₹%s*", FormatRupees(cart.TotalPrice())),
		"",
	)

	if info.Notes != "" {
		parts = append(parts, "💬 *Additional Notes:*", info.Notes, "")
	}

	parts = append(parts,
		divider,
		"",
		"📞 *You will receive a call shortly to confirm your order.*",
		"",
		fmt.Sprintf("Thank you for shopping with %s! 🙏", storeName),
	)

	return strings.Join(parts, "\n")
}

func appendField(parts []string, label, value string) []string {
	if value == "" {
		return parts
	}
	return append(parts, label+": "+value)
}

// FormatRupees renders a whole-rupee amount with thousands separators,
// e.g. 45999 -> "45,999".
func FormatRupees(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String()
	if negative {
		out = "-" + out
	}
	return out
}
