package checkout

import (
	"fmt"
	"strings"
)

// EnquiryInfo is the gear-enquiry form from the marketing page. Name,
// email and mobile are required; everything else is optional color.
type EnquiryInfo struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Mobile          string   `json:"mobile"`
	WhatsApp        string   `json:"whatsapp"`
	CreatorType     string   `json:"creatorType"`
	BudgetRange     string   `json:"budgetRange"`
	Products        []string `json:"products"`
	Message         string   `json:"message"`
	RequestCallback bool     `json:"requestCallback"`
}

// Enquiry composes the enquiry hand-off link. Unlike checkout it does
// not touch the cart at all.
func (s *Service) Enquiry(info EnquiryInfo) (string, error) {
	var missing []string
	if strings.TrimSpace(info.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(info.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(info.Mobile) == "" {
		missing = append(missing, "mobile")
	}
	if len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}

	return Link(s.opts.WhatsAppNumber, enquiryMessage(s.opts.StoreName, info)), nil
}

// enquiryMessage deliberately avoids emoji: some WhatsApp clients
// garble them in pre-filled enquiry texts.
func enquiryMessage(storeName string, info EnquiryInfo) string {
	var parts []string

	parts = append(parts,
		fmt.Sprintf("*New Enquiry from %s Website*", storeName),
		"",
		"*Personal Information:*",
	)
	parts = appendField(parts, "Name", info.Name)
	parts = appendField(parts, "Email", info.Email)
	parts = appendField(parts, "Mobile", info.Mobile)
	parts = appendField(parts, "WhatsApp", info.WhatsApp)

	hasDetails := info.CreatorType != "" || info.BudgetRange != "" ||
		len(info.Products) > 0 || info.Message != "" || info.RequestCallback

	if hasDetails {
		parts = append(parts, "", "*Enquiry Details:*")
		parts = appendField(parts, "Creator Type", info.CreatorType)
		parts = appendField(parts, "Budget Range", info.BudgetRange)

		if len(info.Products) > 0 {
			parts = append(parts, "", "*Interested Products:*")
			for _, product := range info.Products {
				parts = append(parts, "- "+product)
			}
		}
		if info.Message != "" {
			parts = append(parts, "", "*Message:*", info.Message)
		}
		if info.RequestCallback {
			parts = append(parts, "", "*Request Callback: Yes*")
		}
	}

	parts = append(parts, "", "Thank you!")
	return strings.Join(parts, "\n")
}
