package intake

import "strings"

// Form parameterizes the shared submit pipeline for one endpoint variant.
// Both site forms run the exact same steps; only the destination collection,
// the source tag, and the field sets differ.
type Form struct {
	Name           string // metric/log label
	Label          string // human-readable, used in notification subjects
	Collection     string // destination table
	Source         string // server-stamped source tag
	Required       []string
	Optional       []string
	SuccessMessage string
}

var (
	// GeneralLeadForm is the seller-facing contact form. Sellers are
	// identified by the property address; email stays optional.
	GeneralLeadForm = Form{
		Name:           "lead",
		Label:          "seller lead",
		Collection:     CollectionLeads,
		Source:         "Wholesaling Website",
		Required:       []string{"name", "phone", "address"},
		Optional:       []string{"email", "message"},
		SuccessMessage: "Lead submitted successfully",
	}

	// DealRequestForm is the investor-facing inquiry form. Investors are
	// reachable by email; no property address is involved.
	DealRequestForm = Form{
		Name:           "deal_request",
		Label:          "deal request",
		Collection:     CollectionDealRequests,
		Source:         "Investor Deals Page",
		Required:       []string{"name", "email", "phone"},
		Optional:       []string{"areas", "investorType", "dealId"},
		SuccessMessage: "Request submitted",
	}
)

// Validate checks that every required field is non-empty after trimming.
func (f Form) Validate(p *Payload) error {
	for _, key := range f.Required {
		if strings.TrimSpace(p.Field(key)) == "" {
			return ErrMissingFields
		}
	}
	return nil
}
