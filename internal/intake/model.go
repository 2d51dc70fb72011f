package intake

import (
	"time"

	"github.com/google/uuid"
)

// Payload is the loosely-typed request body as received from a form POST.
// Server-stamped keys (source, submission time) are deliberately absent from
// this shape, so client-supplied values for them are dropped at decode time.
type Payload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	Areas        string `json:"areas"`
	InvestorType string `json:"investorType"`
	DealID       string `json:"dealId"`
}

// Field returns the payload value for a form field key.
func (p *Payload) Field(key string) string {
	switch key {
	case "name":
		return p.Name
	case "phone":
		return p.Phone
	case "address":
		return p.Address
	case "email":
		return p.Email
	case "message":
		return p.Message
	case "areas":
		return p.Areas
	case "investorType":
		return p.InvestorType
	case "dealId":
		return p.DealID
	}
	return ""
}

// Submission is the validated record constructed once the required-field
// check passes. It is immutable from that point on: there is no update or
// delete path anywhere in the system.
type Submission struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	Message      string    `json:"message"`
	Areas        string    `json:"areas"`
	InvestorType string    `json:"investorType"`
	DealID       string    `json:"dealId"`
	Source       string    `json:"source"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
