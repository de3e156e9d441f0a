// Package order validates customer order forms and composes the structured
// order record plus the plain-text message the delivery channels transmit.
package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/veloura/storefront/internal/model"
	"github.com/veloura/storefront/internal/selection"
)

// Required form fields, in the order they are reported back when missing.
var requiredFields = []string{"name", "phone", "address", "size"}

// Email is optional; when present it needs an @, a dot after it, and no
// whitespace. Phone and address carry no format constraint beyond non-empty.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidationError reports why an order form was rejected. The caller re-prompts
// the customer; it never aborts the flow.
type ValidationError struct {
	MissingFields []string
	InvalidEmail  bool
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return "missing required fields: " + strings.Join(e.MissingFields, ", ")
	}
	if e.InvalidEmail {
		return "invalid email address"
	}
	return "invalid order form"
}

// Validate checks the customer fields. It returns nil when the form is
// acceptable, otherwise a *ValidationError naming exactly the empty required
// fields, or flagging a malformed email.
func Validate(fields model.CustomerFields) error {
	values := map[string]string{
		"name":    fields.Name,
		"phone":   fields.Phone,
		"address": fields.Address,
		"size":    fields.Size,
	}

	var missing []string
	for _, name := range requiredFields {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}

	if email := strings.TrimSpace(fields.Email); email != "" && !emailPattern.MatchString(email) {
		return &ValidationError{InvalidEmail: true}
	}

	return nil
}

// Compose builds the immutable order record from a selected product and
// validated customer fields. The timestamp is captured here, at composition
// time, not when the message is eventually sent.
func Compose(sel selection.Snapshot, fields model.CustomerFields, now time.Time) (model.OrderRecord, error) {
	if !sel.Selected {
		return model.OrderRecord{}, selection.ErrNoSelection
	}

	record := model.OrderRecord{
		ProductName:  sel.Product.Name,
		UnitPrice:    sel.Product.Price,
		Size:         fields.Size,
		Quantity:     sel.Quantity,
		Total:        sel.Total(),
		Customer:     fields,
		Instructions: strings.TrimSpace(fields.Instructions),
	}
	record.InitMeta(now)
	return record, nil
}

// FormatMessage renders the fixed-section plain-text order message. Staff
// read this text verbatim out of WhatsApp or email, so the section order,
// labels and the Rs. currency prefix are part of the external contract.
func FormatMessage(o model.OrderRecord) string {
	instructions := o.Instructions
	if instructions == "" {
		instructions = "None"
	}

	var b strings.Builder
	b.WriteString("New Order - Veloura\n\n")

	b.WriteString("--- Order Details ---\n")
	fmt.Fprintf(&b, "Product: %s\n", o.ProductName)
	fmt.Fprintf(&b, "Unit Price: Rs. %d\n", o.UnitPrice)
	fmt.Fprintf(&b, "Size: %s\n", o.Size)
	fmt.Fprintf(&b, "Quantity: %d\n", o.Quantity)
	fmt.Fprintf(&b, "Total: Rs. %d\n\n", o.Total)

	b.WriteString("--- Customer Information ---\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer.Phone)
	fmt.Fprintf(&b, "Email: %s\n", o.Customer.Email)
	fmt.Fprintf(&b, "Address: %s\n\n", o.Customer.Address)

	b.WriteString("--- Special Instructions ---\n")
	b.WriteString(instructions + "\n\n")

	fmt.Fprintf(&b, "Placed: %s\n", o.PlacedAt)
	b.WriteString("Sent via Veloura online store")

	return b.String()
}

// Subject returns the email subject line for a composed order.
func Subject(o model.OrderRecord) string {
	return "New Order - " + o.ProductName
}
