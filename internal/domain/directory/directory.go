package directory

import (
	"context"
)

// CustomerDirectory defines the interface for the external customer
// directory (the payment provider's hosted customer API).
type CustomerDirectory interface {
	// CreateCustomer registers a new customer with the directory
	CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*Customer, error)

	// GetCustomerByID retrieves a single customer by its provider-assigned ID
	GetCustomerByID(ctx context.Context, customerID string) (*Customer, error)

	// GetCustomersByEmail performs an exact-match lookup by email address.
	// Returns an empty slice, never nil, when nothing matches.
	GetCustomersByEmail(ctx context.Context, email string) ([]*Customer, error)

	// ListCustomers forward-paginates through the directory
	ListCustomers(ctx context.Context, params *ListCustomersParams) (*CustomerPage, error)

	// UpdateCustomer applies a partial update; only non-nil fields are changed
	UpdateCustomer(ctx context.Context, customerID string, params *UpdateCustomerParams) (*Customer, error)

	// DeleteCustomer removes a customer from the directory
	DeleteCustomer(ctx context.Context, customerID string) (*DeletionResult, error)

	// AttachPaymentMethod attaches an existing payment method to a customer
	AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) (*PaymentMethod, error)

	// ListPaymentMethods lists a customer's payment methods of the given type
	ListPaymentMethods(ctx context.Context, customerID, methodType string) ([]*PaymentMethod, error)
}

// Customer is the directory's view of a customer. The directory owns these
// records; this service only passes them through.
type Customer struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
	Deleted     bool   `json:"deleted,omitempty"`
	CreatedAt   int64  `json:"created_at,omitempty"`
}

// CreateCustomerRequest carries the application-shaped customer fields for
// registration. Address uses the application schema and is translated to the
// provider schema before submission.
type CreateCustomerRequest struct {
	Email       string            `json:"email"`
	CompanyName string            `json:"company_name"`
	Phone       string            `json:"phone"`
	Address     map[string]string `json:"address,omitempty"`
}

// UpdateCustomerParams is an explicit partial-update record. A nil field
// means "leave unchanged"; a present field means "set to this value".
type UpdateCustomerParams struct {
	Email       *string           `json:"email,omitempty"`
	Name        *string           `json:"name,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Description *string           `json:"description,omitempty"`
	Address     map[string]string `json:"address,omitempty"`
}

// ListCustomersParams controls forward pagination. StartingAfter is an
// opaque cursor (a previously returned customer ID) that resumes after
// that item.
type ListCustomersParams struct {
	Limit         int64  `json:"limit" query:"limit"`
	StartingAfter string `json:"starting_after" query:"starting_after"`
}

// Pagination constants. The directory caps pages at 100 items.
const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

// Normalize clamps the page size into the directory's accepted range.
func (p *ListCustomersParams) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	} else if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
}

// CustomerPage is a single page of list results
type CustomerPage struct {
	Data    []*Customer `json:"data"`
	HasMore bool        `json:"has_more"`
}

// DeletionResult reports the outcome of a delete call. The directory does
// not guarantee idempotency; deleting twice may fail outright.
type DeletionResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// PaymentMethod is the directory's view of a stored payment method
type PaymentMethod struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	CustomerID string `json:"customer_id"`
	CardBrand  string `json:"card_brand,omitempty"`
	CardLast4  string `json:"card_last4,omitempty"`
}
