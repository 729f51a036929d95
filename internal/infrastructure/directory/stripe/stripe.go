package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-directory/internal/domain/directory"
	dirErrors "github.com/wekeepgrowing/customer-directory/internal/domain/errors"
)

// StripeDirectory implements the CustomerDirectory interface against the
// Stripe customer API. One instance holds one authenticated API client.
type StripeDirectory struct {
	client *client.API
	logger *zap.Logger
}

var _ directory.CustomerDirectory = (*StripeDirectory)(nil)

// NewStripeDirectory creates a directory client authenticated with the
// given secret key
func NewStripeDirectory(secretKey string, logger *zap.Logger) *StripeDirectory {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &StripeDirectory{
		client: api,
		logger: logger,
	}
}

// CreateCustomer registers a new customer with Stripe. The application
// address is translated to Stripe's schema and attached only when the
// translated address is non-empty.
func (d *StripeDirectory) CreateCustomer(ctx context.Context, req *directory.CreateCustomerRequest) (*directory.Customer, error) {
	d.logger.Info("creating stripe customer",
		zap.String("email", req.Email),
		zap.String("company_name", req.CompanyName))

	params := &stripeapi.CustomerParams{
		Email: stripeapi.String(req.Email),
		Name:  stripeapi.String(req.CompanyName),
		Phone: stripeapi.String(req.Phone),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	if translated := directory.TranslateAddress(req.Address); len(translated) > 0 {
		params.Address = addressParams(translated)
	}

	cus, err := d.client.Customers.New(params)
	if err != nil {
		return nil, wrapError(err, "error when creating stripe customer")
	}

	return toCustomer(cus), nil
}

// GetCustomerByID retrieves a customer by its Stripe ID
func (d *StripeDirectory) GetCustomerByID(ctx context.Context, customerID string) (*directory.Customer, error) {
	d.logger.Info("retrieving stripe customer",
		zap.String("customer_id", customerID))

	params := &stripeapi.CustomerParams{}
	params.Context = ctx

	cus, err := d.client.Customers.Get(customerID, params)
	if err != nil {
		return nil, wrapError(err, fmt.Sprintf("error when retrieving stripe customer %s", customerID))
	}

	return toCustomer(cus), nil
}

// GetCustomersByEmail performs an exact-match lookup by email. A single
// match is enough for the existence checks this service performs, so the
// page size is pinned to one.
func (d *StripeDirectory) GetCustomersByEmail(ctx context.Context, email string) ([]*directory.Customer, error) {
	d.logger.Info("searching stripe customers by email",
		zap.String("email", email))

	params := &stripeapi.CustomerListParams{
		Email: stripeapi.String(email),
	}
	params.Context = ctx
	params.Limit = stripeapi.Int64(1)
	params.Single = true

	customers := make([]*directory.Customer, 0, 1)
	iter := d.client.Customers.List(params)
	for iter.Next() {
		customers = append(customers, toCustomer(iter.Customer()))
	}
	if err := iter.Err(); err != nil {
		return nil, wrapError(err, fmt.Sprintf("error when searching for stripe customers with email %s", email))
	}

	return customers, nil
}

// ListCustomers returns one page of customers, resuming after the
// StartingAfter cursor when set
func (d *StripeDirectory) ListCustomers(ctx context.Context, listParams *directory.ListCustomersParams) (*directory.CustomerPage, error) {
	listParams.Normalize()

	d.logger.Info("listing stripe customers",
		zap.Int64("limit", listParams.Limit),
		zap.String("starting_after", listParams.StartingAfter))

	params := &stripeapi.CustomerListParams{}
	params.Context = ctx
	params.Limit = stripeapi.Int64(listParams.Limit)
	params.Single = true
	if listParams.StartingAfter != "" {
		params.StartingAfter = stripeapi.String(listParams.StartingAfter)
	}

	page := &directory.CustomerPage{
		Data: make([]*directory.Customer, 0, listParams.Limit),
	}
	iter := d.client.Customers.List(params)
	for iter.Next() {
		page.Data = append(page.Data, toCustomer(iter.Customer()))
	}
	if err := iter.Err(); err != nil {
		return nil, wrapError(err, "error when listing stripe customers")
	}
	page.HasMore = iter.CustomerList().HasMore

	return page, nil
}

// UpdateCustomer applies a partial update; only fields present in params
// are changed, everything else is preserved by Stripe
func (d *StripeDirectory) UpdateCustomer(ctx context.Context, customerID string, updateParams *directory.UpdateCustomerParams) (*directory.Customer, error) {
	d.logger.Info("updating stripe customer",
		zap.String("customer_id", customerID))

	params := &stripeapi.CustomerParams{}
	params.Context = ctx

	if updateParams.Email != nil {
		params.Email = stripeapi.String(*updateParams.Email)
	}
	if updateParams.Name != nil {
		params.Name = stripeapi.String(*updateParams.Name)
	}
	if updateParams.Phone != nil {
		params.Phone = stripeapi.String(*updateParams.Phone)
	}
	if updateParams.Description != nil {
		params.Description = stripeapi.String(*updateParams.Description)
	}
	if translated := directory.TranslateAddress(updateParams.Address); len(translated) > 0 {
		params.Address = addressParams(translated)
	}

	cus, err := d.client.Customers.Update(customerID, params)
	if err != nil {
		return nil, wrapError(err, fmt.Sprintf("error when updating stripe customer %s", customerID))
	}

	return toCustomer(cus), nil
}

// DeleteCustomer removes a customer from Stripe. Deletion is not
// idempotent on the Stripe side; a second delete for the same ID fails.
func (d *StripeDirectory) DeleteCustomer(ctx context.Context, customerID string) (*directory.DeletionResult, error) {
	d.logger.Info("deleting stripe customer",
		zap.String("customer_id", customerID))

	params := &stripeapi.CustomerParams{}
	params.Context = ctx

	cus, err := d.client.Customers.Del(customerID, params)
	if err != nil {
		return nil, wrapError(err, fmt.Sprintf("error when deleting stripe customer %s", customerID))
	}

	return &directory.DeletionResult{
		ID:      cus.ID,
		Deleted: cus.Deleted,
	}, nil
}

// AttachPaymentMethod attaches an existing payment method to a customer
func (d *StripeDirectory) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) (*directory.PaymentMethod, error) {
	d.logger.Info("attaching payment method",
		zap.String("payment_method_id", paymentMethodID),
		zap.String("customer_id", customerID))

	params := &stripeapi.PaymentMethodAttachParams{
		Customer: stripeapi.String(customerID),
	}
	params.Context = ctx

	pm, err := d.client.PaymentMethods.Attach(paymentMethodID, params)
	if err != nil {
		return nil, wrapError(err, fmt.Sprintf("error attaching payment method %s to customer %s", paymentMethodID, customerID))
	}

	return toPaymentMethod(pm), nil
}

// ListPaymentMethods lists a customer's payment methods of the given type
// (card when unspecified)
func (d *StripeDirectory) ListPaymentMethods(ctx context.Context, customerID, methodType string) ([]*directory.PaymentMethod, error) {
	if methodType == "" {
		methodType = "card"
	}

	d.logger.Info("listing payment methods",
		zap.String("customer_id", customerID),
		zap.String("type", methodType))

	params := &stripeapi.PaymentMethodListParams{
		Customer: stripeapi.String(customerID),
		Type:     stripeapi.String(methodType),
	}
	params.Context = ctx

	methods := make([]*directory.PaymentMethod, 0)
	iter := d.client.PaymentMethods.List(params)
	for iter.Next() {
		methods = append(methods, toPaymentMethod(iter.PaymentMethod()))
	}
	if err := iter.Err(); err != nil {
		return nil, wrapError(err, fmt.Sprintf("error listing payment methods for customer %s", customerID))
	}

	return methods, nil
}

// wrapError normalizes any Stripe SDK failure into a DirectoryError,
// carrying the original error and its classification
func wrapError(err error, message string) *dirErrors.DirectoryError {
	return dirErrors.NewDirectoryError(classifyError(err), message, err)
}

// classifyError maps a Stripe SDK error onto a directory error kind.
// Anything that is not a structured Stripe error counts as transport.
func classifyError(err error) string {
	var stripeErr *stripeapi.Error
	if !errors.As(err, &stripeErr) {
		return dirErrors.KindTransport
	}

	switch {
	case stripeErr.Code == stripeapi.ErrorCodeResourceMissing,
		stripeErr.HTTPStatusCode == http.StatusNotFound:
		return dirErrors.KindNotFound
	case stripeErr.Code == stripeapi.ErrorCodeRateLimit,
		stripeErr.HTTPStatusCode == http.StatusTooManyRequests:
		return dirErrors.KindRateLimited
	case stripeErr.Type == stripeapi.ErrorTypeInvalidRequest,
		stripeErr.Type == stripeapi.ErrorTypeCard:
		return dirErrors.KindValidation
	default:
		return dirErrors.KindTransport
	}
}

// addressParams converts a translated provider-schema address into Stripe
// request params. Keys absent from the map stay nil.
func addressParams(translated map[string]string) *stripeapi.AddressParams {
	params := &stripeapi.AddressParams{}
	if v := translated["city"]; v != "" {
		params.City = stripeapi.String(v)
	}
	if v := translated["country"]; v != "" {
		params.Country = stripeapi.String(v)
	}
	if v := translated["line1"]; v != "" {
		params.Line1 = stripeapi.String(v)
	}
	if v := translated["line2"]; v != "" {
		params.Line2 = stripeapi.String(v)
	}
	if v := translated["postal_code"]; v != "" {
		params.PostalCode = stripeapi.String(v)
	}
	if v := translated["state"]; v != "" {
		params.State = stripeapi.String(v)
	}
	return params
}

func toCustomer(cus *stripeapi.Customer) *directory.Customer {
	return &directory.Customer{
		ID:          cus.ID,
		Email:       cus.Email,
		Name:        cus.Name,
		Phone:       cus.Phone,
		Description: cus.Description,
		Deleted:     cus.Deleted,
		CreatedAt:   cus.Created,
	}
}

func toPaymentMethod(pm *stripeapi.PaymentMethod) *directory.PaymentMethod {
	method := &directory.PaymentMethod{
		ID:   pm.ID,
		Type: string(pm.Type),
	}
	if pm.Customer != nil {
		method.CustomerID = pm.Customer.ID
	}
	if pm.Card != nil {
		method.CardBrand = string(pm.Card.Brand)
		method.CardLast4 = pm.Card.Last4
	}
	return method
}
