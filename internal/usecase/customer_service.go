package usecase

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-directory/internal/domain/directory"
	"github.com/wekeepgrowing/customer-directory/internal/domain/entity"
)

// Error codes surfaced in APIResponse envelopes
const (
	ErrorCodeCustomerExists   = "CUSTOMER_EXISTS"
	ErrorCodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	ErrorCodeStripeError      = "STRIPE_ERROR"
)

// CreateCustomerInput carries the application-shaped customer fields for
// the create operation
type CreateCustomerInput struct {
	Email       string            `json:"email" validate:"required,email"`
	CompanyName string            `json:"company_name"`
	Phone       string            `json:"phone"`
	Address     map[string]string `json:"address"`
}

// CustomerService orchestrates the search-then-mutate sequences against
// the customer directory. Directory failures never propagate past this
// layer; every outcome is an APIResponse.
type CustomerService struct {
	directory directory.CustomerDirectory
	logger    *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(dir directory.CustomerDirectory, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		directory: dir,
		logger:    logger,
	}
}

// CreateCustomer registers a new customer unless the email already has a
// directory record. The existence check runs first so one email never
// maps to two directory entries.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) *entity.APIResponse {
	existing, err := s.directory.GetCustomersByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("customer lookup failed",
			zap.String("email", input.Email),
			zap.Error(err))
		return directoryFailure(err)
	}

	if len(existing) > 0 {
		s.logger.Warn("customer already exists",
			zap.String("email", input.Email),
			zap.String("customer_id", existing[0].ID))
		return &entity.APIResponse{
			Success:    false,
			Message:    fmt.Sprintf("Customer with email %s already exists", input.Email),
			ErrorCode:  ErrorCodeCustomerExists,
			StatusCode: http.StatusBadRequest,
		}
	}

	customer, err := s.directory.CreateCustomer(ctx, &directory.CreateCustomerRequest{
		Email:       input.Email,
		CompanyName: input.CompanyName,
		Phone:       input.Phone,
		Address:     input.Address,
	})
	if err != nil {
		s.logger.Error("customer creation failed",
			zap.String("email", input.Email),
			zap.Error(err))
		return directoryFailure(err)
	}

	return &entity.APIResponse{
		Success:    true,
		Message:    "Customer created successfully",
		Data:       customer,
		StatusCode: http.StatusCreated,
	}
}

// DeleteCustomerByEmail deletes the first directory customer matching the
// given email address
func (s *CustomerService) DeleteCustomerByEmail(ctx context.Context, email string) *entity.APIResponse {
	if email == "" {
		return &entity.APIResponse{
			Success:    false,
			Message:    "Email is required for deleting a customer",
			StatusCode: http.StatusBadRequest,
		}
	}

	matches, err := s.directory.GetCustomersByEmail(ctx, email)
	if err != nil {
		s.logger.Error("customer lookup failed",
			zap.String("email", email),
			zap.Error(err))
		return directoryFailure(err)
	}

	if len(matches) == 0 {
		return &entity.APIResponse{
			Success:    false,
			Message:    fmt.Sprintf("No customer found with email %s", email),
			ErrorCode:  ErrorCodeCustomerNotFound,
			StatusCode: http.StatusNotFound,
		}
	}

	result, err := s.directory.DeleteCustomer(ctx, matches[0].ID)
	if err != nil {
		s.logger.Error("customer deletion failed",
			zap.String("email", email),
			zap.String("customer_id", matches[0].ID),
			zap.Error(err))
		return directoryFailure(err)
	}

	if !result.Deleted {
		return &entity.APIResponse{
			Success:    false,
			Message:    fmt.Sprintf("Customer with email %s could not be deleted", email),
			StatusCode: http.StatusInternalServerError,
		}
	}

	return &entity.APIResponse{
		Success:    true,
		Message:    fmt.Sprintf("Customer with email %s deleted successfully", email),
		StatusCode: http.StatusOK,
	}
}

// directoryFailure flattens a directory error into the generic failure
// envelope. No distinction between retryable and permanent failures is
// made here; this layer performs no retries.
func directoryFailure(err error) *entity.APIResponse {
	return &entity.APIResponse{
		Success:    false,
		Message:    err.Error(),
		ErrorCode:  ErrorCodeStripeError,
		StatusCode: http.StatusInternalServerError,
	}
}
