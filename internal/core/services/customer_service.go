package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shopledger/internal/core/ports/services"
	"github.com/shopledger/shopledger/internal/dto"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerSvcFacade.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer creates a customer with zero balances.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Address:    req.Address,
		CreatedAt:  defaultNow(),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by ID", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	customer, err := s.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer fails with a constraint error while payments still reference the customer.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		}
		return err
	}
	s.LogInfo(ctx, "Customer deleted", slog.String("customer_id", customerID))
	return nil
}
