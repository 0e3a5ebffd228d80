package service

import (
	"context"
	"errors"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/model"
	"minegocio/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerService is the customer and supplier address book.
type PartnerService struct {
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
}

func NewPartnerService(customers repository.CustomerRepository, suppliers repository.SupplierRepository) *PartnerService {
	return &PartnerService{customers: customers, suppliers: suppliers}
}

func (s *PartnerService) CreateCustomer(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c := &model.Customer{
		Name:     req.Name,
		Document: req.Document,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Notes:    req.Notes,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := customerToResponse(c)
	return &resp, nil
}

func (s *PartnerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	c.Name = req.Name
	c.Document = req.Document
	c.Phone = req.Phone
	c.Email = req.Email
	c.Address = req.Address
	c.Notes = req.Notes
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := customerToResponse(c)
	return &resp, nil
}

func (s *PartnerService) ListCustomers(ctx context.Context, filter dto.PartnerFilter) ([]dto.CustomerResponse, error) {
	customers, err := s.customers.List(ctx, filter.Q, filter.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, customerToResponse(&customers[i]))
	}
	return out, nil
}

func (s *PartnerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customers.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return s.customers.Delete(ctx, id)
}

func (s *PartnerService) CreateSupplier(ctx context.Context, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	sup := &model.Supplier{
		Name:          req.Name,
		TaxID:         req.TaxID,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Phone2:        req.Phone2,
		Address:       req.Address,
		Notes:         req.Notes,
	}
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, err
	}
	resp := supplierToResponse(sup)
	return &resp, nil
}

func (s *PartnerService) UpdateSupplier(ctx context.Context, id uuid.UUID, req dto.SupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	sup.Name = req.Name
	sup.TaxID = req.TaxID
	sup.ContactPerson = req.ContactPerson
	sup.Email = req.Email
	sup.Phone = req.Phone
	sup.Phone2 = req.Phone2
	sup.Address = req.Address
	sup.Notes = req.Notes
	if err := s.suppliers.Update(ctx, sup); err != nil {
		return nil, err
	}
	resp := supplierToResponse(sup)
	return &resp, nil
}

func (s *PartnerService) ListSuppliers(ctx context.Context, filter dto.PartnerFilter) ([]dto.SupplierResponse, error) {
	suppliers, err := s.suppliers.List(ctx, filter.Q, filter.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

func (s *PartnerService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if _, err := s.suppliers.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}
	return s.suppliers.Delete(ctx, id)
}

func customerToResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Document:  c.Document,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func supplierToResponse(s *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		TaxID:         s.TaxID,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Phone2:        s.Phone2,
		Address:       s.Address,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
}
