package dto

import (
	"github.com/vinaykesireddy4-lgtm/vinay-the-nectar-asia/internal/core/domain"
)

// CreateCustomerRequest defines the data required to create a customer.
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	GSTNumber string `json:"gstNumber" binding:"omitempty,gstin"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// UpdateCustomerRequest defines the data allowed for updating a customer.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateCustomerRequest struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	GSTNumber *string `json:"gstNumber" binding:"omitempty,gstin"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	GSTNumber  string `json:"gstNumber"`
	Email      string `json:"email"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Address:    c.Address,
		Phone:      c.Phone,
		GSTNumber:  c.GSTNumber,
		Email:      c.Email,
	}
}

// ToCustomerResponses converts a slice of domain.Customer to DTOs.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
