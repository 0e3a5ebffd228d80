package dto

type CustomerRequest struct {
	Name     string  `json:"name" validate:"required"`
	Document *string `json:"document"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}

type CustomerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Document  *string `json:"document,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type SupplierRequest struct {
	Name          string  `json:"name" validate:"required"`
	TaxID         *string `json:"tax_id"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Phone2        *string `json:"phone2"`
	Address       *string `json:"address"`
	Notes         *string `json:"notes"`
}

type SupplierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TaxID         *string `json:"tax_id,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Phone2        *string `json:"phone2,omitempty"`
	Address       *string `json:"address,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// PartnerFilter is shared by the customer and supplier listings.
type PartnerFilter struct {
	Q     string `form:"q"`
	Limit int    `form:"limit,default=500" validate:"min=1,max=1000"`
}
