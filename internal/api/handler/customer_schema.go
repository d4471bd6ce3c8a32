package handler

type createCustomerRequest struct {
	Name      string   `json:"name"      validate:"required,max=50"`
	Addresses []string `json:"addresses" validate:"required,min=1,dive,required,max=100"`
	Type      string   `json:"type"      validate:"required,oneof=personal company"`
}

type updateCustomerRequest struct {
	Name      *string   `json:"name"      validate:"omitempty,max=50"`
	Addresses *[]string `json:"addresses" validate:"omitempty,min=1,dive,required,max=100"`
	Type      *string   `json:"type"      validate:"omitempty,oneof=personal company"`
}
