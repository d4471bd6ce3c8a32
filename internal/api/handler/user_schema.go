package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=5,max=50"`
	Email    string `json:"email"    validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8,max=50,password"`
	Role     string `json:"role"     validate:"required,oneof='admin' 'sale personal' 'sale company'"`
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=5,max=50"`
	Email    *string `json:"email"    validate:"omitempty,email,max=50"`
	Password *string `json:"password" validate:"omitempty,min=8,max=50,password"`
	Role     *string `json:"role"     validate:"omitempty,oneof='admin' 'sale personal' 'sale company'"`
}
