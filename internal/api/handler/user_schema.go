package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}

// updateMeRequest carries the optional self-profile fields. currentPassword
// is only meaningful alongside password; the service enforces that pairing.
type updateMeRequest struct {
	Name            string `json:"name"            validate:"omitempty,min=1"`
	Password        string `json:"password"        validate:"omitempty,min=6"`
	CurrentPassword string `json:"currentPassword" validate:"-"`
}
