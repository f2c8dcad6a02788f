package dto

type RegisterRequest struct {
	Fullname string `form:"fullname" binding:"required,min=1,max=255"`
	Email    string `form:"email" binding:"required,email,max=255"`
	Password string `form:"password" binding:"required,min=8,max=72"`
	// Mixed case is accepted here; the handler lowercases before storing.
	Username string `form:"username" binding:"required,min=3,max=64,alphanum"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"omitempty,max=255"`
	Email    string `json:"email" binding:"omitempty,max=255"`
	Password string `json:"password" binding:"required"`
}

// Identifier returns whichever login handle the client supplied.
func (r *LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

type UpdateAccountRequest struct {
	Fullname string `json:"fullname" binding:"omitempty,min=1,max=255"`
	Email    string `json:"email" binding:"omitempty,email,max=255"`
}
