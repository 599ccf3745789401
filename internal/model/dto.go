package model

// ========== Auth DTOs ==========

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Password2   string `json:"password2" binding:"required"`
	FirstName   string `json:"first_name" binding:"max=100"`
	LastName    string `json:"last_name" binding:"max=100"`
	PhoneNumber string `json:"phone_number" binding:"max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token pair. The access token is short
// lived; the refresh token mints new access tokens until natural expiry.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	OldPassword  string `json:"old_password" binding:"required"`
	NewPassword  string `json:"new_password" binding:"required"`
	NewPassword2 string `json:"new_password2" binding:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyResetRequest struct {
	Email        string `json:"email" binding:"required,email"`
	OTPCode      string `json:"otp_code" binding:"required,len=6"`
	NewPassword  string `json:"new_password" binding:"required"`
	NewPassword2 string `json:"new_password2" binding:"required"`
}

type VerifyEmailRequest struct {
	OTPCode string `json:"otp_code" binding:"required,len=6"`
}

// DeleteAccountRequest re-checks the password before a destructive delete.
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries a partial profile update. Nil fields are left
// untouched; email and verification flags are never client-writable.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,max=100"`
	LastName    *string `json:"last_name" binding:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=20"`
}

type OTPSentResponse struct {
	Message   string `json:"message"`
	Email     string `json:"email"`
	ExpiresIn int    `json:"expires_in"` // seconds until code expires
}

// ========== Task DTOs ==========

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateTaskRequest covers both PUT (full) and PATCH (partial) updates.
// The handler decides which fields are mandatory.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
}

// TaskListQuery carries owner-scoped list filters. Date bounds apply to
// updated_at; search matches title or description case-insensitively.
type TaskListQuery struct {
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Search      string `form:"search"`
	IsCompleted *bool  `form:"is_completed"`
	OrderBy     string `form:"order_by"`
	Page        int    `form:"page,default=1"`
	PageSize    int    `form:"page_size,default=20"`
}

// TaskListResponse is the page envelope for task listings.
type TaskListResponse struct {
	Count        int64  `json:"count"`
	TotalPages   int    `json:"total_pages"`
	CurrentPage  int    `json:"current_page"`
	NextPage     *int   `json:"next_page"`
	PreviousPage *int   `json:"previous_page"`
	Data         []Task `json:"data"`
}

// ========== Generic DTOs ==========

type SuccessResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}
