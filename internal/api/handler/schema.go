package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username    string `json:"username"     validate:"required,min=3"`
	Email       string `json:"email"        validate:"required,email"`
	FirstName   string `json:"first_name"   validate:"required"`
	LastName    string `json:"last_name"    validate:"required"`
	Password    string `json:"password"     validate:"required,min=6"`
	Role        string `json:"role"         validate:"required,oneof=user admin"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// loginRequest is bound from an OAuth2-style form-encoded body.
type loginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- User ---

type changePasswordRequest struct {
	Password    string `json:"password"     validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// --- Todos ---

type todoRequest struct {
	Title       string `json:"title"       validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=3,max=100"`
	Priority    int    `json:"priority"    validate:"required,gt=0,lt=6"`
	Complete    bool   `json:"complete"`
}
