package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the transport view of a user. It deliberately omits the
// stored credential.
type userResponse struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Avatar        string  `json:"avatar"`
	Points        int     `json:"points"`
	Saved         float64 `json:"saved"`
	Meals         int     `json:"meals"`
	VisitedStores int     `json:"visited_stores"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}
