package model

// TokenClaims is the decoded payload the token guard hands to downstream
// handlers. The token itself is the authority; claims are not re-checked
// against any user store.
type TokenClaims struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	LoginTime int64  `json:"login_time"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
