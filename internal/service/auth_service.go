package service

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pawsome-backend/internal/model"
)

const adminRole = "admin"

// AuthService holds the single configured admin identity and the signing
// secret. All fields are fixed at construction; there is no runtime
// mutation path and no server-side token state.
type AuthService struct {
	adminUsername     string
	adminPasswordHash string
	jwtSecret         []byte
	tokenExpiry       time.Duration

	// comparePassword is bcrypt in production; tests swap it to observe
	// whether the hash comparison ran at all.
	comparePassword func(hashedPassword []byte, password []byte) error
	now             func() time.Time
}

func NewAuthService(adminUsername string, adminPasswordHash string, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	if tokenExpiry <= 0 {
		tokenExpiry = time.Hour
	}

	return &AuthService{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         []byte(jwtSecret),
		tokenExpiry:       tokenExpiry,
		comparePassword:   bcrypt.CompareHashAndPassword,
		now:               time.Now,
	}
}

// VerifyCredentials reports whether the submitted pair matches the
// configured admin identity. Missing configuration fails closed: the
// caller only ever learns "false", the reason goes to the server log.
func (s *AuthService) VerifyCredentials(username string, password string) bool {
	if s.adminUsername == "" || s.adminPasswordHash == "" {
		slog.Error("admin username or password hash is not configured; rejecting login")
		return false
	}

	if username != s.adminUsername {
		return false
	}

	return s.comparePassword([]byte(s.adminPasswordHash), []byte(password)) == nil
}

// IssueToken mints a signed token for the admin identity. A missing
// signing secret is a server configuration error, not an authentication
// failure; callers must map ErrAuthNotConfigured to a 500.
func (s *AuthService) IssueToken(username string) (string, error) {
	if len(s.jwtSecret) == 0 {
		slog.Error("JWT secret is not configured; cannot issue token")
		return "", model.ErrAuthNotConfigured
	}

	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username":   username,
		"role":       adminRole,
		"login_time": now.Unix(),
		"iat":        now.Unix(),
		"exp":        now.Add(s.tokenExpiry).Unix(),
	})

	return token.SignedString(s.jwtSecret)
}

// ValidateToken checks signature and expiry and returns the embedded
// claims. Signature valid and not expired implies admin; no further
// lookup happens.
func (s *AuthService) ValidateToken(tokenString string) (*model.TokenClaims, error) {
	if len(s.jwtSecret) == 0 {
		slog.Error("JWT secret is not configured; cannot verify token")
		return nil, model.ErrAuthNotConfigured
	}

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	claims := &model.TokenClaims{}
	claims.Username, _ = claimsMap["username"].(string)
	claims.Role, _ = claimsMap["role"].(string)
	if loginTime, exists := claimsMap["login_time"].(float64); exists {
		claims.LoginTime = int64(loginTime)
	}

	return claims, nil
}
