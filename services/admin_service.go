package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rlozano/blog-api/database"
	"github.com/rlozano/blog-api/errs"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService struct {
	admins *database.AdminRepo
	secret []byte
	expiry time.Duration
}

func NewAdminService(admins *database.AdminRepo, secret []byte, expiry time.Duration) *AdminService {
	return &AdminService{admins: admins, secret: secret, expiry: expiry}
}

// adminClaims is the claim set embedded in issued tokens.
type adminClaims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// PublicAdmin is the projection of an admin account returned to clients. The
// password hash never leaves this package.
type PublicAdmin struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResult is a signed token plus the public projection of the account.
type LoginResult struct {
	Token string      `json:"token"`
	User  PublicAdmin `json:"user"`
}

// TokenClaims is the verified identity extracted from a bearer token.
type TokenClaims struct {
	ID       string
	Username string
	Role     string
}

// Login verifies credentials and issues a signed token. Unknown usernames and
// wrong passwords fail identically so accounts cannot be enumerated.
func (s *AdminService) Login(username, password string) (*LoginResult, error) {
	admin, err := s.admins.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewInvalidCredentials()
		}
		return nil, errs.NewDatabaseError("find", "admin", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, errs.NewInvalidCredentials()
	}

	now := time.Now()
	claims := adminClaims{
		ID:       admin.ID.String(),
		Username: admin.Username,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errs.NewInternalError("failed to sign token")
	}

	return &LoginResult{
		Token: token,
		User:  PublicAdmin{Username: admin.Username, Role: admin.Role},
	}, nil
}

// VerifyToken checks signature and expiry of a raw bearer token and returns
// the embedded claims. Every failure mode collapses into one invalid-token
// error.
func (s *AdminService) VerifyToken(raw string) (*TokenClaims, error) {
	var claims adminClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errs.NewInvalidToken()
	}

	return &TokenClaims{
		ID:       claims.ID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
