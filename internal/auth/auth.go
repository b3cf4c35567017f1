// Package auth resolves request credentials into identities and issues
// bearer tokens.
package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"quill/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "quill-api"
	tokenAudience = "quill-client"
	tokenTTL      = 72 * time.Hour
)

// UserLookup finds a user by id. Implemented by the user repository.
type UserLookup interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
}

// Resolver turns an optional bearer token into an optional identity.
// Every failure mode (absent, malformed, expired, unknown user) resolves to
// nil; operations that require an identity reject the nil downstream.
type Resolver struct {
	secret []byte
	users  UserLookup
}

// NewResolver creates a Resolver with the given signing secret and user store.
func NewResolver(secret string, users UserLookup) *Resolver {
	return &Resolver{secret: []byte(secret), users: users}
}

// Resolve returns the identity carried by the token, or nil. It never
// returns an error: an invalid token is treated the same as no token.
func (r *Resolver) Resolve(ctx context.Context, tokenString string) *models.Identity {
	if tokenString == "" {
		return nil
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
		return nil
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
		return nil
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil
	}

	user, err := r.users.GetByID(ctx, uint(userID))
	if err != nil || user == nil {
		return nil
	}

	return &models.Identity{ID: user.ID, Name: user.Name}
}

// Issuer mints bearer tokens for authenticated users.
type Issuer struct {
	secret []byte
}

// NewIssuer creates an Issuer with the given signing secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Sign creates a signed token for the given user.
func (i *Issuer) Sign(userID uint) (string, error) {
	if len(i.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(tokenTTL).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}
