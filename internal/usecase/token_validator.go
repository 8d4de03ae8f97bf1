package usecase

import (
	"creator-market/internal/domain/user"
	"creator-market/internal/pkg/errs"
	"creator-market/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Principal is the caller behind a validated access token.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	Validate(token string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

// Validate rejects tokens whose role this service does not know, so a role
// added upstream never silently passes a hierarchy check.
func (t *tokenValidatorImpl) Validate(token string) (Principal, error) {
	claims, err := t.jwtService.Parse(token)
	if err != nil {
		return Principal{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, errs.Wrapf(err, "token for user %s", claims.UserID)
	}
	return Principal{UserID: claims.UserID, Role: role}, nil
}
