package usecase

import (
	"chershare/internal/domain/account"
	"chershare/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the caller's account id.
// Token issuance belongs to the platform's identity system; only
// validation happens here.
type TokenValidator interface {
	ValidateToken(token string) (account.ID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (account.ID, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return "", err
	}
	return account.NewID(claims.AccountID)
}
