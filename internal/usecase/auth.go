package usecase

import (
	"context"

	"mechmobile/internal/infra"
	"mechmobile/internal/pkg/errs"
	"mechmobile/internal/pkg/jwt"
	"mechmobile/internal/pkg/password"
)

// LoginResult carries the signed portal token and display identity.
type LoginResult struct {
	Token     string
	Email     string
	FirstName string
	LastName  string
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	customers CustomerRepository
	jwt       *jwt.Service
}

func NewAuthUseCase(customers CustomerRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{customers: customers, jwt: jwtService}
}

// Login authenticates a portal account. Unknown email and wrong password
// both collapse to ErrInvalidCredentials so the response does not reveal
// which accounts exist.
func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	customer, err := a.customers.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if customer.PasswordHash == "" {
		return nil, errs.ErrInvalidCredentials
	}
	if err := password.ComparePassword(customer.PasswordHash, plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwt.GenerateToken(customer.ID, customer.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		Token:     token,
		Email:     customer.Email,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
	}, nil
}
