package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/WebeWizard/flashcard-server/core/binder"
	"github.com/WebeWizard/flashcard-server/core/handler"
	"github.com/WebeWizard/flashcard-server/core/response"
	"github.com/WebeWizard/flashcard-server/middleware"
)

// AccountService is the slice of Manager the HTTP handlers need. Tests swap
// in a stub.
type AccountService interface {
	CreateAccount(ctx context.Context, email, password string) (Account, error)
	VerifyAccount(ctx context.Context, email, token string) error
	Login(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context, token string) error
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// accountPayload is the public view of an account. IDs travel as decimal
// strings because JavaScript numbers cannot hold a full 64-bit value.
type accountPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type sessionPayload struct {
	Token     string    `json:"token"`
	AccountID string    `json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateAccountHandler handles POST /account/create.
func CreateAccountHandler[C handler.Context](svc AccountService) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		var req credentialsRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		account, err := svc.CreateAccount(ctx, req.Email, req.Password)
		if err != nil {
			return response.Error(mapAccountError(err))
		}

		return response.JSONWithStatus(accountPayload{
			ID:       account.ID.String(),
			Email:    account.Email,
			Verified: account.Verified,
		}, http.StatusCreated)
	}
}

// VerifyAccountHandler handles POST /account/verify.
func VerifyAccountHandler[C handler.Context](svc AccountService) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		var req verifyRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		if err := svc.VerifyAccount(ctx, req.Email, req.Token); err != nil {
			return response.Error(mapAccountError(err))
		}

		return response.Status(http.StatusOK)
	}
}

// LoginHandler handles POST /account/login. The returned token goes into the
// x-webe-token header of subsequent requests.
func LoginHandler[C handler.Context](svc AccountService) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		var req credentialsRequest
		if err := binder.JSON()(ctx.Request(), &req); err != nil {
			return response.Error(response.ErrBadRequest.WithMessage(err.Error()))
		}

		session, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			return response.Error(mapAccountError(err))
		}

		return response.JSON(sessionPayload{
			Token:     session.Token,
			AccountID: session.AccountID.String(),
			ExpiresAt: session.ExpiresAt,
		})
	}
}

// LogoutHandler handles POST /account/logout. It runs behind the auth gate,
// so the header token has already been validated.
func LogoutHandler[C handler.Context](svc AccountService) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		token := ctx.Request().Header.Get(middleware.SessionTokenHeader)
		if err := svc.Logout(ctx, token); err != nil {
			return response.Error(mapAccountError(err))
		}
		return response.Status(http.StatusOK)
	}
}

// mapAccountError converts package sentinels into HTTP error responses;
// anything unrecognized stays a 500.
func mapAccountError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPassword):
		return response.ErrUnprocessableEntity.WithMessage(err.Error())
	case errors.Is(err, ErrEmailTaken):
		return response.ErrConflict.WithMessage(ErrEmailTaken.Error())
	case errors.Is(err, ErrVerificationInvalid):
		return response.ErrUnauthorized.WithMessage(ErrVerificationInvalid.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return response.ErrUnauthorized.WithMessage(ErrInvalidCredentials.Error())
	case errors.Is(err, ErrNotVerified):
		return response.ErrForbidden.WithMessage(ErrNotVerified.Error())
	case errors.Is(err, ErrSessionInvalid):
		return response.ErrUnauthorized.WithMessage(ErrSessionInvalid.Error())
	default:
		return err
	}
}
