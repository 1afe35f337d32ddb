package usecase

import (
	"errors"

	"github.com/google/uuid"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

// remote turns a collaborator failure into a RemoteError unless it already
// carries a code.
func remote(err error) error {
	if err == nil {
		return nil
	}
	if apperr.As(err) != nil {
		return err
	}
	return apperr.Remote(err)
}

// notFoundOr maps port.ErrNotFound to a NotFound error with msg and
// anything else to a RemoteError.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, port.ErrNotFound) {
		return apperr.New(apperr.CodeNotFound, msg)
	}
	return remote(err)
}

// requireRole rejects sessions that do not belong to a user of type t.
func requireRole(session domain.Session, t domain.UserType) error {
	if session.User.ID == uuid.Nil {
		return apperr.New(apperr.CodeUnauthorized, "Authentification requise")
	}
	if !session.Is(t) {
		return apperr.New(apperr.CodeForbidden, "Accès refusé")
	}
	return nil
}
