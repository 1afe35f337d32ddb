package usecase

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"bagpresto/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sessionOf(t domain.UserType) domain.Session {
	return domain.Session{
		TokenID: uuid.NewString(),
		User: domain.User{
			ID:       uuid.New(),
			Email:    string(t) + "@demo.com",
			Metadata: domain.UserMetadata{FullName: "Test", UserType: t},
		},
	}
}
