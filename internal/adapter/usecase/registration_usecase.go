package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
	"bagpresto/internal/core/quote"
)

// RegistrationUseCase implements port.RegistrationUseCase. An account is
// created through the AuthProvider, then the role record is inserted; if
// the insert fails the user is removed again so no half-registered account
// remains.
type RegistrationUseCase struct {
	auth     port.AuthProvider
	users    port.UserRepository
	clients  port.ClientRepository
	partners port.PartnerRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewRegistrationUseCase wires the registration service.
func NewRegistrationUseCase(
	auth port.AuthProvider,
	users port.UserRepository,
	clients port.ClientRepository,
	partners port.PartnerRepository,
	logger *slog.Logger,
) *RegistrationUseCase {
	return &RegistrationUseCase{auth: auth, users: users, clients: clients, partners: partners, logger: logger, now: time.Now}
}

// RegisterClient signs up an advertiser in a served department.
func (u *RegistrationUseCase) RegisterClient(ctx context.Context, req port.ClientRegistration) (*domain.Client, error) {
	if err := checkAccount(req.PostalCode, req.Password); err != nil {
		return nil, err
	}
	user, err := u.auth.SignUp(ctx, req.Email, req.Password, domain.UserMetadata{
		FullName: req.FullName,
		Phone:    req.Phone,
		UserType: domain.UserTypeClient,
	})
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		ID:          uuid.New(),
		UserID:      user.ID,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Sector:      strings.TrimSpace(req.Sector),
		PostalCode:  req.PostalCode,
		Message:     req.Message,
		Status:      domain.AccountStatusPending,
		CreatedAt:   u.now().UTC(),
	}
	if err = u.clients.CreateClient(ctx, client); err != nil {
		u.rollback(ctx, user.ID)
		return nil, remote(err)
	}
	registrations.WithLabelValues(string(domain.UserTypeClient)).Inc()
	return client, nil
}

// RegisterPartner signs up a distributor in a served department.
func (u *RegistrationUseCase) RegisterPartner(ctx context.Context, req port.PartnerRegistration) (*domain.Partner, error) {
	if err := checkAccount(req.PostalCode, req.Password); err != nil {
		return nil, err
	}
	user, err := u.auth.SignUp(ctx, req.Email, req.Password, domain.UserMetadata{
		FullName: req.FullName,
		Phone:    req.Phone,
		UserType: domain.UserTypePartner,
	})
	if err != nil {
		return nil, err
	}

	businessType := req.BusinessType
	if !businessType.IsValid() {
		businessType = domain.BusinessTypeOther
	}
	partner := &domain.Partner{
		ID:           uuid.New(),
		UserID:       user.ID,
		BusinessName: strings.TrimSpace(req.BusinessName),
		BusinessType: businessType,
		Address:      strings.TrimSpace(req.Address),
		PostalCode:   req.PostalCode,
		City:         strings.TrimSpace(req.City),
		BagQuantity:  req.BagQuantity,
		Status:       domain.AccountStatusPending,
		CreatedAt:    u.now().UTC(),
	}
	if err = u.partners.CreatePartner(ctx, partner); err != nil {
		u.rollback(ctx, user.ID)
		return nil, remote(err)
	}
	registrations.WithLabelValues(string(domain.UserTypePartner)).Inc()
	return partner, nil
}

func checkAccount(postalCode, password string) error {
	if err := quote.CheckPostalCode(postalCode); err != nil {
		return err
	}
	return quote.CheckPassword(password)
}

func (u *RegistrationUseCase) rollback(ctx context.Context, userID uuid.UUID) {
	if err := u.users.DeleteUser(context.WithoutCancel(ctx), userID); err != nil {
		u.logger.Error("registration rollback failed",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)
	}
}
