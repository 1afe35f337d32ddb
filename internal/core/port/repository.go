package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"bagpresto/internal/core/domain"
)

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("duplicate")
	// ErrVersionConflict is returned when an optimistic update lost the race.
	ErrVersionConflict = errors.New("version conflict")
)

// ClientRepository is the table store of advertiser accounts. Lists are
// ordered by creation date, newest first.
type ClientRepository interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClientByUserID(ctx context.Context, userID uuid.UUID) (*domain.Client, error)
	CreateClient(ctx context.Context, c *domain.Client) error
	UpdateClientStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) error
}

// PartnerFilter narrows a partner listing. Zero values do not filter.
type PartnerFilter struct {
	Department string
	Status     domain.AccountStatus
	IDs        []uuid.UUID
}

// PartnerRepository is the table store of distribution partners. Lists are
// ordered by creation date, newest first.
type PartnerRepository interface {
	ListPartners(ctx context.Context, filter PartnerFilter) ([]domain.Partner, error)
	GetPartnerByUserID(ctx context.Context, userID uuid.UUID) (*domain.Partner, error)
	CreatePartner(ctx context.Context, p *domain.Partner) error
	UpdatePartnerStatus(ctx context.Context, id uuid.UUID, status domain.AccountStatus) error
}

// CampaignFilter narrows a campaign listing. A nil ClientID lists all.
type CampaignFilter struct {
	ClientID *uuid.UUID
}

// CampaignView is a campaign joined with its client's company name.
type CampaignView struct {
	domain.Campaign
	ClientCompanyName string `json:"client_company_name"`
	PartnersCount     int    `json:"partners_count"`
}

// Allocation is a partner's share of a campaign joined with the campaign
// and its client.
type Allocation struct {
	ID                uuid.UUID `json:"id"`
	CampaignID        uuid.UUID `json:"campaign_id"`
	BagsAllocated     int       `json:"bags_allocated"`
	BagsDistributed   int       `json:"bags_distributed"`
	CampaignName      string    `json:"campaign_name"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	ClientCompanyName string    `json:"client_company_name"`
	ClientSector      string    `json:"client_sector"`
}

// CampaignRepository is the table store of campaigns and their partner
// allocations.
type CampaignRepository interface {
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]CampaignView, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// CreateCampaign stores the campaign and its allocations atomically.
	CreateCampaign(ctx context.Context, c *domain.Campaign, allocations []domain.CampaignPartner) error
	// UpdateCampaignStatus sets status when the stored version equals
	// version and returns the updated row. A mismatch yields
	// ErrVersionConflict, a missing row ErrNotFound.
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, version int64, status domain.CampaignStatus) (*domain.Campaign, error)
	ListAllocations(ctx context.Context, partnerID uuid.UUID) ([]Allocation, error)
}

// StatisticsRepository reads the public counters.
type StatisticsRepository interface {
	// CurrentStatistics returns the most recent row, ErrNotFound when empty.
	CurrentStatistics(ctx context.Context) (*domain.Statistics, error)
}

// UserRepository stores authentication principals. E-mails are unique.
type UserRepository interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// Store groups every table of the collaborator.
type Store interface {
	ClientRepository
	PartnerRepository
	CampaignRepository
	StatisticsRepository
	UserRepository
	Ping(ctx context.Context) error
}

// SessionStore tracks live session ids so sign-out can revoke tokens.
type SessionStore interface {
	SaveSession(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error
	HasSession(ctx context.Context, tokenID string) (bool, error)
	DeleteSession(ctx context.Context, tokenID string) error
}

// LogoStorage persists validated logo files and returns their public URL.
type LogoStorage interface {
	SaveLogo(ctx context.Context, name string, data []byte) (string, error)
}
