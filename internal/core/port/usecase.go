package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/pricing"
	"bagpresto/internal/core/quote"
)

// CampaignUseCase drives the campaign wizard and the client dashboard.
// Operations that need identity take the caller's session explicitly.
type CampaignUseCase interface {
	// PriceQuote prices the quote and reports every step's validity. It
	// never rejects a quote: invalid steps are reported, not raised.
	PriceQuote(ctx context.Context, q domain.Quote) QuoteResp
	// ValidateStep checks a single wizard step.
	ValidateStep(ctx context.Context, step domain.WizardStep, q domain.Quote) quote.StepResult
	// NearbyPartners lists active partners in the postal code's department.
	NearbyPartners(ctx context.Context, postalCode string) ([]domain.Partner, error)
	// SubmitCampaign validates the whole quote and persists a pending
	// campaign whose budget is the quote total.
	SubmitCampaign(ctx context.Context, session domain.Session, q domain.Quote) (*domain.Campaign, error)
	// ClientDashboard returns the caller's client record and campaigns.
	ClientDashboard(ctx context.Context, session domain.Session) (*ClientDashboard, error)
	// UploadLogo validates and stores a logo, returning its public URL.
	UploadLogo(ctx context.Context, session domain.Session, contentType string, data []byte) (string, error)
}

// AdminUseCase backs the admin dashboard.
type AdminUseCase interface {
	Overview(ctx context.Context, session domain.Session) (*AdminOverview, error)
	SetCampaignStatus(ctx context.Context, session domain.Session, req StatusChange) (*domain.Campaign, error)
	SetClientStatus(ctx context.Context, session domain.Session, id uuid.UUID, status domain.AccountStatus) error
	SetPartnerStatus(ctx context.Context, session domain.Session, id uuid.UUID, status domain.AccountStatus) error
}

// PartnerUseCase backs the partner dashboard.
type PartnerUseCase interface {
	Dashboard(ctx context.Context, session domain.Session) (*PartnerDashboard, error)
}

// RegistrationUseCase handles the lead-capture forms of both roles.
type RegistrationUseCase interface {
	RegisterClient(ctx context.Context, req ClientRegistration) (*domain.Client, error)
	RegisterPartner(ctx context.Context, req PartnerRegistration) (*domain.Partner, error)
}

// StatisticsUseCase exposes the landing page counters.
type StatisticsUseCase interface {
	Current(ctx context.Context) (domain.Statistics, error)
}

// AuthProvider is the pluggable identity capability. The token-based
// implementation lives in the usecase package; any other provider may be
// substituted without touching pricing or validation.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string, meta domain.UserMetadata) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, session domain.Session) error
	CurrentSession(ctx context.Context, token string) (*domain.Session, error)
}

// QuoteResp is the priced wizard state.
type QuoteResp struct {
	Breakdown pricing.Breakdown  `json:"breakdown"`
	Total     decimal.Decimal    `json:"total"`
	Steps     []quote.StepResult `json:"steps"`
	Complete  bool               `json:"complete"`
}

// ClientDashboard is the client's home screen.
type ClientDashboard struct {
	Client             domain.Client   `json:"client"`
	Campaigns          []CampaignView  `json:"campaigns"`
	ActiveCampaigns    int             `json:"active_campaigns"`
	CompletedCampaigns int             `json:"completed_campaigns"`
	TotalBudget        decimal.Decimal `json:"total_budget"`
	TotalBagsPrinted   int             `json:"total_bags_printed"`
}

// AdminOverview is the admin's home screen.
type AdminOverview struct {
	Clients            []domain.Client               `json:"clients"`
	Partners           []domain.Partner              `json:"partners"`
	Campaigns          []CampaignView                `json:"campaigns"`
	PendingClients     int                           `json:"pending_clients"`
	ActiveClients      int                           `json:"active_clients"`
	PendingPartners    int                           `json:"pending_partners"`
	ActivePartners     int                           `json:"active_partners"`
	CampaignsPerStatus map[domain.CampaignStatus]int `json:"campaigns_per_status"`
}

// PartnerDashboard is the partner's home screen.
type PartnerDashboard struct {
	Partner              domain.Partner `json:"partner"`
	Allocations          []Allocation   `json:"allocations"`
	TotalBagsReceived    int            `json:"total_bags_received"`
	TotalBagsDistributed int            `json:"total_bags_distributed"`
	UniqueClients        int            `json:"unique_clients"`
}

// StatusChange asks to move a campaign to Status. Version is the version the
// caller last read; Force is the explicit override for transitions outside
// the regular lifecycle.
type StatusChange struct {
	CampaignID uuid.UUID
	Status     domain.CampaignStatus
	Version    int64
	Force      bool
}

// Credentials and profile shared by both registration forms.
type Account struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	FullName string  `json:"full_name" validate:"required"`
	Phone    *string `json:"phone,omitempty"`
}

// ClientRegistration is the advertiser sign-up form.
type ClientRegistration struct {
	Account
	CompanyName string  `json:"company_name" validate:"required"`
	Sector      string  `json:"sector" validate:"required"`
	PostalCode  string  `json:"postal_code" validate:"required,len=5,numeric"`
	Message     *string `json:"message,omitempty" validate:"omitempty,max=200"`
}

// PartnerRegistration is the distributor sign-up form.
type PartnerRegistration struct {
	Account
	BusinessName string              `json:"business_name" validate:"required"`
	BusinessType domain.BusinessType `json:"business_type" validate:"required,oneof=bakery pharmacy supermarket restaurant other"`
	Address      string              `json:"address" validate:"required"`
	PostalCode   string              `json:"postal_code" validate:"required,len=5,numeric"`
	City         string              `json:"city" validate:"required"`
	BagQuantity  int                 `json:"bag_quantity" validate:"min=0"`
}
