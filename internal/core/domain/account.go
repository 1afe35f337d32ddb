package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccountStatus is the moderation state shared by clients and partners.
type AccountStatus string

const (
	AccountStatusPending   AccountStatus = "pending"
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
)

// IsValid reports whether the value is a known AccountStatus.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusPending, AccountStatusActive, AccountStatusSuspended:
		return true
	}
	return false
}

// ParseAccountStatus converts raw input into an AccountStatus.
func ParseAccountStatus(value string) (AccountStatus, error) {
	status := AccountStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid account status %q", value)
	}
	return status, nil
}

// BusinessType classifies a distribution partner.
type BusinessType string

const (
	BusinessTypeBakery      BusinessType = "bakery"
	BusinessTypePharmacy    BusinessType = "pharmacy"
	BusinessTypeSupermarket BusinessType = "supermarket"
	BusinessTypeRestaurant  BusinessType = "restaurant"
	BusinessTypeOther       BusinessType = "other"
)

// IsValid reports whether the value is a known BusinessType.
func (t BusinessType) IsValid() bool {
	switch t {
	case BusinessTypeBakery, BusinessTypePharmacy, BusinessTypeSupermarket,
		BusinessTypeRestaurant, BusinessTypeOther:
		return true
	}
	return false
}

// Client is an advertiser account.
type Client struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	CompanyName string        `json:"company_name"`
	Sector      string        `json:"sector"`
	PostalCode  string        `json:"postal_code"`
	LogoURL     *string       `json:"logo_url,omitempty"`
	Message     *string       `json:"message,omitempty"`
	Status      AccountStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Partner is a shop that hands out printed bags. MonthlyVolume and Rating
// feed dashboard aggregates only; they never affect pricing.
type Partner struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user_id"`
	BusinessName  string        `json:"business_name"`
	BusinessType  BusinessType  `json:"business_type"`
	Address       string        `json:"address"`
	PostalCode    string        `json:"postal_code"`
	City          string        `json:"city"`
	BagQuantity   int           `json:"bag_quantity"`
	MonthlyVolume int           `json:"monthly_volume"`
	Rating        *float64      `json:"rating,omitempty"`
	Status        AccountStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Department returns the two-digit department prefix of the partner's postal code.
func (p Partner) Department() string {
	return Department(p.PostalCode)
}

// Department returns the first two characters of a postal code, or the
// whole code when it is shorter.
func Department(postalCode string) string {
	if len(postalCode) < 2 {
		return postalCode
	}
	return postalCode[:2]
}
