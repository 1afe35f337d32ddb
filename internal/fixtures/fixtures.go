// Package fixtures holds the demo dataset used to seed the in-memory store
// and, when PSQL_SEED is set, an empty database.
package fixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bagpresto/internal/core/domain"
)

// DemoPassword is the password of every demo account.
const DemoPassword = "demo1234"

// DemoUser is a seeded account. Password is in clear text and hashed by the
// loader.
type DemoUser struct {
	ID       uuid.UUID
	Email    string
	Password string
	Metadata domain.UserMetadata
}

// Dataset is a consistent set of rows across every table.
type Dataset struct {
	Users       []DemoUser
	Clients     []domain.Client
	Partners    []domain.Partner
	Campaigns   []domain.Campaign
	Allocations []domain.CampaignPartner
	Statistics  domain.Statistics
}

var (
	ClientUserID   = uuid.MustParse("0b6f1c5e-3f43-4d2a-9a51-1d6f4c0b7a01")
	PartnerUserIDs = []uuid.UUID{
		uuid.MustParse("0b6f1c5e-3f43-4d2a-9a51-1d6f4c0b7a02"),
		uuid.MustParse("0b6f1c5e-3f43-4d2a-9a51-1d6f4c0b7a03"),
		uuid.MustParse("0b6f1c5e-3f43-4d2a-9a51-1d6f4c0b7a04"),
	}

	ClientID   = uuid.MustParse("6a0d3f52-8f0e-4b8f-b3d6-2c1e5a7d9001")
	PartnerIDs = []uuid.UUID{
		uuid.MustParse("7c2e4a61-1b3d-4e5f-8a9b-0c1d2e3f4001"),
		uuid.MustParse("7c2e4a61-1b3d-4e5f-8a9b-0c1d2e3f4002"),
		uuid.MustParse("7c2e4a61-1b3d-4e5f-8a9b-0c1d2e3f4003"),
	}
	CampaignIDs = []uuid.UUID{
		uuid.MustParse("9e8d7c6b-5a49-4382-9170-6f5e4d3c2001"),
		uuid.MustParse("9e8d7c6b-5a49-4382-9170-6f5e4d3c2002"),
	}
)

func ptr[T any](v T) *T { return &v }

// Demo builds the dataset relative to now.
func Demo(now time.Time) Dataset {
	now = now.UTC().Truncate(time.Second)
	day := 24 * time.Hour

	ds := Dataset{
		Users: []DemoUser{
			{
				ID:       ClientUserID,
				Email:    "client@demo.com",
				Password: DemoPassword,
				Metadata: domain.UserMetadata{FullName: "Camille Martin", UserType: domain.UserTypeClient},
			},
			{
				ID:       PartnerUserIDs[0],
				Email:    "boulangerie@demo.com",
				Password: DemoPassword,
				Metadata: domain.UserMetadata{FullName: "Paul Lefèvre", UserType: domain.UserTypePartner},
			},
			{
				ID:       PartnerUserIDs[1],
				Email:    "pharmacie@demo.com",
				Password: DemoPassword,
				Metadata: domain.UserMetadata{FullName: "Claire Dubois", UserType: domain.UserTypePartner},
			},
			{
				ID:       PartnerUserIDs[2],
				Email:    "epicerie@demo.com",
				Password: DemoPassword,
				Metadata: domain.UserMetadata{FullName: "Hugo Morel", UserType: domain.UserTypePartner},
			},
		},
		Clients: []domain.Client{
			{
				ID:          ClientID,
				UserID:      ClientUserID,
				CompanyName: "Garage Normand",
				Sector:      "Automobile",
				PostalCode:  "14000",
				Message:     ptr("Entretien et réparation toutes marques"),
				Status:      domain.AccountStatusActive,
				CreatedAt:   now.Add(-60 * day),
			},
		},
		Partners: []domain.Partner{
			{
				ID:            PartnerIDs[0],
				UserID:        PartnerUserIDs[0],
				BusinessName:  "Boulangerie du Port",
				BusinessType:  domain.BusinessTypeBakery,
				Address:       "12 quai Vendeuvre",
				PostalCode:    "14000",
				City:          "Caen",
				BagQuantity:   3000,
				MonthlyVolume: 2500,
				Rating:        ptr(4.8),
				Status:        domain.AccountStatusActive,
				CreatedAt:     now.Add(-90 * day),
			},
			{
				ID:            PartnerIDs[1],
				UserID:        PartnerUserIDs[1],
				BusinessName:  "Pharmacie Saint-Pierre",
				BusinessType:  domain.BusinessTypePharmacy,
				Address:       "3 rue Saint-Pierre",
				PostalCode:    "14000",
				City:          "Caen",
				BagQuantity:   2000,
				MonthlyVolume: 1800,
				Rating:        ptr(4.6),
				Status:        domain.AccountStatusActive,
				CreatedAt:     now.Add(-80 * day),
			},
			{
				ID:            PartnerIDs[2],
				UserID:        PartnerUserIDs[2],
				BusinessName:  "Épicerie du Vieux Marché",
				BusinessType:  domain.BusinessTypeSupermarket,
				Address:       "25 place du Vieux-Marché",
				PostalCode:    "76000",
				City:          "Rouen",
				BagQuantity:   5000,
				MonthlyVolume: 4000,
				Status:        domain.AccountStatusPending,
				CreatedAt:     now.Add(-5 * day),
			},
		},
		Campaigns: []domain.Campaign{
			{
				ID:              CampaignIDs[0],
				ClientID:        ClientID,
				Name:            "Campagne printemps",
				StartDate:       now.Add(-20 * day),
				EndDate:         now.Add(10 * day),
				BagsPrinted:     2000,
				BagsDistributed: 1250,
				Status:          domain.CampaignStatusDistributed,
				Budget:          decimal.NewFromInt(210),
				Version:         4,
				CreatedAt:       now.Add(-25 * day),
				UpdatedAt:       now.Add(-15 * day),
			},
			{
				ID:        CampaignIDs[1],
				ClientID:  ClientID,
				PartnerID: ptr(PartnerIDs[0]),
				Name:      "Campagne rentrée",
				StartDate: now,
				EndDate:   now.Add(domain.CampaignDuration),
				Status:    domain.CampaignStatusPending,
				Budget:    decimal.NewFromInt(100),
				Version:   1,
				CreatedAt: now.Add(-day),
				UpdatedAt: now.Add(-day),
			},
		},
		Allocations: []domain.CampaignPartner{
			{
				ID:              uuid.MustParse("a1b2c3d4-e5f6-4789-8abc-def012345001"),
				CampaignID:      CampaignIDs[0],
				PartnerID:       PartnerIDs[0],
				BagsAllocated:   1000,
				BagsDistributed: 800,
				CreatedAt:       now.Add(-25 * day),
			},
			{
				ID:              uuid.MustParse("a1b2c3d4-e5f6-4789-8abc-def012345002"),
				CampaignID:      CampaignIDs[0],
				PartnerID:       PartnerIDs[1],
				BagsAllocated:   1000,
				BagsDistributed: 450,
				CreatedAt:       now.Add(-25 * day),
			},
			{
				ID:            uuid.MustParse("a1b2c3d4-e5f6-4789-8abc-def012345003"),
				CampaignID:    CampaignIDs[1],
				PartnerID:     PartnerIDs[0],
				BagsAllocated: 1000,
				CreatedAt:     now.Add(-day),
			},
		},
		Statistics: domain.Statistics{
			ID:                   uuid.MustParse("5f4e3d2c-1b0a-4998-8776-655443322001"),
			TotalBagsDistributed: 125000,
			TotalPartners:        48,
			CO2SavedKg:           3125.5,
			UpdatedAt:            now,
		},
	}
	return ds
}
