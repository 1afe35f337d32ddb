// Package memory is an in-process implementation of the table store. It is
// used by STORE_DRIVER=memory and by tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
	"bagpresto/internal/fixtures"
)

// Store implements port.Store. Every read returns copies.
type Store struct {
	mu          sync.RWMutex
	users       map[uuid.UUID]domain.User
	clients     map[uuid.UUID]domain.Client
	partners    map[uuid.UUID]domain.Partner
	campaigns   map[uuid.UUID]domain.Campaign
	allocations []domain.CampaignPartner
	stats       *domain.Statistics
	now         func() time.Time
}

var _ port.Store = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]domain.User),
		clients:   make(map[uuid.UUID]domain.Client),
		partners:  make(map[uuid.UUID]domain.Partner),
		campaigns: make(map[uuid.UUID]domain.Campaign),
		now:       time.Now,
	}
}

// Load inserts a dataset, hashing the demo passwords.
func (s *Store) Load(ds fixtures.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, du := range ds.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(du.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		s.users[du.ID] = domain.User{
			ID:           du.ID,
			Email:        du.Email,
			PasswordHash: string(hash),
			Metadata:     du.Metadata,
			CreatedAt:    s.now().UTC(),
		}
	}
	for _, c := range ds.Clients {
		s.clients[c.ID] = c
	}
	for _, p := range ds.Partners {
		s.partners[p.ID] = p
	}
	for _, c := range ds.Campaigns {
		s.campaigns[c.ID] = c
	}
	s.allocations = append(s.allocations, ds.Allocations...)
	stats := ds.Statistics
	s.stats = &stats
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

func newestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

// Clients

func (s *Store) ListClients(context.Context) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	newestFirst(out, func(c domain.Client) time.Time { return c.CreatedAt })
	return out, nil
}

func (s *Store) GetClientByUserID(_ context.Context, userID uuid.UUID) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, port.ErrNotFound
}

func (s *Store) CreateClient(_ context.Context, c *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c.ID]; ok {
		return port.ErrDuplicate
	}
	for _, existing := range s.clients {
		if existing.UserID == c.UserID {
			return port.ErrDuplicate
		}
	}
	s.clients[c.ID] = *c
	return nil
}

func (s *Store) UpdateClientStatus(_ context.Context, id uuid.UUID, status domain.AccountStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[id]
	if !ok {
		return port.ErrNotFound
	}
	c.Status = status
	s.clients[id] = c
	return nil
}

// Partners

func (s *Store) ListPartners(_ context.Context, filter port.PartnerFilter) ([]domain.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Partner, 0, len(s.partners))
	for _, p := range s.partners {
		if filter.Department != "" && p.Department() != filter.Department {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if len(filter.IDs) > 0 && !slices.Contains(filter.IDs, p.ID) {
			continue
		}
		out = append(out, p)
	}
	newestFirst(out, func(p domain.Partner) time.Time { return p.CreatedAt })
	return out, nil
}

func (s *Store) GetPartnerByUserID(_ context.Context, userID uuid.UUID) (*domain.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.partners {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, port.ErrNotFound
}

func (s *Store) CreatePartner(_ context.Context, p *domain.Partner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partners[p.ID]; ok {
		return port.ErrDuplicate
	}
	for _, existing := range s.partners {
		if existing.UserID == p.UserID {
			return port.ErrDuplicate
		}
	}
	s.partners[p.ID] = *p
	return nil
}

func (s *Store) UpdatePartnerStatus(_ context.Context, id uuid.UUID, status domain.AccountStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.partners[id]
	if !ok {
		return port.ErrNotFound
	}
	p.Status = status
	s.partners[id] = p
	return nil
}

// Campaigns

func (s *Store) ListCampaigns(_ context.Context, filter port.CampaignFilter) ([]port.CampaignView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[uuid.UUID]int)
	for _, a := range s.allocations {
		counts[a.CampaignID]++
	}
	out := make([]port.CampaignView, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if filter.ClientID != nil && c.ClientID != *filter.ClientID {
			continue
		}
		out = append(out, port.CampaignView{
			Campaign:          c,
			ClientCompanyName: s.clients[c.ClientID].CompanyName,
			PartnersCount:     counts[c.ID],
		})
	}
	newestFirst(out, func(v port.CampaignView) time.Time { return v.CreatedAt })
	return out, nil
}

func (s *Store) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &c, nil
}

func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign, allocations []domain.CampaignPartner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[c.ID]; ok {
		return port.ErrDuplicate
	}
	s.campaigns[c.ID] = *c
	s.allocations = append(s.allocations, allocations...)
	return nil
}

func (s *Store) UpdateCampaignStatus(_ context.Context, id uuid.UUID, version int64, status domain.CampaignStatus) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	if c.Version != version {
		return nil, port.ErrVersionConflict
	}
	c.Status = status
	c.Version++
	c.UpdatedAt = s.now().UTC()
	s.campaigns[id] = c
	return &c, nil
}

func (s *Store) ListAllocations(_ context.Context, partnerID uuid.UUID) ([]port.Allocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []domain.CampaignPartner
	for _, a := range s.allocations {
		if a.PartnerID == partnerID {
			rows = append(rows, a)
		}
	}
	newestFirst(rows, func(a domain.CampaignPartner) time.Time { return a.CreatedAt })

	out := make([]port.Allocation, 0, len(rows))
	for _, a := range rows {
		c := s.campaigns[a.CampaignID]
		client := s.clients[c.ClientID]
		out = append(out, port.Allocation{
			ID:                a.ID,
			CampaignID:        a.CampaignID,
			BagsAllocated:     a.BagsAllocated,
			BagsDistributed:   a.BagsDistributed,
			CampaignName:      c.Name,
			StartDate:         c.StartDate,
			EndDate:           c.EndDate,
			ClientCompanyName: client.CompanyName,
			ClientSector:      client.Sector,
		})
	}
	return out, nil
}

// Statistics

func (s *Store) CurrentStatistics(context.Context) (*domain.Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stats == nil {
		return nil, port.ErrNotFound
	}
	stats := *s.stats
	return &stats, nil
}

// Users

func (s *Store) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return port.ErrDuplicate
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, port.ErrNotFound
}

func (s *Store) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return &u, nil
}

func (s *Store) DeleteUser(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return port.ErrNotFound
	}
	delete(s.users, id)
	s.cascadeUser(id)
	return nil
}

// cascadeUser mirrors the foreign keys of the SQL schema: the account row
// goes with its user, campaigns and allocations go with their client, and a
// deleted partner is cleared from the campaigns that named it.
func (s *Store) cascadeUser(userID uuid.UUID) {
	goneCampaigns := make(map[uuid.UUID]bool)
	goneUsersPartners := make(map[uuid.UUID]bool)
	for id, c := range s.clients {
		if c.UserID != userID {
			continue
		}
		delete(s.clients, id)
		for cid, camp := range s.campaigns {
			if camp.ClientID == id {
				delete(s.campaigns, cid)
				goneCampaigns[cid] = true
			}
		}
	}
	for id, p := range s.partners {
		if p.UserID == userID {
			delete(s.partners, id)
			goneUsersPartners[id] = true
		}
	}
	if len(goneUsersPartners) > 0 {
		for cid, camp := range s.campaigns {
			if camp.PartnerID != nil && goneUsersPartners[*camp.PartnerID] {
				camp.PartnerID = nil
				s.campaigns[cid] = camp
			}
		}
	}
	s.allocations = slices.DeleteFunc(s.allocations, func(a domain.CampaignPartner) bool {
		return goneCampaigns[a.CampaignID] || goneUsersPartners[a.PartnerID]
	})
}
