// Package memory implements the motorbike record store over in-process
// indexes. It backs the service tests and any deployment that does not
// need a durable store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"motor-rental-api/internal/core/domain"

	"github.com/google/uuid"
)

type MotorbikeRepository struct {
	mu         sync.RWMutex
	motorbikes map[uuid.UUID]*domain.Motorbike
	users      map[uuid.UUID]*domain.User
	companies  map[uuid.UUID]*domain.Company
	staged     map[uuid.UUID]*domain.Motorbike
}

func NewMotorbikeRepository() *MotorbikeRepository {
	return &MotorbikeRepository{
		motorbikes: make(map[uuid.UUID]*domain.Motorbike),
		users:      make(map[uuid.UUID]*domain.User),
		companies:  make(map[uuid.UUID]*domain.Company),
		staged:     make(map[uuid.UUID]*domain.Motorbike),
	}
}

// AddUser registers an owner row the motorbikes can reference.
func (r *MotorbikeRepository) AddUser(user *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
}

func (r *MotorbikeRepository) AddCompany(company *domain.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *company
	r.companies[company.ID] = &copied
}

func (r *MotorbikeRepository) Add(ctx context.Context, motorbike *domain.Motorbike) (*domain.Motorbike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// References only: the owner rows must already exist, the store
	// never creates them while inserting a motorbike.
	if _, ok := r.users[motorbike.UserID]; !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrDanglingReference, motorbike.UserID)
	}
	if _, ok := r.companies[motorbike.CompanyID]; !ok {
		return nil, fmt.Errorf("%w: company %s", domain.ErrDanglingReference, motorbike.CompanyID)
	}

	now := time.Now()
	stored := *motorbike
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.motorbikes[stored.ID] = &stored

	result := stored
	motorbike.CreatedAt = now
	motorbike.UpdatedAt = now
	return &result, nil
}

func (r *MotorbikeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MotorbikeDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	motorbike, ok := r.motorbikes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	user, company, err := r.resolveOwners(motorbike)
	if err != nil {
		return nil, err
	}
	detail := domain.NewMotorbikeDetail(motorbike, user, company)
	return &detail, nil
}

func (r *MotorbikeRepository) GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Motorbike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	motorbike, ok := r.motorbikes[id]
	if !ok || motorbike.UserID != userID {
		return nil, domain.ErrNotFound
	}
	result := *motorbike
	return &result, nil
}

func (r *MotorbikeRepository) DeleteByID(ctx context.Context, id, userID uuid.UUID) (*domain.Motorbike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	motorbike, ok := r.motorbikes[id]
	if !ok || motorbike.UserID != userID {
		return nil, domain.ErrNotFound
	}
	delete(r.motorbikes, id)
	result := *motorbike
	return &result, nil
}

func (r *MotorbikeRepository) GetAll(ctx context.Context, criteria domain.FindCriteria, sortBy domain.SortBy, ownerID *uuid.UUID) ([]domain.MotorbikeSummary, error) {
	if err := criteria.Normalize(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Join every record with its owners, then apply the composed
	// predicate over the projected shape.
	matches := criteria.Predicate(ownerID)
	var motorbikes []domain.MotorbikeSummary
	for _, motorbike := range r.motorbikes {
		user, company, err := r.resolveOwners(motorbike)
		if err != nil {
			return nil, err
		}
		summary := domain.NewMotorbikeSummary(motorbike, user, company)
		if matches(&summary) {
			motorbikes = append(motorbikes, summary)
		}
	}

	sort.SliceStable(motorbikes, func(i, j int) bool {
		return sortBy.Less(&motorbikes[i], &motorbikes[j])
	})

	if criteria.Skip >= len(motorbikes) {
		return nil, nil
	}
	motorbikes = motorbikes[criteria.Skip:]
	if criteria.Take < len(motorbikes) {
		motorbikes = motorbikes[:criteria.Take]
	}
	return motorbikes, nil
}

func (r *MotorbikeRepository) Update(ctx context.Context, motorbike *domain.Motorbike, afterSuccess bool) (*domain.Motorbike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.motorbikes[motorbike.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if !afterSuccess {
		merged := *existing
		merged.Name = motorbike.Name
		merged.Status = motorbike.Status
		merged.Description = motorbike.Description
		merged.PriceDay = motorbike.PriceDay
		merged.PriceWeek = motorbike.PriceWeek
		merged.PriceMonth = motorbike.PriceMonth
		merged.LicensePlate = motorbike.LicensePlate
		merged.Avatar = motorbike.Avatar
		merged.UpdatedAt = time.Now()
		r.motorbikes[merged.ID] = &merged

		result := merged
		return &result, nil
	}

	replaced := *motorbike
	replaced.CreatedAt = existing.CreatedAt
	replaced.UpdatedAt = time.Now()
	r.motorbikes[replaced.ID] = &replaced

	return shapeResponse(&replaced), nil
}

func (r *MotorbikeRepository) UpdateNoPersist(ctx context.Context, motorbike *domain.Motorbike) (*domain.Motorbike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motorbikes[motorbike.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	staged := *motorbike
	r.staged[staged.ID] = &staged
	return &staged, nil
}

func (r *MotorbikeRepository) SaveChanges(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, staged := range r.staged {
		committed := *staged
		committed.UpdatedAt = now
		r.motorbikes[id] = &committed
	}
	r.staged = make(map[uuid.UUID]*domain.Motorbike)
	return nil
}

func (r *MotorbikeRepository) resolveOwners(motorbike *domain.Motorbike) (*domain.User, *domain.Company, error) {
	user, ok := r.users[motorbike.UserID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: user %s", domain.ErrDanglingReference, motorbike.UserID)
	}
	company, ok := r.companies[motorbike.CompanyID]
	if !ok {
		return nil, nil, fmt.Errorf("%w: company %s", domain.ErrDanglingReference, motorbike.CompanyID)
	}
	return user, company, nil
}

func shapeResponse(motorbike *domain.Motorbike) *domain.Motorbike {
	out := *motorbike
	if out.User != nil {
		owner := *out.User
		owner.Motorbikes = nil
		out.User = &owner
	}
	if out.Company != nil {
		company := *out.Company
		company.Motorbikes = nil
		out.Company = &company
	}
	return &out
}
