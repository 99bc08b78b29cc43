package ports

import (
	"context"
	"motor-rental-api/internal/core/domain"

	"github.com/google/uuid"
)

// MotorbikeRepository is the façade over the record store. The adapter
// owns the store session for the duration of one call; only
// UpdateNoPersist leaves work pending until SaveChanges commits it.
type MotorbikeRepository interface {
	// Add inserts a new motorbike. The owning user and company are
	// written as references only, never created as a side effect.
	Add(ctx context.Context, motorbike *domain.Motorbike) (*domain.Motorbike, error)

	// GetByID returns the detail-mode projection or domain.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MotorbikeDetail, error)

	// GetByIDAndUserID returns the raw record only when it exists and is
	// owned by userID; otherwise domain.ErrNotFound, so bikes owned by
	// others are indistinguishable from absent ones.
	GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Motorbike, error)

	// DeleteByID removes the record scoped to its owner and returns the
	// removed record, or domain.ErrNotFound.
	DeleteByID(ctx context.Context, id, userID uuid.UUID) (*domain.Motorbike, error)

	// GetAll filters the list-mode projection by the criteria (plus the
	// caller-scoped ownerID when non-nil), sorts and paginates. A fresh
	// call re-runs the whole pipeline.
	GetAll(ctx context.Context, criteria domain.FindCriteria, sortBy domain.SortBy, ownerID *uuid.UUID) ([]domain.MotorbikeSummary, error)

	// Update persists changes. With afterSuccess=false the stored record
	// is loaded and only the mutable listing fields are merged in; with
	// afterSuccess=true the record is persisted as given and the returned
	// copy has the owners' back-reference lists cleared.
	Update(ctx context.Context, motorbike *domain.Motorbike, afterSuccess bool) (*domain.Motorbike, error)

	// UpdateNoPersist stages a change without committing it.
	UpdateNoPersist(ctx context.Context, motorbike *domain.Motorbike) (*domain.Motorbike, error)

	// SaveChanges commits everything staged by UpdateNoPersist.
	SaveChanges(ctx context.Context) error
}

type MotorbikeService interface {
	AddMotorbike(ctx context.Context, motorbike *domain.Motorbike) (*domain.Motorbike, error)
	GetMotorbikeByID(ctx context.Context, id string) (*domain.MotorbikeDetail, error)
	GetMotorbikeForOwner(ctx context.Context, id string, userID uuid.UUID) (*domain.Motorbike, error)
	GetAllMotorbikes(ctx context.Context, criteria domain.FindCriteria, sortBy domain.SortBy, ownerID *uuid.UUID) ([]domain.MotorbikeSummary, error)
	UpdateMotorbike(ctx context.Context, motorbike *domain.Motorbike, afterSuccess bool) (*domain.Motorbike, error)
	DeleteMotorbike(ctx context.Context, id string, userID uuid.UUID) (*domain.Motorbike, error)
}
