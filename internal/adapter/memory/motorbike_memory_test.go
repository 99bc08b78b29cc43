package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"motor-rental-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepository(t *testing.T) (*MotorbikeRepository, *domain.User, *domain.Company) {
	t.Helper()
	repo := NewMotorbikeRepository()
	user := &domain.User{ID: uuid.New(), Name: "Linh Tran", PhoneNumber: "0901234567"}
	company := &domain.Company{ID: uuid.New(), Name: "Saigon Rides"}
	repo.AddUser(user)
	repo.AddCompany(company)
	return repo, user, company
}

func newMotorbike(name string, user *domain.User, company *domain.Company) *domain.Motorbike {
	return &domain.Motorbike{
		ID:           uuid.New(),
		Name:         name,
		Type:         domain.TypeManual,
		Status:       domain.StatusAvailable,
		LicensePlate: "59X1-" + name[:2],
		PriceDay:     10,
		PriceWeek:    60,
		PriceMonth:   200,
		UserID:       user.ID,
		CompanyID:    company.ID,
	}
}

func TestAddAndGetByID(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	motorbike := newMotorbike("Honda Wave", user, company)
	motorbike.Capacity = 110
	motorbike.MadeIn = "Vietnam"

	created, err := repo.Add(ctx, motorbike)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	detail, err := repo.GetByID(ctx, motorbike.ID)
	require.NoError(t, err)
	assert.Equal(t, "Honda Wave", detail.Name)
	assert.Equal(t, 110, detail.Capacity)
	assert.Equal(t, user.Name, detail.User.Name)
	assert.Equal(t, company.Name, detail.Company.Name)
}

func TestAddRejectsDanglingOwner(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	motorbike := newMotorbike("Honda Wave", user, company)
	motorbike.UserID = uuid.New()
	_, err := repo.Add(ctx, motorbike)
	assert.True(t, errors.Is(err, domain.ErrDanglingReference))

	motorbike = newMotorbike("Honda Wave", user, company)
	motorbike.CompanyID = uuid.New()
	_, err = repo.Add(ctx, motorbike)
	assert.True(t, errors.Is(err, domain.ErrDanglingReference))
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _, _ := seededRepository(t)
	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeleteByIDChecksOwnership(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	motorbike := newMotorbike("Honda Wave", user, company)
	_, err := repo.Add(ctx, motorbike)
	require.NoError(t, err)

	// A different owner cannot delete it, and the record survives.
	_, err = repo.DeleteByID(ctx, motorbike.ID, uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = repo.GetByID(ctx, motorbike.ID)
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, motorbike.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, motorbike.ID, deleted.ID)

	_, err = repo.GetByID(ctx, motorbike.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetByIDAndUserID(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	motorbike := newMotorbike("Honda Wave", user, company)
	_, err := repo.Add(ctx, motorbike)
	require.NoError(t, err)

	found, err := repo.GetByIDAndUserID(ctx, motorbike.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, motorbike.ID, found.ID)

	_, err = repo.GetByIDAndUserID(ctx, motorbike.ID, uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetAllFilterAndSort(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	wave := newMotorbike("Honda Wave", user, company)
	wave.PriceDay, wave.PriceWeek, wave.PriceMonth = 10, 60, 200
	wave.Status = domain.StatusAvailable

	exciter := newMotorbike("Yamaha Exciter", user, company)
	exciter.PriceDay, exciter.PriceWeek, exciter.PriceMonth = 15, 90, 300
	exciter.Status = domain.StatusRented

	for _, m := range []*domain.Motorbike{wave, exciter} {
		_, err := repo.Add(ctx, m)
		require.NoError(t, err)
	}

	available := domain.StatusAvailable
	byStatus, err := repo.GetAll(ctx, domain.FindCriteria{Status: &available}, domain.SortNameAscending, nil)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Honda Wave", byStatus[0].Name)

	byPrice, err := repo.GetAll(ctx, domain.FindCriteria{}, domain.SortPriceDescending, nil)
	require.NoError(t, err)
	require.Len(t, byPrice, 2)
	assert.Equal(t, "Yamaha Exciter", byPrice[0].Name)
	assert.Equal(t, "Honda Wave", byPrice[1].Name)

	byName, err := repo.GetAll(ctx, domain.FindCriteria{Name: "exciter"}, domain.SortNameAscending, nil)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Yamaha Exciter", byName[0].Name)
}

func TestGetAllOwnerScope(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	other := &domain.User{ID: uuid.New(), Name: "Minh"}
	repo.AddUser(other)

	mine := newMotorbike("Honda Wave", user, company)
	_, err := repo.Add(ctx, mine)
	require.NoError(t, err)

	theirs := newMotorbike("Yamaha Exciter", user, company)
	theirs.UserID = other.ID
	_, err = repo.Add(ctx, theirs)
	require.NoError(t, err)

	scoped, err := repo.GetAll(ctx, domain.FindCriteria{}, domain.SortNameAscending, &user.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "Honda Wave", scoped[0].Name)
}

func TestGetAllPagination(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		motorbike := newMotorbike(fmt.Sprintf("Bike %d", i), user, company)
		_, err := repo.Add(ctx, motorbike)
		require.NoError(t, err)
	}

	page, err := repo.GetAll(ctx, domain.FindCriteria{Skip: 2, Take: 2}, domain.SortNameAscending, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Bike 2", page[0].Name)
	assert.Equal(t, "Bike 3", page[1].Name)

	empty, err := repo.GetAll(ctx, domain.FindCriteria{Skip: 10, Take: 2}, domain.SortNameAscending, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Take left unset falls back to the default page size.
	defaulted, err := repo.GetAll(ctx, domain.FindCriteria{}, domain.SortNameAscending, nil)
	require.NoError(t, err)
	assert.Len(t, defaulted, 5)

	_, err = repo.GetAll(ctx, domain.FindCriteria{Skip: -1}, domain.SortNameAscending, nil)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestUpdateMergesListingFields(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	motorbike := newMotorbike("Honda Wave", user, company)
	motorbike.Capacity = 110
	_, err := repo.Add(ctx, motorbike)
	require.NoError(t, err)

	patch := *motorbike
	patch.Name = "Honda Wave RSX"
	patch.PriceDay = 12
	patch.Capacity = 999

	updated, err := repo.Update(ctx, &patch, false)
	require.NoError(t, err)
	assert.Equal(t, "Honda Wave RSX", updated.Name)
	assert.Equal(t, float64(12), updated.PriceDay)
	// Merge mode leaves the non-listing fields alone.
	assert.Equal(t, 110, updated.Capacity)
}

func TestUpdateAfterSuccessReplacesAndShapes(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	motorbike := newMotorbike("Honda Wave", user, company)
	_, err := repo.Add(ctx, motorbike)
	require.NoError(t, err)

	replaced := *motorbike
	replaced.Capacity = 125
	replaced.User = &domain.User{ID: user.ID, Name: user.Name, Motorbikes: []domain.Motorbike{*motorbike}}
	replaced.Company = &domain.Company{ID: company.ID, Name: company.Name, Motorbikes: []domain.Motorbike{*motorbike}}

	updated, err := repo.Update(ctx, &replaced, true)
	require.NoError(t, err)
	assert.Equal(t, 125, updated.Capacity)
	require.NotNil(t, updated.User)
	assert.Nil(t, updated.User.Motorbikes)
	require.NotNil(t, updated.Company)
	assert.Nil(t, updated.Company.Motorbikes)
}

func TestUpdateNotFound(t *testing.T) {
	repo, user, company := seededRepository(t)
	motorbike := newMotorbike("Honda Wave", user, company)

	_, err := repo.Update(context.Background(), motorbike, false)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdateNoPersistStagesUntilSave(t *testing.T) {
	repo, user, company := seededRepository(t)
	ctx := context.Background()

	motorbike := newMotorbike("Honda Wave", user, company)
	_, err := repo.Add(ctx, motorbike)
	require.NoError(t, err)

	staged := *motorbike
	staged.Name = "Honda Wave RSX"
	_, err = repo.UpdateNoPersist(ctx, &staged)
	require.NoError(t, err)

	// Not visible before SaveChanges.
	detail, err := repo.GetByID(ctx, motorbike.ID)
	require.NoError(t, err)
	assert.Equal(t, "Honda Wave", detail.Name)

	require.NoError(t, repo.SaveChanges(ctx))

	detail, err = repo.GetByID(ctx, motorbike.ID)
	require.NoError(t, err)
	assert.Equal(t, "Honda Wave RSX", detail.Name)
}
