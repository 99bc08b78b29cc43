package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusPtr(s MotorbikeStatus) *MotorbikeStatus { return &s }
func typePtr(t MotorbikeType) *MotorbikeType       { return &t }

func TestNormalize(t *testing.T) {
	t.Run("defaults take to page size", func(t *testing.T) {
		criteria := FindCriteria{}
		require.NoError(t, criteria.Normalize())
		assert.Equal(t, DefaultPageSize, criteria.Take)
	})

	t.Run("keeps explicit take", func(t *testing.T) {
		criteria := FindCriteria{Take: 3}
		require.NoError(t, criteria.Normalize())
		assert.Equal(t, 3, criteria.Take)
	})

	t.Run("rejects negative skip", func(t *testing.T) {
		criteria := FindCriteria{Skip: -1}
		err := criteria.Normalize()
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("rejects negative take", func(t *testing.T) {
		criteria := FindCriteria{Take: -5}
		err := criteria.Normalize()
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})
}

func TestPredicate(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()
	summary := MotorbikeSummary{
		ID:           uuid.New(),
		Name:         "Honda Wave Alpha",
		Type:         TypeManual,
		Status:       StatusAvailable,
		LicensePlate: "59X1-123.45",
		User:         UserInfo{ID: ownerID, Name: "Linh"},
	}

	t.Run("empty criteria match everything", func(t *testing.T) {
		criteria := FindCriteria{}
		assert.True(t, criteria.Predicate(nil)(&summary))
	})

	t.Run("name filter is a case insensitive substring", func(t *testing.T) {
		criteria := FindCriteria{Name: "wave"}
		assert.True(t, criteria.Predicate(nil)(&summary))

		criteria = FindCriteria{Name: "exciter"}
		assert.False(t, criteria.Predicate(nil)(&summary))
	})

	t.Run("license plate filter is a case insensitive substring", func(t *testing.T) {
		criteria := FindCriteria{LicensePlate: "59x1"}
		assert.True(t, criteria.Predicate(nil)(&summary))

		criteria = FindCriteria{LicensePlate: "51A"}
		assert.False(t, criteria.Predicate(nil)(&summary))
	})

	t.Run("status filter distinguishes unset from zero", func(t *testing.T) {
		criteria := FindCriteria{Status: statusPtr(StatusAvailable)}
		assert.True(t, criteria.Predicate(nil)(&summary))

		criteria = FindCriteria{Status: statusPtr(StatusRented)}
		assert.False(t, criteria.Predicate(nil)(&summary))
	})

	t.Run("type filter", func(t *testing.T) {
		criteria := FindCriteria{Type: typePtr(TypeManual)}
		assert.True(t, criteria.Predicate(nil)(&summary))

		criteria = FindCriteria{Type: typePtr(TypeElectric)}
		assert.False(t, criteria.Predicate(nil)(&summary))
	})

	t.Run("owner scope restricts to the caller", func(t *testing.T) {
		criteria := FindCriteria{}
		assert.True(t, criteria.Predicate(&ownerID)(&summary))
		assert.False(t, criteria.Predicate(&otherID)(&summary))
	})

	t.Run("criteria user filter works beside the owner scope", func(t *testing.T) {
		criteria := FindCriteria{UserID: &ownerID}
		assert.True(t, criteria.Predicate(&ownerID)(&summary))

		criteria = FindCriteria{UserID: &otherID}
		assert.False(t, criteria.Predicate(&ownerID)(&summary))
	})

	t.Run("all present fields must match", func(t *testing.T) {
		criteria := FindCriteria{
			Name:   "Wave",
			Status: statusPtr(StatusAvailable),
			Type:   typePtr(TypeManual),
		}
		assert.True(t, criteria.Predicate(nil)(&summary))

		criteria.Status = statusPtr(StatusMaintenance)
		assert.False(t, criteria.Predicate(nil)(&summary))
	})
}
