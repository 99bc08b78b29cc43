package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultPageSize is used when a listing call leaves Take unset.
const DefaultPageSize = 10

// FindCriteria holds the optional filter fields and pagination bounds of
// a listing query. A nil pointer or empty string means the filter is not
// applied at all, which is distinct from filtering for a zero value.
type FindCriteria struct {
	Name         string
	LicensePlate string
	Status       *MotorbikeStatus
	Type         *MotorbikeType
	UserID       *uuid.UUID
	Skip         int
	Take         int
}

// Normalize validates the pagination bounds. Negative skip or take fail
// with ErrInvalidArgument; an unset take is clamped to DefaultPageSize.
func (c *FindCriteria) Normalize() error {
	if c.Skip < 0 {
		return fmt.Errorf("%w: skip must not be negative", ErrInvalidArgument)
	}
	if c.Take < 0 {
		return fmt.Errorf("%w: take must not be negative", ErrInvalidArgument)
	}
	if c.Take == 0 {
		c.Take = DefaultPageSize
	}
	return nil
}

// MotorbikePredicate is a filter over the list-mode read model.
type MotorbikePredicate func(*MotorbikeSummary) bool

// Predicate folds the present criteria fields into a single conjunction.
// Absent fields contribute no constraint, so empty criteria compose to
// the always-true predicate. ownerID is the caller-scoped owner filter,
// separate from the criteria's own user filter.
func (c *FindCriteria) Predicate(ownerID *uuid.UUID) MotorbikePredicate {
	var preds []MotorbikePredicate

	if c.Name != "" {
		name := strings.ToLower(c.Name)
		preds = append(preds, func(m *MotorbikeSummary) bool {
			return strings.Contains(strings.ToLower(m.Name), name)
		})
	}
	if ownerID != nil {
		id := *ownerID
		preds = append(preds, func(m *MotorbikeSummary) bool {
			return m.User.ID == id
		})
	}
	if c.UserID != nil {
		id := *c.UserID
		preds = append(preds, func(m *MotorbikeSummary) bool {
			return m.User.ID == id
		})
	}
	if c.Status != nil {
		status := *c.Status
		preds = append(preds, func(m *MotorbikeSummary) bool {
			return m.Status == status
		})
	}
	if c.Type != nil {
		bikeType := *c.Type
		preds = append(preds, func(m *MotorbikeSummary) bool {
			return m.Type == bikeType
		})
	}
	if c.LicensePlate != "" {
		plate := strings.ToLower(c.LicensePlate)
		preds = append(preds, func(m *MotorbikeSummary) bool {
			return strings.Contains(strings.ToLower(m.LicensePlate), plate)
		})
	}

	return func(m *MotorbikeSummary) bool {
		for _, p := range preds {
			if !p(m) {
				return false
			}
		}
		return true
	}
}
