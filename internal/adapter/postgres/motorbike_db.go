package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"motor-rental-api/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const motorbikeColumns = `id, name, type, color, status, description, price_day, price_week, price_month, license_plate, avatar, capacity, made_in, speed, year_of_manufacture, user_id, company_id, created_at, updated_at`

type MotorbikeRepository struct {
	db *sql.DB

	// pending holds the uncommitted unit of work opened by
	// UpdateNoPersist; it is owned by one logical request at a time.
	pending *sql.Tx
}

func NewMotorbikeRepository(db *sql.DB) *MotorbikeRepository {
	return &MotorbikeRepository{
		db: db,
	}
}

func (r *MotorbikeRepository) Add(ctx context.Context, motorbike *domain.Motorbike) (*domain.Motorbike, error) {
	// Only the two owner foreign keys are written, so the store never
	// tries to create the user or company rows alongside the motorbike.
	query := `INSERT INTO motorbikes (id, name, type, color, status, description, price_day, price_week, price_month, license_plate, avatar, capacity, made_in, speed, year_of_manufacture, user_id, company_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		motorbike.ID,
		motorbike.Name,
		motorbike.Type,
		motorbike.Color,
		motorbike.Status,
		motorbike.Description,
		motorbike.PriceDay,
		motorbike.PriceWeek,
		motorbike.PriceMonth,
		motorbike.LicensePlate,
		motorbike.Avatar,
		motorbike.Capacity,
		motorbike.MadeIn,
		motorbike.Speed,
		motorbike.YearOfManufacture,
		motorbike.UserID,
		motorbike.CompanyID,
	).Scan(
		&motorbike.CreatedAt,
		&motorbike.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("%w: required field is missing", domain.ErrInvalidArgument)
			case "23503":
				return nil, fmt.Errorf("%w: user or company does not exist", domain.ErrDanglingReference)
			default:
				return nil, fmt.Errorf("error inserting motorbike: %w", err)
			}
		}
		return nil, fmt.Errorf("error inserting motorbike: %w", err)
	}
	return motorbike, nil
}

func (r *MotorbikeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MotorbikeDetail, error) {
	query := `SELECT m.id, m.name, m.type, m.color, m.status, m.price_day, m.price_week, m.price_month, m.license_plate, m.avatar, m.capacity, m.made_in, m.speed, m.year_of_manufacture, u.id, u.name, u.phone_number, c.id, c.name
	FROM motorbikes m
	LEFT JOIN users u ON u.id = m.user_id
	LEFT JOIN companies c ON c.id = m.company_id
	WHERE m.id = $1`

	detail := &domain.MotorbikeDetail{}
	var (
		userID      uuid.NullUUID
		userName    sql.NullString
		userPhone   sql.NullString
		companyID   uuid.NullUUID
		companyName sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Type,
		&detail.Color,
		&detail.Status,
		&detail.PriceDay,
		&detail.PriceWeek,
		&detail.PriceMonth,
		&detail.LicensePlate,
		&detail.Avatar,
		&detail.Capacity,
		&detail.MadeIn,
		&detail.Speed,
		&detail.YearOfManufacture,
		&userID,
		&userName,
		&userPhone,
		&companyID,
		&companyName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying motorbike: %w", err)
	}

	if !userID.Valid || !companyID.Valid {
		return nil, fmt.Errorf("%w: motorbike %s", domain.ErrDanglingReference, detail.ID)
	}
	detail.User = domain.UserInfo{ID: userID.UUID, Name: userName.String, PhoneNumber: userPhone.String}
	detail.Company = domain.CompanyInfo{ID: companyID.UUID, Name: companyName.String}

	return detail, nil
}

func (r *MotorbikeRepository) GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Motorbike, error) {
	query := fmt.Sprintf(`SELECT %s FROM motorbikes WHERE id = $1 AND user_id = $2`, motorbikeColumns)

	return r.scanMotorbike(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *MotorbikeRepository) DeleteByID(ctx context.Context, id, userID uuid.UUID) (*domain.Motorbike, error) {
	query := fmt.Sprintf(`DELETE FROM motorbikes WHERE id = $1 AND user_id = $2 RETURNING %s`, motorbikeColumns)

	return r.scanMotorbike(r.db.QueryRowContext(ctx, query, id, userID))
}

func (r *MotorbikeRepository) GetAll(ctx context.Context, criteria domain.FindCriteria, sortBy domain.SortBy, ownerID *uuid.UUID) ([]domain.MotorbikeSummary, error) {
	if err := criteria.Normalize(); err != nil {
		return nil, err
	}

	// Each present criteria field contributes one condition; the
	// conjunction over the joined projection mirrors domain.Predicate.
	var conditions []string
	var args []interface{}
	argPos := 1

	if criteria.Name != "" {
		conditions = append(conditions, fmt.Sprintf("m.name ILIKE '%%' || $%d || '%%'", argPos))
		args = append(args, criteria.Name)
		argPos++
	}
	if ownerID != nil {
		conditions = append(conditions, fmt.Sprintf("m.user_id = $%d", argPos))
		args = append(args, *ownerID)
		argPos++
	}
	if criteria.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("m.user_id = $%d", argPos))
		args = append(args, *criteria.UserID)
		argPos++
	}
	if criteria.Status != nil {
		conditions = append(conditions, fmt.Sprintf("m.status = $%d", argPos))
		args = append(args, *criteria.Status)
		argPos++
	}
	if criteria.Type != nil {
		conditions = append(conditions, fmt.Sprintf("m.type = $%d", argPos))
		args = append(args, *criteria.Type)
		argPos++
	}
	if criteria.LicensePlate != "" {
		conditions = append(conditions, fmt.Sprintf("m.license_plate ILIKE '%%' || $%d || '%%'", argPos))
		args = append(args, criteria.LicensePlate)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT m.id, m.name, m.type, m.color, m.status, m.price_day, m.price_week, m.price_month, m.license_plate, m.avatar, u.id, u.name, u.phone_number, c.id, c.name
	FROM motorbikes m
	LEFT JOIN users u ON u.id = m.user_id
	LEFT JOIN companies c ON c.id = m.company_id%s
	ORDER BY %s
	OFFSET $%d LIMIT $%d`, whereClause, orderClause(sortBy), argPos, argPos+1)
	args = append(args, criteria.Skip, criteria.Take)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing motorbikes: %w", err)
	}
	defer rows.Close()

	var motorbikes []domain.MotorbikeSummary

	for rows.Next() {
		var (
			summary     domain.MotorbikeSummary
			userID      uuid.NullUUID
			userName    sql.NullString
			userPhone   sql.NullString
			companyID   uuid.NullUUID
			companyName sql.NullString
		)
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Type,
			&summary.Color,
			&summary.Status,
			&summary.PriceDay,
			&summary.PriceWeek,
			&summary.PriceMonth,
			&summary.LicensePlate,
			&summary.Avatar,
			&userID,
			&userName,
			&userPhone,
			&companyID,
			&companyName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning motorbike row: %w", err)
		}
		if !userID.Valid || !companyID.Valid {
			return nil, fmt.Errorf("%w: motorbike %s", domain.ErrDanglingReference, summary.ID)
		}
		summary.User = domain.UserInfo{ID: userID.UUID, Name: userName.String, PhoneNumber: userPhone.String}
		summary.Company = domain.CompanyInfo{ID: companyID.UUID, Name: companyName.String}
		motorbikes = append(motorbikes, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating motorbike rows: %w", err)
	}
	return motorbikes, nil
}

func (r *MotorbikeRepository) Update(ctx context.Context, motorbike *domain.Motorbike, afterSuccess bool) (*domain.Motorbike, error) {
	if !afterSuccess {
		// Partial update before side effects complete: merge only the
		// mutable listing fields into the stored record.
		query := fmt.Sprintf(`UPDATE motorbikes
		SET
			name = $1,
			status = $2,
			description = $3,
			price_day = $4,
			price_week = $5,
			price_month = $6,
			license_plate = $7,
			avatar = $8,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING %s`, motorbikeColumns)

		return r.scanMotorbike(r.db.QueryRowContext(ctx, query,
			motorbike.Name,
			motorbike.Status,
			motorbike.Description,
			motorbike.PriceDay,
			motorbike.PriceWeek,
			motorbike.PriceMonth,
			motorbike.LicensePlate,
			motorbike.Avatar,
			motorbike.ID,
		))
	}

	// Full replace after side effects are known.
	err := r.execUpdate(ctx, r.db, motorbike)
	if err != nil {
		return nil, err
	}

	return shapeResponse(motorbike), nil
}

func (r *MotorbikeRepository) UpdateNoPersist(ctx context.Context, motorbike *domain.Motorbike) (*domain.Motorbike, error) {
	if r.pending == nil {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("error opening unit of work: %w", err)
		}
		r.pending = tx
	}

	if err := r.execUpdate(ctx, r.pending, motorbike); err != nil {
		return nil, err
	}
	return motorbike, nil
}

func (r *MotorbikeRepository) SaveChanges(ctx context.Context) error {
	if r.pending == nil {
		return nil
	}
	tx := r.pending
	r.pending = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing staged changes: %w", err)
	}
	return nil
}

type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (r *MotorbikeRepository) execUpdate(ctx context.Context, ex execer, motorbike *domain.Motorbike) error {
	query := `UPDATE motorbikes
	SET
		name = $1,
		type = $2,
		color = $3,
		status = $4,
		description = $5,
		price_day = $6,
		price_week = $7,
		price_month = $8,
		license_plate = $9,
		avatar = $10,
		capacity = $11,
		made_in = $12,
		speed = $13,
		year_of_manufacture = $14,
		updated_at = CURRENT_TIMESTAMP
	WHERE id = $15
	RETURNING updated_at`

	err := ex.QueryRowContext(ctx, query,
		motorbike.Name,
		motorbike.Type,
		motorbike.Color,
		motorbike.Status,
		motorbike.Description,
		motorbike.PriceDay,
		motorbike.PriceWeek,
		motorbike.PriceMonth,
		motorbike.LicensePlate,
		motorbike.Avatar,
		motorbike.Capacity,
		motorbike.MadeIn,
		motorbike.Speed,
		motorbike.YearOfManufacture,
		motorbike.ID,
	).Scan(&motorbike.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("error updating motorbike: %w", err)
	}
	return nil
}

// shapeResponse trims the owners' back-reference lists on a copy of the
// record so unbounded nested collections never serialize back to the
// caller. The stored rows are untouched.
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

func (r *MotorbikeRepository) scanMotorbike(row *sql.Row) (*domain.Motorbike, error) {
	motorbike := &domain.Motorbike{}
	err := row.Scan(
		&motorbike.ID,
		&motorbike.Name,
		&motorbike.Type,
		&motorbike.Color,
		&motorbike.Status,
		&motorbike.Description,
		&motorbike.PriceDay,
		&motorbike.PriceWeek,
		&motorbike.PriceMonth,
		&motorbike.LicensePlate,
		&motorbike.Avatar,
		&motorbike.Capacity,
		&motorbike.MadeIn,
		&motorbike.Speed,
		&motorbike.YearOfManufacture,
		&motorbike.UserID,
		&motorbike.CompanyID,
		&motorbike.CreatedAt,
		&motorbike.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning motorbike: %w", err)
	}
	return motorbike, nil
}

func orderClause(sortBy domain.SortBy) string {
	switch sortBy {
	case domain.SortNameDescending:
		return "m.name DESC, m.id ASC"
	case domain.SortPriceAscending:
		return "m.price_day + m.price_week + m.price_month ASC, m.name ASC"
	case domain.SortPriceDescending:
		return "m.price_day + m.price_week + m.price_month DESC, m.name ASC"
	default:
		return "m.name ASC, m.id ASC"
	}
}
