package domain

import (
	"time"

	"github.com/google/uuid"
)

type MotorbikeStatus int

const (
	StatusAvailable MotorbikeStatus = iota + 1
	StatusRented
	StatusMaintenance
)

type MotorbikeType int

const (
	TypeManual MotorbikeType = iota + 1
	TypeSemiAutomatic
	TypeAutomatic
	TypeElectric
)

// swagger:model domain.Motorbike
type Motorbike struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name" validate:"required,max=100"`
	Type              MotorbikeType   `json:"type" validate:"required,min=1,max=4"`
	Color             string          `json:"color" validate:"max=50"`
	Status            MotorbikeStatus `json:"status" validate:"required,min=1,max=3"`
	Description       string          `json:"description"`
	PriceDay          float64         `json:"price_day" validate:"min=0"`
	PriceWeek         float64         `json:"price_week" validate:"min=0"`
	PriceMonth        float64         `json:"price_month" validate:"min=0"`
	LicensePlate      string          `json:"license_plate" validate:"required,max=20"`
	Avatar            string          `json:"avatar,omitempty"`
	Capacity          int             `json:"capacity"`
	MadeIn            string          `json:"made_in"`
	Speed             int             `json:"speed"`
	YearOfManufacture int             `json:"year_of_manufacture"`
	UserID            uuid.UUID       `json:"user_id" validate:"required"`
	CompanyID         uuid.UUID       `json:"company_id" validate:"required"`
	User              *User           `json:"user,omitempty"`
	Company           *Company        `json:"company,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TotalPrice is the sort key used by the price orderings.
func (m *Motorbike) TotalPrice() float64 {
	return m.PriceDay + m.PriceWeek + m.PriceMonth
}

type User struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phone_number"`
	Motorbikes  []Motorbike `json:"motorbikes,omitempty"`
}

type Company struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Motorbikes []Motorbike `json:"motorbikes,omitempty"`
}

// UserInfo is the narrow owner projection embedded in read models. Only
// the fields needed downstream are copied so an owner's own motorbike
// list never rides along.
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
}

type CompanyInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MotorbikeSummary is the list-mode read model: the motorbike joined
// with its owning user and company, narrowed to listing fields.
type MotorbikeSummary struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Type         MotorbikeType   `json:"type"`
	Color        string          `json:"color"`
	Status       MotorbikeStatus `json:"status"`
	PriceDay     float64         `json:"price_day"`
	PriceWeek    float64         `json:"price_week"`
	PriceMonth   float64         `json:"price_month"`
	LicensePlate string          `json:"license_plate"`
	Avatar       string          `json:"avatar,omitempty"`
	User         UserInfo        `json:"user"`
	Company      CompanyInfo     `json:"company"`
}

func (s *MotorbikeSummary) TotalPrice() float64 {
	return s.PriceDay + s.PriceWeek + s.PriceMonth
}

// MotorbikeDetail is the detail-mode read model returned by get-by-id.
type MotorbikeDetail struct {
	MotorbikeSummary
	Capacity          int    `json:"capacity"`
	MadeIn            string `json:"made_in"`
	Speed             int    `json:"speed"`
	YearOfManufacture int    `json:"year_of_manufacture"`
}

// NewMotorbikeSummary joins a motorbike with its resolved owners.
func NewMotorbikeSummary(m *Motorbike, u *User, c *Company) MotorbikeSummary {
	return MotorbikeSummary{
		ID:           m.ID,
		Name:         m.Name,
		Type:         m.Type,
		Color:        m.Color,
		Status:       m.Status,
		PriceDay:     m.PriceDay,
		PriceWeek:    m.PriceWeek,
		PriceMonth:   m.PriceMonth,
		LicensePlate: m.LicensePlate,
		Avatar:       m.Avatar,
		User:         UserInfo{ID: u.ID, Name: u.Name, PhoneNumber: u.PhoneNumber},
		Company:      CompanyInfo{ID: c.ID, Name: c.Name},
	}
}

func NewMotorbikeDetail(m *Motorbike, u *User, c *Company) MotorbikeDetail {
	return MotorbikeDetail{
		MotorbikeSummary:  NewMotorbikeSummary(m, u, c),
		Capacity:          m.Capacity,
		MadeIn:            m.MadeIn,
		Speed:             m.Speed,
		YearOfManufacture: m.YearOfManufacture,
	}
}
