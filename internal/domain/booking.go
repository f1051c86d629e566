package domain

import "time"

// Booking covers an inclusive date range [StartDate, EndDate] on one house.
// Bookings are never updated in place: a date change is cancel + recreate.
type Booking struct {
	ID          int64     `json:"id"`
	HouseID     int64     `json:"house_id" validate:"required" gorm:"index"`
	TenantEmail string    `json:"tenant_email" validate:"required,email" gorm:"size:100;index"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`

	House   *House   `json:"house,omitempty" gorm:"foreignKey:HouseID"`
	Payment *Payment `json:"payment,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}
