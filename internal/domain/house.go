package domain

import "time"

// ModerationStatus is set by administrators and is independent of booking
// activity. It always outranks booking-derived availability: a restricted
// house stays restricted no matter what its bookings look like.
type ModerationStatus string

const (
	HouseValid      ModerationStatus = "valid"
	HouseRestricted ModerationStatus = "restricted"
)

// HouseAvailability is derived from live bookings by the status projector.
type HouseAvailability string

const (
	HouseAvailable HouseAvailability = "available"
	HouseRented    HouseAvailability = "rented"
)

type House struct {
	ID          int64   `json:"id"`
	OwnerEmail  string  `json:"owner_email" gorm:"size:100;index"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description,omitempty" gorm:"type:text"`
	Address     string  `json:"address" validate:"required"`
	RoomType    string  `json:"room_type,omitempty" gorm:"size:50"`
	Rooms       int     `json:"rooms" validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"gte=0"`
	Furnishing  string  `json:"furnishing,omitempty" gorm:"size:50"`
	Sqft        int     `json:"sqft,omitempty"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gt=0"`

	// Rental window. Both nil means the owner declared no window, and the
	// house can never be considered fully booked.
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	ModerationStatus ModerationStatus  `json:"moderation_status" gorm:"size:20;default:'valid'"`
	Availability     HouseAvailability `json:"availability" gorm:"size:20;default:'available'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Images   []HouseImage `json:"images,omitempty" gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"`
	Reviews  []Review     `json:"reviews,omitempty" gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"`
	Bookings []Booking    `json:"-" gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"`
}

type HouseImage struct {
	ID       int64  `json:"id"`
	HouseID  int64  `json:"house_id" gorm:"index"`
	ImageURL string `json:"image_url" validate:"required,url"`
}
