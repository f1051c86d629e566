package domain

import "time"

// Favorite marks a house saved by a user. One row per (user, house) pair.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserEmail string    `json:"user_email" gorm:"size:100;not null;uniqueIndex:idx_user_house"`
	HouseID   int64     `json:"house_id" gorm:"not null;index;uniqueIndex:idx_user_house"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	House *House `json:"house,omitempty" gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"`
}
