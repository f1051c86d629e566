package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	HouseID   int64     `json:"house_id" validate:"required" gorm:"index"`
	UserEmail string    `json:"user_email" validate:"required,email" gorm:"size:100"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
