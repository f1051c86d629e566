package admin

import "time"

type UpdateUserRequest struct {
	Name     string     `json:"name,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

type UpdateHouseRequest struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Address     string     `json:"address,omitempty"`
	PricePerDay *float64   `json:"price_per_day,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}
