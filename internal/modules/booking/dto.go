package booking

import "time"

type CreateBookingRequest struct {
	HouseID   int64     `json:"house_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type ListQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=4"`
}
