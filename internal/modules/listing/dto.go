package listing

import "time"

type CreateHouseRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Address     string     `json:"address" binding:"required"`
	RoomType    string     `json:"room_type"`
	Rooms       int        `json:"rooms"`
	Bathrooms   int        `json:"bathrooms"`
	Furnishing  string     `json:"furnishing"`
	Sqft        int        `json:"sqft"`
	PricePerDay float64    `json:"price_per_day" binding:"required,gt=0"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	ImageURLs   []string   `json:"image_urls"`
}

type UpdateHouseRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	RoomType    string     `json:"room_type"`
	Rooms       int        `json:"rooms"`
	Bathrooms   int        `json:"bathrooms"`
	Furnishing  string     `json:"furnishing"`
	Sqft        int        `json:"sqft"`
	PricePerDay float64    `json:"price_per_day"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type BrowseQuery struct {
	RoomType     string  `form:"room_type"`
	MinPrice     float64 `form:"min_price"`
	MaxPrice     float64 `form:"max_price"`
	Availability string  `form:"availability"`
	Page         int     `form:"page,default=1"`
	PageSize     int     `form:"page_size,default=12"`
}
