package payment

type RecordMethodRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Method    string `json:"method" binding:"required"`
}
