package review

type CreateReviewRequest struct {
	HouseID int64  `json:"house_id" binding:"required" validate:"required"`
	Rating  int    `json:"rating" binding:"required" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty" validate:"max=2000"`
}

type CreateReportRequest struct {
	TargetHouseID *int64  `json:"target_house_id,omitempty"`
	TargetEmail   *string `json:"target_email,omitempty" validate:"omitempty,email"`
	ReportType    string  `json:"report_type" binding:"required" validate:"required,max=50"`
	Details       string  `json:"details,omitempty" validate:"max=2000"`
}
