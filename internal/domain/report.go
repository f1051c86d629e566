package domain

import "time"

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type Report struct {
	ID            int64        `json:"id"`
	ReporterEmail string       `json:"reporter_email" validate:"required,email" gorm:"size:100"`
	TargetHouseID *int64       `json:"target_house_id,omitempty"`
	TargetEmail   *string      `json:"target_email,omitempty" gorm:"size:100"`
	ReportType    string       `json:"report_type" validate:"required" gorm:"size:50"`
	Details       string       `json:"details,omitempty" gorm:"type:text"`
	Status        ReportStatus `json:"status" gorm:"size:20;default:'pending'"`
	CreatedAt     time.Time    `json:"created_at"`
}
