package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisOutcome string

const (
	OutcomeSucceeded AnalysisOutcome = "succeeded"
	OutcomeRejected  AnalysisOutcome = "rejected"
	OutcomeFailed    AnalysisOutcome = "failed"
)

// AnalysisAudit is request metadata only. Neither the upload nor the model's
// answer is stored.
type AnalysisAudit struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID    string          `gorm:"type:text;index" json:"request_id"`
	Provider     string          `gorm:"type:text" json:"provider"`
	Model        string          `gorm:"type:text" json:"model"`
	Outcome      AnalysisOutcome `gorm:"type:text;not null" json:"outcome"`
	StatusCode   int             `gorm:"not null" json:"status_code"`
	FileSize     int64           `json:"file_size"`
	PageCount    int             `json:"page_count"`
	JDLength     int             `json:"jd_length"`
	ErrorMessage *string         `gorm:"type:text" json:"error_message,omitempty"`
	LatencyMS    int64           `json:"latency_ms"`
	CreatedAt    time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AnalysisAudit) TableName() string {
	return "analysis_audits"
}
