package testutil

import (
	"context"
	"sync"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// MockAuditRepository records audits in memory and can be told to fail.
type MockAuditRepository struct {
	mu     sync.Mutex
	Audits []models.AnalysisAudit
	Err    error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(_ context.Context, audit *models.AnalysisAudit) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.Audits = append(m.Audits, *audit)
	return nil
}

func (m *MockAuditRepository) Last() (models.AnalysisAudit, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Audits) == 0 {
		return models.AnalysisAudit{}, false
	}
	return m.Audits[len(m.Audits)-1], true
}
