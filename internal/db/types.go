package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Run statuses
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// DefaultListLimit applies when ListRuns gets a non-positive limit
const DefaultListLimit = 20

// ErrRunNotFound is returned when updating a run that was never created
var ErrRunNotFound = errors.New("run not found")

// Run is an optimisation run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Niche       string     `json:"niche"`
	OfferURL    string     `json:"offer_url,omitempty"`
	Status      string     `json:"status"`
	TotalTokens int        `json:"total_tokens"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ArtifactSummary describes a stored artifact without its content
type ArtifactSummary struct {
	ID        uuid.UUID `json:"id"`
	Step      string    `json:"step"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// Artifact steps
const (
	StepAnalysis     = "analysis"
	StepImprovements = "improvements"
	StepChecklist    = "checklist"
	StepAts          = "ats"
	StepReports      = "reports"
	StepCV           = "cv"
	StepOffer        = "offer"
)
