package models

// StepStatus marks a projected step relative to the participation's phase
type StepStatus string

const (
	StepStatusCompleted StepStatus = "completed"
	StepStatusCurrent   StepStatus = "current"
	StepStatusUpcoming  StepStatus = "upcoming"
)

// Step is one entry in the UI-facing step list
type Step struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status StepStatus `json:"status"`
}

// NextAction tells the influencer what to do next
type NextAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StepProjection is the read-only view of a participation's progress consumed
// by presentation layers. It is derived, never authoritative, and never
// written back.
type StepProjection struct {
	CurrentStepID string      `json:"current_step_id"`
	Steps         []Step      `json:"steps"`
	NextAction    *NextAction `json:"next_action,omitempty"`
	Rejected      bool        `json:"rejected"`
}
