package absence

import "context"

// AbsenceService defines business logic for absence operations
type AbsenceService interface {
	// CreateAbsence records a new absence request, created pending/pending
	CreateAbsence(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)

	// UpdateAbsence rewrites an absence's window, type and reason
	UpdateAbsence(ctx context.Context, req UpdateAbsenceRequest) (AbsenceResponse, error)

	// ToggleStatus confirms the type and/or dates sub-status and derives the
	// aggregate confirmed flag
	ToggleStatus(ctx context.Context, req ToggleStatusRequest) (AbsenceResponse, error)

	// DeleteAbsence removes an absence by ID
	DeleteAbsence(ctx context.Context, id int) error

	// GetAbsence retrieves a single absence by ID
	GetAbsence(ctx context.Context, id int) (AbsenceResponse, error)

	// ListAbsences retrieves absences with filters
	ListAbsences(ctx context.Context, filter AbsenceFilter) (ListAbsencesResponse, error)

	// ListAbsenceTypes retrieves the available absence types
	ListAbsenceTypes(ctx context.Context) ([]AbsenceTypeResponse, error)
}
