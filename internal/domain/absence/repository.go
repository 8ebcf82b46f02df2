package absence

import "context"

// AbsenceRepository defines data access methods for absences.
type AbsenceRepository interface {
	// Create inserts a new absence and returns it with its ID set
	Create(ctx context.Context, absence Absence) (Absence, error)

	// GetByID retrieves an absence by ID
	GetByID(ctx context.Context, id int) (Absence, error)

	// Update rewrites an existing absence
	Update(ctx context.Context, absence Absence) error

	// Delete removes an absence
	Delete(ctx context.Context, id int) error

	// List retrieves absences with filters and pagination
	List(ctx context.Context, filter AbsenceFilter) ([]Absence, int64, error)
}

// AbsenceTypeRepository defines data access methods for absence types.
type AbsenceTypeRepository interface {
	// GetByID retrieves an absence type by ID
	GetByID(ctx context.Context, id int) (AbsenceType, error)

	// List retrieves all absence types
	List(ctx context.Context) ([]AbsenceType, error)
}
