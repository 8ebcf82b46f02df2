package company

import "context"

// CompanyRepository defines read-only data access for companies.
type CompanyRepository interface {
	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id int) (Company, error)

	// Exists reports whether a company with the ID exists
	Exists(ctx context.Context, id int) (bool, error)
}
