package company

import "time"

type Company struct {
	ID        int
	Name      string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
