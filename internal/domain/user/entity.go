package user

import "time"

// User mirrors the identity record managed by the account system. This
// service only reads users; account provisioning lives elsewhere.
type User struct {
	ID        string
	Name      string
	Email     string
	CompanyID int
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
