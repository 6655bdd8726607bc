package models

// User represents an account in the shop.
// It maps to the `users` table in SQLite.
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	IsAdmin      bool   `db:"is_admin" json:"is_admin"`
}
