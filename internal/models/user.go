package models

// User is a registered account. PasswordHash holds either a bcrypt hash or,
// for rows written by older builds, a 64 char hex SHA-256 digest.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// GetID lets the CLI quiet formatter print just the identifier.
func (u *User) GetID() int {
	return u.ID
}
