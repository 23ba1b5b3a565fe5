package model

// User is a storefront account as stored in the users table. Registration is
// handled elsewhere; this service only ever reads these rows.
type User struct {
	Username     string `json:"username" gorm:"column:username;primaryKey;size:50"`
	PasswordHash string `json:"-" gorm:"column:password;size:255;not null"` // bcrypt hash, never exposed in JSON
}

// TableName maps User onto the legacy users table.
func (User) TableName() string {
	return "users"
}
