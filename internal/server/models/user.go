package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Password     string
	PictureURI   *string
	Role         Role
	PublicKey    *string
	DerivedSalt  *string
	LastAccessAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	IsDeleted    bool

	// PasswordCode is the pending one-time password reset code, if any.
	PasswordCode          *string
	PasswordCodeExpiresAt *time.Time
}

// UserProfile is the subset of User a client may change through sync.
type UserProfile struct {
	Name        string
	Email       string
	PictureURI  *string
	PublicKey   *string
	DerivedSalt *string
}

// UserOrderField is a column users can be listed by.
type UserOrderField string

const (
	OrderByName  UserOrderField = "name"
	OrderByEmail UserOrderField = "email"
)

type UserOrder struct {
	Field UserOrderField
	Desc  bool
}

// UserQuery filters a user listing. Name and Email are ILIKE patterns used
// as given; empty ones do not filter.
type UserQuery struct {
	Name    string
	Email   string
	OrderBy []UserOrder
	Skip    int
	Take    int
}
