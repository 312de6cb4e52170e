package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Password  string     `json:"-"`
	Role      UserRole   `json:"role"`
	FirstName string     `json:"first_name"`
	Surname   string     `json:"surname"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	City      string     `json:"city,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.Surname == "" {
		return u.Username
	}
	return u.FirstName + " " + u.Surname
}
