package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Email     string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Username  string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"username"`
	Password  string         `gorm:"type:varchar(255);not null" json:"-"`
	Role      string         `gorm:"type:varchar(20);default:'user'" json:"role"`
	FirstName string         `gorm:"type:varchar(255)" json:"first_name"`
	Surname   string         `gorm:"type:varchar(255)" json:"surname"`
	Phone     string         `gorm:"type:varchar(16)" json:"phone"`
	BirthDate *time.Time     `gorm:"type:date" json:"birth_date"`
	City      string         `gorm:"type:varchar(255)" json:"city"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
