package models

import (
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID          string    `json:"id" gorm:"primaryKey;size:191"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password    string    `json:"-" gorm:"not null;size:255"`
	Role        string    `json:"role" gorm:"not null;default:'user';size:20"`
	CNPJ        *string   `json:"cnpj" gorm:"uniqueIndex;size:20"`
	Birthday    *string   `json:"birthday" gorm:"size:10"`
	CNHNumber   *string   `json:"cnh_number" gorm:"uniqueIndex;size:20"`
	CNHType     *string   `json:"cnh_type" gorm:"size:5"`
	CNHPhotoURL *string   `json:"cnh_photo_url" gorm:"size:500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Rentals []Rental `json:"-" gorm:"foreignKey:UserID"`
}

// HasMotorcycleLicense reports whether the user's license category covers
// motorcycles (Brazilian CNH category "A", possibly combined as "AB").
func (u *User) HasMotorcycleLicense() bool {
	if u.CNHType == nil {
		return false
	}
	return strings.Contains(strings.ToUpper(*u.CNHType), "A")
}
