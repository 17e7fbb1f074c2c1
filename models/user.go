package models

import (
	"time"

	"github.com/lib/pq"
)

// User roles
const (
	RoleStudent = 0
	RoleAdmin   = 1
)

type User struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name            string         `gorm:"default:New User" json:"name"`
	Email           string         `gorm:"uniqueIndex" json:"email"`
	Password        string         `json:"-"`
	Role            int            `gorm:"default:0" json:"role"`
	SavedProperties pq.StringArray `gorm:"type:text[]" json:"savedProperties"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasSaved reports whether the listing id is in the saved list
func (u *User) HasSaved(propertyID string) bool {
	for _, id := range u.SavedProperties {
		if id == propertyID {
			return true
		}
	}
	return false
}

// ToggleSaved adds the listing id when absent and removes it otherwise; returns true when added
func (u *User) ToggleSaved(propertyID string) bool {
	for i, id := range u.SavedProperties {
		if id == propertyID {
			u.SavedProperties = append(u.SavedProperties[:i:i], u.SavedProperties[i+1:]...)
			return false
		}
	}
	u.SavedProperties = append(u.SavedProperties, propertyID)
	return true
}
