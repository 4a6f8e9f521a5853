package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username        string    `gorm:"uniqueIndex" json:"username"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Role            string    `json:"role"`
	PrefersDarkMode bool      `json:"prefers_dark_mode"`

	FoodLogs        []*FoodLog        `gorm:"foreignKey:UserID"`
	DonationRecords []*DonationRecord `gorm:"foreignKey:UserID"`
	WasteLogs       []*WasteLog       `gorm:"foreignKey:UserID"`
	Timestamp
}
