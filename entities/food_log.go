package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodCategory struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Timestamp
}

// FoodLog is the ledger entry for a logged food item. Quantity is the amount
// originally logged and never changes after creation; the remaining balance is
// always recomputed from the donation and waste records referencing the log.
type FoodLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	FoodName       string     `json:"food_name"`
	Quantity       int        `json:"quantity"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Status         string     `json:"status"` // "Available", "Donated", "Expired"

	User            *User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category        *FoodCategory     `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	DonationRecords []*DonationRecord `gorm:"foreignKey:FoodLogID"`
	WasteLogs       []*WasteLog       `gorm:"foreignKey:FoodLogID"`
	Timestamp
}
