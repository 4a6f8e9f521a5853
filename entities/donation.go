package entities

import (
	"github.com/google/uuid"
)

type DonationCenter struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`

	DonationRecords []*DonationRecord `gorm:"foreignKey:CenterID"`
	Timestamp
}

// DonationRecord decrements the referenced food log's available quantity.
// Records are immutable once created; deletion re-derives the food log status.
type DonationRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CenterID  uuid.UUID `json:"center_id"`
	FoodLogID uuid.UUID `json:"food_log_id"`
	Quantity  int       `json:"quantity"`

	User    *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Center  *DonationCenter `gorm:"foreignKey:CenterID;constraint:OnDelete:CASCADE"`
	FoodLog *FoodLog        `gorm:"foreignKey:FoodLogID;constraint:OnDelete:CASCADE"`
	Timestamp
}
