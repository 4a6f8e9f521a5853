package entities

import (
	"github.com/google/uuid"
)

// WasteLog records wasted stock. The food log reference is optional: ad-hoc
// waste entries carry no reference and never touch a ledger balance.
type WasteLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	FoodLogID *uuid.UUID `json:"food_log_id,omitempty"`
	Quantity  int        `json:"quantity"`
	Reason    string     `gorm:"default:Expired" json:"reason"`

	User    *User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FoodLog *FoodLog `gorm:"foreignKey:FoodLogID;constraint:OnDelete:CASCADE"`
	Timestamp
}
