package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddWasteLog    = "waste log added successfully"
	MessageSuccessGetWasteLogs   = "waste logs retrieved successfully"
	MessageSuccessDeleteWasteLog = "waste log deleted successfully"

	MessageFailedAddWasteLog    = "failed to add waste log"
	MessageFailedGetWasteLogs   = "failed to retrieve waste logs"
	MessageFailedDeleteWasteLog = "failed to delete waste log"

	ErrWasteLogNotFound        = errors.New("waste log not found")
	ErrUnauthorizedWasteAccess = errors.New("unauthorized access to waste log")
)

const DefaultWasteReason = "Expired"

type (
	AddWasteLogRequest struct {
		FoodLogID string `json:"food_log,omitempty" validate:"omitempty,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
		Reason    string `json:"reason,omitempty" validate:"omitempty"`
	}

	WasteLogResponse struct {
		ID         string    `json:"id"`
		UserID     string    `json:"user_id"`
		FoodLogID  string    `json:"food_log,omitempty"`
		FoodName   string    `json:"food_name,omitempty"`
		Quantity   int       `json:"quantity"`
		Reason     string    `json:"reason"`
		DateLogged time.Time `json:"date_logged"`
	}
)
