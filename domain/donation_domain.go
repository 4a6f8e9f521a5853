package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessGetDonationCenters   = "donation centers retrieved successfully"
	MessageSuccessCreateDonationCenter = "donation center created successfully"
	MessageSuccessUpdateDonationCenter = "donation center updated successfully"
	MessageSuccessDeleteDonationCenter = "donation center deleted successfully"
	MessageSuccessCreateDonation       = "donation created successfully"
	MessageSuccessGetDonations         = "donations retrieved successfully"
	MessageSuccessDeleteDonation       = "donation deleted successfully"
	MessageSuccessCreateMultiDonation  = "donations created successfully"

	MessageFailedGetDonationCenters   = "failed to retrieve donation centers"
	MessageFailedCreateDonationCenter = "failed to create donation center"
	MessageFailedUpdateDonationCenter = "failed to update donation center"
	MessageFailedDeleteDonationCenter = "failed to delete donation center"
	MessageFailedCreateDonation       = "failed to create donation"
	MessageFailedGetDonations         = "failed to retrieve donations"
	MessageFailedDeleteDonation       = "failed to delete donation"
	MessageFailedCreateMultiDonation  = "failed to create donations"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrDonationCenterNotFound     = errors.New("donation center not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrInvalidCoordinates         = errors.New("invalid coordinates")
)

// MultiDonationValidationError aggregates every validation failure of a
// multi-item donation, keyed by the item's position in the request.
type MultiDonationValidationError struct {
	Items map[int]string
}

func (e *MultiDonationValidationError) Error() string {
	return fmt.Sprintf("multi donation validation failed for %d item(s)", len(e.Items))
}

type (
	DonationCenterRequest struct {
		Name          string  `json:"name" validate:"required"`
		Address       string  `json:"address" validate:"required"`
		Latitude      float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude     float64 `json:"longitude" validate:"required,min=-180,max=180"`
		ContactNumber string  `json:"contact_number" validate:"omitempty"`
		Email         string  `json:"email" validate:"omitempty,email"`
	}

	DonationCenterResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Address       string    `json:"address"`
		Latitude      float64   `json:"latitude"`
		Longitude     float64   `json:"longitude"`
		Distance      float64   `json:"distance,omitempty"`
		ContactNumber string    `json:"contact_number"`
		Email         string    `json:"email"`
		CreatedAt     time.Time `json:"created_at"`
	}

	DonationRequest struct {
		CenterID  string `json:"center" validate:"required,uuid"`
		FoodLogID string `json:"food_log" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	DonationResponse struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		CenterID        string    `json:"center"`
		CenterName      string    `json:"center_name"`
		FoodLogID       string    `json:"food_log"`
		FoodLogName     string    `json:"food_log_name"`
		FoodLogQuantity int       `json:"food_log_quantity"`
		Quantity        int       `json:"quantity"`
		DateDonated     time.Time `json:"date_donated"`
	}

	MultiDonationItemRequest struct {
		FoodLogID string `json:"food_log" validate:"required,uuid"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	}

	MultiDonationRequest struct {
		CenterID string                     `json:"center" validate:"required,uuid"`
		Items    []MultiDonationItemRequest `json:"items" validate:"required,min=1,dive"`
	}
)
