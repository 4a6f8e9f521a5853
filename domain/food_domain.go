package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodLog      = "food log added successfully"
	MessageSuccessUpdateFoodLog   = "food log updated successfully"
	MessageSuccessDeleteFoodLog   = "food log deleted successfully"
	MessageSuccessGetFoodLogs     = "food logs retrieved successfully"
	MessageSuccessAddCategory     = "category added successfully"
	MessageSuccessUpdateCategory  = "category updated successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"

	MessageFailedAddFoodLog     = "failed to add food log"
	MessageFailedUpdateFoodLog  = "failed to update food log"
	MessageFailedDeleteFoodLog  = "failed to delete food log"
	MessageFailedGetFoodLogs    = "failed to retrieve food logs"
	MessageFailedAddCategory    = "failed to add category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedGetCategories  = "failed to retrieve categories"

	ErrFoodLogNotFound        = errors.New("food log not found")
	ErrCategoryNotFound       = errors.New("food category not found")
	ErrInvalidExpirationDate  = errors.New("invalid expiration date")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrInsufficientQuantity   = errors.New("quantity exceeds available food quantity")
	ErrUnauthorizedFoodAccess = errors.New("unauthorized access to food log")

	// ErrNegativeAvailability means the ledger arithmetic produced a negative
	// balance. That is a data-consistency bug, never a caller error: the
	// operation that hits it must abort instead of persisting the state.
	ErrNegativeAvailability = errors.New("available quantity is negative")
)

type (
	AddFoodLogRequest struct {
		FoodName       string `json:"food_name" validate:"required"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
		CategoryID     string `json:"category,omitempty" validate:"omitempty,uuid"`
		ExpirationDate string `json:"expiration_date,omitempty" validate:"omitempty"`
	}

	UpdateFoodLogRequest struct {
		FoodName       string `json:"food_name" validate:"omitempty"`
		CategoryID     string `json:"category,omitempty" validate:"omitempty,uuid"`
		ExpirationDate string `json:"expiration_date,omitempty" validate:"omitempty"`
	}

	FoodLogResponse struct {
		ID                string     `json:"id"`
		UserID            string     `json:"user_id"`
		FoodName          string     `json:"food_name"`
		Quantity          int        `json:"quantity"`
		CategoryID        string     `json:"category,omitempty"`
		CategoryName      string     `json:"category_name,omitempty"`
		DateLogged        time.Time  `json:"date_logged"`
		ExpirationDate    *time.Time `json:"expiration_date,omitempty"`
		Status            string     `json:"status"`
		DonatedQuantity   int        `json:"donated_quantity"`
		WastedQuantity    int        `json:"wasted_quantity"`
		AvailableQuantity int        `json:"available_quantity"`
	}

	CategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	CategoryResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
