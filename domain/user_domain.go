package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetUser       = "user retrieved successfully"
	MessageSuccessUpdateUser    = "user updated successfully"
	MessageSuccessDeleteUser    = "user account deleted successfully"
	MessageSuccessGetUserStats  = "user statistics retrieved successfully"

	MessageFailedRegister     = "failed to register user"
	MessageFailedLogin        = "failed to login"
	MessageFailedGetUser      = "failed to retrieve user"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedDeleteUser   = "failed to delete user account"
	MessageFailedGetUserStats = "failed to retrieve user statistics"

	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type (
	RegisterRequest struct {
		Username  string `json:"username" validate:"required,min=3"`
		Email     string `json:"email" validate:"omitempty,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
	}

	RegisterResponse struct {
		ID        string `json:"id"`
		Token     string `json:"token"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		ID        string `json:"id"`
		Token     string `json:"token"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
	}

	UpdateUserRequest struct {
		Username        string `json:"username" validate:"omitempty,min=3"`
		Email           string `json:"email" validate:"omitempty,email"`
		Password        string `json:"password" validate:"omitempty,min=8"`
		FirstName       string `json:"first_name" validate:"omitempty"`
		LastName        string `json:"last_name" validate:"omitempty"`
		PrefersDarkMode *bool  `json:"prefers_dark_mode" validate:"omitempty"`
	}

	UserResponse struct {
		ID              string `json:"id"`
		Username        string `json:"username"`
		Email           string `json:"email"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		PrefersDarkMode bool   `json:"prefers_dark_mode"`
	}

	UserActivity struct {
		Type        string    `json:"type"` // "food_log", "waste_log", "donation"
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
	}

	UserStatsResponse struct {
		TotalFoodLogs    int64           `json:"total_food_logs"`
		TotalWasteLogs   int64           `json:"total_waste_logs"`
		TotalDonations   int64           `json:"total_donations"`
		RecentActivities []*UserActivity `json:"recent_activities"`
	}
)
