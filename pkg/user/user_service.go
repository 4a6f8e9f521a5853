package user

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const recentActivityLimit = 5

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, userID string) error
		GetUserStats(ctx context.Context, userID string) (domain.UserStatsResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.RegisterResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RegisterResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      domain.RoleUser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.RegisterResponse{
		ID:        user.ID.String(),
		Token:     token,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		ID:        user.ID.String(),
		Token:     token,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
			return domain.UserResponse{}, domain.ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		user.Username = req.Username
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PrefersDarkMode != nil {
		user.PrefersDarkMode = *req.PrefersDarkMode
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepository.DeleteUser(ctx, userID)
}

// GetUserStats returns record totals and the five most recent activities
// merged across food logs, waste logs and donations.
func (s *userService) GetUserStats(ctx context.Context, userID string) (domain.UserStatsResponse, error) {
	totalFoodLogs, err := s.userRepository.CountFoodLogs(ctx, userID)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}
	totalWasteLogs, err := s.userRepository.CountWasteLogs(ctx, userID)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}
	totalDonations, err := s.userRepository.CountDonations(ctx, userID)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}

	foodLogs, err := s.userRepository.RecentFoodLogs(ctx, userID, recentActivityLimit)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}
	wasteLogs, err := s.userRepository.RecentWasteLogs(ctx, userID, recentActivityLimit)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}
	donations, err := s.userRepository.RecentDonations(ctx, userID, recentActivityLimit)
	if err != nil {
		return domain.UserStatsResponse{}, err
	}

	activities := make([]*domain.UserActivity, 0, len(foodLogs)+len(wasteLogs)+len(donations))
	for _, item := range foodLogs {
		activities = append(activities, &domain.UserActivity{
			Type:        "food_log",
			Description: fmt.Sprintf("Logged %s", item.FoodName),
			Date:        item.CreatedAt,
		})
	}
	for _, item := range wasteLogs {
		foodName := item.Reason
		if item.FoodLog != nil {
			foodName = item.FoodLog.FoodName
		}
		activities = append(activities, &domain.UserActivity{
			Type:        "waste_log",
			Description: fmt.Sprintf("Wasted %d of %s", item.Quantity, foodName),
			Date:        item.CreatedAt,
		})
	}
	for _, item := range donations {
		foodName, centerName := "", ""
		if item.FoodLog != nil {
			foodName = item.FoodLog.FoodName
		}
		if item.Center != nil {
			centerName = item.Center.Name
		}
		activities = append(activities, &domain.UserActivity{
			Type:        "donation",
			Description: fmt.Sprintf("Donated %d of %s to %s", item.Quantity, foodName, centerName),
			Date:        item.CreatedAt,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})
	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}

	return domain.UserStatsResponse{
		TotalFoodLogs:    totalFoodLogs,
		TotalWasteLogs:   totalWasteLogs,
		TotalDonations:   totalDonations,
		RecentActivities: activities,
	}, nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:              user.ID.String(),
		Username:        user.Username,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		PrefersDarkMode: user.PrefersDarkMode,
	}
}
