package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/util"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordUnchanged  = errors.New("new password must differ from the old one")
	ErrNoPasswordSet      = errors.New("account has no password login")
)

const (
	minRegisterPasswordLen = 6
	minNewPasswordLen      = 8
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type AuthService interface {
	Register(input RegisterInput) (*model.User, error)
	Login(input LoginInput) (*model.User, error)
	GetUserByID(id uint) (*model.User, error)
	ChangePassword(userID uint, input ChangePasswordInput) error
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(input RegisterInput) (*model.User, error) {
	if len(input.Password) < minRegisterPasswordLen {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: &hash,
		Role:         model.RoleUser,
	}
	if err := s.userRepo.Create(nil, user); err != nil {
		return nil, err
	}

	logger.Info("User registered", map[string]interface{}{
		"user_id": user.ID,
	})
	return user, nil
}

func (s *authService) Login(input LoginInput) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == nil {
		// OAuth-only account.
		return nil, ErrInvalidCredentials
	}
	if !util.VerifyPassword(*user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ChangePassword(userID uint, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.PasswordHash == nil {
		return ErrNoPasswordSet
	}
	if !util.VerifyPassword(*user.PasswordHash, input.OldPassword) {
		return ErrInvalidCredentials
	}
	if len(input.NewPassword) < minNewPasswordLen {
		return ErrPasswordTooShort
	}
	if input.NewPassword == input.OldPassword {
		return ErrPasswordUnchanged
	}

	hash, err := util.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = &hash
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	logger.Info("Password changed", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
