package repository

import (
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(tx *gorm.DB, user *model.User) error
	Update(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindOAuthAccount(provider model.OAuthProvider, providerAccountID string) (*model.OAuthAccount, error)
	CreateOAuthAccount(tx *gorm.DB, account *model.OAuthAccount) error
	FindAll() ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(tx *gorm.DB, user *model.User) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(user).Error
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindOAuthAccount(provider model.OAuthProvider, providerAccountID string) (*model.OAuthAccount, error) {
	var account model.OAuthAccount
	err := r.db.
		Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *userRepository) CreateOAuthAccount(tx *gorm.DB, account *model.OAuthAccount) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(account).Error
}

func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
