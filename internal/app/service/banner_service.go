package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/storage"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
)

var (
	ErrBannerNotFound      = errors.New("banner not found")
	ErrBannerImageRequired = errors.New("banner image is required")
)

type BannerInput struct {
	Title       string
	LinkURL     string
	OrderNumber *int
	IsActive    *bool
	ImagePath   string
}

type BannerService interface {
	CreateBanner(ctx context.Context, input BannerInput) (*model.Banner, error)
	UpdateBanner(ctx context.Context, id uint, input BannerInput) (*model.Banner, error)
	DeleteBanner(ctx context.Context, id uint) error
	GetBanners(activeOnly bool) ([]model.Banner, error)
	GetBannerByID(id uint) (*model.Banner, error)
}

type bannerService struct {
	bannerRepo repository.BannerRepository
	store      storage.Storage
}

func NewBannerService(bannerRepo repository.BannerRepository, mediaStore storage.Storage) BannerService {
	return &bannerService{
		bannerRepo: bannerRepo,
		store:      mediaStore,
	}
}

func (s *bannerService) CreateBanner(ctx context.Context, input BannerInput) (*model.Banner, error) {
	if input.ImagePath == "" {
		return nil, ErrBannerImageRequired
	}

	imageURL, err := s.store.Upload(ctx, input.ImagePath, "banners")
	if err != nil {
		return nil, err
	}

	order := 0
	if input.OrderNumber != nil {
		order = *input.OrderNumber
	} else {
		max, err := s.bannerRepo.MaxOrder()
		if err != nil {
			return nil, err
		}
		order = max + 1
	}

	banner := &model.Banner{
		Title:       input.Title,
		ImageURL:    imageURL,
		LinkURL:     input.LinkURL,
		OrderNumber: order,
		IsActive:    true,
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	if err := s.bannerRepo.Create(banner); err != nil {
		return nil, err
	}

	logger.Info("Banner created", map[string]interface{}{
		"banner_id": banner.ID,
	})
	return banner, nil
}

func (s *bannerService) UpdateBanner(ctx context.Context, id uint, input BannerInput) (*model.Banner, error) {
	banner, err := s.bannerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}

	if input.Title != "" {
		banner.Title = input.Title
	}
	banner.LinkURL = input.LinkURL
	if input.OrderNumber != nil {
		banner.OrderNumber = *input.OrderNumber
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}

	if input.ImagePath != "" {
		imageURL, err := s.store.Upload(ctx, input.ImagePath, "banners")
		if err != nil {
			return nil, err
		}
		if banner.ImageURL != "" {
			if err := s.store.Destroy(ctx, banner.ImageURL); err != nil {
				logger.Error("Failed to remove previous banner image", err, map[string]interface{}{
					"banner_id": banner.ID,
				})
			}
		}
		banner.ImageURL = imageURL
	}

	if err := s.bannerRepo.Update(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (s *bannerService) DeleteBanner(ctx context.Context, id uint) error {
	banner, err := s.bannerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBannerNotFound
		}
		return err
	}

	if err := s.bannerRepo.Delete(id); err != nil {
		return err
	}

	if banner.ImageURL != "" {
		if err := s.store.Destroy(ctx, banner.ImageURL); err != nil {
			logger.Error("Failed to remove banner image object", err, map[string]interface{}{
				"banner_id": id,
			})
		}
	}
	return nil
}

func (s *bannerService) GetBanners(activeOnly bool) ([]model.Banner, error) {
	return s.bannerRepo.FindAll(activeOnly)
}

func (s *bannerService) GetBannerByID(id uint) (*model.Banner, error) {
	banner, err := s.bannerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return banner, nil
}
