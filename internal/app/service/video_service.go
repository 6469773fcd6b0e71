package service

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
)

var (
	ErrVideoNotFound     = errors.New("video not found")
	ErrVideoTitle        = errors.New("video title is required")
	ErrVideoLinkRequired = errors.New("a youtube or tiktok link is required")
	ErrVideoInvalidURL   = errors.New("video link is not a recognized youtube or tiktok url")
)

var tiktokVideoPath = regexp.MustCompile(`/video/\d+`)

type VideoInput struct {
	Title        string     `json:"title"`
	YoutubeURL   *string    `json:"youtube_url"`
	TiktokURL    *string    `json:"tiktok_url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	OrderNumber  *int       `json:"order_number"`
	IsActive     *bool      `json:"is_active"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	StoreID      *uint      `json:"store_id"`
}

type VideoService interface {
	CreateVideo(input VideoInput) (*model.Video, error)
	UpdateVideo(id uint, input VideoInput) (*model.Video, error)
	DeleteVideo(id uint) error
	GetVideos() ([]model.Video, error)
	GetActiveVideos(now time.Time) ([]model.Video, error)
	GetVideoByID(id uint) (*model.Video, error)
}

type videoService struct {
	videoRepo repository.VideoRepository
}

func NewVideoService(videoRepo repository.VideoRepository) VideoService {
	return &videoService{videoRepo: videoRepo}
}

func validYoutubeURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	return host == "youtube.com" || host == "youtu.be" || host == "m.youtube.com"
}

func validTiktokURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	if !strings.HasSuffix(host, "tiktok.com") {
		return false
	}
	return tiktokVideoPath.MatchString(parsed.Path)
}

func validateVideoLinks(input VideoInput) error {
	hasYoutube := input.YoutubeURL != nil && *input.YoutubeURL != ""
	hasTiktok := input.TiktokURL != nil && *input.TiktokURL != ""
	if !hasYoutube && !hasTiktok {
		return ErrVideoLinkRequired
	}
	if hasYoutube && !validYoutubeURL(*input.YoutubeURL) {
		return ErrVideoInvalidURL
	}
	if hasTiktok && !validTiktokURL(*input.TiktokURL) {
		return ErrVideoInvalidURL
	}
	return nil
}

func (s *videoService) CreateVideo(input VideoInput) (*model.Video, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrVideoTitle
	}
	if err := validateVideoLinks(input); err != nil {
		return nil, err
	}

	order := 0
	if input.OrderNumber != nil {
		order = *input.OrderNumber
	} else {
		max, err := s.videoRepo.MaxOrder()
		if err != nil {
			return nil, err
		}
		order = max + 1
	}

	video := &model.Video{
		Title:        input.Title,
		YoutubeURL:   input.YoutubeURL,
		TiktokURL:    input.TiktokURL,
		ThumbnailURL: input.ThumbnailURL,
		OrderNumber:  order,
		IsActive:     true,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		StoreID:      input.StoreID,
	}
	if input.IsActive != nil {
		video.IsActive = *input.IsActive
	}

	if err := s.videoRepo.Create(video); err != nil {
		return nil, err
	}
	return s.videoRepo.FindByID(video.ID)
}

func (s *videoService) UpdateVideo(id uint, input VideoInput) (*model.Video, error) {
	video, err := s.videoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.YoutubeURL != nil {
		video.YoutubeURL = input.YoutubeURL
	}
	if input.TiktokURL != nil {
		video.TiktokURL = input.TiktokURL
	}

	check := VideoInput{YoutubeURL: video.YoutubeURL, TiktokURL: video.TiktokURL}
	if err := validateVideoLinks(check); err != nil {
		return nil, err
	}

	if input.ThumbnailURL != nil {
		video.ThumbnailURL = input.ThumbnailURL
	}
	if input.OrderNumber != nil {
		video.OrderNumber = *input.OrderNumber
	}
	if input.IsActive != nil {
		video.IsActive = *input.IsActive
	}
	if input.StartDate != nil {
		video.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		video.EndDate = input.EndDate
	}
	if input.StoreID != nil {
		video.StoreID = input.StoreID
	}

	if err := s.videoRepo.Update(video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoService) DeleteVideo(id uint) error {
	if _, err := s.videoRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	return s.videoRepo.Delete(id)
}

func (s *videoService) GetVideos() ([]model.Video, error) {
	return s.videoRepo.FindAll()
}

// GetActiveVideos returns enabled videos currently inside their optional
// date window.
func (s *videoService) GetActiveVideos(now time.Time) ([]model.Video, error) {
	videos, err := s.videoRepo.FindActive()
	if err != nil {
		return nil, err
	}

	visible := make([]model.Video, 0, len(videos))
	for _, video := range videos {
		if video.ActiveAt(now) {
			visible = append(visible, video)
		}
	}
	return visible, nil
}

func (s *videoService) GetVideoByID(id uint) (*model.Video, error) {
	video, err := s.videoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return video, nil
}
