package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
)

var (
	ErrTrackingNotFound     = errors.New("tracking script not found")
	ErrTrackingBodyRequired = errors.New("a tracking id or raw script is required")
)

// TrackingScope selects which scripts a public page receives.
type TrackingScope string

const (
	// ScopeGlobal returns only main-website scripts.
	ScopeGlobal TrackingScope = "global"
	// ScopeStore returns only the store's own scripts.
	ScopeStore TrackingScope = "store"
	// ScopeCombined returns the store's scripts plus the global set.
	ScopeCombined TrackingScope = "combined"
)

type TrackingInput struct {
	Provider   string  `json:"provider"`
	TrackingID *string `json:"tracking_id"`
	Script     *string `json:"script"`
	Placement  string  `json:"placement"`
	Strategy   string  `json:"strategy"`
	Enabled    *bool   `json:"enabled"`
	StoreID    *uint   `json:"store_id"`
}

type TrackingService interface {
	CreateScript(input TrackingInput) (*model.TrackingScript, error)
	UpdateScript(id uint, input TrackingInput) (*model.TrackingScript, error)
	DeleteScript(id uint) error
	GetScripts() ([]model.TrackingScript, error)
	GetScriptByID(id uint) (*model.TrackingScript, error)
	GetPublicScripts(storeID *uint, scope TrackingScope) ([]model.TrackingScript, error)
}

type trackingService struct {
	trackingRepo repository.TrackingRepository
}

func NewTrackingService(trackingRepo repository.TrackingRepository) TrackingService {
	return &trackingService{trackingRepo: trackingRepo}
}

func validateTrackingBody(trackingID, script *string) error {
	hasID := trackingID != nil && strings.TrimSpace(*trackingID) != ""
	hasScript := script != nil && strings.TrimSpace(*script) != ""
	if !hasID && !hasScript {
		return ErrTrackingBodyRequired
	}
	return nil
}

func (s *trackingService) CreateScript(input TrackingInput) (*model.TrackingScript, error) {
	if err := validateTrackingBody(input.TrackingID, input.Script); err != nil {
		return nil, err
	}

	script := &model.TrackingScript{
		Provider:   input.Provider,
		TrackingID: input.TrackingID,
		Script:     input.Script,
		Placement:  "HEAD",
		Strategy:   "afterInteractive",
		Enabled:    true,
		StoreID:    input.StoreID,
	}
	if input.Placement != "" {
		script.Placement = input.Placement
	}
	if input.Strategy != "" {
		script.Strategy = input.Strategy
	}
	if input.Enabled != nil {
		script.Enabled = *input.Enabled
	}

	if err := s.trackingRepo.Create(script); err != nil {
		return nil, err
	}
	return script, nil
}

func (s *trackingService) UpdateScript(id uint, input TrackingInput) (*model.TrackingScript, error) {
	script, err := s.trackingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		return nil, err
	}

	if input.Provider != "" {
		script.Provider = input.Provider
	}
	if input.TrackingID != nil {
		script.TrackingID = input.TrackingID
	}
	if input.Script != nil {
		script.Script = input.Script
	}
	if err := validateTrackingBody(script.TrackingID, script.Script); err != nil {
		return nil, err
	}
	if input.Placement != "" {
		script.Placement = input.Placement
	}
	if input.Strategy != "" {
		script.Strategy = input.Strategy
	}
	if input.Enabled != nil {
		script.Enabled = *input.Enabled
	}
	if input.StoreID != nil {
		script.StoreID = input.StoreID
	}

	if err := s.trackingRepo.Update(script); err != nil {
		return nil, err
	}
	return script, nil
}

func (s *trackingService) DeleteScript(id uint) error {
	if _, err := s.trackingRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrackingNotFound
		}
		return err
	}
	return s.trackingRepo.Delete(id)
}

func (s *trackingService) GetScripts() ([]model.TrackingScript, error) {
	return s.trackingRepo.FindAll()
}

func (s *trackingService) GetScriptByID(id uint) (*model.TrackingScript, error) {
	script, err := s.trackingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrackingNotFound
		}
		return nil, err
	}
	return script, nil
}

// GetPublicScripts resolves the enabled scripts a page should embed.
// Without a store the global set is returned regardless of scope.
func (s *trackingService) GetPublicScripts(storeID *uint, scope TrackingScope) ([]model.TrackingScript, error) {
	if storeID == nil {
		return s.trackingRepo.FindEnabledGlobal()
	}

	switch scope {
	case ScopeStore:
		return s.trackingRepo.FindEnabledStoreOnly(*storeID)
	case ScopeGlobal:
		return s.trackingRepo.FindEnabledGlobal()
	default:
		return s.trackingRepo.FindEnabledForStore(*storeID)
	}
}
