package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
)

var (
	ErrOAuthTokenInvalid = errors.New("oauth token verification failed")
	ErrOAuthNoEmail      = errors.New("oauth profile has no email")
)

const (
	googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	facebookGraphURL   = "https://graph.facebook.com/me"
)

// OAuthProfile is the normalized identity extracted from a provider token.
type OAuthProfile struct {
	Provider  model.OAuthProvider
	AccountID string
	Email     string
	Name      string
	Picture   string
}

type OAuthService interface {
	LoginWithGoogle(idToken string) (*model.User, error)
	LoginWithFacebook(accessToken string) (*model.User, error)
}

type oauthService struct {
	db             *gorm.DB
	userRepo       repository.UserRepository
	httpClient     *http.Client
	googleClientID string

	// Overridable so tests never hit the network.
	googleTokenInfoURL string
	facebookGraphURL   string
}

func NewOAuthService(db *gorm.DB, userRepo repository.UserRepository, googleClientID string) OAuthService {
	return &oauthService{
		db:                 db,
		userRepo:           userRepo,
		httpClient:         &http.Client{Timeout: 10 * time.Second},
		googleClientID:     googleClientID,
		googleTokenInfoURL: googleTokenInfoURL,
		facebookGraphURL:   facebookGraphURL,
	}
}

type googleTokenInfo struct {
	Aud     string `json:"aud"`
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Exp     string `json:"exp"`
}

// LoginWithGoogle verifies the ID token against Google's tokeninfo
// endpoint, checking audience and expiry, and signs the user in.
func (s *oauthService) LoginWithGoogle(idToken string) (*model.User, error) {
	endpoint := fmt.Sprintf("%s?id_token=%s", s.googleTokenInfoURL, url.QueryEscape(idToken))
	resp, err := s.httpClient.Get(endpoint)
	if err != nil {
		logger.Error("Google tokeninfo request failed", err, nil)
		return nil, ErrOAuthTokenInvalid
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrOAuthTokenInvalid
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, ErrOAuthTokenInvalid
	}

	if s.googleClientID != "" && info.Aud != s.googleClientID {
		logger.Error("Google token audience mismatch", nil, map[string]interface{}{
			"aud": info.Aud,
		})
		return nil, ErrOAuthTokenInvalid
	}
	if exp, err := strconv.ParseInt(info.Exp, 10, 64); err != nil || time.Now().Unix() >= exp {
		return nil, ErrOAuthTokenInvalid
	}
	if info.Email == "" {
		return nil, ErrOAuthNoEmail
	}

	return s.upsertOAuthUser(OAuthProfile{
		Provider:  model.ProviderGoogle,
		AccountID: info.Sub,
		Email:     info.Email,
		Name:      info.Name,
		Picture:   info.Picture,
	})
}

type facebookProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// LoginWithFacebook resolves the access token through the Graph API and
// signs the user in.
func (s *oauthService) LoginWithFacebook(accessToken string) (*model.User, error) {
	endpoint := fmt.Sprintf("%s?fields=id,name,email,picture.type(large)&access_token=%s",
		s.facebookGraphURL, url.QueryEscape(accessToken))
	resp, err := s.httpClient.Get(endpoint)
	if err != nil {
		logger.Error("Facebook graph request failed", err, nil)
		return nil, ErrOAuthTokenInvalid
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrOAuthTokenInvalid
	}

	var profile facebookProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, ErrOAuthTokenInvalid
	}
	if profile.ID == "" {
		return nil, ErrOAuthTokenInvalid
	}
	if profile.Email == "" {
		// Facebook may withhold the email depending on account settings.
		return nil, ErrOAuthNoEmail
	}

	return s.upsertOAuthUser(OAuthProfile{
		Provider:  model.ProviderFacebook,
		AccountID: profile.ID,
		Email:     profile.Email,
		Name:      profile.Name,
		Picture:   profile.Picture.Data.URL,
	})
}

// upsertOAuthUser links the provider identity to an existing account or
// creates a fresh user. User row and account link land in one
// transaction.
func (s *oauthService) upsertOAuthUser(profile OAuthProfile) (*model.User, error) {
	if account, err := s.userRepo.FindOAuthAccount(profile.Provider, profile.AccountID); err == nil {
		return s.userRepo.FindByID(account.UserID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user *model.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.userRepo.FindByEmail(profile.Email)
		switch {
		case err == nil:
			user = existing
			if user.Picture == "" && profile.Picture != "" {
				user.Picture = profile.Picture
				if err := tx.Save(user).Error; err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			now := time.Now()
			user = &model.User{
				Name:          profile.Name,
				Email:         profile.Email,
				Picture:       profile.Picture,
				Role:          model.RoleUser,
				EmailVerified: &now,
			}
			if err := s.userRepo.Create(tx, user); err != nil {
				return err
			}
		default:
			return err
		}

		return s.userRepo.CreateOAuthAccount(tx, &model.OAuthAccount{
			UserID:            user.ID,
			Provider:          profile.Provider,
			ProviderAccountID: profile.AccountID,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info("OAuth login", map[string]interface{}{
		"user_id":  user.ID,
		"provider": profile.Provider,
	})
	return user, nil
}
