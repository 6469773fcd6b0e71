package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
)

func setupOAuthServiceTest(t *testing.T, googleHandler, facebookHandler http.HandlerFunc) (OAuthService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	svc := NewOAuthService(testDB, userRepo, "client-id").(*oauthService)

	if googleHandler != nil {
		server := httptest.NewServer(googleHandler)
		t.Cleanup(server.Close)
		svc.googleTokenInfoURL = server.URL
	}
	if facebookHandler != nil {
		server := httptest.NewServer(facebookHandler)
		t.Cleanup(server.Close)
		svc.facebookGraphURL = server.URL
	}
	return svc, testDB
}

func googleOKHandler(sub, email string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exp := time.Now().Add(time.Hour).Unix()
		fmt.Fprintf(w, `{"aud":"client-id","sub":%q,"email":%q,"name":"G User","picture":"https://pic.test/g","exp":"%d"}`,
			sub, email, exp)
	}
}

func TestOAuthService_GoogleCreatesUser(t *testing.T) {
	svc, testDB := setupOAuthServiceTest(t, googleOKHandler("g-123", "guser@example.com"), nil)

	user, err := svc.LoginWithGoogle("token")
	require.NoError(t, err)
	assert.Equal(t, "guser@example.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotNil(t, user.EmailVerified)

	var account model.OAuthAccount
	require.NoError(t, testDB.Where("provider_account_id = ?", "g-123").First(&account).Error)
	assert.Equal(t, user.ID, account.UserID)
	assert.Equal(t, model.ProviderGoogle, account.Provider)

	// Second login reuses the linked account.
	again, err := svc.LoginWithGoogle("token")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	var count int64
	testDB.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestOAuthService_GoogleLinksExistingEmail(t *testing.T) {
	svc, testDB := setupOAuthServiceTest(t, googleOKHandler("g-456", "linked@example.com"), nil)

	hash := "hashed"
	existing := model.User{
		Name: "Linked", Email: "linked@example.com",
		PasswordHash: &hash, Role: model.RoleUser,
	}
	require.NoError(t, testDB.Create(&existing).Error)

	user, err := svc.LoginWithGoogle("token")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)

	var account model.OAuthAccount
	require.NoError(t, testDB.Where("user_id = ?", existing.ID).First(&account).Error)
	assert.Equal(t, model.ProviderGoogle, account.Provider)
}

func TestOAuthService_GoogleRejectsWrongAudience(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		exp := time.Now().Add(time.Hour).Unix()
		fmt.Fprintf(w, `{"aud":"other-app","sub":"g-1","email":"x@example.com","exp":"%d"}`, exp)
	}
	svc, _ := setupOAuthServiceTest(t, handler, nil)

	_, err := svc.LoginWithGoogle("token")
	assert.ErrorIs(t, err, ErrOAuthTokenInvalid)
}

func TestOAuthService_GoogleRejectsExpiredToken(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		exp := time.Now().Add(-time.Hour).Unix()
		fmt.Fprintf(w, `{"aud":"client-id","sub":"g-1","email":"x@example.com","exp":"%d"}`, exp)
	}
	svc, _ := setupOAuthServiceTest(t, handler, nil)

	_, err := svc.LoginWithGoogle("token")
	assert.ErrorIs(t, err, ErrOAuthTokenInvalid)
}

func TestOAuthService_GoogleRejectsUpstreamError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusBadRequest)
	}
	svc, _ := setupOAuthServiceTest(t, handler, nil)

	_, err := svc.LoginWithGoogle("token")
	assert.ErrorIs(t, err, ErrOAuthTokenInvalid)
}

func TestOAuthService_FacebookCreatesUser(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"fb-1","name":"F User","email":"fuser@example.com","picture":{"data":{"url":"https://pic.test/f"}}}`)
	}
	svc, testDB := setupOAuthServiceTest(t, nil, handler)

	user, err := svc.LoginWithFacebook("token")
	require.NoError(t, err)
	assert.Equal(t, "fuser@example.com", user.Email)
	assert.Equal(t, "https://pic.test/f", user.Picture)

	var account model.OAuthAccount
	require.NoError(t, testDB.Where("provider_account_id = ?", "fb-1").First(&account).Error)
	assert.Equal(t, model.ProviderFacebook, account.Provider)
}

func TestOAuthService_FacebookWithoutEmail(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"fb-2","name":"No Email"}`)
	}
	svc, _ := setupOAuthServiceTest(t, nil, handler)

	_, err := svc.LoginWithFacebook("token")
	assert.ErrorIs(t, err, ErrOAuthNoEmail)
}
