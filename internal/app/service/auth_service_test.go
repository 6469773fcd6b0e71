package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Kiattisakchaochata/backendTopaward/internal/app/model"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
)

func setupAuthServiceTest(t *testing.T) (AuthService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(userRepo), testDB
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, err := authService.Register(RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", *user.PasswordHash)

	loggedIn, err := authService.Login(LoginInput{
		Email:    "test@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, err := authService.Register(RegisterInput{
		Name: "First", Email: "dup@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = authService.Register(RegisterInput{
		Name: "Second", Email: "dup@example.com", Password: "secret2",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_RegisterShortPassword(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, err := authService.Register(RegisterInput{
		Name: "Short", Email: "short@example.com", Password: "12345",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, err := authService.Register(RegisterInput{
		Name: "User", Email: "user@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = authService.Login(LoginInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authService.Login(LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginOAuthOnlyAccount(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)

	user := model.User{Name: "Social", Email: "social@example.com", Role: model.RoleUser}
	require.NoError(t, testDB.Create(&user).Error)

	_, err := authService.Login(LoginInput{
		Email:    "social@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ChangePassword(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	user, err := authService.Register(RegisterInput{
		Name: "User", Email: "user@example.com", Password: "oldsecret",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   ChangePasswordInput
		wantErr error
	}{
		{
			name:    "wrong old password",
			input:   ChangePasswordInput{OldPassword: "nope", NewPassword: "newsecret1"},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "new password too short",
			input:   ChangePasswordInput{OldPassword: "oldsecret", NewPassword: "short"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:    "new password equals old",
			input:   ChangePasswordInput{OldPassword: "oldsecret", NewPassword: "oldsecret"},
			wantErr: ErrPasswordUnchanged,
		},
		{
			name:  "valid change",
			input: ChangePasswordInput{OldPassword: "oldsecret", NewPassword: "newsecret1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authService.ChangePassword(user.ID, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			_, err = authService.Login(LoginInput{
				Email:    "user@example.com",
				Password: "newsecret1",
			})
			assert.NoError(t, err)
		})
	}
}
