package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/mock"
	"github.com/MKhiriev/go-report-keeper/internal/store"
	"github.com/MKhiriev/go-report-keeper/models"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "secret",
		TokenIssuer:      "test",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
		Version:          "test",
	}
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig(), logger.Nop()), repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "jane@example.com", u.Email, "email must be normalised")
			assert.Empty(t, u.Password, "plain password must never reach the store")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
			assert.Equal(t, models.RoleUser, u.Role)
			assert.False(t, u.CreatedAt.IsZero())
			u.UserID = 42
			return u, nil
		},
	)

	user, err := svc.RegisterUser(context.Background(), models.User{Email: " Jane@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	for _, user := range []models.User{
		{Email: "", Password: "secret1"},
		{Email: "not-an-email", Password: "secret1"},
		{Email: "jane@example.com", Password: "123"},
	} {
		_, err := svc.RegisterUser(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "jane@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterUser_StoreError(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	repoErr := errors.New("db down")
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, repoErr)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "jane@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, repoErr)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 5, Email: "jane@example.com", PasswordHash: hashed(t, "secret1"), Role: models.RoleUser}

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestAuthSvc(t)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(stored, nil)

		user, err := svc.Login(context.Background(), models.User{Email: "JANE@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, int64(5), user.UserID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestAuthSvc(t)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "jane@example.com").Return(stored, nil)

		_, err := svc.Login(context.Background(), models.User{Email: "jane@example.com", Password: "nope!!"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		svc, repo := newTestAuthSvc(t)
		repo.EXPECT().FindUserByEmail(gomock.Any(), "who@example.com").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Login(context.Background(), models.User{Email: "who@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("empty password", func(t *testing.T) {
		svc, _ := newTestAuthSvc(t)

		_, err := svc.Login(context.Background(), models.User{Email: "jane@example.com"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("store error", func(t *testing.T) {
		svc, repo := newTestAuthSvc(t)
		repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

		_, err := svc.Login(context.Background(), models.User{Email: "jane@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 9})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(9), parsed.UserID)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_OtherIssuer(t *testing.T) {
	other := NewAuthService(nil, config.App{TokenSignKey: "secret", TokenIssuer: "other", TokenDuration: time.Hour}, logger.Nop())
	token, err := other.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	svc, _ := newTestAuthSvc(t)
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
