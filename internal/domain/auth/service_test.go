package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, email string) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}

func setupAuthService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(db, stubJWT{})
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{Email: "Marie@Example.com", Password: "motdepasse1", Name: "Marie"})
	require.NoError(t, err)
	assert.Equal(t, "marie@example.com", res.User.Email)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, "motdepasse1", res.User.PasswordHash)

	login, err := svc.Login(ctx, LoginRequest{Email: "marie@example.com", Password: "motdepasse1"})
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "dup@example.com", Password: "motdepasse1", Name: "A"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "DUP@example.com", Password: "motdepasse2", Name: "B"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "u@example.com", Password: "motdepasse1", Name: "U"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "u@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "whatever1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetPlan(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterRequest{Email: "p@example.com", Password: "motdepasse1", Name: "P"})
	require.NoError(t, err)

	require.NoError(t, svc.SetPlan(ctx, res.User.ID, "pro"))

	user, err := svc.GetByID(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "pro", user.PlanID)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.GetByID(context.Background(), 424242)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
