package service

import (
	"testing"
	"time"

	"faculty_hub_backend/internal/config"
	"faculty_hub_backend/internal/model"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Asha", Email: "asha@uni.test", Password: "hunter2-long"}
	require.NoError(t, svc.Register(user))

	assert.Equal(t, model.Student, user.Role)
	assert.NotEqual(t, "hunter2-long", user.Password)

	dup := &model.User{Name: "Asha 2", Email: "asha@uni.test", Password: "whatever12"}
	assert.ErrorIs(t, svc.Register(dup), util.ErrEmailRegistered)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Asha", Email: "asha@uni.test", Password: "hunter2-long"}
	require.NoError(t, svc.Register(user))

	token, err := svc.Login("asha@uni.test", "hunter2-long")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Student, claims.Role)

	_, err = svc.Login("asha@uni.test", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("nobody@uni.test", "hunter2-long")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Asha", Email: "asha@uni.test", Password: "hunter2-long"}
	require.NoError(t, svc.Register(user))
	require.NoError(t, db.Model(user).Update("disabled", true).Error)

	_, err := svc.Login("asha@uni.test", "hunter2-long")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
