package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sea-catering-backend/internal/apperr"
	"sea-catering-backend/internal/config"
	"sea-catering-backend/internal/dto"
	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/repository"
	"sea-catering-backend/internal/service"
)

var testJWT = config.JWT{Secret: "test-secret", TTL: time.Hour}

func newAuthService(t *testing.T) service.AuthService {
	t.Helper()
	return service.NewAuthService(repository.NewUserRepository(newTestDB(t)), testJWT)
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
		Password: "Str0ng!pass",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	claims, err := svc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)

	logged, err := svc.Login(ctx, "budi@example.com", "Str0ng!pass")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, logged.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*dto.RegisterRequest)
		wantField string
	}{
		{"missing name", func(r *dto.RegisterRequest) { r.FullName = "" }, "fullName"},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "Ab1!" }, "password"},
		{"no special character", func(r *dto.RegisterRequest) { r.Password = "Abcdefg1" }, "password"},
		{"no upper case", func(r *dto.RegisterRequest) { r.Password = "abcdefg1!" }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(ctx, req)
			var verr apperr.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.wantField))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validRegisterRequest())
	var verr apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("email"))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	var authErr *apperr.AuthError
	_, err = svc.Login(ctx, "budi@example.com", "wrong-password")
	assert.ErrorAs(t, err, &authErr)
	_, err = svc.Login(ctx, "nobody@example.com", "Str0ng!pass")
	assert.ErrorAs(t, err, &authErr)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t)

	var authErr *apperr.AuthError
	_, err := svc.VerifyToken("not.a.token")
	assert.ErrorAs(t, err, &authErr)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	issuer := service.NewAuthService(repo, testJWT)
	verifier := service.NewAuthService(repo, config.JWT{Secret: "other-secret", TTL: time.Hour})

	resp, err := issuer.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	var authErr *apperr.AuthError
	_, err = verifier.VerifyToken(resp.Token)
	assert.ErrorAs(t, err, &authErr)
}

func TestEnsureAdmin(t *testing.T) {
	t.Parallel()
	svc := newAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@seacatering.id", "Adm1n!pass", "Admin"))
	// second run is a no-op, not a duplicate
	require.NoError(t, svc.EnsureAdmin(ctx, "admin@seacatering.id", "Adm1n!pass", "Admin"))

	resp, err := svc.Login(ctx, "admin@seacatering.id", "Adm1n!pass")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
}
