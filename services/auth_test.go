package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NavidentClinic/models"
	"NavidentClinic/role"
	"NavidentClinic/utils"
)

func signUpUser(t *testing.T, svc *AuthService, username, password, email, userRole string) *models.AuthResponse {
	t.Helper()
	resp, err := svc.SignUp(context.Background(), &models.User{
		Username: username,
		Password: password,
		Email:    email,
		Role:     userRole,
	})
	require.NoError(t, err)
	return resp
}

func TestSignUpThenSignIn(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	store := newFakeUserStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	resp := signUpUser(t, svc, "assistant1", "pass123", "a1@clinic.test", role.ClinicAssistant)
	assert.Empty(t, resp.Token)

	signedIn, err := svc.SignIn(ctx, &models.AuthRequest{Username: "assistant1", Password: "pass123"})
	require.NoError(t, err)
	assert.NotEmpty(t, signedIn.Token)
	assert.Equal(t, role.ClinicAssistant, signedIn.Role)

	username, userRole, err := utils.VerifyToken(signedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, "assistant1", username)
	assert.Equal(t, role.ClinicAssistant, userRole)
}

func TestSignInWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	svc := NewAuthService(newFakeUserStore())
	ctx := context.Background()

	signUpUser(t, svc, "assistant1", "pass123", "a1@clinic.test", role.ClinicAssistant)

	_, wrongPassErr := svc.SignIn(ctx, &models.AuthRequest{Username: "assistant1", Password: "wrong"})
	_, unknownErr := svc.SignIn(ctx, &models.AuthRequest{Username: "nobody", Password: "whatever"})
	assert.Equal(t, utils.KindUnauthenticated, errKind(wrongPassErr))
	assert.Equal(t, utils.KindUnauthenticated, errKind(unknownErr))
}

func errKind(err error) string {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func TestSignUpDuplicateUsernameConflicts(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())
	ctx := context.Background()

	signUpUser(t, svc, "drsmith", "pass123", "smith@clinic.test", role.ChiefDentist)

	_, err := svc.SignUp(ctx, &models.User{
		Username: "drsmith",
		Password: "pass456",
		Email:    "other@clinic.test",
		Role:     role.ClinicAssistant,
	})
	assert.Equal(t, utils.KindConflict, errKind(err))
}

func TestSignUpRejectsInvalidRole(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	_, err := svc.SignUp(context.Background(), &models.User{
		Username: "someone",
		Password: "pass123",
		Email:    "someone@clinic.test",
		Role:     "SUPERUSER",
	})
	assert.Equal(t, utils.KindValidation, errKind(err))
}

func TestSignInRejectsDisabledAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	store := newFakeUserStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	signUpUser(t, svc, "assistant1", "pass123", "a1@clinic.test", role.ClinicAssistant)
	user, err := store.FindByUsername(ctx, "assistant1")
	require.NoError(t, err)
	user.Active = false
	require.NoError(t, store.Replace(ctx, user))

	_, err = svc.SignIn(ctx, &models.AuthRequest{Username: "assistant1", Password: "pass123"})
	assert.Equal(t, utils.KindUnauthenticated, errKind(err))
}

func TestEnsureAdminUserCreatesAccount(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin", "bootpass", "admin@clinic.test"))

	admin, err := store.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, role.Administrator, admin.Role)
	assert.True(t, admin.Usable())
	assert.True(t, utils.VerifyPassword(admin.Password, "bootpass"))
}

func TestEnsureAdminUserKeepsExistingPasswordAndEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin", "originalpass", "original@clinic.test"))

	// Break the account, then bootstrap again with different credentials.
	admin, err := store.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	admin.Active = false
	admin.Role = role.ClinicAssistant
	require.NoError(t, store.Replace(ctx, admin))

	require.NoError(t, svc.EnsureAdminUser(ctx, "admin", "newpass", "new@clinic.test"))

	repaired, err := store.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, role.Administrator, repaired.Role)
	assert.True(t, repaired.Usable())
	assert.Equal(t, "original@clinic.test", repaired.Email)
	assert.True(t, utils.VerifyPassword(repaired.Password, "originalpass"))
	assert.False(t, utils.VerifyPassword(repaired.Password, "newpass"))
}

func TestRefreshIssuesFreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	svc := NewAuthService(newFakeUserStore())
	ctx := context.Background()

	signUpUser(t, svc, "drsmith", "pass123", "smith@clinic.test", role.ChiefDentist)

	resp, err := svc.Refresh(ctx, "drsmith")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	username, userRole, err := utils.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "drsmith", username)
	assert.Equal(t, role.ChiefDentist, userRole)
}
