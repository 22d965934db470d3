package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NavidentClinic/models"
	"NavidentClinic/role"
	"NavidentClinic/utils"
)

type fakeUserLookup struct {
	users map[string]*models.User
}

func (f *fakeUserLookup) FindByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func authTestRouter(users UserLookup, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api")
	group.Use(JWTAuth(users))
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
			"userId":   c.GetString("userId"),
		})
	}
	if len(allowed) > 0 {
		group.GET("/probe", RequireRoles(allowed...), handler)
	} else {
		group.GET("/probe", handler)
	}
	return r
}

func usableUser(username, userRole string) *models.User {
	return &models.User{
		Username: username,
		Role:     userRole,
		Active:   true,
	}
}

func probe(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	r := authTestRouter(&fakeUserLookup{users: map[string]*models.User{}})

	rec := probe(r, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	r := authTestRouter(&fakeUserLookup{users: map[string]*models.User{}})

	req := httptest.NewRequest(http.MethodGet, "/api/probe", nil)
	req.Header.Set("Authorization", "Token abcdef")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthAcceptsValidTokenAndSetsPrincipal(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	users := &fakeUserLookup{users: map[string]*models.User{
		"assistant1": usableUser("assistant1", role.ClinicAssistant),
	}}
	r := authTestRouter(users)

	token, err := utils.GenerateToken("assistant1", role.ClinicAssistant)
	require.NoError(t, err)

	rec := probe(r, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"assistant1"`)
	assert.Contains(t, rec.Body.String(), `"role":"`+role.ClinicAssistant+`"`)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	users := &fakeUserLookup{users: map[string]*models.User{
		"assistant1": usableUser("assistant1", role.ClinicAssistant),
	}}
	r := authTestRouter(users)

	// Issued two days ago with the default 24h TTL, so already expired.
	token, err := utils.GenerateTokenAt("assistant1", role.ClinicAssistant, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	rec := probe(r, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token has expired")
}

func TestJWTAuthRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	token, err := utils.GenerateToken("assistant1", role.ClinicAssistant)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-different-secret")
	r := authTestRouter(&fakeUserLookup{users: map[string]*models.User{
		"assistant1": usableUser("assistant1", role.ClinicAssistant),
	}})

	rec := probe(r, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsDisabledAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	disabled := usableUser("assistant1", role.ClinicAssistant)
	disabled.Active = false
	r := authTestRouter(&fakeUserLookup{users: map[string]*models.User{
		"assistant1": disabled,
	}})

	token, err := utils.GenerateToken("assistant1", role.ClinicAssistant)
	require.NoError(t, err)

	rec := probe(r, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsUnknownSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	r := authTestRouter(&fakeUserLookup{users: map[string]*models.User{}})

	token, err := utils.GenerateToken("ghost", role.ClinicAssistant)
	require.NoError(t, err)

	rec := probe(r, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	r := authTestRouter(&fakeUserLookup{users: map[string]*models.User{
		"admin1": usableUser("admin1", role.Administrator),
	}}, role.Administrator, role.ChiefDentist)

	token, err := utils.GenerateToken("admin1", role.Administrator)
	require.NoError(t, err)

	rec := probe(r, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesRejectsUnlistedRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	r := authTestRouter(&fakeUserLookup{users: map[string]*models.User{
		"assistant1": usableUser("assistant1", role.ClinicAssistant),
	}}, role.Administrator, role.ChiefDentist)

	token, err := utils.GenerateToken("assistant1", role.ClinicAssistant)
	require.NoError(t, err)

	rec := probe(r, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access Denied")
}
