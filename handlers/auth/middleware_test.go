package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
)

func roleCheckContext(t *testing.T) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/pipeline", nil)
	return w, c
}

func TestRequireRole_RejectsClinician(t *testing.T) {
	w, c := roleCheckContext(t)
	c.Set("user", models.User{Role: models.RoleClinician})

	RequireRole(models.RoleRecruiter, models.RoleLeadership)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "access_denied", body["code"])
	assert.Equal(t, "recruiter|leadership", body["required_role"])
}

func TestRequireRole_AllowsStaffRoles(t *testing.T) {
	for _, role := range []string{models.RoleRecruiter, models.RoleLeadership} {
		w, c := roleCheckContext(t)
		c.Set("user", models.User{Role: role})

		RequireRole(models.RoleRecruiter, models.RoleLeadership)(c)

		assert.False(t, c.IsAborted(), "role %s should pass through", role)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequireRole_MissingUser(t *testing.T) {
	w, c := roleCheckContext(t)

	RequireRole(models.RoleRecruiter)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_authenticated", body["code"])
}
