package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/infrastructure/auth"
	"github.com/niggl1/appsindico/internal/shared/authorization"
)

func TestIssue_TokenVerifies(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", "appsindico", 30)
	var out bytes.Buffer

	err := issue(jwtSvc, &out, &options{userID: 4, tenantID: 9, name: "Zelador", role: "staff"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "# expires at "))

	claims, err := jwtSvc.Verify(lines[0])
	require.NoError(t, err)
	assert.Equal(t, uint(4), claims.UserID)
	assert.Equal(t, uint(9), claims.TenantID)
	assert.Equal(t, "Zelador", claims.Name)
	assert.Equal(t, authorization.RoleStaff, claims.Role)
}

func TestIssue_InvalidRole(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", "appsindico", 30)

	err := issue(jwtSvc, &bytes.Buffer{}, &options{userID: 1, tenantID: 1, role: "admin"})
	assert.Error(t, err)
}

func TestIssue_RequiresIDs(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", "appsindico", 30)

	err := issue(jwtSvc, &bytes.Buffer{}, &options{userID: 1, role: "manager"})
	assert.Error(t, err)
}
