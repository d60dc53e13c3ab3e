package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/shared/constants"
)

// Staff is the authenticated caller as placed in the gin context by the auth middleware.
type Staff struct {
	UserID   uint
	TenantID uint
	Name     string
	Role     UserRole
}

// CurrentStaff reads the authenticated staff member from the context.
// ok is false when the request did not pass through RequireAuth.
func CurrentStaff(c *gin.Context) (Staff, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return Staff{}, false
	}
	uid, ok := userID.(uint)
	if !ok || uid == 0 {
		return Staff{}, false
	}

	tenantID, _ := c.Get(constants.ContextKeyTenantID)
	tid, _ := tenantID.(uint)
	if tid == 0 {
		return Staff{}, false
	}

	return Staff{
		UserID:   uid,
		TenantID: tid,
		Name:     c.GetString(constants.ContextKeyUserName),
		Role:     ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}

// SetStaff stores the staff member in the context.
func SetStaff(c *gin.Context, s Staff) {
	c.Set(constants.ContextKeyUserID, s.UserID)
	c.Set(constants.ContextKeyTenantID, s.TenantID)
	c.Set(constants.ContextKeyUserName, s.Name)
	c.Set(constants.ContextKeyUserRole, string(s.Role))
}
