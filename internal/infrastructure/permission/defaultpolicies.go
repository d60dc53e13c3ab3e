package permission

import (
	"fmt"

	"github.com/niggl1/appsindico/internal/shared/authorization"
)

// Role inheritance: manager > staff > viewer.
var defaultRoleInheritance = [][2]string{
	{authorization.RoleManager.String(), authorization.RoleStaff.String()},
	{authorization.RoleStaff.String(), authorization.RoleViewer.String()},
}

var defaultPolicies = [][3]string{
	{authorization.RoleViewer.String(), ResourceStatus, ActionRead},
	{authorization.RoleViewer.String(), ResourceTicket, ActionRead},
	{authorization.RoleViewer.String(), ResourceShare, ActionRead},
	{authorization.RoleViewer.String(), ResourceComment, ActionRead},

	{authorization.RoleStaff.String(), ResourceTicket, ActionWrite},
	{authorization.RoleStaff.String(), ResourceShare, ActionWrite},
	{authorization.RoleStaff.String(), ResourceComment, ActionWrite},

	{authorization.RoleManager.String(), ResourceStatus, ActionWrite},
	{authorization.RoleManager.String(), ResourceTicket, ActionDelete},
	{authorization.RoleManager.String(), ResourceComment, ActionDelete},
}

// SeedDefaultPolicies adds the built-in policies. Rules already present are
// left untouched, so it is safe to run on every startup.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, p := range defaultPolicies {
		ok, err := e.enforcer.AddPolicy(p[0], p[1], p[2])
		if err != nil {
			e.logger.Errorw("failed to add default policy",
				"error", err,
				"role", p[0],
				"resource", p[1],
				"action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
		if ok {
			added++
		}
	}

	for _, g := range defaultRoleInheritance {
		ok, err := e.enforcer.AddGroupingPolicy(g[0], g[1])
		if err != nil {
			return fmt.Errorf("failed to add role inheritance [%s, %s]: %w", g[0], g[1], err)
		}
		if ok {
			added++
		}
	}

	e.logger.Infow("default permissions seeded", "added", added)
	return nil
}
