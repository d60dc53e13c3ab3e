package permission

// rbacModel grants a role everything its inherited roles can do.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

const (
	ResourceStatus  = "status"
	ResourceTicket  = "ticket"
	ResourceShare   = "share"
	ResourceComment = "comment"

	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
)
