package models

// Role identifies the viewer's access level.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Session is the process-wide viewer state. It is never persisted;
// every start of the portal begins as an anonymous student.
type Session struct {
	Role     Role
	Username string
	Token    string
}

// IsAdmin reports whether the session is authenticated as admin.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
