package contextkeys

type contextKey string

const (
	UserIDKey     contextKey = "UserID"
	UserRoleIDKey contextKey = "UserRoleID"
	RoleCodeKey   contextKey = "RoleCode"
)
