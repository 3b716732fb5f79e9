package contextkeys

import "context"

type contextKey string

const (
	IsAdminKey contextKey = "IsAdmin"
)

// IsAdmin достаёт признак авторизации из контекста запроса.
func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(IsAdminKey).(bool)
	return v
}
