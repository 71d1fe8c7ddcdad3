package utils

import (
	"context"

	"efiling-system/pkg/contextkeys"
	apperrors "efiling-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserRoleIDFromCtx(ctx context.Context) (uint64, error) {
	roleID, ok := ctx.Value(contextkeys.UserRoleIDKey).(uint64)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return roleID, nil
}

func GetRoleCodeFromCtx(ctx context.Context) (string, error) {
	code, ok := ctx.Value(contextkeys.RoleCodeKey).(string)
	if !ok {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return code, nil
}
