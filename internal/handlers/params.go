package handlers

import (
	"context"
	"net/http"

	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
)

// PathID reads a positive integer route parameter.
func PathID(r *http.Request, key string) (int64, error) {
	id, err := shared.ConvertStringToID(chi.URLParam(r, key))
	if err != nil {
		return 0, failure.BadRequest(err)
	}

	return id, nil
}

// CanAccessGuest reports whether the caller may act on the given guest's data. Admins may act
// on anyone, guests only on themselves.
func CanAccessGuest(ctx context.Context, guestID int64) bool {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return true
	}

	own, _ := ctx.Value(constant.ContextKeyGuestID).(int64)

	return own != 0 && own == guestID
}

func UserID(ctx context.Context) (int64, error) {
	raw, _ := ctx.Value(constant.ContextKeyUserID).(string)

	id, err := shared.ConvertStringToID(raw)
	if err != nil {
		return 0, failure.Unauthorized("missing user identity")
	}

	return id, nil
}
