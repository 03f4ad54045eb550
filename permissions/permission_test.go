package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: "POST", wantSkip: true},
		{name: "group root with trailing slash", path: "/v1/rooms/", method: "GET", wantSkip: true},
		{name: "room creation is admin only", path: "/v1/rooms/", method: "POST", wantRole: []string{"Admin"}},
		{name: "check-in is admin only", path: "/v1/reservations/{id}/checkin", method: "PUT", wantRole: []string{"Admin"}},
		{name: "cancel is open to guests", path: "/v1/reservations/{id}/cancel", method: "PUT", wantRole: []string{"Admin", "Guest"}},
		{name: "unknown route needs a token", path: "/v1/unknown", method: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, p.Skip)
			assert.Equal(t, tt.wantRole, p.Permissions)
		})
	}
}
