package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlainDede/Delphinium-gestion-site/core/session"
)

var allRoles = []session.Role{session.RoleNone, session.RoleUser, session.RoleAdmin, session.RoleSuperadmin}

func TestCanAccess(t *testing.T) {
	for _, role := range allRoles {
		for _, section := range Sections() {
			got := CanAccess(section, role)
			switch {
			case section == AccessRequest:
				assert.True(t, got, "%s/%q", section, role)
			case role == session.RoleNone:
				assert.False(t, got, "%s/%q", section, role)
			case section == Incidents:
				assert.Equal(t, role == session.RoleAdmin || role == session.RoleSuperadmin, got, "%s/%q", section, role)
			default:
				assert.True(t, got, "%s/%q", section, role)
			}
			// deterministic
			assert.Equal(t, got, CanAccess(section, role))
		}
		assert.False(t, CanAccess("billing", role), "undefined section for %q", role)
		assert.False(t, CanAccess("", role), "empty section for %q", role)
	}
}

func TestCanPerform(t *testing.T) {
	assert.False(t, CanPerform(UploadDocument, session.RoleNone))
	assert.False(t, CanPerform(UploadDocument, session.RoleUser))
	assert.True(t, CanPerform(UploadDocument, session.RoleAdmin))
	assert.True(t, CanPerform(UploadDocument, session.RoleSuperadmin))
	assert.False(t, CanPerform("delete-everything", session.RoleSuperadmin))
}

func TestVisible(t *testing.T) {
	tests := []struct {
		role session.Role
		want []Section
	}{
		{role: session.RoleNone, want: []Section{AccessRequest}},
		{role: session.RoleUser, want: []Section{Newsgroup, Blog, Calendar, AccessRequest, Documentation}},
		{role: session.RoleAdmin, want: []Section{Newsgroup, Blog, Calendar, AccessRequest, Incidents, Documentation}},
		{role: session.RoleSuperadmin, want: []Section{Newsgroup, Blog, Calendar, AccessRequest, Incidents, Documentation}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, Visible(tt.role))
		})
	}
}

func TestSection_PathAndLabel(t *testing.T) {
	assert.Equal(t, "/incidents", Incidents.Path())
	assert.Equal(t, "nav.access-request", AccessRequest.LabelKey())
}
