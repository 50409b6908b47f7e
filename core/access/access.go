// Package access decides which sections and actions a role may reach.
// The navigation bar and the route guards both read the same rule table.
package access

import "github.com/AlainDede/Delphinium-gestion-site/core/session"

type Section string

const (
	Newsgroup     Section = "newsgroup"
	Blog          Section = "blog"
	Calendar      Section = "calendar"
	AccessRequest Section = "access-request"
	Incidents     Section = "incidents"
	Documentation Section = "documentation"
)

type Action string

const (
	UploadDocument Action = "upload-document"
)

type rule func(role session.Role) bool

func authenticated(role session.Role) bool { return role != session.RoleNone }

func anyone(session.Role) bool { return true }

func admins(role session.Role) bool { return role.IsAdmin() }

var (
	// navigation order
	sections = []Section{Newsgroup, Blog, Calendar, AccessRequest, Incidents, Documentation}

	sectionRules = map[Section]rule{
		Newsgroup:     authenticated,
		Blog:          authenticated,
		Calendar:      authenticated,
		Documentation: authenticated,
		AccessRequest: anyone,
		Incidents:     admins,
	}

	actionRules = map[Action]rule{
		UploadDocument: admins,
	}
)

// CanAccess reports whether `role` may reach `section`. RoleNone is an anonymous visitor. Unknown sections are denied.
func CanAccess(section Section, role session.Role) bool {
	allowed, ok := sectionRules[section]
	return ok && allowed(role)
}

// CanPerform reports whether `role` may perform `action`. Unknown actions are denied.
func CanPerform(action Action, role session.Role) bool {
	allowed, ok := actionRules[action]
	return ok && allowed(role)
}

// Visible lists, in navigation order, the sections `role` may reach.
func Visible(role session.Role) []Section {
	visible := make([]Section, 0, len(sections))
	for _, s := range sections {
		if CanAccess(s, role) {
			visible = append(visible, s)
		}
	}
	return visible
}

// Sections lists every known section in navigation order.
func Sections() []Section {
	return append([]Section(nil), sections...)
}

// Path is the route of the section.
func (s Section) Path() string {
	return "/" + string(s)
}

// LabelKey is the message key of the section's navigation label.
func (s Section) LabelKey() string {
	return "nav." + string(s)
}
