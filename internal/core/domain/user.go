package domain

import "slices"

// Role names exactly as the backend issues them. Matching is case-sensitive
// and synonyms (Presiden vs Presiden BEM) are kept distinct.
const (
	RoleSuperAdmin   = "Super Admin"
	RoleAdmin        = "Admin"
	RolePresidentBEM = "Presiden BEM"
	RolePresident    = "Presiden"
	RoleViceBEM      = "Wakil Presiden BEM"
	RoleSecretary    = "Sekretaris"
	RoleTreasurer    = "Bendahara"
	RoleMinister     = "Menteri"
	RoleMember       = "Anggota"
)

// User models the authenticated actor as returned by the backend.
type User struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	MinistryID *int64   `json:"ministry_id,omitempty"`
}

// HasRole reports whether the user holds the exact role name.
func (u *User) HasRole(name string) bool {
	if u == nil {
		return false
	}
	return slices.Contains(u.Roles, name)
}

// HasAnyRole reports whether the user holds at least one of names.
func (u *User) HasAnyRole(names ...string) bool {
	if u == nil {
		return false
	}
	for _, name := range names {
		if slices.Contains(u.Roles, name) {
			return true
		}
	}
	return false
}

// PrimaryRole resolves the user's primary role. See PrimaryRole.
func (u *User) PrimaryRole() (string, bool) {
	if u == nil {
		return "", false
	}
	return PrimaryRole(u.Roles)
}

// Clone returns a deep copy so callers cannot mutate session-owned state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = slices.Clone(u.Roles)
	if u.MinistryID != nil {
		id := *u.MinistryID
		c.MinistryID = &id
	}
	return &c
}

// Session holds at most one user and whether it is authenticated.
// The zero value is the empty, unauthenticated session.
type Session struct {
	User          *User `json:"user,omitempty"`
	Authenticated bool  `json:"authenticated"`
}

// Roles returns the session user's role set, or nil when there is no user.
func (s Session) Roles() []string {
	if s.User == nil {
		return nil
	}
	return s.User.Roles
}
