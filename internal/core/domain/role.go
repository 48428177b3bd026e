package domain

import "slices"

// rolePriority orders roles for primary-role resolution, highest first.
var rolePriority = []string{
	RoleSuperAdmin,
	RoleAdmin,
	RolePresidentBEM,
	RolePresident,
	RoleViceBEM,
	RoleSecretary,
	RoleTreasurer,
	RoleMinister,
	RoleMember,
}

// announcementCreators and announcementDeleters are the allow-lists for the
// announcement board.
var (
	announcementCreators = []string{RoleSuperAdmin, RolePresidentBEM, RoleViceBEM, RoleSecretary, RoleTreasurer}
	announcementDeleters = []string{RoleSuperAdmin, RolePresidentBEM}
)

// RolePriority returns a copy of the fixed priority order.
func RolePriority() []string {
	return slices.Clone(rolePriority)
}

// AnnouncementDeleters returns the roles allowed to delete announcements.
func AnnouncementDeleters() []string {
	return slices.Clone(announcementDeleters)
}

// PrimaryRole returns the highest-priority role present in roles. When none
// of the known roles is present the first entry of roles is returned; an
// empty set yields ("", false).
func PrimaryRole(roles []string) (string, bool) {
	if len(roles) == 0 {
		return "", false
	}
	for _, r := range rolePriority {
		if slices.Contains(roles, r) {
			return r, true
		}
	}
	return roles[0], true
}

// IsKnownRole reports whether name is one of the enumerated roles.
func IsKnownRole(name string) bool {
	return slices.Contains(rolePriority, name)
}

// IsProtectedRole reports whether a role record may not be edited or deleted.
func IsProtectedRole(name string) bool {
	return name == RoleSuperAdmin
}

// CanReviewProposals is true for every role except Anggota. No role at all
// cannot review.
func CanReviewProposals(primary string) bool {
	return primary != "" && primary != RoleMember
}

// CanCreateAnnouncement reports whether primary may publish announcements.
func CanCreateAnnouncement(primary string) bool {
	return slices.Contains(announcementCreators, primary)
}

// CanDeleteAnnouncement reports whether primary may remove announcements.
func CanDeleteAnnouncement(primary string) bool {
	return slices.Contains(announcementDeleters, primary)
}

// CanManageRoles reports whether primary reaches the role administration screen.
func CanManageRoles(primary string) bool {
	return CanAccess(primary, ScreenRoles)
}

// Capabilities bundles the flags the presentation layer needs to decide
// which actions to offer.
type Capabilities struct {
	ReviewProposals    bool `json:"review_proposals"`
	CreateAnnouncement bool `json:"create_announcement"`
	DeleteAnnouncement bool `json:"delete_announcement"`
	ManageRoles        bool `json:"manage_roles"`
	ViewActivityLog    bool `json:"view_activity_log"`
	ViewReports        bool `json:"view_reports"`
}

// CapabilitiesFor computes every capability flag for primary.
func CapabilitiesFor(primary string) Capabilities {
	return Capabilities{
		ReviewProposals:    CanReviewProposals(primary),
		CreateAnnouncement: CanCreateAnnouncement(primary),
		DeleteAnnouncement: CanDeleteAnnouncement(primary),
		ManageRoles:        CanManageRoles(primary),
		ViewActivityLog:    CanAccess(primary, ScreenActivityLog),
		ViewReports:        CanAccess(primary, ScreenReports),
	}
}
