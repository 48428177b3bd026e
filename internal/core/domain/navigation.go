package domain

import "slices"

// ScreenID names a destination in the presentation layer.
type ScreenID string

const (
	ScreenOnboarding ScreenID = "Onboarding"
	ScreenLogin      ScreenID = "Login"
	ScreenWelcome    ScreenID = "Welcome"
	ScreenDashboard  ScreenID = "Dashboard"

	// Per-role dashboards from the previous router generation.
	ScreenAdminDashboard     ScreenID = "AdminDashboard"
	ScreenPresidentDashboard ScreenID = "PresidenDashboard"
	ScreenMinisterDashboard  ScreenID = "MenteriDashboard"
	ScreenMemberDashboard    ScreenID = "AnggotaDashboard"

	ScreenRoles                  ScreenID = "Roles"
	ScreenUserManagement         ScreenID = "UserManagement"
	ScreenMinistryManagement     ScreenID = "MinistryManagement"
	ScreenProposalManagement     ScreenID = "ProposalManagement"
	ScreenProgramKerjaManagement ScreenID = "ProgramKerjaManagement"
	ScreenActivityLog            ScreenID = "ActivityLog"
	ScreenReports                ScreenID = "Reports"
)

// DashboardKind groups primary roles that share a dashboard layout.
type DashboardKind string

const (
	DashboardNone      DashboardKind = ""
	DashboardAdmin     DashboardKind = "admin"
	DashboardPresident DashboardKind = "president"
	DashboardMinister  DashboardKind = "minister"
	DashboardMember    DashboardKind = "member"
)

// DashboardKindFor maps a primary role onto its dashboard kind.
func DashboardKindFor(primary string) DashboardKind {
	switch primary {
	case RoleSuperAdmin, RoleAdmin, RoleSecretary, RoleTreasurer:
		return DashboardAdmin
	case RolePresidentBEM, RolePresident, RoleViceBEM:
		return DashboardPresident
	case RoleMinister:
		return DashboardMinister
	case RoleMember:
		return DashboardMember
	default:
		return DashboardNone
	}
}

// LegacyScreen returns the per-role dashboard screen of the older router.
func (k DashboardKind) LegacyScreen() ScreenID {
	switch k {
	case DashboardAdmin:
		return ScreenAdminDashboard
	case DashboardPresident:
		return ScreenPresidentDashboard
	case DashboardMinister:
		return ScreenMinisterDashboard
	case DashboardMember:
		return ScreenMemberDashboard
	default:
		return ScreenWelcome
	}
}

// LandingScreen is the unified-dashboard landing target for a role set:
// Dashboard for any recognised primary role, Welcome otherwise.
func LandingScreen(roles []string) ScreenID {
	primary, ok := PrimaryRole(roles)
	if !ok || DashboardKindFor(primary) == DashboardNone {
		return ScreenWelcome
	}
	return ScreenDashboard
}

// InitialScreen decides where the app starts: onboarding first, then the
// landing screen for an authenticated session, else the login screen.
func InitialScreen(s Session, onboardingSeen bool) ScreenID {
	if !onboardingSeen {
		return ScreenOnboarding
	}
	if s.Authenticated {
		return LandingScreen(s.Roles())
	}
	return ScreenLogin
}

// MenuSectionID identifies one of the dashboard menu groups.
type MenuSectionID string

const (
	SectionUserManagement     MenuSectionID = "UserManagement"
	SectionProposalManagement MenuSectionID = "ProposalManagement"
	SectionSystemManagement   MenuSectionID = "SystemManagement"
)

// MenuItem is one entry of a menu section.
type MenuItem struct {
	Title        string   `json:"title"`
	Icon         string   `json:"icon"`
	Screen       ScreenID `json:"screen"`
	AllowedRoles []string `json:"-"`
}

// MenuSection is a titled group of menu items.
type MenuSection struct {
	ID    MenuSectionID `json:"id"`
	Title string        `json:"title"`
	Icon  string        `json:"icon"`
	Items []MenuItem    `json:"items"`
}

var menuTable = []MenuSection{
	{
		ID: SectionUserManagement, Title: "Manajemen Pengguna", Icon: "people",
		Items: []MenuItem{
			{Title: "Roles", Icon: "shield-checkmark", Screen: ScreenRoles, AllowedRoles: []string{RoleSuperAdmin}},
			{Title: "User Account", Icon: "person-circle", Screen: ScreenUserManagement, AllowedRoles: []string{RoleSuperAdmin}},
			{Title: "Kementerian", Icon: "business", Screen: ScreenMinistryManagement, AllowedRoles: []string{RoleSuperAdmin}},
			{Title: "Anggota BEM", Icon: "people", Screen: ScreenUserManagement, AllowedRoles: []string{RolePresidentBEM, RoleViceBEM}},
			{Title: "Anggota Kementerian", Icon: "people", Screen: ScreenUserManagement, AllowedRoles: []string{RoleMinister}},
		},
	},
	{
		ID: SectionProposalManagement, Title: "Manajemen Proposal", Icon: "document-text",
		Items: []MenuItem{
			{Title: "Review Proposal", Icon: "document-text", Screen: ScreenProposalManagement, AllowedRoles: []string{RoleSuperAdmin, RolePresidentBEM, RoleViceBEM}},
			{Title: "Proposal Saya", Icon: "document-text", Screen: ScreenProposalManagement, AllowedRoles: []string{RoleMinister, RoleMember}},
			{Title: "Program Kerja", Icon: "calendar", Screen: ScreenProgramKerjaManagement, AllowedRoles: []string{RoleSuperAdmin, RolePresidentBEM, RoleViceBEM, RoleMinister, RoleMember}},
		},
	},
	{
		ID: SectionSystemManagement, Title: "Manajemen Sistem", Icon: "settings",
		Items: []MenuItem{
			{Title: "Roles", Icon: "shield-checkmark", Screen: ScreenRoles, AllowedRoles: []string{RoleSuperAdmin}},
			{Title: "Activity Log", Icon: "time", Screen: ScreenActivityLog, AllowedRoles: []string{RoleSuperAdmin}},
			{Title: "Laporan", Icon: "bar-chart", Screen: ScreenReports, AllowedRoles: []string{RoleSuperAdmin, RolePresidentBEM, RoleTreasurer}},
		},
	},
}

// VisibleMenuSections filters the static menu down to the items primary may
// open. Sections left without items are omitted; table order is preserved.
func VisibleMenuSections(primary string) []MenuSection {
	var out []MenuSection
	for _, section := range menuTable {
		var items []MenuItem
		for _, item := range section.Items {
			if slices.Contains(item.AllowedRoles, primary) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		section.Items = items
		out = append(out, section)
	}
	return out
}

// CanAccess reports whether any menu item visible to primary targets screen.
func CanAccess(primary string, screen ScreenID) bool {
	for _, section := range VisibleMenuSections(primary) {
		for _, item := range section.Items {
			if item.Screen == screen {
				return true
			}
		}
	}
	return false
}

// Dashboard tab labels.
const (
	TabAll                = "Semua"
	TabUserManagement     = "Manajemen Pengguna"
	TabProposalManagement = "Manajemen Proposal"
)

// DashboardTabs lists the dashboard filter tabs shown to primary. The
// proposal tab is always present.
func DashboardTabs(primary string) []string {
	tabs := []string{TabAll}
	for _, section := range VisibleMenuSections(primary) {
		if section.ID == SectionUserManagement {
			tabs = append(tabs, TabUserManagement)
			break
		}
	}
	return append(tabs, TabProposalManagement)
}
