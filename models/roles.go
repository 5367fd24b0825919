package models

// Staff roles.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleWaiter       = "waiter"
	RoleReceptionist = "receptionist"
	RoleChef         = "chef"
)

// Permissions gating the dashboard surfaces.
const (
	PermManageStaff   = "manage_staff"
	PermManageMenu    = "manage_menu"
	PermManageTables  = "manage_tables"
	PermViewAnalytics = "view_analytics"
	PermPOS           = "pos"
	PermKitchen       = "kitchen"
	PermViewTables    = "view_tables"
	PermViewMenu      = "view_menu"
)

// rolePermissions is the fixed capability set per role. An unknown role
// resolves to no permissions.
var rolePermissions = map[string][]string{
	RoleAdmin:        {PermManageStaff, PermManageMenu, PermManageTables, PermViewAnalytics, PermPOS, PermKitchen},
	RoleManager:      {PermManageMenu, PermManageTables, PermViewAnalytics, PermPOS, PermKitchen},
	RoleWaiter:       {PermPOS, PermViewTables},
	RoleReceptionist: {PermManageTables, PermPOS},
	RoleChef:         {PermKitchen, PermViewMenu},
}

func IsValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

func HasPermission(role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// DefaultLandingPage maps a role to the dashboard the client opens after
// login. Pure helper for the login response; nothing is persisted.
func DefaultLandingPage(role string) string {
	switch role {
	case RoleAdmin:
		return "/admin-dashboard"
	case RoleManager:
		return "/dashboard"
	case RoleWaiter:
		return "/waiter-dashboard"
	case RoleReceptionist:
		return "/reception-dashboard"
	case RoleChef:
		return "/kitchen"
	default:
		return "/pos"
	}
}
