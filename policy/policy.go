// Package policy holds the pure authorization rules: which role may
// perform which action, and which region a user's queries must be
// confined to. Both functions are side-effect free; every data-access
// path consumes them instead of branching on roles inline.
package policy

import "food-ordering-api/models"

// Action identifies an operation that is gated by role.
type Action string

const (
	ActionCheckout       Action = "checkout"
	ActionCancelOrder    Action = "cancel_order"
	ActionCompleteOrder  Action = "complete_order"
	ActionManagePayments Action = "manage_payments"
	ActionListAllOrders  Action = "list_all_orders"
)

// allowedRoles is the authoritative role table. Actions absent from the
// map are open to any authenticated role (cart access, own-order reads).
var allowedRoles = map[Action][]models.UserRole{
	ActionCheckout:       {models.RoleAdmin, models.RoleManager},
	ActionCancelOrder:    {models.RoleAdmin, models.RoleManager},
	ActionCompleteOrder:  {models.RoleAdmin, models.RoleManager},
	ActionManagePayments: {models.RoleAdmin},
	ActionListAllOrders:  {models.RoleAdmin},
}

// Allows reports whether role may perform action.
func Allows(role models.UserRole, action Action) bool {
	roles, gated := allowedRoles[action]
	if !gated {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// RolesFor returns the roles permitted to perform action, for use in
// deny messages. Nil means the action is open to all authenticated roles.
func RolesFor(action Action) []models.UserRole {
	return allowedRoles[action]
}

// RegionScope returns the region a user's restaurant/order queries must
// be restricted to. ok is false when no filter applies: administrators
// and global-region users see every region. The filter is applied
// silently as a query predicate — an out-of-scope row reads as absent,
// never as forbidden.
func RegionScope(user models.User) (models.Region, bool) {
	if user.Role == models.RoleAdmin || user.Region == models.RegionGlobal {
		return "", false
	}
	return user.Region, true
}
