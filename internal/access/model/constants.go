package model

// Roles
const (
	RoleAdmin    = "admin"
	RoleMerchant = "merchant"
	RoleUser     = "user"
)

// AllowedRoles defines the closed set of assignable roles
var AllowedRoles = map[string]bool{
	RoleAdmin:    true,
	RoleMerchant: true,
	RoleUser:     true,
}

// Access levels
const (
	LevelView = "view"
	LevelEdit = "edit"
)

var AllowedLevels = map[string]bool{
	LevelView: true,
	LevelEdit: true,
}

// Node types / grant scopes
const (
	NodeCollection = "collection"
	NodeCategory   = "category"
	NodeProduct    = "product"
	NodeOrder      = "order"
)

// AllowedScopeTypes defines which node types a grant may be scoped to.
// Orders are never grant scopes; order access flows through the owning
// collection or the wallet path.
var AllowedScopeTypes = map[string]bool{
	NodeCollection: true,
	NodeCategory:   true,
	NodeProduct:    true,
}

// LevelSatisfies reports whether the held level covers the required one.
// Edit implies view within the same scope; view never implies edit.
func LevelSatisfies(held, required string) bool {
	if held == LevelEdit {
		return required == LevelEdit || required == LevelView
	}
	return held == LevelView && required == LevelView
}

// RoleCanMutateCatalog reports whether a role clears the floor for write
// operations on collections, categories and products.
func RoleCanMutateCatalog(role string) bool {
	return role == RoleAdmin || role == RoleMerchant
}
