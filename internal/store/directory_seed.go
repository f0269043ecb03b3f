package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/meter-console/models"
)

// SeedUser is a directory user with a plain-text development password.
type SeedUser struct {
	User     models.User
	RoleIDs  []models.ID
	Password string
}

var seedPermissions = []models.Permission{
	{PermissionID: 1, PermissionName: models.PermissionViewReports, PermissionDescription: "View dashboard reports", CategoryID: 1, IsActive: true},
	{PermissionID: 2, PermissionName: models.PermissionViewAlarms, PermissionDescription: "View meter alarms", CategoryID: 1, IsActive: true},
	{PermissionID: 3, PermissionName: models.PermissionManageRoles, PermissionDescription: "Manage role permissions", CategoryID: 2, IsActive: true},
	{PermissionID: 4, PermissionName: models.PermissionViewProfile, PermissionDescription: "View own profile", CategoryID: 3, IsActive: true},
}

var seedRoles = []models.Role{
	{RolID: 1, Name: "administrator", Description: "Full console access", IsActive: true},
	{RolID: 2, Name: "operator", Description: "Dashboard and alarms", IsActive: true},
	{RolID: 3, Name: "analyst", Description: "Dashboard only", IsActive: true},
}

var seedLinks = []models.RolePermissionLink{
	{ID: 1, RolID: 1, PermissionID: 1},
	{ID: 2, RolID: 1, PermissionID: 2},
	{ID: 3, RolID: 1, PermissionID: 3},
	{ID: 4, RolID: 1, PermissionID: 4},
	{ID: 5, RolID: 2, PermissionID: 1},
	{ID: 6, RolID: 2, PermissionID: 2},
	{ID: 7, RolID: 2, PermissionID: 4},
	{ID: 8, RolID: 3, PermissionID: 1},
}

// DefaultSeedUsers are the development accounts. The password equals the
// username.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{User: models.User{UserID: 1, Username: models.SuperuserUsername, Email: "root@meter.local", IsActive: true}, Password: "root"},
		{User: models.User{UserID: 2, Username: "admin", Email: "admin@meter.local", IsActive: true}, RoleIDs: []models.ID{1}, Password: "admin"},
		{User: models.User{UserID: 3, Username: "operator", Email: "operator@meter.local", IsActive: true}, RoleIDs: []models.ID{2}, Password: "operator"},
		{User: models.User{UserID: 4, Username: "analyst", Email: "analyst@meter.local", IsActive: true, TwoFactorEnabled: true}, RoleIDs: []models.ID{3}, Password: "analyst"},
		{User: models.User{UserID: 5, Username: "retired", Email: "retired@meter.local"}, RoleIDs: []models.ID{2}, Password: "retired"},
	}
}

// NewDirectorySeed hashes the passwords of users with bcrypt at cost and
// returns them with the default role and permission catalogs. A cost below
// [bcrypt.MinCost] is raised to it.
func NewDirectorySeed(users []SeedUser, cost int) (DirectorySeed, error) {
	seed := DirectorySeed{
		Users:       make([]DirectoryUser, 0, len(users)),
		Roles:       seedRoles,
		Permissions: seedPermissions,
		Links:       seedLinks,
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), max(cost, bcrypt.MinCost))
		if err != nil {
			return DirectorySeed{}, fmt.Errorf("hash password of %q: %w", u.User.Username, err)
		}
		seed.Users = append(seed.Users, DirectoryUser{User: u.User, RoleIDs: u.RoleIDs, PasswordHash: hash})
	}

	return seed, nil
}
