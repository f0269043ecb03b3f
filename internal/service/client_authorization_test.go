// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/meter-console/models"
	"github.com/stretchr/testify/assert"
)

var (
	permReports = models.Permission{PermissionID: 1, PermissionName: models.PermissionViewReports}
	permAlarms  = models.Permission{PermissionID: 2, PermissionName: models.PermissionViewAlarms}
	permRoles   = models.Permission{PermissionID: 3, PermissionName: models.PermissionManageRoles}
)

func TestEffectivePermissions_RootIsUniversal(t *testing.T) {
	resolver := NewAuthorizationResolver()

	users := []models.User{
		{Username: "root"},
		{Username: "root", Permissions: []models.Permission{permReports}},
		{Username: "root", Roles: []models.Role{{RolID: 1, Permissions: []models.Permission{permAlarms}}}},
	}

	for _, u := range users {
		set := resolver.EffectivePermissions(u)

		assert.True(t, set.IsUniversal())
		assert.True(t, set.Has(models.PermissionManageRoles))
		assert.True(t, set.Has("anything.at.all"))
		assert.True(t, resolver.Can(u, "billing.export"))
	}
}

func TestEffectivePermissions_UnionOfDirectAndRolePermissions(t *testing.T) {
	resolver := NewAuthorizationResolver()
	user := models.User{
		Username:    "operator",
		Permissions: []models.Permission{permReports},
		Roles: []models.Role{
			{RolID: 1, Permissions: []models.Permission{permReports, permAlarms}},
			{RolID: 2, Permissions: []models.Permission{permAlarms}},
			{RolID: 3},
		},
	}

	set := resolver.EffectivePermissions(user)

	assert.False(t, set.IsUniversal())
	assert.Equal(t, []string{models.PermissionViewAlarms, models.PermissionViewReports}, set.Names())
	assert.False(t, set.Has(models.PermissionManageRoles))
	assert.False(t, resolver.Can(user, models.PermissionManageRoles))
	assert.True(t, resolver.Can(user, models.PermissionViewAlarms))
}

func TestEffectivePermissions_DedupByPermissionID(t *testing.T) {
	resolver := NewAuthorizationResolver()
	renamed := models.Permission{PermissionID: permReports.PermissionID, PermissionName: "reports.legacy"}
	user := models.User{
		Username:    "analyst",
		Permissions: []models.Permission{permReports},
		Roles:       []models.Role{{RolID: 1, Permissions: []models.Permission{renamed}}},
	}

	set := resolver.EffectivePermissions(user)

	// the first occurrence of an id wins
	assert.Equal(t, []string{models.PermissionViewReports}, set.Names())
}

func TestEffectivePermissions_Idempotent(t *testing.T) {
	resolver := NewAuthorizationResolver()
	user := models.User{
		Username:    "operator",
		Permissions: []models.Permission{permRoles},
		Roles:       []models.Role{{RolID: 1, Permissions: []models.Permission{permReports, permRoles}}},
	}

	first := resolver.EffectivePermissions(user)

	// resolve again, feeding the result back as direct permissions
	var direct []models.Permission
	for i, name := range first.Names() {
		direct = append(direct, models.Permission{PermissionID: models.ID(100 + i), PermissionName: name})
	}
	second := resolver.EffectivePermissions(models.User{Username: "operator", Permissions: direct})

	assert.True(t, first.Equal(resolver.EffectivePermissions(user)))
	assert.True(t, first.Equal(second))
}

func TestEffectivePermissions_EmptyUser(t *testing.T) {
	set := NewAuthorizationResolver().EffectivePermissions(models.User{Username: "guest"})

	assert.False(t, set.IsUniversal())
	assert.Zero(t, set.Len())
	assert.False(t, set.Has(models.PermissionViewReports))
}
