// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: the console's local SQLite
// session repository and the in-memory directory served by the development
// server.
package store

import (
	"context"

	"github.com/MKhiriev/meter-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the console session under two keys, "token"
// and "user", which are always written, read and removed together.
type SessionRepository interface {
	// Save replaces the persisted session in one transaction.
	Save(ctx context.Context, session models.Session) error

	// Load reads both keys in one statement. It returns [ErrSessionNotFound]
	// when neither key exists and [ErrCorruptSession] when the pair is
	// incomplete or undecodable.
	Load(ctx context.Context) (models.Session, error)

	// Clear removes both keys in one statement.
	Clear(ctx context.Context) error
}

// DirectoryRepository is the user, role and permission directory served by
// the development server.
type DirectoryRepository interface {
	FindUserByUsername(ctx context.Context, username string) (DirectoryUser, error)
	GetUser(ctx context.Context, userID models.ID) (DirectoryUser, error)
	ListPermissions(ctx context.Context) ([]models.Permission, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	ListLinks(ctx context.Context) ([]models.RolePermissionLink, error)
	CreateLink(ctx context.Context, rolID, permissionID models.ID) (models.RolePermissionLink, error)
	DeleteLink(ctx context.Context, linkID models.ID) error
}
