package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/meter-console/internal/logger"
	"github.com/MKhiriev/meter-console/internal/mock"
	"github.com/MKhiriev/meter-console/internal/store"
	"github.com/MKhiriev/meter-console/models"
)

func TestDirectoryService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryRepository(ctrl)
	ctx := context.Background()

	permissions := []models.Permission{{PermissionID: 1, PermissionName: models.PermissionViewReports}}
	roles := []models.Role{{RolID: 1, Name: "administrator"}}
	links := []models.RolePermissionLink{{ID: 1, RolID: 1, PermissionID: 1}}

	directory.EXPECT().ListPermissions(ctx).Return(permissions, nil)
	directory.EXPECT().ListRoles(ctx).Return(roles, nil)
	directory.EXPECT().ListLinks(ctx).Return(links, nil)

	svc := NewDirectoryService(directory, logger.Nop())

	gotPermissions, err := svc.ListPermissions(ctx)
	require.NoError(t, err)
	assert.Equal(t, permissions, gotPermissions)

	gotRoles, err := svc.ListRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, roles, gotRoles)

	gotLinks, err := svc.ListLinks(ctx)
	require.NoError(t, err)
	assert.Equal(t, links, gotLinks)
}

func TestDirectoryService_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryRepository(ctrl)
	boom := errors.New("boom")
	directory.EXPECT().ListLinks(gomock.Any()).Return(nil, boom)

	_, err := NewDirectoryService(directory, logger.Nop()).ListLinks(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestDirectoryService_CreateLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryRepository(ctrl)
	want := models.RolePermissionLink{ID: 9, RolID: 2, PermissionID: 3}
	directory.EXPECT().CreateLink(gomock.Any(), models.ID(2), models.ID(3)).Return(want, nil)

	got, err := NewDirectoryService(directory, logger.Nop()).
		CreateLink(context.Background(), models.CreateRolePermissionRequest{RolID: 2, PermissionID: 3})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDirectoryService_CreateLink_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryRepository(ctrl)
	directory.EXPECT().CreateLink(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := NewDirectoryService(directory, logger.Nop())

	_, err := svc.CreateLink(context.Background(), models.CreateRolePermissionRequest{RolID: 0, PermissionID: 3})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.CreateLink(context.Background(), models.CreateRolePermissionRequest{RolID: 2, PermissionID: -1})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDirectoryService_CreateLink_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryRepository(ctrl)
	directory.EXPECT().CreateLink(gomock.Any(), models.ID(77), models.ID(1)).Return(models.RolePermissionLink{}, store.ErrRoleNotFound)

	_, err := NewDirectoryService(directory, logger.Nop()).
		CreateLink(context.Background(), models.CreateRolePermissionRequest{RolID: 77, PermissionID: 1})

	assert.ErrorIs(t, err, store.ErrRoleNotFound)
}

func TestDirectoryService_DeleteLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockDirectoryRepository(ctrl)
	gomock.InOrder(
		directory.EXPECT().DeleteLink(gomock.Any(), models.ID(4)).Return(nil),
		directory.EXPECT().DeleteLink(gomock.Any(), models.ID(4)).Return(store.ErrLinkNotFound),
	)

	svc := NewDirectoryService(directory, logger.Nop())

	require.NoError(t, svc.DeleteLink(context.Background(), 4))
	assert.ErrorIs(t, svc.DeleteLink(context.Background(), 4), store.ErrLinkNotFound)
	assert.ErrorIs(t, svc.DeleteLink(context.Background(), 0), ErrInvalidDataProvided)
}
