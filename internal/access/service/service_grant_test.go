package service

import (
	"context"
	"testing"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGrant(t *testing.T) {
	ctx := context.Background()

	t.Run("owner grants on own collection", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "m1").Return(&model.Principal{ID: "m1", Role: model.RoleMerchant}, nil)
		repo.On("GetPrincipal", ctx, "u1").Return(&model.Principal{ID: "u1", Role: model.RoleUser}, nil)
		repo.On("GetNode", ctx, "c1").Return(collectionNode("c1", "m1", false), nil)
		repo.On("OwnerOf", ctx, "c1").Return("m1", nil)
		repo.On("UpsertGrant", ctx, mock.MatchedBy(func(g *model.Grant) bool {
			return g.PrincipalID == "u1" && g.ScopeID == "c1" && g.Level == model.LevelView &&
				g.CollectionID == "c1" && g.CreatedBy == "m1"
		})).Return(nil)

		svc := newTestService(repo)
		err := svc.Grant(ctx, "m1", model.GrantReq{
			PrincipalID: "u1", ScopeType: model.NodeCollection, ScopeID: "c1", Level: model.LevelView,
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("grant on category records owning collection", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "admin-1").Return(&model.Principal{ID: "admin-1", Role: model.RoleAdmin}, nil)
		repo.On("GetPrincipal", ctx, "u1").Return(&model.Principal{ID: "u1", Role: model.RoleUser}, nil)
		repo.On("GetNode", ctx, "cat1").
			Return(&model.CatalogNode{ID: "cat1", Type: model.NodeCategory, ParentID: "c1", CollectionID: "c1"}, nil)
		repo.On("UpsertGrant", ctx, mock.MatchedBy(func(g *model.Grant) bool {
			return g.ScopeType == model.NodeCategory && g.ScopeID == "cat1" && g.CollectionID == "c1"
		})).Return(nil)

		svc := newTestService(repo)
		err := svc.Grant(ctx, "admin-1", model.GrantReq{
			PrincipalID: "u1", ScopeType: model.NodeCategory, ScopeID: "cat1", Level: model.LevelEdit,
		})
		assert.NoError(t, err)
	})

	t.Run("non-owner merchant denied", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "m2").Return(&model.Principal{ID: "m2", Role: model.RoleMerchant}, nil)
		repo.On("GetPrincipal", ctx, "u1").Return(&model.Principal{ID: "u1", Role: model.RoleUser}, nil)
		repo.On("GetNode", ctx, "c1").Return(collectionNode("c1", "m1", false), nil)
		repo.On("OwnerOf", ctx, "c1").Return("m1", nil)

		svc := newTestService(repo)
		err := svc.Grant(ctx, "m2", model.GrantReq{
			PrincipalID: "u1", ScopeType: model.NodeCollection, ScopeID: "c1", Level: model.LevelView,
		})
		assert.ErrorIs(t, err, ErrPermissionDenied)
		repo.AssertNotCalled(t, "UpsertGrant", mock.Anything, mock.Anything)
	})

	t.Run("unknown target principal not found", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "m1").Return(&model.Principal{ID: "m1", Role: model.RoleMerchant}, nil)
		repo.On("GetPrincipal", ctx, "ghost").Return(nil, repository.ErrNotFound)

		svc := newTestService(repo)
		err := svc.Grant(ctx, "m1", model.GrantReq{
			PrincipalID: "ghost", ScopeType: model.NodeCollection, ScopeID: "c1", Level: model.LevelView,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("scope type mismatch rejected", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "m1").Return(&model.Principal{ID: "m1", Role: model.RoleMerchant}, nil)
		repo.On("GetPrincipal", ctx, "u1").Return(&model.Principal{ID: "u1", Role: model.RoleUser}, nil)
		repo.On("GetNode", ctx, "c1").Return(collectionNode("c1", "m1", false), nil)

		svc := newTestService(repo)
		err := svc.Grant(ctx, "m1", model.GrantReq{
			PrincipalID: "u1", ScopeType: model.NodeProduct, ScopeID: "c1", Level: model.LevelView,
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	scope := model.ScopeRef{Type: model.NodeCollection, ID: "c1"}

	t.Run("owner revokes", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "m1").Return(&model.Principal{ID: "m1", Role: model.RoleMerchant}, nil)
		repo.On("GetNode", ctx, "c1").Return(collectionNode("c1", "m1", false), nil)
		repo.On("OwnerOf", ctx, "c1").Return("m1", nil)
		repo.On("DeleteGrant", ctx, "u1", scope).Return(nil)

		svc := newTestService(repo)
		err := svc.Revoke(ctx, "m1", model.RevokeReq{PrincipalID: "u1", ScopeType: scope.Type, ScopeID: scope.ID})
		assert.NoError(t, err)
	})

	t.Run("revoking a missing grant is a no-op", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "m1").Return(&model.Principal{ID: "m1", Role: model.RoleMerchant}, nil)
		repo.On("GetNode", ctx, "c1").Return(collectionNode("c1", "m1", false), nil)
		repo.On("OwnerOf", ctx, "c1").Return("m1", nil)
		repo.On("DeleteGrant", ctx, "u1", scope).Return(repository.ErrNotFound)

		svc := newTestService(repo)
		err := svc.Revoke(ctx, "m1", model.RevokeReq{PrincipalID: "u1", ScopeType: scope.Type, ScopeID: scope.ID})
		assert.NoError(t, err)
	})
}

func TestListGrants(t *testing.T) {
	ctx := context.Background()

	t.Run("principal lists own grants", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "u1").Return(&model.Principal{ID: "u1", Role: model.RoleUser}, nil)
		grants := []*model.Grant{{PrincipalID: "u1", ScopeType: model.NodeCollection, ScopeID: "c1"}}
		repo.On("FindGrantsForPrincipal", ctx, "u1").Return(grants, nil)

		svc := newTestService(repo)
		got, err := svc.ListGrantsForPrincipal(ctx, "u1", "u1")
		assert.NoError(t, err)
		assert.Equal(t, grants, got)
	})

	t.Run("listing another principal requires admin", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "u1").Return(&model.Principal{ID: "u1", Role: model.RoleUser}, nil)

		svc := newTestService(repo)
		_, err := svc.ListGrantsForPrincipal(ctx, "u1", "u2")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("scope listing requires grant manager", func(t *testing.T) {
		repo := new(MockStore)
		repo.On("GetPrincipal", ctx, "u1").Return(&model.Principal{ID: "u1", Role: model.RoleUser}, nil)
		repo.On("GetNode", ctx, "c1").Return(collectionNode("c1", "m1", false), nil)
		repo.On("OwnerOf", ctx, "c1").Return("m1", nil)

		svc := newTestService(repo)
		_, err := svc.ListGrantsForScope(ctx, "u1", model.ScopeRef{Type: model.NodeCollection, ID: "c1"})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}
