package service

import (
	"context"

	"shopaccess/internal/access/model"

	"github.com/stretchr/testify/mock"
)

// MockStore is a shared mock implementation of repository.Store for testing.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetPrincipal(ctx context.Context, id string) (*model.Principal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockStore) CreatePrincipal(ctx context.Context, p *model.Principal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) UpdateRole(ctx context.Context, id, role string) (*model.Principal, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockStore) DeletePrincipalCascade(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) GetNode(ctx context.Context, id string) (*model.CatalogNode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogNode), args.Error(1)
}

func (m *MockStore) CreateNode(ctx context.Context, n *model.CatalogNode) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockStore) OwnerOf(ctx context.Context, collectionID string) (string, error) {
	args := m.Called(ctx, collectionID)
	return args.String(0), args.Error(1)
}

func (m *MockStore) VisibilityOf(ctx context.Context, collectionID string) (bool, error) {
	args := m.Called(ctx, collectionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) SetVisibility(ctx context.Context, collectionID string, visible bool) error {
	args := m.Called(ctx, collectionID, visible)
	return args.Error(0)
}

func (m *MockStore) ListCollections(ctx context.Context) ([]*model.CatalogNode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CatalogNode), args.Error(1)
}

func (m *MockStore) CollectionsOwnedBy(ctx context.Context, principalID string) ([]string, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) TransferCollectionOwner(ctx context.Context, collectionID, oldOwnerID, newOwnerID, updatedBy string) error {
	args := m.Called(ctx, collectionID, oldOwnerID, newOwnerID, updatedBy)
	return args.Error(0)
}

func (m *MockStore) DeleteCollectionCascade(ctx context.Context, collectionID string) error {
	args := m.Called(ctx, collectionID)
	return args.Error(0)
}

func (m *MockStore) UpsertGrant(ctx context.Context, g *model.Grant) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockStore) GetGrant(ctx context.Context, principalID string, scope model.ScopeRef) (*model.Grant, error) {
	args := m.Called(ctx, principalID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Grant), args.Error(1)
}

func (m *MockStore) DeleteGrant(ctx context.Context, principalID string, scope model.ScopeRef) error {
	args := m.Called(ctx, principalID, scope)
	return args.Error(0)
}

func (m *MockStore) FindGrantsForPrincipal(ctx context.Context, principalID string) ([]*model.Grant, error) {
	args := m.Called(ctx, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Grant), args.Error(1)
}

func (m *MockStore) FindGrantsForScope(ctx context.Context, scope model.ScopeRef) ([]*model.Grant, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Grant), args.Error(1)
}

func (m *MockStore) CreateOrder(ctx context.Context, o *model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockStore) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockStore) FindOrdersByCollection(ctx context.Context, collectionID string) ([]*model.Order, error) {
	args := m.Called(ctx, collectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *MockStore) FindOrdersByWallet(ctx context.Context, walletAddress string) ([]*model.Order, error) {
	args := m.Called(ctx, walletAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *MockStore) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
