package handler

import (
	"context"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/service"

	"github.com/stretchr/testify/mock"
)

// MockAccessService is a mock implementation of service.AccessService for
// handler testing.
type MockAccessService struct {
	mock.Mock
}

var _ service.AccessService = (*MockAccessService)(nil)

func (m *MockAccessService) ResolvePrincipal(ctx context.Context, sessionID string) (*model.Principal, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockAccessService) SetRole(ctx context.Context, callerID string, req model.SetRoleReq) (*model.Principal, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}

func (m *MockAccessService) DeletePrincipal(ctx context.Context, callerID string, req model.DeletePrincipalReq) error {
	args := m.Called(ctx, callerID, req)
	return args.Error(0)
}

func (m *MockAccessService) CreateCollection(ctx context.Context, callerID string, req model.CreateCollectionReq) (*model.CatalogNode, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogNode), args.Error(1)
}

func (m *MockAccessService) CreateCategory(ctx context.Context, callerID string, req model.CreateCategoryReq) (*model.CatalogNode, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogNode), args.Error(1)
}

func (m *MockAccessService) CreateProduct(ctx context.Context, callerID string, req model.CreateProductReq) (*model.CatalogNode, error) {
	args := m.Called(ctx, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogNode), args.Error(1)
}

func (m *MockAccessService) TransferOwnership(ctx context.Context, callerID string, req model.TransferOwnerReq) error {
	args := m.Called(ctx, callerID, req)
	return args.Error(0)
}

func (m *MockAccessService) SetVisibility(ctx context.Context, callerID string, req model.SetVisibilityReq) error {
	args := m.Called(ctx, callerID, req)
	return args.Error(0)
}

func (m *MockAccessService) DeleteCollection(ctx context.Context, callerID string, req model.DeleteCollectionReq) error {
	args := m.Called(ctx, callerID, req)
	return args.Error(0)
}

func (m *MockAccessService) Grant(ctx context.Context, callerID string, req model.GrantReq) error {
	args := m.Called(ctx, callerID, req)
	return args.Error(0)
}

func (m *MockAccessService) Revoke(ctx context.Context, callerID string, req model.RevokeReq) error {
	args := m.Called(ctx, callerID, req)
	return args.Error(0)
}

func (m *MockAccessService) ListGrantsForPrincipal(ctx context.Context, callerID, principalID string) ([]*model.Grant, error) {
	args := m.Called(ctx, callerID, principalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Grant), args.Error(1)
}

func (m *MockAccessService) ListGrantsForScope(ctx context.Context, callerID string, scope model.ScopeRef) ([]*model.Grant, error) {
	args := m.Called(ctx, callerID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Grant), args.Error(1)
}

func (m *MockAccessService) CheckAccess(ctx context.Context, sessionID string, req model.CheckAccessReq) bool {
	args := m.Called(ctx, sessionID, req)
	return args.Bool(0)
}

func (m *MockAccessService) CreateOrder(ctx context.Context, req model.CreateOrderReq) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockAccessService) ListOrdersFor(ctx context.Context, caller service.AccessContext) ([]*model.Order, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Order), args.Error(1)
}

func (m *MockAccessService) IssueProof(ctx context.Context, req model.IssueProofReq) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
