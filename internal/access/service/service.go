package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/repository"
	"shopaccess/internal/access/resolver"
	"shopaccess/internal/access/wallet"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidState     = errors.New("invalid state")
)

// AccessContext is everything a caller can present on an order-read request:
// a session identity, a wallet address with its companion proof token, and
// the session claims set by the out-of-band wallet sign-in flow. Any part
// may be absent.
type AccessContext struct {
	SessionID     string
	WalletAddress string
	ProofToken    string
	Claims        wallet.SessionClaims
}

type AccessService interface {
	ResolvePrincipal(ctx context.Context, sessionID string) (*model.Principal, error)
	SetRole(ctx context.Context, callerID string, req model.SetRoleReq) (*model.Principal, error)
	DeletePrincipal(ctx context.Context, callerID string, req model.DeletePrincipalReq) error

	CreateCollection(ctx context.Context, callerID string, req model.CreateCollectionReq) (*model.CatalogNode, error)
	CreateCategory(ctx context.Context, callerID string, req model.CreateCategoryReq) (*model.CatalogNode, error)
	CreateProduct(ctx context.Context, callerID string, req model.CreateProductReq) (*model.CatalogNode, error)
	TransferOwnership(ctx context.Context, callerID string, req model.TransferOwnerReq) error
	SetVisibility(ctx context.Context, callerID string, req model.SetVisibilityReq) error
	DeleteCollection(ctx context.Context, callerID string, req model.DeleteCollectionReq) error

	Grant(ctx context.Context, callerID string, req model.GrantReq) error
	Revoke(ctx context.Context, callerID string, req model.RevokeReq) error
	ListGrantsForPrincipal(ctx context.Context, callerID, principalID string) ([]*model.Grant, error)
	ListGrantsForScope(ctx context.Context, callerID string, scope model.ScopeRef) ([]*model.Grant, error)

	CheckAccess(ctx context.Context, sessionID string, req model.CheckAccessReq) bool
	CreateOrder(ctx context.Context, req model.CreateOrderReq) (*model.Order, error)
	ListOrdersFor(ctx context.Context, caller AccessContext) ([]*model.Order, error)
	IssueProof(ctx context.Context, req model.IssueProofReq) (string, error)
}

type Service struct {
	Repo     repository.Store
	Resolver *resolver.Resolver
	Verifier *wallet.Verifier

	bootstrap map[string]bool
	proofTTL  time.Duration
}

func NewService(repo repository.Store, res *resolver.Resolver, ver *wallet.Verifier, bootstrapIDs []string, proofTTL time.Duration) *Service {
	bootstrap := make(map[string]bool, len(bootstrapIDs))
	for _, id := range bootstrapIDs {
		id = strings.TrimSpace(id)
		if id != "" {
			bootstrap[id] = true
		}
	}
	if proofTTL <= 0 {
		proofTTL = 15 * time.Minute
	}
	return &Service{
		Repo:      repo,
		Resolver:  res,
		Verifier:  ver,
		bootstrap: bootstrap,
		proofTTL:  proofTTL,
	}
}

var _ AccessService = (*Service)(nil)

// caller resolves the acting principal for a mutating operation.
func (s *Service) caller(ctx context.Context, callerID string) (*model.Principal, error) {
	return s.ResolvePrincipal(ctx, callerID)
}
