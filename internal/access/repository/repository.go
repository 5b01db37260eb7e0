package repository

import (
	"context"
	"errors"

	"shopaccess/internal/access/model"
)

var (
	ErrDuplicate  = errors.New("duplicate record")
	ErrNotFound   = errors.New("record not found")
	ErrStaleOwner = errors.New("collection owner changed concurrently")
)

type PrincipalRepository interface {
	GetPrincipal(ctx context.Context, id string) (*model.Principal, error)
	// CreatePrincipal returns ErrDuplicate if the id already exists.
	CreatePrincipal(ctx context.Context, p *model.Principal) error
	UpdateRole(ctx context.Context, id, role string) (*model.Principal, error)
	// DeletePrincipalCascade removes the principal and every grant
	// referencing it in one transaction. Ownership reassignment is the
	// caller's responsibility.
	DeletePrincipalCascade(ctx context.Context, id string) error
}

type CatalogRepository interface {
	GetNode(ctx context.Context, id string) (*model.CatalogNode, error)
	CreateNode(ctx context.Context, n *model.CatalogNode) error
	OwnerOf(ctx context.Context, collectionID string) (string, error)
	VisibilityOf(ctx context.Context, collectionID string) (bool, error)
	SetVisibility(ctx context.Context, collectionID string, visible bool) error
	ListCollections(ctx context.Context) ([]*model.CatalogNode, error)
	CollectionsOwnedBy(ctx context.Context, principalID string) ([]string, error)
	// TransferCollectionOwner swaps ownership with a compare-and-set on the
	// current owner, removes the old owner's collection grant and inserts an
	// edit grant for them, all in one transaction. Returns ErrStaleOwner if
	// oldOwnerID no longer owns the collection.
	TransferCollectionOwner(ctx context.Context, collectionID, oldOwnerID, newOwnerID, updatedBy string) error
	// DeleteCollectionCascade removes grants scoped to the collection or its
	// descendants first, then the descendant nodes, then the collection.
	DeleteCollectionCascade(ctx context.Context, collectionID string) error
}

type GrantRepository interface {
	// UpsertGrant overwrites the level on re-grant of the same
	// (principal, scope) pair.
	UpsertGrant(ctx context.Context, g *model.Grant) error
	GetGrant(ctx context.Context, principalID string, scope model.ScopeRef) (*model.Grant, error)
	// DeleteGrant returns ErrNotFound when no grant matches; callers treat
	// that as a no-op for idempotent revokes.
	DeleteGrant(ctx context.Context, principalID string, scope model.ScopeRef) error
	FindGrantsForPrincipal(ctx context.Context, principalID string) ([]*model.Grant, error)
	FindGrantsForScope(ctx context.Context, scope model.ScopeRef) ([]*model.Grant, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, o *model.Order) error
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	FindOrdersByCollection(ctx context.Context, collectionID string) ([]*model.Order, error)
	FindOrdersByWallet(ctx context.Context, walletAddress string) ([]*model.Order, error)
}

// Store is the full storage surface the service layer depends on.
type Store interface {
	PrincipalRepository
	CatalogRepository
	GrantRepository
	OrderRepository
	EnsureIndexes(ctx context.Context) error
}
