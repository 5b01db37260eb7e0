// Package resolver decides whether a principal may read or write a node of
// the collection/category/product/order tree. It composes pure data lookups;
// the stores it reads carry no authorization logic of their own.
package resolver

import (
	"context"
	"errors"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/repository"
	"shopaccess/internal/access/util"
)

// CatalogReader is the slice of the catalog store the resolver needs.
type CatalogReader interface {
	GetNode(ctx context.Context, id string) (*model.CatalogNode, error)
}

// GrantReader looks up explicit access grants.
type GrantReader interface {
	GetGrant(ctx context.Context, principalID string, scope model.ScopeRef) (*model.Grant, error)
}

// OrderReader resolves order refs to their place in the tree.
type OrderReader interface {
	GetOrder(ctx context.Context, id string) (*model.Order, error)
}

type Resolver struct {
	catalog CatalogReader
	grants  GrantReader
	orders  OrderReader
}

func New(catalog CatalogReader, grants GrantReader, orders OrderReader) *Resolver {
	return &Resolver{catalog: catalog, grants: grants, orders: orders}
}

// chain is a resource flattened to the scopes that contain it, with the
// owning collection's owner and visibility attached.
type chain struct {
	collectionID string
	categoryID   string
	productID    string
	ownerID      string
	visible      bool
}

// scopes lists the grant scopes containing the resource, coarsest first.
// The first scope holding any grant decides; scopes are never unioned.
func (c chain) scopes() []model.ScopeRef {
	out := []model.ScopeRef{{Type: model.NodeCollection, ID: c.collectionID}}
	if c.categoryID != "" {
		out = append(out, model.ScopeRef{Type: model.NodeCategory, ID: c.categoryID})
	}
	if c.productID != "" {
		out = append(out, model.ScopeRef{Type: model.NodeProduct, ID: c.productID})
	}
	return out
}

// Check resolves (principal, resource, required level) to allow or deny.
// It never returns an error: any fault during evaluation is a deny, since a
// fail-open permission check is the more dangerous failure mode. principal
// may be nil for anonymous callers; only the public-visibility read path can
// allow those.
func (r *Resolver) Check(ctx context.Context, principal *model.Principal, ref model.ResourceRef, level string) bool {
	if !model.AllowedLevels[level] {
		return r.deny("invalid_level")
	}

	// 1. Admin short-circuits every other rule.
	if principal != nil && principal.Role == model.RoleAdmin {
		return r.allow("admin")
	}

	ch, ok := r.buildChain(ctx, ref)
	if !ok {
		return r.deny("unresolved")
	}

	// 2-3. Collection owner, direct or walked up from a descendant.
	if principal != nil && principal.ID != "" && principal.ID == ch.ownerID {
		return r.allow("owner")
	}

	// 4. Most specific grant: the first scope that has any grant for this
	// principal wins outright, even when a finer scope would grant more.
	if principal != nil && principal.ID != "" {
		for _, scope := range ch.scopes() {
			g, err := r.grants.GetGrant(ctx, principal.ID, scope)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				return r.deny("grant_error")
			}
			if model.LevelSatisfies(g.Level, level) {
				return r.allow("grant")
			}
			break
		}
	}

	// 5. Public read path for visible collections and their children.
	if ref.Type != model.NodeOrder && level == model.LevelView && ch.visible {
		return r.allow("visibility")
	}

	return r.deny("no_rule")
}

// CheckWrite enforces the role floor for catalog mutations on top of Check:
// a user-role principal never writes collections, categories or products,
// grants or not.
func (r *Resolver) CheckWrite(ctx context.Context, principal *model.Principal, ref model.ResourceRef) bool {
	if principal == nil || !model.RoleCanMutateCatalog(principal.Role) {
		return r.deny("role_floor")
	}
	return r.Check(ctx, principal, ref, model.LevelEdit)
}

func (r *Resolver) buildChain(ctx context.Context, ref model.ResourceRef) (chain, bool) {
	var ch chain

	switch ref.Type {
	case model.NodeCollection:
		ch.collectionID = ref.ID

	case model.NodeCategory:
		node, err := r.catalog.GetNode(ctx, ref.ID)
		if err != nil || node.Type != model.NodeCategory {
			return ch, false
		}
		ch.categoryID = node.ID
		ch.collectionID = node.CollectionID

	case model.NodeProduct:
		node, err := r.catalog.GetNode(ctx, ref.ID)
		if err != nil || node.Type != model.NodeProduct {
			return ch, false
		}
		ch.productID = node.ID
		ch.categoryID = node.ParentID
		ch.collectionID = node.CollectionID

	case model.NodeOrder:
		order, err := r.orders.GetOrder(ctx, ref.ID)
		if err != nil {
			return ch, false
		}
		ch.collectionID = order.CollectionID
		ch.productID = order.ProductID
		// The category hop is best effort; a missing product node still
		// leaves the collection and product scopes checkable.
		if node, err := r.catalog.GetNode(ctx, order.ProductID); err == nil && node.Type == model.NodeProduct {
			ch.categoryID = node.ParentID
		}

	default:
		return ch, false
	}

	if ch.collectionID == "" {
		return ch, false
	}
	coll, err := r.catalog.GetNode(ctx, ch.collectionID)
	if err != nil || coll.Type != model.NodeCollection {
		return ch, false
	}
	ch.ownerID = coll.OwnerID
	ch.visible = coll.Visible
	return ch, true
}

func (r *Resolver) allow(rule string) bool {
	util.PermissionDecisions.WithLabelValues("allow", rule).Inc()
	return true
}

func (r *Resolver) deny(rule string) bool {
	util.PermissionDecisions.WithLabelValues("deny", rule).Inc()
	return false
}
