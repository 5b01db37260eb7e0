package service

import (
	"context"
	"log"
	"sort"
	"time"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/util"
	"shopaccess/internal/access/wallet"

	"github.com/google/uuid"
)

// CreateOrder writes a new order row. Any caller may place an order; reads
// go through ListOrdersFor.
func (s *Service) CreateOrder(ctx context.Context, req model.CreateOrderReq) (*model.Order, error) {
	product, err := s.catalogNode(ctx, req.ProductID, model.NodeProduct)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		ProductID:     product.ID,
		CollectionID:  product.CollectionID,
		WalletAddress: wallet.Normalize(req.WalletAddress),
		Status:        "pending",
	}
	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("Audit: Order Created. Order=%s, Collection=%s", order.ID, order.CollectionID)
	return order, nil
}

// ListOrdersFor unions the staff path with the wallet path. A staff member
// who is also a buyer sees both sets. Neither path failing is an error;
// only both failing yields an empty, non-error result.
func (s *Service) ListOrdersFor(ctx context.Context, caller AccessContext) ([]*model.Order, error) {
	seen := make(map[string]bool)
	var out []*model.Order

	appendOrders := func(orders []*model.Order) {
		for _, o := range orders {
			if seen[o.ID] {
				continue
			}
			seen[o.ID] = true
			out = append(out, o)
		}
	}

	// Staff path: every collection the principal may view contributes its
	// orders. A resolution or listing fault degrades to an empty
	// contribution, the wallet path below may still produce rows.
	if caller.SessionID != "" {
		if p, err := s.ResolvePrincipal(ctx, caller.SessionID); err == nil {
			if collections, err := s.Repo.ListCollections(ctx); err == nil {
				for _, c := range collections {
					ref := model.ResourceRef{Type: model.NodeCollection, ID: c.ID}
					if !s.Resolver.Check(ctx, p, ref, model.LevelView) {
						continue
					}
					orders, err := s.Repo.FindOrdersByCollection(ctx, c.ID)
					if err != nil {
						util.GetLogger().Warn("staff order listing failed", "collection", c.ID, "error", err)
						continue
					}
					appendOrders(orders)
				}
			}
		}
	}

	// Wallet path: independent of any principal.
	if caller.WalletAddress != "" && s.Verifier.Verify(caller.WalletAddress, caller.ProofToken, caller.Claims) {
		orders, err := s.Repo.FindOrdersByWallet(ctx, wallet.Normalize(caller.WalletAddress))
		if err != nil {
			util.GetLogger().Warn("wallet order listing failed", "error", err)
		} else {
			appendOrders(orders)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// CheckAccess answers the /permissions/check endpoint. Edit checks on
// catalog nodes go through the write path so the role floor applies.
func (s *Service) CheckAccess(ctx context.Context, sessionID string, req model.CheckAccessReq) bool {
	var principal *model.Principal
	if sessionID != "" {
		if p, err := s.ResolvePrincipal(ctx, sessionID); err == nil {
			principal = p
		}
	}

	ref := model.ResourceRef{Type: req.ResourceType, ID: req.ResourceID}
	if req.Level == model.LevelEdit && req.ResourceType != model.NodeOrder {
		return s.Resolver.CheckWrite(ctx, principal, ref)
	}
	return s.Resolver.Check(ctx, principal, ref, req.Level)
}

// IssueProof mints a proof token for an address whose wallet signature was
// already verified upstream.
func (s *Service) IssueProof(ctx context.Context, req model.IssueProofReq) (string, error) {
	ttl := s.proofTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}
	token, err := s.Verifier.Issue(req.WalletAddress, ttl)
	if err != nil {
		return "", ErrInvalidArgument
	}
	return token, nil
}
