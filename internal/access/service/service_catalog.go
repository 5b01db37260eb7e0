package service

import (
	"context"
	"errors"
	"log"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/repository"

	"github.com/google/uuid"
)

func (s *Service) CreateCollection(ctx context.Context, callerID string, req model.CreateCollectionReq) (*model.CatalogNode, error) {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !model.RoleCanMutateCatalog(actor.Role) {
		return nil, ErrPermissionDenied
	}

	id := uuid.NewString()
	node := &model.CatalogNode{
		ID:           id,
		Type:         model.NodeCollection,
		CollectionID: id,
		OwnerID:      actor.ID,
		Visible:      req.Visible,
		Name:         req.Name,
	}
	if err := s.Repo.CreateNode(ctx, node); err != nil {
		return nil, err
	}

	// Seeded grant for the creator; effective access still derives from
	// ownership, the record keeps the grant audit trail symmetric.
	seed := &model.Grant{
		PrincipalID:  actor.ID,
		ScopeType:    model.NodeCollection,
		ScopeID:      id,
		CollectionID: id,
		Level:        model.LevelEdit,
		CreatedBy:    actor.ID,
	}
	if err := s.Repo.UpsertGrant(ctx, seed); err != nil {
		return nil, err
	}

	log.Printf("Audit: Collection Created. Owner=%s, Collection=%s", actor.ID, id)
	return node, nil
}

func (s *Service) CreateCategory(ctx context.Context, callerID string, req model.CreateCategoryReq) (*model.CatalogNode, error) {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	parent, err := s.catalogNode(ctx, req.CollectionID, model.NodeCollection)
	if err != nil {
		return nil, err
	}
	ref := model.ResourceRef{Type: model.NodeCollection, ID: parent.ID}
	if !s.Resolver.CheckWrite(ctx, actor, ref) {
		return nil, ErrPermissionDenied
	}

	node := &model.CatalogNode{
		ID:           uuid.NewString(),
		Type:         model.NodeCategory,
		ParentID:     parent.ID,
		CollectionID: parent.ID,
		Name:         req.Name,
	}
	if err := s.Repo.CreateNode(ctx, node); err != nil {
		return nil, err
	}

	log.Printf("Audit: Category Created. Caller=%s, Category=%s, Collection=%s", callerID, node.ID, parent.ID)
	return node, nil
}

func (s *Service) CreateProduct(ctx context.Context, callerID string, req model.CreateProductReq) (*model.CatalogNode, error) {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	parent, err := s.catalogNode(ctx, req.CategoryID, model.NodeCategory)
	if err != nil {
		return nil, err
	}
	ref := model.ResourceRef{Type: model.NodeCategory, ID: parent.ID}
	if !s.Resolver.CheckWrite(ctx, actor, ref) {
		return nil, ErrPermissionDenied
	}

	node := &model.CatalogNode{
		ID:           uuid.NewString(),
		Type:         model.NodeProduct,
		ParentID:     parent.ID,
		CollectionID: parent.CollectionID,
		Name:         req.Name,
	}
	if err := s.Repo.CreateNode(ctx, node); err != nil {
		return nil, err
	}

	log.Printf("Audit: Product Created. Caller=%s, Product=%s, Collection=%s", callerID, node.ID, parent.CollectionID)
	return node, nil
}

// TransferOwnership is intentionally admin-only, stricter than routine grant
// management: a compromised editor must not be able to exfiltrate a
// collection.
func (s *Service) TransferOwnership(ctx context.Context, callerID string, req model.TransferOwnerReq) error {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin {
		return ErrPermissionDenied
	}

	coll, err := s.catalogNode(ctx, req.CollectionID, model.NodeCollection)
	if err != nil {
		return err
	}
	if coll.OwnerID == req.NewOwnerID {
		return ErrInvalidState
	}

	newOwner, err := s.Repo.GetPrincipal(ctx, req.NewOwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !model.RoleCanMutateCatalog(newOwner.Role) {
		return ErrInvalidState
	}

	err = s.Repo.TransferCollectionOwner(ctx, coll.ID, coll.OwnerID, newOwner.ID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrStaleOwner) {
			return ErrInvalidState
		}
		return err
	}

	log.Printf("Audit: Ownership Transferred. Caller=%s, Collection=%s, OldOwner=%s, NewOwner=%s",
		callerID, coll.ID, coll.OwnerID, newOwner.ID)
	return nil
}

func (s *Service) SetVisibility(ctx context.Context, callerID string, req model.SetVisibilityReq) error {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}

	ref := model.ResourceRef{Type: model.NodeCollection, ID: req.CollectionID}
	if !s.Resolver.CheckWrite(ctx, actor, ref) {
		return ErrPermissionDenied
	}

	if err := s.Repo.SetVisibility(ctx, req.CollectionID, req.Visible); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	log.Printf("Audit: Visibility Set. Caller=%s, Collection=%s, Visible=%t", callerID, req.CollectionID, req.Visible)
	return nil
}

// DeleteCollection cascades: grants scoped to the collection or its
// descendants are removed first, then the child nodes, then the collection.
func (s *Service) DeleteCollection(ctx context.Context, callerID string, req model.DeleteCollectionReq) error {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}

	coll, err := s.catalogNode(ctx, req.CollectionID, model.NodeCollection)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin && actor.ID != coll.OwnerID {
		return ErrPermissionDenied
	}

	if err := s.Repo.DeleteCollectionCascade(ctx, coll.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	log.Printf("Audit: Collection Deleted. Caller=%s, Collection=%s", callerID, coll.ID)
	return nil
}

// catalogNode fetches a node and checks it is of the expected type.
func (s *Service) catalogNode(ctx context.Context, id, nodeType string) (*model.CatalogNode, error) {
	node, err := s.Repo.GetNode(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if node.Type != nodeType {
		return nil, ErrNotFound
	}
	return node, nil
}
