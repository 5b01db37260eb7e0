package service

import (
	"context"
	"errors"
	"log"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/repository"
)

// Grant records explicit access for a principal on an exact scope.
// Re-granting the same (principal, scope) overwrites the level.
func (s *Service) Grant(ctx context.Context, callerID string, req model.GrantReq) error {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}

	if _, err := s.Repo.GetPrincipal(ctx, req.PrincipalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	scopeNode, err := s.scopeNode(ctx, req.ScopeType, req.ScopeID)
	if err != nil {
		return err
	}
	if err := s.requireGrantManager(ctx, actor, scopeNode.CollectionID); err != nil {
		return err
	}

	g := &model.Grant{
		PrincipalID:  req.PrincipalID,
		ScopeType:    req.ScopeType,
		ScopeID:      req.ScopeID,
		CollectionID: scopeNode.CollectionID,
		Level:        req.Level,
		CreatedBy:    actor.ID,
	}
	if err := s.Repo.UpsertGrant(ctx, g); err != nil {
		return err
	}

	log.Printf("Audit: Grant Upserted. Caller=%s, Principal=%s, Scope=%s:%s, Level=%s",
		callerID, req.PrincipalID, req.ScopeType, req.ScopeID, req.Level)
	return nil
}

// Revoke is idempotent: revoking a grant that does not exist is a no-op.
func (s *Service) Revoke(ctx context.Context, callerID string, req model.RevokeReq) error {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}

	scopeNode, err := s.scopeNode(ctx, req.ScopeType, req.ScopeID)
	if err != nil {
		return err
	}
	if err := s.requireGrantManager(ctx, actor, scopeNode.CollectionID); err != nil {
		return err
	}

	scope := model.ScopeRef{Type: req.ScopeType, ID: req.ScopeID}
	if err := s.Repo.DeleteGrant(ctx, req.PrincipalID, scope); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	log.Printf("Audit: Grant Revoked. Caller=%s, Principal=%s, Scope=%s:%s",
		callerID, req.PrincipalID, req.ScopeType, req.ScopeID)
	return nil
}

func (s *Service) ListGrantsForPrincipal(ctx context.Context, callerID, principalID string) ([]*model.Grant, error) {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleAdmin && actor.ID != principalID {
		return nil, ErrPermissionDenied
	}
	return s.Repo.FindGrantsForPrincipal(ctx, principalID)
}

func (s *Service) ListGrantsForScope(ctx context.Context, callerID string, scope model.ScopeRef) ([]*model.Grant, error) {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}

	scopeNode, err := s.scopeNode(ctx, scope.Type, scope.ID)
	if err != nil {
		return nil, err
	}
	if err := s.requireGrantManager(ctx, actor, scopeNode.CollectionID); err != nil {
		return nil, err
	}
	return s.Repo.FindGrantsForScope(ctx, scope)
}

// requireGrantManager allows admins and the owning collection's current
// owner to manage grants under that collection.
func (s *Service) requireGrantManager(ctx context.Context, actor *model.Principal, collectionID string) error {
	if actor.Role == model.RoleAdmin {
		return nil
	}
	owner, err := s.Repo.OwnerOf(ctx, collectionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if owner != actor.ID {
		return ErrPermissionDenied
	}
	return nil
}

// scopeNode resolves a grant scope to its catalog node, rejecting scopes
// whose declared type does not match the node.
func (s *Service) scopeNode(ctx context.Context, scopeType, scopeID string) (*model.CatalogNode, error) {
	node, err := s.Repo.GetNode(ctx, scopeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if node.Type != scopeType {
		return nil, ErrInvalidArgument
	}
	return node, nil
}
