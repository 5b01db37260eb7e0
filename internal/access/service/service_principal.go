package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"shopaccess/internal/access/model"
	"shopaccess/internal/access/repository"
)

// ResolvePrincipal looks up the principal for a session identity,
// provisioning a user-role record on first sight. Provisioning is
// idempotent: a concurrent first sign-in falls back to the record the other
// request created, and an existing elevated role is never downgraded. A
// bootstrap identity always resolves to admin.
func (s *Service) ResolvePrincipal(ctx context.Context, sessionID string) (*model.Principal, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return nil, ErrUnauthorized
	}

	p, err := s.Repo.GetPrincipal(ctx, id)
	if err == nil {
		if s.bootstrap[id] && p.Role != model.RoleAdmin {
			return s.Repo.UpdateRole(ctx, id, model.RoleAdmin)
		}
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	role := model.RoleUser
	if s.bootstrap[id] {
		role = model.RoleAdmin
	}
	p = &model.Principal{ID: id, Role: role, Active: true}

	if err := s.Repo.CreatePrincipal(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the provisioning race; the existing record wins.
			return s.Repo.GetPrincipal(ctx, id)
		}
		return nil, err
	}

	log.Printf("Audit: Principal Provisioned. ID=%s, Role=%s", p.ID, p.Role)
	return p, nil
}

func (s *Service) SetRole(ctx context.Context, callerID string, req model.SetRoleReq) (*model.Principal, error) {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleAdmin {
		return nil, ErrPermissionDenied
	}
	if !model.AllowedRoles[req.Role] {
		return nil, ErrInvalidArgument
	}

	p, err := s.Repo.UpdateRole(ctx, req.PrincipalID, req.Role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	log.Printf("Audit: Role Set. Caller=%s, Target=%s, Role=%s", callerID, req.PrincipalID, req.Role)
	return p, nil
}

// DeletePrincipal removes a principal and severs its grants. Collections the
// principal still owns block the deletion; ownership has to be reassigned
// first or the tree would hold orphaned collections.
func (s *Service) DeletePrincipal(ctx context.Context, callerID string, req model.DeletePrincipalReq) error {
	actor, err := s.caller(ctx, callerID)
	if err != nil {
		return err
	}
	if actor.Role != model.RoleAdmin {
		return ErrPermissionDenied
	}

	owned, err := s.Repo.CollectionsOwnedBy(ctx, req.PrincipalID)
	if err != nil {
		return err
	}
	if len(owned) > 0 {
		return ErrInvalidState
	}

	if err := s.Repo.DeletePrincipalCascade(ctx, req.PrincipalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	log.Printf("Audit: Principal Deleted. Caller=%s, Target=%s", callerID, req.PrincipalID)
	return nil
}
