package model

import "strings"

type GrantReq struct {
	PrincipalID string `json:"principal_id" validate:"required,min=1,max=64"`
	ScopeType   string `json:"scope_type" validate:"required"`
	ScopeID     string `json:"scope_id" validate:"required,min=1,max=64"`
	Level       string `json:"level" validate:"required"`
}

func (r *GrantReq) Validate() error {
	r.PrincipalID = strings.TrimSpace(r.PrincipalID)
	r.ScopeType = strings.ToLower(strings.TrimSpace(r.ScopeType))
	r.ScopeID = strings.TrimSpace(r.ScopeID)
	r.Level = strings.ToLower(strings.TrimSpace(r.Level))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedScopeTypes[r.ScopeType] {
		return &ErrorDetail{Code: "bad_request", Message: "scope_type must be collection, category or product"}
	}
	if !AllowedLevels[r.Level] {
		return &ErrorDetail{Code: "bad_request", Message: "level must be view or edit"}
	}
	return nil
}

type RevokeReq struct {
	PrincipalID string `json:"principal_id" validate:"required,min=1,max=64"`
	ScopeType   string `json:"scope_type" validate:"required"`
	ScopeID     string `json:"scope_id" validate:"required,min=1,max=64"`
}

func (r *RevokeReq) Validate() error {
	r.PrincipalID = strings.TrimSpace(r.PrincipalID)
	r.ScopeType = strings.ToLower(strings.TrimSpace(r.ScopeType))
	r.ScopeID = strings.TrimSpace(r.ScopeID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if !AllowedScopeTypes[r.ScopeType] {
		return &ErrorDetail{Code: "bad_request", Message: "scope_type must be collection, category or product"}
	}
	return nil
}
