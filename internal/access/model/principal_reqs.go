package model

import "strings"

type SetRoleReq struct {
	PrincipalID string `json:"principal_id" validate:"required,min=1,max=64"`
	Role        string `json:"role" validate:"required"`
}

func (r *SetRoleReq) Validate() error {
	r.PrincipalID = strings.TrimSpace(r.PrincipalID)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type DeletePrincipalReq struct {
	PrincipalID string `json:"principal_id" validate:"required,min=1,max=64"`
}

func (r *DeletePrincipalReq) Validate() error {
	r.PrincipalID = strings.TrimSpace(r.PrincipalID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
