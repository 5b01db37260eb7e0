package model

import "strings"

type CheckAccessReq struct {
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	Level        string `json:"level"`
}

func (r *CheckAccessReq) Validate() error {
	r.ResourceType = strings.ToLower(strings.TrimSpace(r.ResourceType))
	r.ResourceID = strings.TrimSpace(r.ResourceID)
	r.Level = strings.ToLower(strings.TrimSpace(r.Level))

	if r.ResourceType != NodeCollection && r.ResourceType != NodeCategory &&
		r.ResourceType != NodeProduct && r.ResourceType != NodeOrder {
		return &ErrorDetail{Code: "bad_request", Message: "resource_type must be collection, category, product or order"}
	}
	if r.ResourceID == "" {
		return &ErrorDetail{Code: "bad_request", Message: "resource_id is required"}
	}
	if !AllowedLevels[r.Level] {
		return &ErrorDetail{Code: "bad_request", Message: "level must be view or edit"}
	}
	return nil
}

type CheckAccessResp struct {
	Allowed bool `json:"allowed"`
}
