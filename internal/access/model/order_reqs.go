package model

import "strings"

type CreateOrderReq struct {
	ProductID     string `json:"product_id" validate:"required,min=1,max=64"`
	WalletAddress string `json:"wallet_address" validate:"required,min=1,max=128"`
}

func (r *CreateOrderReq) Validate() error {
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type IssueProofReq struct {
	WalletAddress string `json:"wallet_address" validate:"required,min=1,max=128"`
	TTLSeconds    int    `json:"ttl_seconds" validate:"omitempty,min=1,max=86400"`
}

func (r *IssueProofReq) Validate() error {
	r.WalletAddress = strings.TrimSpace(r.WalletAddress)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
