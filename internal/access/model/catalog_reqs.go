package model

import "strings"

type CreateCollectionReq struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	Visible bool   `json:"visible"`
}

func (r *CreateCollectionReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type CreateCategoryReq struct {
	CollectionID string `json:"collection_id" validate:"required,min=1,max=64"`
	Name         string `json:"name" validate:"required,min=1,max=120"`
}

func (r *CreateCategoryReq) Validate() error {
	r.CollectionID = strings.TrimSpace(r.CollectionID)
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type CreateProductReq struct {
	CategoryID string `json:"category_id" validate:"required,min=1,max=64"`
	Name       string `json:"name" validate:"required,min=1,max=120"`
}

func (r *CreateProductReq) Validate() error {
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.Name = strings.TrimSpace(r.Name)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type TransferOwnerReq struct {
	CollectionID string `json:"collection_id" validate:"required,min=1,max=64"`
	NewOwnerID   string `json:"new_owner_id" validate:"required,min=1,max=64"`
}

func (r *TransferOwnerReq) Validate() error {
	r.CollectionID = strings.TrimSpace(r.CollectionID)
	r.NewOwnerID = strings.TrimSpace(r.NewOwnerID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type SetVisibilityReq struct {
	CollectionID string `json:"collection_id" validate:"required,min=1,max=64"`
	Visible      bool   `json:"visible"`
}

func (r *SetVisibilityReq) Validate() error {
	r.CollectionID = strings.TrimSpace(r.CollectionID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type DeleteCollectionReq struct {
	CollectionID string `json:"collection_id" validate:"required,min=1,max=64"`
}

func (r *DeleteCollectionReq) Validate() error {
	r.CollectionID = strings.TrimSpace(r.CollectionID)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
