package model

import "time"

// Principal is an authenticated actor resolved from a session identity.
type Principal struct {
	ID        string    `json:"id" bson:"_id"`
	Role      string    `json:"role" bson:"role"`
	Tier      int       `json:"tier" bson:"tier"`
	Sales     int       `json:"sales" bson:"sales"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CatalogNode is one node of the collection/category/product tree.
// Owner, OwnerVersion and Visible are meaningful on collections only;
// child nodes inherit visibility through CollectionID.
type CatalogNode struct {
	ID           string    `json:"id" bson:"_id"`
	Type         string    `json:"type" bson:"type"`
	ParentID     string    `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	CollectionID string    `json:"collection_id" bson:"collection_id"`
	OwnerID      string    `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
	OwnerVersion int64     `json:"-" bson:"owner_version,omitempty"`
	Visible      bool      `json:"visible" bson:"visible"`
	Name         string    `json:"name" bson:"name"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ScopeRef identifies the exact scope of a grant.
type ScopeRef struct {
	Type string `json:"type" bson:"type"`
	ID   string `json:"id" bson:"id"`
}

// ResourceRef identifies any node in the tree, orders included.
type ResourceRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Grant is an explicit, scoped, leveled access record independent of
// ownership. At most one grant exists per (principal, exact scope).
type Grant struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty"`
	PrincipalID  string    `json:"principal_id" bson:"principal_id"`
	ScopeType    string    `json:"scope_type" bson:"scope_type"`
	ScopeID      string    `json:"scope_id" bson:"scope_id"`
	CollectionID string    `json:"collection_id" bson:"collection_id"`
	Level        string    `json:"level" bson:"level"`
	CreatedBy    string    `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Scope returns the grant's scope reference.
func (g *Grant) Scope() ScopeRef {
	return ScopeRef{Type: g.ScopeType, ID: g.ScopeID}
}

// Order is keyed by the free-text wallet address supplied at creation;
// the buyer may never hold a principal record.
type Order struct {
	ID            string    `json:"id" bson:"_id"`
	ProductID     string    `json:"product_id" bson:"product_id"`
	CollectionID  string    `json:"collection_id" bson:"collection_id"`
	WalletAddress string    `json:"wallet_address" bson:"wallet_address"`
	Status        string    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}
