package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	Principals *mongo.Collection
	Catalog    *mongo.Collection
	Grants     *mongo.Collection
	Orders     *mongo.Collection
	Client     *mongo.Client // for transactions
}

func NewMongoStore(db *mongo.Database, principalsColl, catalogColl, grantsColl, ordersColl string) *MongoStore {
	return &MongoStore{
		Principals: db.Collection(principalsColl),
		Catalog:    db.Collection(catalogColl),
		Grants:     db.Collection(grantsColl),
		Orders:     db.Collection(ordersColl),
		Client:     db.Client(),
	}
}

func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	// 1. Grants: one grant per (principal, exact scope)
	idxGrantUnique := mongo.IndexModel{
		Keys: bson.D{
			{Key: "principal_id", Value: 1},
			{Key: "scope_type", Value: 1},
			{Key: "scope_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_grant_per_principal_scope"),
	}
	// 2. Grants: cascade deletes walk by owning collection
	idxGrantCollection := mongo.IndexModel{
		Keys:    bson.D{{Key: "collection_id", Value: 1}},
		Options: options.Index().SetName("idx_grant_collection"),
	}
	if _, err := s.Grants.Indexes().CreateMany(ctx, []mongo.IndexModel{idxGrantUnique, idxGrantCollection}); err != nil {
		return err
	}

	// 3. Catalog: children lookup and owner reassignment checks
	idxCatalogCollection := mongo.IndexModel{
		Keys:    bson.D{{Key: "collection_id", Value: 1}},
		Options: options.Index().SetName("idx_catalog_collection"),
	}
	idxCatalogOwner := mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner_id", Value: 1},
			{Key: "type", Value: 1},
		},
		Options: options.Index().SetName("idx_catalog_owner"),
	}
	if _, err := s.Catalog.Indexes().CreateMany(ctx, []mongo.IndexModel{idxCatalogCollection, idxCatalogOwner}); err != nil {
		return err
	}

	// 4. Orders: wallet and collection listings
	idxOrderWallet := mongo.IndexModel{
		Keys:    bson.D{{Key: "wallet_address", Value: 1}},
		Options: options.Index().SetName("idx_order_wallet"),
	}
	idxOrderCollection := mongo.IndexModel{
		Keys:    bson.D{{Key: "collection_id", Value: 1}},
		Options: options.Index().SetName("idx_order_collection"),
	}
	_, err := s.Orders.Indexes().CreateMany(ctx, []mongo.IndexModel{idxOrderWallet, idxOrderCollection})
	return err
}

var _ Store = (*MongoStore)(nil)
