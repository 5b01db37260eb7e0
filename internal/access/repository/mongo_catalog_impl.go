package repository

import (
	"context"
	"errors"
	"time"

	"shopaccess/internal/access/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *MongoStore) GetNode(ctx context.Context, id string) (*model.CatalogNode, error) {
	var n model.CatalogNode
	err := s.Catalog.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (s *MongoStore) CreateNode(ctx context.Context, n *model.CatalogNode) error {
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now

	_, err := s.Catalog.InsertOne(ctx, n)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *MongoStore) OwnerOf(ctx context.Context, collectionID string) (string, error) {
	n, err := s.collectionNode(ctx, collectionID)
	if err != nil {
		return "", err
	}
	return n.OwnerID, nil
}

func (s *MongoStore) VisibilityOf(ctx context.Context, collectionID string) (bool, error) {
	n, err := s.collectionNode(ctx, collectionID)
	if err != nil {
		return false, err
	}
	return n.Visible, nil
}

func (s *MongoStore) collectionNode(ctx context.Context, collectionID string) (*model.CatalogNode, error) {
	var n model.CatalogNode
	err := s.Catalog.FindOne(ctx, bson.M{"_id": collectionID, "type": model.NodeCollection}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (s *MongoStore) SetVisibility(ctx context.Context, collectionID string, visible bool) error {
	filter := bson.M{"_id": collectionID, "type": model.NodeCollection}
	update := bson.M{
		"$set": bson.M{
			"visible":    visible,
			"updated_at": time.Now(),
		},
	}
	res, err := s.Catalog.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]*model.CatalogNode, error) {
	cursor, err := s.Catalog.Find(ctx, bson.M{"type": model.NodeCollection})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var nodes []*model.CatalogNode
	if err := cursor.All(ctx, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (s *MongoStore) CollectionsOwnedBy(ctx context.Context, principalID string) ([]string, error) {
	filter := bson.M{"owner_id": principalID, "type": model.NodeCollection}
	cursor, err := s.Catalog.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var nodes []*model.CatalogNode
	if err := cursor.All(ctx, &nodes); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids, nil
}

func (s *MongoStore) TransferCollectionOwner(ctx context.Context, collectionID, oldOwnerID, newOwnerID, updatedBy string) error {
	session, err := s.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		now := time.Now()

		// 1. Compare-and-set the owner; two concurrent transfers cannot
		// both match the old owner.
		filter := bson.M{
			"_id":      collectionID,
			"type":     model.NodeCollection,
			"owner_id": oldOwnerID,
		}
		update := bson.M{
			"$set": bson.M{
				"owner_id":   newOwnerID,
				"updated_at": now,
			},
			"$inc": bson.M{"owner_version": 1},
		}
		res, err := s.Catalog.UpdateOne(sessCtx, filter, update)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, ErrStaleOwner
		}

		// 2. Drop whatever grant the old owner held on the collection.
		_, err = s.Grants.DeleteOne(sessCtx, bson.M{
			"principal_id": oldOwnerID,
			"scope_type":   model.NodeCollection,
			"scope_id":     collectionID,
		})
		if err != nil {
			return nil, err
		}

		// 3. The old owner keeps editor-level access.
		grantUpdate := bson.M{
			"$set": bson.M{
				"level":         model.LevelEdit,
				"collection_id": collectionID,
				"created_by":    updatedBy,
				"updated_at":    now,
			},
			"$setOnInsert": bson.M{
				"principal_id": oldOwnerID,
				"scope_type":   model.NodeCollection,
				"scope_id":     collectionID,
				"created_at":   now,
			},
		}
		opts := options.Update().SetUpsert(true)
		_, err = s.Grants.UpdateOne(sessCtx, bson.M{
			"principal_id": oldOwnerID,
			"scope_type":   model.NodeCollection,
			"scope_id":     collectionID,
		}, grantUpdate, opts)
		if err != nil {
			return nil, err
		}

		return nil, nil
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}

func (s *MongoStore) DeleteCollectionCascade(ctx context.Context, collectionID string) error {
	session, err := s.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		// Grants scoped to the collection or any descendant go first.
		if _, err := s.Grants.DeleteMany(sessCtx, bson.M{"collection_id": collectionID}); err != nil {
			return nil, err
		}
		// Descendant categories and products.
		if _, err := s.Catalog.DeleteMany(sessCtx, bson.M{
			"collection_id": collectionID,
			"_id":           bson.M{"$ne": collectionID},
		}); err != nil {
			return nil, err
		}
		res, err := s.Catalog.DeleteOne(sessCtx, bson.M{"_id": collectionID, "type": model.NodeCollection})
		if err != nil {
			return nil, err
		}
		if res.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		return nil, nil
	}

	_, err = session.WithTransaction(ctx, callback)
	return err
}
