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

func (s *MongoStore) UpsertGrant(ctx context.Context, g *model.Grant) error {
	filter := bson.M{
		"principal_id": g.PrincipalID,
		"scope_type":   g.ScopeType,
		"scope_id":     g.ScopeID,
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"level":         g.Level,
			"collection_id": g.CollectionID,
			"created_by":    g.CreatedBy,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"principal_id": g.PrincipalID,
			"scope_type":   g.ScopeType,
			"scope_id":     g.ScopeID,
			"created_at":   now,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := s.Grants.UpdateOne(ctx, filter, update, opts)
	return err
}

func (s *MongoStore) GetGrant(ctx context.Context, principalID string, scope model.ScopeRef) (*model.Grant, error) {
	filter := bson.M{
		"principal_id": principalID,
		"scope_type":   scope.Type,
		"scope_id":     scope.ID,
	}
	var g model.Grant
	err := s.Grants.FindOne(ctx, filter).Decode(&g)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (s *MongoStore) DeleteGrant(ctx context.Context, principalID string, scope model.ScopeRef) error {
	filter := bson.M{
		"principal_id": principalID,
		"scope_type":   scope.Type,
		"scope_id":     scope.ID,
	}
	res, err := s.Grants.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) FindGrantsForPrincipal(ctx context.Context, principalID string) ([]*model.Grant, error) {
	return s.findGrants(ctx, bson.M{"principal_id": principalID})
}

func (s *MongoStore) FindGrantsForScope(ctx context.Context, scope model.ScopeRef) ([]*model.Grant, error) {
	return s.findGrants(ctx, bson.M{"scope_type": scope.Type, "scope_id": scope.ID})
}

func (s *MongoStore) findGrants(ctx context.Context, filter bson.M) ([]*model.Grant, error) {
	cursor, err := s.Grants.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var grants []*model.Grant
	if err := cursor.All(ctx, &grants); err != nil {
		return nil, err
	}
	return grants, nil
}
