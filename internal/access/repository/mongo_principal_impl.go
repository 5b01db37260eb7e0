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

func (s *MongoStore) GetPrincipal(ctx context.Context, id string) (*model.Principal, error) {
	var p model.Principal
	err := s.Principals.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) CreatePrincipal(ctx context.Context, p *model.Principal) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := s.Principals.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *MongoStore) UpdateRole(ctx context.Context, id, role string) (*model.Principal, error) {
	update := bson.M{
		"$set": bson.M{
			"role":       role,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := s.Principals.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts)

	var p model.Principal
	if err := res.Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *MongoStore) DeletePrincipalCascade(ctx context.Context, id string) error {
	session, err := s.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	callback := func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := s.Grants.DeleteMany(sessCtx, bson.M{"principal_id": id}); err != nil {
			return nil, err
		}
		res, err := s.Principals.DeleteOne(sessCtx, bson.M{"_id": id})
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
