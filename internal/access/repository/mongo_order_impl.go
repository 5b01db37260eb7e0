package repository

import (
	"context"
	"errors"
	"time"

	"shopaccess/internal/access/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (s *MongoStore) CreateOrder(ctx context.Context, o *model.Order) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	_, err := s.Orders.InsertOne(ctx, o)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *MongoStore) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := s.Orders.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (s *MongoStore) FindOrdersByCollection(ctx context.Context, collectionID string) ([]*model.Order, error) {
	return s.findOrders(ctx, bson.M{"collection_id": collectionID})
}

func (s *MongoStore) FindOrdersByWallet(ctx context.Context, walletAddress string) ([]*model.Order, error) {
	return s.findOrders(ctx, bson.M{"wallet_address": walletAddress})
}

func (s *MongoStore) findOrders(ctx context.Context, filter bson.M) ([]*model.Order, error) {
	cursor, err := s.Orders.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []*model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
