package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/backend/internal/models"
)

type MongoContactService struct {
	col *mongo.Collection
}

func (s *MongoContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	messages := []models.ContactMessage{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *MongoContactService) Create(ctx context.Context, req *models.SubmitContactRequest) (*models.ContactMessage, error) {
	msg := req.ToMessage()
	if _, err := s.col.InsertOne(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MongoContactService) GetAndMarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	return s.SetRead(ctx, id, true)
}

func (s *MongoContactService) SetRead(ctx context.Context, id string, isRead bool) (*models.ContactMessage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMessageNotFound
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var msg models.ContactMessage
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"isRead": isRead, "updatedAt": time.Now()},
	}, opts).Decode(&msg)
	if err == mongo.ErrNoDocuments {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *MongoContactService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrMessageNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}
