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

type MongoAchievementService struct {
	col *mongo.Collection
}

func (s *MongoAchievementService) List(ctx context.Context) ([]models.Achievement, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "featured", Value: -1},
		{Key: "createdAt", Value: -1},
	})

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	achievements := []models.Achievement{}
	if err := cur.All(ctx, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *MongoAchievementService) Create(ctx context.Context, req *models.CreateAchievementRequest) (*models.Achievement, error) {
	achievement := req.ToAchievement()
	if _, err := s.col.InsertOne(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *MongoAchievementService) Update(ctx context.Context, id string, req *models.UpdateAchievementRequest) (*models.Achievement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrAchievementNotFound
	}

	set := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Issuer != nil {
		set["issuer"] = *req.Issuer
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Date != nil {
		set["date"] = *req.Date
	}
	if req.ImageURL != nil {
		set["imageUrl"] = *req.ImageURL
	}
	if req.ProofURL != nil {
		set["proofUrl"] = *req.ProofURL
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var achievement models.Achievement
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&achievement)
	if err == mongo.ErrNoDocuments {
		return nil, ErrAchievementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (s *MongoAchievementService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrAchievementNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrAchievementNotFound
	}
	return nil
}
