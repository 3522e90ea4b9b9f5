package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/backend/internal/models"
)

type MongoExperienceService struct {
	col *mongo.Collection
}

func (s *MongoExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	experiences := []models.Experience{}
	if err := cur.All(ctx, &experiences); err != nil {
		return nil, err
	}
	return experiences, nil
}

func (s *MongoExperienceService) Create(ctx context.Context, req *models.CreateExperienceRequest) (*models.Experience, error) {
	exp := req.ToExperience()
	if _, err := s.col.InsertOne(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *MongoExperienceService) Update(ctx context.Context, id string, req *models.UpdateExperienceRequest) (*models.Experience, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrExperienceNotFound
	}

	set := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Role != nil {
		set["role"] = *req.Role
	}
	if req.Company != nil {
		set["company"] = *req.Company
	}
	if req.Type != nil {
		set["type"] = strings.TrimSpace(*req.Type)
	}
	if req.StartDate != nil {
		set["startDate"] = *req.StartDate
	}
	if req.EndDate != nil {
		set["endDate"] = *req.EndDate
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Skills != nil {
		set["skills"] = *req.Skills
	}
	if req.CertificateURL != nil {
		set["certificateUrl"] = *req.CertificateURL
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var exp models.Experience
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&exp)
	if err == mongo.ErrNoDocuments {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func (s *MongoExperienceService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrExperienceNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrExperienceNotFound
	}
	return nil
}
