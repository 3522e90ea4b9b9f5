package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/backend/internal/models"
)

type MongoSettingsService struct {
	col *mongo.Collection
}

func (s *MongoSettingsService) EnsureDefault(ctx context.Context) error {
	_, err := s.Get(ctx)
	return err
}

func (s *MongoSettingsService) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := s.col.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == nil {
		return &settings, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	def := models.DefaultSettings()
	if _, err := s.col.InsertOne(ctx, def); err != nil {
		var retry models.Settings
		if err2 := s.col.FindOne(ctx, bson.M{}).Decode(&retry); err2 == nil {
			return &retry, nil
		}
		return nil, err
	}
	return def, nil
}

func (s *MongoSettingsService) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	set := bson.M{
		"updatedAt": time.Now(),
	}
	if req.PortfolioName != nil {
		set["portfolioName"] = *req.PortfolioName
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.GitHub != nil {
		set["github"] = *req.GitHub
	}
	if req.LinkedIn != nil {
		set["linkedin"] = *req.LinkedIn
	}
	if req.Instagram != nil {
		set["instagram"] = *req.Instagram
	}
	if req.Blog != nil {
		set["blog"] = *req.Blog
	}

	return s.applySet(ctx, set)
}

func (s *MongoSettingsService) SetLogo(ctx context.Context, path string) (*models.Settings, error) {
	return s.applySet(ctx, bson.M{"logo": path, "updatedAt": time.Now()})
}

func (s *MongoSettingsService) applySet(ctx context.Context, set bson.M) (*models.Settings, error) {
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var settings models.Settings
	err := s.col.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": set}, opts).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		if _, err := s.Get(ctx); err != nil {
			return nil, err
		}
		err = s.col.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": set}, opts).Decode(&settings)
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
