package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/backend/internal/models"
)

type MongoProfileService struct {
	col *mongo.Collection
}

func (s *MongoProfileService) EnsureDefault(ctx context.Context) error {
	_, err := s.Get(ctx)
	return err
}

// Get returns the profile, creating the default document if none exists.
func (s *MongoProfileService) Get(ctx context.Context) (*models.Profile, error) {
	var prof models.Profile
	err := s.col.FindOne(ctx, bson.M{}).Decode(&prof)
	if err == nil {
		return &prof, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	def := models.DefaultProfile()
	if _, err := s.col.InsertOne(ctx, def); err != nil {
		// If a racing request created it first, use that one.
		var retry models.Profile
		if err2 := s.col.FindOne(ctx, bson.M{}).Decode(&retry); err2 == nil {
			return &retry, nil
		}
		return nil, err
	}
	return def, nil
}

func (s *MongoProfileService) Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.Profile, error) {
	set := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Intro != nil {
		set["intro"] = *req.Intro
	}
	if req.Skills != nil {
		set["skills"] = *req.Skills
	}
	if req.ShowBadge != nil {
		set["showBadge"] = *req.ShowBadge
	}
	if req.BadgeText != nil {
		set["badgeText"] = *req.BadgeText
	}
	if req.Stats != nil {
		if req.Stats.Projects != nil {
			set["stats.projects"] = *req.Stats.Projects
		}
		if req.Stats.Internships != nil {
			set["stats.internships"] = *req.Stats.Internships
		}
		if req.Stats.OpenSource != nil {
			set["stats.openSource"] = *req.Stats.OpenSource
		}
	}
	if req.Links != nil {
		if req.Links.GitHub != nil {
			set["links.github"] = *req.Links.GitHub
		}
		if req.Links.LinkedIn != nil {
			set["links.linkedin"] = *req.Links.LinkedIn
		}
	}
	if req.Services != nil {
		set["services"] = *req.Services
	}

	return s.applySet(ctx, set)
}

func (s *MongoProfileService) SetImage(ctx context.Context, path string) (*models.Profile, error) {
	return s.applySet(ctx, bson.M{"profileImage": path, "updatedAt": time.Now()})
}

func (s *MongoProfileService) SetResume(ctx context.Context, path string) (*models.Profile, error) {
	return s.applySet(ctx, bson.M{"resumePdf": path, "updatedAt": time.Now()})
}

// applySet merges fields onto the singleton, creating it first if absent.
func (s *MongoProfileService) applySet(ctx context.Context, set bson.M) (*models.Profile, error) {
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var prof models.Profile
	err := s.col.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": set}, opts).Decode(&prof)
	if err == mongo.ErrNoDocuments {
		if _, err := s.Get(ctx); err != nil {
			return nil, err
		}
		err = s.col.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": set}, opts).Decode(&prof)
	}
	if err != nil {
		return nil, err
	}
	return &prof, nil
}
