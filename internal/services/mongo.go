package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore holds the shared client and hands out per-collection services.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(ctx context.Context, mongoURI, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Profiles() *MongoProfileService {
	return &MongoProfileService{col: s.db.Collection("profiles")}
}

func (s *MongoStore) Settings() *MongoSettingsService {
	return &MongoSettingsService{col: s.db.Collection("settings")}
}

func (s *MongoStore) Projects() *MongoProjectService {
	return &MongoProjectService{col: s.db.Collection("projects")}
}

func (s *MongoStore) Experiences() *MongoExperienceService {
	return &MongoExperienceService{col: s.db.Collection("experiences")}
}

func (s *MongoStore) Achievements() *MongoAchievementService {
	return &MongoAchievementService{col: s.db.Collection("achievements")}
}

func (s *MongoStore) Contacts() *MongoContactService {
	return &MongoContactService{col: s.db.Collection("contact_messages")}
}
