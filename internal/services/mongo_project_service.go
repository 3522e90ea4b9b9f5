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

type MongoProjectService struct {
	col *mongo.Collection
}

func (s *MongoProjectService) List(ctx context.Context) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "featured", Value: -1},
		{Key: "createdAt", Value: -1},
	})

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *MongoProjectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	project := req.ToProject()
	if _, err := s.col.InsertOne(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *MongoProjectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	set := bson.M{
		"updatedAt": time.Now(),
	}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Desc != nil {
		set["desc"] = *req.Desc
	}
	if req.Tech != nil {
		set["tech"] = *req.Tech
	}
	if req.GitHub != nil {
		set["github"] = *req.GitHub
	}
	if req.Live != nil {
		set["live"] = *req.Live
	}
	if req.Featured != nil {
		set["featured"] = *req.Featured
	}
	if req.Type != nil {
		set["type"] = strings.TrimSpace(*req.Type)
	}

	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)

	var project models.Project
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *MongoProjectService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrProjectNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrProjectNotFound
	}
	return nil
}
