package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/phillip/charity-admin-go/models"
	"github.com/phillip/charity-admin-go/repository"
)

type teamsStore struct{ s *store }

func (r teamsStore) col() *mongo.Collection { return r.s.db.Collection("teams") }

func (r teamsStore) List(ctx context.Context) ([]models.TeamMember, error) {
	cursor, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("could not fetch team members: %w", err)
	}
	members := []models.TeamMember{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("could not decode team members: %w", err)
	}
	return members, nil
}

func (r teamsStore) Get(ctx context.Context, id string) (models.TeamMember, error) {
	var member models.TeamMember
	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TeamMember{}, repository.ErrNotFound
	}
	return member, err
}

func (r teamsStore) Create(ctx context.Context, in models.CreateTeamMember) (models.TeamMember, error) {
	now := time.Now().UTC()
	member := models.TeamMember{
		ID:          newID(),
		Name:        in.Name,
		Role:        in.Role,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Email:       in.Email,
		Phone:       in.Phone,
		LinkedinURL: in.LinkedinURL,
		TwitterURL:  in.TwitterURL,
		FacebookURL: in.FacebookURL,
		TiktokURL:   in.TiktokURL,
		GithubURL:   in.GithubURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := r.col().InsertOne(ctx, member); err != nil {
		return models.TeamMember{}, fmt.Errorf("could not create team member: %w", err)
	}
	return member, nil
}

func (r teamsStore) Update(ctx context.Context, id string, fields map[string]any) (models.TeamMember, error) {
	var updated models.TeamMember
	err := r.col().
		FindOneAndUpdate(ctx, bson.M{"_id": id}, setFields(fields), returnUpdated()).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TeamMember{}, repository.ErrNotFound
	}
	return updated, err
}

func (r teamsStore) Delete(ctx context.Context, id string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("could not delete team member: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
