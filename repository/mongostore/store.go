// Package mongostore is the standalone-mode implementation of the repository
// contracts. When no upstream backend is configured the dashboard owns its
// own records in MongoDB instead of proxying.
package mongostore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phillip/charity-admin-go/repository"
)

type store struct {
	db *mongo.Database
}

func New(client *mongo.Client, dbName string) repository.Store {
	s := &store{db: client.Database(dbName)}
	return repository.Store{
		Causes:  causesStore{s},
		Events:  eventsStore{s},
		Gallery: galleryStore{s},
		Teams:   teamsStore{s},
	}
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

func returnUpdated() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// setFields builds the $set document for a partial update, always bumping
// updatedAt. Field keys match the bson tags on the models.
func setFields(fields map[string]any) map[string]any {
	set := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = time.Now().UTC()
	return map[string]any{"$set": set}
}
