// internal/app/store/drafts/draftstore.go
package draftstore

import (
	"context"
	"fmt"
	"time"

	"github.com/motadesign/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Draft is the working copy of the content document for one editing session.
// It is keyed by the session token, mutated by editor operations, and only
// copied to the main document on an explicit save. Abandoned drafts expire
// via a TTL index on updated_at.
type Draft struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty"`
	SessionToken string                 `bson:"session_token"`
	Document     models.ContentDocument `bson:"document"`
	UpdatedAt    time.Time              `bson:"updated_at"`
}

// Store manages the content_drafts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new draft store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("content_drafts")}
}

// EnsureIndexes creates the session token lookup index and the TTL index
// that sweeps abandoned drafts after 24 hours of inactivity.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_token", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_drafts_session_token"),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(86400).SetName("idx_drafts_ttl"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}

// Get returns the draft for the session token, or found=false when the
// session has no draft yet.
func (s *Store) Get(ctx context.Context, sessionToken string) (models.ContentDocument, bool, error) {
	var draft Draft
	err := s.c.FindOne(ctx, bson.M{"session_token": sessionToken}).Decode(&draft)
	if err == mongo.ErrNoDocuments {
		return models.ContentDocument{}, false, nil
	}
	if err != nil {
		return models.ContentDocument{}, false, fmt.Errorf("load draft: %w", err)
	}
	return draft.Document, true, nil
}

// Put stores doc as the working copy for the session token.
func (s *Store) Put(ctx context.Context, sessionToken string, doc models.ContentDocument) error {
	doc.ID = primitive.NilObjectID

	filter := bson.M{"session_token": sessionToken}
	update := bson.M{
		"$set": bson.M{
			"document":   doc,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id":           primitive.NewObjectID(),
			"session_token": sessionToken,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("store draft: %w", err)
	}
	return nil
}

// Delete discards the draft for the session token. Deleting a missing draft
// is not an error.
func (s *Store) Delete(ctx context.Context, sessionToken string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"session_token": sessionToken})
	return err
}
