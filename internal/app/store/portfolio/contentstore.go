// internal/app/store/portfolio/contentstore.go
package portfoliostore

import (
	"fmt"
	"time"

	"context"

	"github.com/motadesign/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection holding the content document.
const CollectionName = "portfolio_content"

// Store provides access to the portfolio_content collection. Folio keeps a
// singleton content document (one per site); every save replaces the whole
// document.
type Store struct {
	c *mongo.Collection
}

// New creates a new content store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(CollectionName)}
}

// Get returns the persisted content document.
//
// If no document has ever been saved, the compiled-in default is returned
// with a nil error: never-saved is not an error condition. If the lookup
// itself fails, the default is returned together with the error so callers
// can log it and keep rendering.
func (s *Store) Get(ctx context.Context) (models.ContentDocument, error) {
	var doc models.ContentDocument
	filter := bson.M{"singleton": true}
	err := s.c.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.DefaultContent(), nil
	}
	if err != nil {
		return models.DefaultContent(), fmt.Errorf("load content document: %w", err)
	}
	return doc, nil
}

// Save replaces the persisted content document with doc. There is no
// field-level update path; the last completed save wins.
func (s *Store) Save(ctx context.Context, doc models.ContentDocument) error {
	now := time.Now().UTC()
	doc.UpdatedAt = &now

	filter := bson.M{"singleton": true}
	update := bson.M{
		"$set": bson.M{
			"singleton":           true,
			"personal":            doc.Personal,
			"stats":               doc.Stats,
			"skills":              doc.Skills,
			"expertise_areas":     doc.ExpertiseAreas,
			"experiences":         doc.Experiences,
			"projects":            doc.Projects,
			"social":              doc.Social,
			"footer":              doc.Footer,
			"expertise_title":     doc.ExpertiseTitle,
			"expertise_subtitle":  doc.ExpertiseSubtitle,
			"experience_title":    doc.ExperienceTitle,
			"experience_subtitle": doc.ExperienceSubtitle,
			"updated_at":          doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.c.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("save content document: %w", err)
	}
	return nil
}

// Reset overwrites the persisted document with the compiled-in default, so
// independent readers observe the reset on their next fetch.
func (s *Store) Reset(ctx context.Context) error {
	return s.Save(ctx, models.DefaultContent())
}

// Exists checks whether a content document has ever been saved.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"singleton": true})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
