package testutil

import (
	"testing"
	"time"

	"github.com/motadesign/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedContent puts a test into the "site content was published earlier"
// state: it starts from the compiled-in defaults, applies mutate, and
// upserts the result into the portfolio_content singleton slot in the same
// shape the content store writes. The seeded document is returned so the
// test can assert against the exact values it planted.
//
// mutate may be nil to seed the defaults unchanged.
func SeedContent(t *testing.T, db *mongo.Database, mutate func(*models.ContentDocument)) models.ContentDocument {
	t.Helper()

	doc := models.DefaultContent()
	if mutate != nil {
		mutate(&doc)
	}
	now := time.Now().UTC()
	doc.UpdatedAt = &now

	ctx, cancel := TestContext()
	defer cancel()

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
	if _, err := db.Collection("portfolio_content").UpdateOne(ctx, filter, update, opts); err != nil {
		t.Fatalf("seed content document: %v", err)
	}
	return doc
}
