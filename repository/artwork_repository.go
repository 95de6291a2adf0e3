package repository

import (
	"context"
	"errors"

	"github.com/haresh-sai06/Art-Webpage/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("not found")

type MongoArtworkRepository struct {
	collection *mongo.Collection
}

func NewMongoArtworkRepository(db *mongo.Database) *MongoArtworkRepository {
	return &MongoArtworkRepository{
		collection: db.Collection("artworks"),
	}
}

func (r *MongoArtworkRepository) Find(ctx context.Context, filter models.ArtworkFilter) ([]models.Artwork, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Availability != "" {
		query["availability"] = filter.Availability
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var artworks []models.Artwork
	if err := cursor.All(ctx, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

func (r *MongoArtworkRepository) FindByID(ctx context.Context, id string) (*models.Artwork, error) {
	var artwork models.Artwork
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&artwork)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artwork, nil
}

func (r *MongoArtworkRepository) FindFeatured(ctx context.Context, limit int) ([]models.Artwork, error) {
	findOptions := options.Find().SetLimit(int64(limit))
	filter := bson.M{"availability": models.AvailabilityAvailable}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var artworks []models.Artwork
	if err := cursor.All(ctx, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

// SeedIfEmpty populates the catalog on first startup. A non-empty collection
// is left untouched, so existing ids survive restarts.
func (r *MongoArtworkRepository) SeedIfEmpty(ctx context.Context, artworks []models.Artwork) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(artworks))
	for _, a := range artworks {
		docs = append(docs, a)
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
