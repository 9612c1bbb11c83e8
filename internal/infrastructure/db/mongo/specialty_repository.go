package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agenda-universal/especialidades-api/internal/core/domain"
)

const specialtyCollection = "especialidades"

type SpecialtyRepository struct {
	col *mongo.Collection
}

func NewSpecialtyRepository(db *mongo.Database) *SpecialtyRepository {
	return &SpecialtyRepository{col: db.Collection(specialtyCollection)}
}

type mongoSpecialty struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description,omitempty"`
	Active      bool               `bson:"active"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d mongoSpecialty) toDomain() *domain.Specialty {
	return &domain.Specialty{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Create inserts a new specialty document and returns the generated id.
func (r *SpecialtyRepository) Create(ctx context.Context, s *domain.Specialty) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSpecialty{
		Name:        s.Name,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert specialty: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert specialty: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID retrieves a specialty by its hex ObjectID. A malformed id cannot
// name any document and is reported as not found.
func (r *SpecialtyRepository) FindByID(ctx context.Context, id string) (*domain.Specialty, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSpecialtyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSpecialty
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSpecialtyNotFound
		}
		return nil, fmt.Errorf("find specialty: %w", err)
	}
	return doc.toDomain(), nil
}

// FindAll returns every specialty in natural (insertion) order.
func (r *SpecialtyRepository) FindAll(ctx context.Context) ([]*domain.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	defer cursor.Close(ctx)

	specialties := make([]*domain.Specialty, 0)
	for cursor.Next(ctx) {
		var doc mongoSpecialty
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode specialty: %w", err)
		}
		specialties = append(specialties, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	return specialties, nil
}

// Update replaces the mutable fields of the document, leaving _id and
// created_at untouched.
func (r *SpecialtyRepository) Update(ctx context.Context, id string, s *domain.Specialty) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSpecialtyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":        s.Name,
			"description": s.Description,
			"active":      s.Active,
			"updated_at":  s.UpdatedAt,
		},
	}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update specialty: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSpecialtyNotFound
	}
	return nil
}

// Delete removes the document. Deleting an unknown id reports not found, so a
// second delete of the same id fails.
func (r *SpecialtyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSpecialtyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete specialty: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSpecialtyNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the especialidades collection.
func (r *SpecialtyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
