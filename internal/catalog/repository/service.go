package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardoctor/pkg/client"
	"cardoctor/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "services"

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]model.Service, error)
	FindByID(ctx context.Context, id string) (*model.ServiceSummary, error)
}

type mongoServiceRepository struct {
	collection *mongo.Collection
	opTimeout  time.Duration
}

func NewMongoServiceRepository(mc *client.MongoClient, database string, opTimeout time.Duration) ServiceRepository {
	return &mongoServiceRepository{
		collection: mc.Client.Database(database).Collection(CollectionName),
		opTimeout:  opTimeout,
	}
}

func (r *mongoServiceRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

func (r *mongoServiceRepository) FindAll(ctx context.Context) ([]model.Service, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []model.Service{}
	if err = cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}

	return services, nil
}

// FindByID looks up a catalog entry by its store-native string key and
// projects it down to title, price and img. Absent entries return nil.
func (r *mongoServiceRepository) FindByID(ctx context.Context, id string) (*model.ServiceSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{
		"title": 1,
		"price": 1,
		"img":   1,
	})

	var summary model.ServiceSummary
	err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&summary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	return &summary, nil
}
