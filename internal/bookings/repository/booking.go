package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingserrors "cardoctor/internal/bookings/errors"
	"cardoctor/pkg/client"
	"cardoctor/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "bookings"

type BookingRepository interface {
	FindAll(ctx context.Context, email string) ([]model.Booking, error)
	FindByID(ctx context.Context, id string) (model.Booking, error)
	Insert(ctx context.Context, booking model.Booking) (*model.InsertResult, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type mongoBookingRepository struct {
	collection *mongo.Collection
	opTimeout  time.Duration
}

func NewMongoBookingRepository(mc *client.MongoClient, database string, opTimeout time.Duration) BookingRepository {
	return &mongoBookingRepository{
		collection: mc.Client.Database(database).Collection(CollectionName),
		opTimeout:  opTimeout,
	}
}

func (r *mongoBookingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

func objectIDFromHex(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}
	return objectID, nil
}

// FindAll returns every booking, or only those whose email field exactly
// matches when email is non-empty.
func (r *mongoBookingRepository) FindAll(ctx context.Context, email string) ([]model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter[model.BookingFieldEmail] = email
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []model.Booking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

// FindByID returns nil with no error when the booking does not exist; absent
// documents are empty successes, never lookup failures.
func (r *mongoBookingRepository) FindByID(ctx context.Context, id string) (model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

func (r *mongoBookingRepository) Insert(ctx context.Context, booking model.Booking) (*model.InsertResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	return &model.InsertResult{
		Acknowledged: true,
		InsertedID:   insertedIDString(result.InsertedID),
	}, nil
}

// insertedIDString echoes the driver's inserted id as a string. Documents
// usually get a generated ObjectID, but clients may supply their own _id of
// any type and it must come back as given.
func insertedIDString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// UpdateStatus sets only the status field. A missing document is a zero
// matched count, not an error.
func (r *mongoBookingRepository) UpdateStatus(ctx context.Context, id string, status string) (*model.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{model.BookingFieldStatus: status}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *mongoBookingRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	return &model.DeleteResult{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}
