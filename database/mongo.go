package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"synergia-booking/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection, now: time.Now}
}

// objectID parses a hex identifier. Anything unparseable cannot name a
// stored booking, so it is reported as not found.
func objectID(id string) (primitive.ObjectID, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}
	return objId, nil
}

func (s *MongoStore) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	booking = model.NewBooking(booking, s.now())
	if _, err := s.collection.InsertOne(ctx, booking); err != nil {
		return model.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	return booking, nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]model.Booking, error) {
	return s.find(ctx, bson.D{})
}

func (s *MongoStore) find(ctx context.Context, filter interface{}) ([]model.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := []model.Booking{}
	for cur.Next(ctx) {
		var booking model.Booking
		if err := cur.Decode(&booking); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}
	return bookings, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (model.Booking, error) {
	objId, err := objectID(id)
	if err != nil {
		return model.Booking{}, err
	}

	var booking model.Booking
	err = s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: objId}}).Decode(&booking)
	return booking, mapSingleResultErr(err, "get booking")
}

func (s *MongoStore) FindByFilter(ctx context.Context, filter Filter) ([]model.Booking, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}

	regex := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Pattern)}
	if !filter.CaseSensitive {
		regex.Options = "i"
	}
	return s.find(ctx, bson.D{{Key: filter.Field, Value: regex}})
}

func (s *MongoStore) Update(ctx context.Context, id string, patch model.BookingPatch) (model.Booking, error) {
	objId, err := objectID(id)
	if err != nil {
		return model.Booking{}, err
	}

	changes := patch.Changes()
	set := bson.D{}
	for _, field := range FilterFields {
		if value, ok := changes[field]; ok {
			set = append(set, bson.E{Key: field, Value: value})
		}
	}
	set = append(set, bson.E{Key: "updatedAt", Value: s.now().UTC()})

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking model.Booking
	err = s.collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: objId}},
		bson.D{{Key: "$set", Value: set}},
		opts).Decode(&booking)
	return booking, mapSingleResultErr(err, "update booking")
}

func (s *MongoStore) Delete(ctx context.Context, id string) (model.Booking, error) {
	objId, err := objectID(id)
	if err != nil {
		return model.Booking{}, err
	}

	var booking model.Booking
	err = s.collection.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: objId}}).Decode(&booking)
	return booking, mapSingleResultErr(err, "delete booking")
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.collection.Database().Client().Ping(ctx, nil)
}

func mapSingleResultErr(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
