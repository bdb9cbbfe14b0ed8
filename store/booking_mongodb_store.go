package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/domain"
)

const BOOKING_COLLECTION = "bookings"

type BookingMongoDBStore struct {
	bookings *mongo.Collection
	tracer   trace.Tracer
}

func NewBookingMongoDBStore(client *mongo.Client, tracer trace.Tracer) domain.BookingStore {
	bookings := client.Database(DATABASE).Collection(BOOKING_COLLECTION)
	return &BookingMongoDBStore{
		bookings: bookings,
		tracer:   tracer,
	}
}

func (store *BookingMongoDBStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetAll")
	defer span.End()

	filter := bson.D{{}}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) GetByGuest(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetByGuest")
	defer span.End()

	filter := bson.M{"guest.email": email}
	return store.filter(ctx, filter)
}

func (store *BookingMongoDBStore) GetByHost(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetByHost")
	defer span.End()

	filter := bson.M{"host": email}
	return store.filter(ctx, filter)
}

// Insert is append-only. No conflict check is made against existing
// bookings for the same room and date; sequencing the room's booked flag
// is the caller's responsibility.
func (store *BookingMongoDBStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Insert")
	defer span.End()

	booking.ID = primitive.NewObjectID()
	result, err := store.bookings.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = result.InsertedID.(primitive.ObjectID)
	return booking, nil
}

func (store *BookingMongoDBStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Delete")
	defer span.End()

	filter := bson.M{"_id": id}
	_, err := store.bookings.DeleteOne(ctx, filter)
	return err
}

func (store *BookingMongoDBStore) GetSalesAll(ctx context.Context) ([]*domain.SaleRecord, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetSalesAll")
	defer span.End()

	return store.filterSales(ctx, bson.D{{}})
}

func (store *BookingMongoDBStore) GetSalesByHost(ctx context.Context, email string) ([]*domain.SaleRecord, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetSalesByHost")
	defer span.End()

	return store.filterSales(ctx, bson.M{"host": email})
}

func (store *BookingMongoDBStore) GetSalesByGuest(ctx context.Context, email string) ([]*domain.SaleRecord, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.GetSalesByGuest")
	defer span.End()

	return store.filterSales(ctx, bson.M{"guest.email": email})
}

func (store *BookingMongoDBStore) Count(ctx context.Context) (int64, error) {
	ctx, span := store.tracer.Start(ctx, "BookingStore.Count")
	defer span.End()

	return store.bookings.CountDocuments(ctx, bson.D{{}})
}

func (store *BookingMongoDBStore) filter(ctx context.Context, filter interface{}) ([]*domain.Booking, error) {
	cursor, err := store.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	return decodeBookings(ctx, cursor)
}

func (store *BookingMongoDBStore) filterSales(ctx context.Context, filter interface{}) ([]*domain.SaleRecord, error) {
	opts := options.Find().SetProjection(bson.M{"date": 1, "price": 1, "_id": 0})
	cursor, err := store.bookings.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sales []*domain.SaleRecord
	for cursor.Next(ctx) {
		var sale domain.SaleRecord
		if err := cursor.Decode(&sale); err != nil {
			return nil, err
		}
		sales = append(sales, &sale)
	}
	return sales, cursor.Err()
}

func decodeBookings(ctx context.Context, cursor *mongo.Cursor) (bookings []*domain.Booking, err error) {
	for cursor.Next(ctx) {
		var booking domain.Booking
		err = cursor.Decode(&booking)
		if err != nil {
			return
		}
		bookings = append(bookings, &booking)
	}
	err = cursor.Err()
	return
}
