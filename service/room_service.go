package application

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/domain"
)

type RoomService struct {
	store  domain.RoomStore
	tracer trace.Tracer
}

func NewRoomService(store domain.RoomStore, tracer trace.Tracer) *RoomService {
	return &RoomService{
		store:  store,
		tracer: tracer,
	}
}

func (service *RoomService) GetAll(ctx context.Context) ([]*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

func (service *RoomService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.Get")
	defer span.End()

	return service.store.Get(ctx, id)
}

func (service *RoomService) GetByHost(ctx context.Context, email string) ([]*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.GetByHost")
	defer span.End()

	return service.store.GetByHost(ctx, email)
}

// Create inserts a new room. Any authenticated identity may create one;
// the embedded host fields are taken from the payload without ownership
// validation.
func (service *RoomService) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	ctx, span := service.tracer.Start(ctx, "RoomService.Create")
	defer span.End()

	return service.store.Insert(ctx, room)
}

// Update is a full-document replace, upserting when the id is absent.
func (service *RoomService) Update(ctx context.Context, id primitive.ObjectID, room *domain.Room) error {
	ctx, span := service.tracer.Start(ctx, "RoomService.Update")
	defer span.End()

	return service.store.Replace(ctx, id, room)
}

// Delete removes the room only. Bookings referencing it are left in place.
func (service *RoomService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := service.tracer.Start(ctx, "RoomService.Delete")
	defer span.End()

	return service.store.Delete(ctx, id)
}

// SetBookedStatus flips the booked flag on its own. Nothing ties the flag
// to booking creation or deletion; callers sequence the two calls.
func (service *RoomService) SetBookedStatus(ctx context.Context, id primitive.ObjectID, booked bool) error {
	ctx, span := service.tracer.Start(ctx, "RoomService.SetBookedStatus")
	defer span.End()

	return service.store.UpdateBookedStatus(ctx, id, booked)
}
