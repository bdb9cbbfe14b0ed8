package application

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/domain"
)

type BookingService struct {
	store  domain.BookingStore
	mail   *MailService
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewBookingService(store domain.BookingStore, mail *MailService, tracer trace.Tracer, logger *logrus.Logger) *BookingService {
	return &BookingService{
		store:  store,
		mail:   mail,
		tracer: tracer,
		logger: logger,
	}
}

// Create appends the booking and fires the confirmation mail off the
// request path. Mail failures are logged and never fail the booking.
func (service *BookingService) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.Create")
	defer span.End()

	created, err := service.store.Insert(ctx, booking)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if service.mail != nil {
		go func(b domain.Booking) {
			if err := service.mail.SendBookingConfirmation(&b); err != nil {
				service.logger.Errorf("failed to send booking confirmation to %s: %s", b.Guest.Email, err)
			}
		}(*created)
	}

	return created, nil
}

func (service *BookingService) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, span := service.tracer.Start(ctx, "BookingService.Delete")
	defer span.End()

	return service.store.Delete(ctx, id)
}

func (service *BookingService) GetByGuest(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetByGuest")
	defer span.End()

	return service.store.GetByGuest(ctx, email)
}

func (service *BookingService) GetByHost(ctx context.Context, email string) ([]*domain.Booking, error) {
	ctx, span := service.tracer.Start(ctx, "BookingService.GetByHost")
	defer span.End()

	return service.store.GetByHost(ctx, email)
}
