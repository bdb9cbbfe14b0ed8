package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStore interface {
	GetAll(ctx context.Context) ([]*Booking, error)
	GetByGuest(ctx context.Context, email string) ([]*Booking, error)
	GetByHost(ctx context.Context, email string) ([]*Booking, error)
	Insert(ctx context.Context, booking *Booking) (*Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// Sales projections feed the aggregator with {date, price} only.
	GetSalesAll(ctx context.Context) ([]*SaleRecord, error)
	GetSalesByHost(ctx context.Context, email string) ([]*SaleRecord, error)
	GetSalesByGuest(ctx context.Context, email string) ([]*SaleRecord, error)
	Count(ctx context.Context) (int64, error)
}
