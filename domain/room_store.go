package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomStore interface {
	GetAll(ctx context.Context) ([]*Room, error)
	// Get returns (nil, nil) when no room exists for the id.
	Get(ctx context.Context, id primitive.ObjectID) (*Room, error)
	GetByHost(ctx context.Context, email string) ([]*Room, error)
	Insert(ctx context.Context, room *Room) (*Room, error)
	Replace(ctx context.Context, id primitive.ObjectID, room *Room) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	UpdateBookedStatus(ctx context.Context, id primitive.ObjectID, booked bool) error
	Count(ctx context.Context) (int64, error)
	CountByHost(ctx context.Context, email string) (int64, error)
}
