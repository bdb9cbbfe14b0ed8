package application

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rahim00001/AuraStay-server/domain"
)

// In-memory stores standing in for the mongo-backed ones.

type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (s *fakeUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	all := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	return all, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users[email], nil
}

func (s *fakeUserStore) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = primitive.NewObjectID()
	s.users[user.Email] = user
	return user, nil
}

func (s *fakeUserStore) Replace(ctx context.Context, email string, user *domain.User) error {
	s.users[email] = user
	return nil
}

func (s *fakeUserStore) UpdateRole(ctx context.Context, email string, update *domain.RoleUpdate) error {
	user, ok := s.users[email]
	if !ok {
		user = &domain.User{Email: email}
		s.users[email] = user
	}
	user.Role = update.Role
	if update.Status != "" {
		user.Status = update.Status
	}
	user.Timestamp = time.Now()
	return nil
}

func (s *fakeUserStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type fakeRoomStore struct {
	rooms map[primitive.ObjectID]*domain.Room
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: make(map[primitive.ObjectID]*domain.Room)}
}

func (s *fakeRoomStore) GetAll(ctx context.Context) ([]*domain.Room, error) {
	all := make([]*domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		all = append(all, r)
	}
	return all, nil
}

func (s *fakeRoomStore) Get(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	return s.rooms[id], nil
}

func (s *fakeRoomStore) GetByHost(ctx context.Context, email string) ([]*domain.Room, error) {
	var rooms []*domain.Room
	for _, r := range s.rooms {
		if r.Host.Email == email {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

func (s *fakeRoomStore) Insert(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	room.ID = primitive.NewObjectID()
	s.rooms[room.ID] = room
	return room, nil
}

func (s *fakeRoomStore) Replace(ctx context.Context, id primitive.ObjectID, room *domain.Room) error {
	room.ID = id
	s.rooms[id] = room
	return nil
}

func (s *fakeRoomStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(s.rooms, id)
	return nil
}

func (s *fakeRoomStore) UpdateBookedStatus(ctx context.Context, id primitive.ObjectID, booked bool) error {
	if room, ok := s.rooms[id]; ok {
		room.Booked = booked
	}
	return nil
}

func (s *fakeRoomStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.rooms)), nil
}

func (s *fakeRoomStore) CountByHost(ctx context.Context, email string) (int64, error) {
	rooms, _ := s.GetByHost(ctx, email)
	return int64(len(rooms)), nil
}

type fakeBookingStore struct {
	bookings []*domain.Booking
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{}
}

func (s *fakeBookingStore) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings, nil
}

func (s *fakeBookingStore) GetByGuest(ctx context.Context, email string) ([]*domain.Booking, error) {
	var filtered []*domain.Booking
	for _, b := range s.bookings {
		if b.Guest.Email == email {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *fakeBookingStore) GetByHost(ctx context.Context, email string) ([]*domain.Booking, error) {
	var filtered []*domain.Booking
	for _, b := range s.bookings {
		if b.Host == email {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *fakeBookingStore) Insert(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = primitive.NewObjectID()
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

func (s *fakeBookingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeBookingStore) GetSalesAll(ctx context.Context) ([]*domain.SaleRecord, error) {
	return toSales(s.bookings), nil
}

func (s *fakeBookingStore) GetSalesByHost(ctx context.Context, email string) ([]*domain.SaleRecord, error) {
	filtered, _ := s.GetByHost(ctx, email)
	return toSales(filtered), nil
}

func (s *fakeBookingStore) GetSalesByGuest(ctx context.Context, email string) ([]*domain.SaleRecord, error) {
	filtered, _ := s.GetByGuest(ctx, email)
	return toSales(filtered), nil
}

func (s *fakeBookingStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.bookings)), nil
}

func toSales(bookings []*domain.Booking) []*domain.SaleRecord {
	var sales []*domain.SaleRecord
	for _, b := range bookings {
		sales = append(sales, &domain.SaleRecord{Date: b.Date, Price: b.Price})
	}
	return sales
}
