package application

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/domain"
)

// StatsService builds the role-scoped summaries. Every call re-scans the
// filtered booking set; nothing is cached.
type StatsService struct {
	users    domain.UserStore
	rooms    domain.RoomStore
	bookings domain.BookingStore
	tracer   trace.Tracer
}

func NewStatsService(users domain.UserStore, rooms domain.RoomStore, bookings domain.BookingStore, tracer trace.Tracer) *StatsService {
	return &StatsService{
		users:    users,
		rooms:    rooms,
		bookings: bookings,
		tracer:   tracer,
	}
}

func (service *StatsService) AdminStat(ctx context.Context) (*domain.AdminStat, error) {
	ctx, span := service.tracer.Start(ctx, "StatsService.AdminStat")
	defer span.End()

	sales, err := service.bookings.GetSalesAll(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	userCount, err := service.users.Count(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	roomCount, err := service.rooms.Count(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return &domain.AdminStat{
		TotalUsers:    userCount,
		TotalRooms:    roomCount,
		TotalBookings: len(sales),
		TotalSale:     sumSales(sales),
		ChartData:     buildChartData(sales, "Sale"),
	}, nil
}

func (service *StatsService) HostStat(ctx context.Context, email string) (*domain.HostStat, error) {
	ctx, span := service.tracer.Start(ctx, "StatsService.HostStat")
	defer span.End()

	sales, err := service.bookings.GetSalesByHost(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	roomCount, err := service.rooms.CountByHost(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	stat := &domain.HostStat{
		TotalRooms:    roomCount,
		TotalBookings: len(sales),
		TotalSale:     sumSales(sales),
		ChartData:     buildChartData(sales, "Sale"),
	}

	host, err := service.users.GetByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if host != nil {
		stat.HostSince = host.Timestamp
	}

	return stat, nil
}

func (service *StatsService) GuestStat(ctx context.Context, email string) (*domain.GuestStat, error) {
	ctx, span := service.tracer.Start(ctx, "StatsService.GuestStat")
	defer span.End()

	sales, err := service.bookings.GetSalesByGuest(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	stat := &domain.GuestStat{
		TotalBookings: len(sales),
		TotalSpent:    sumSales(sales),
		ChartData:     buildChartData(sales, "Reservation"),
	}

	guest, err := service.users.GetByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if guest != nil {
		stat.GuestSince = guest.Timestamp
	}

	return stat, nil
}

// buildChartData emits one row per booking under the header. Bookings on
// the same calendar day keep separate rows sharing a day/month label.
func buildChartData(sales []*domain.SaleRecord, valueLabel string) domain.ChartData {
	chart := domain.ChartData{{"Day", valueLabel}}
	for _, sale := range sales {
		label := fmt.Sprintf("%d/%d", sale.Date.Day(), int(sale.Date.Month()))
		chart = append(chart, []interface{}{label, sale.Price})
	}
	return chart
}

func sumSales(sales []*domain.SaleRecord) float64 {
	var total float64
	for _, sale := range sales {
		total += sale.Price
	}
	return total
}
