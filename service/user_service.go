package application

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/domain"
)

type UserService struct {
	store  domain.UserStore
	tracer trace.Tracer
}

func NewUserService(store domain.UserStore, tracer trace.Tracer) *UserService {
	return &UserService{
		store:  store,
		tracer: tracer,
	}
}

// UpsertProfile is the idempotent identity bootstrap behind PUT /users/:email.
// First login creates the profile and stamps its registration time. A repeat
// call overwrites the stored profile only when the incoming one carries the
// pending role-upgrade sentinel; otherwise the stored profile wins, so a
// repeat login never clobbers an existing identity.
func (service *UserService) UpsertProfile(ctx context.Context, email string, profile *domain.User) (*domain.UpsertResult, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.UpsertProfile")
	defer span.End()

	existing, err := service.store.GetByEmail(ctx, email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if existing == nil {
		profile.Email = email
		profile.Timestamp = time.Now()
		created, err := service.store.Insert(ctx, profile)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		return &domain.UpsertResult{Outcome: domain.OutcomeCreated, User: created}, nil
	}

	if profile.Status == domain.StatusRequested {
		profile.ID = existing.ID
		profile.Email = email
		// registration time is set on first creation only
		profile.Timestamp = existing.Timestamp
		if err := service.store.Replace(ctx, email, profile); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		return &domain.UpsertResult{Outcome: domain.OutcomeOverwritten, User: profile}, nil
	}

	return &domain.UpsertResult{Outcome: domain.OutcomeUnchanged, User: existing}, nil
}

// GetByEmail returns the directory entry, or nil when the email is
// unknown. Absence is not an error; the empty result goes back to the
// caller as-is.
func (service *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.GetByEmail")
	defer span.End()

	return service.store.GetByEmail(ctx, email)
}

func (service *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	ctx, span := service.tracer.Start(ctx, "UserService.GetAll")
	defer span.End()

	return service.store.GetAll(ctx)
}

// UpdateRole merges the supplied fields into the directory entry and
// refreshes its timestamp, creating the entry when absent. Role changes
// take effect on the next request; no token re-issuance is needed.
func (service *UserService) UpdateRole(ctx context.Context, email string, update *domain.RoleUpdate) error {
	ctx, span := service.tracer.Start(ctx, "UserService.UpdateRole")
	defer span.End()

	return service.store.UpdateRole(ctx, email, update)
}
