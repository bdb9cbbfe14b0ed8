package application

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"github.com/Rahim00001/AuraStay-server/domain"
)

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("")
}

func TestUpsertProfileCreatesOnFirstLogin(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store, testTracer())

	result, err := service.UpsertProfile(context.Background(), "a@x.com", &domain.User{Email: "a@x.com", Name: "Ana", Role: domain.Guest})
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	if result.Outcome != domain.OutcomeCreated {
		t.Errorf("expected Created, got %s", result.Outcome)
	}
	if result.User.Timestamp.IsZero() {
		t.Error("expected registration timestamp to be stamped on creation")
	}
}

func TestUpsertProfileIsIdempotentOnRepeatLogin(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store, testTracer())

	first, err := service.UpsertProfile(context.Background(), "a@x.com", &domain.User{Email: "a@x.com", Name: "Ana", Role: domain.Guest})
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	second, err := service.UpsertProfile(context.Background(), "a@x.com", &domain.User{Email: "a@x.com", Name: "Someone Else"})
	if err != nil {
		t.Fatalf("repeat UpsertProfile failed: %v", err)
	}

	if second.Outcome != domain.OutcomeUnchanged {
		t.Errorf("expected Unchanged, got %s", second.Outcome)
	}
	if second.User.Name != "Ana" {
		t.Errorf("repeat login clobbered the stored profile: %q", second.User.Name)
	}
	if !second.User.Timestamp.Equal(first.User.Timestamp) {
		t.Error("repeat login must not touch the registration timestamp")
	}
}

func TestUpsertProfileOverwritesOnRoleUpgradeRequest(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store, testTracer())

	first, err := service.UpsertProfile(context.Background(), "a@x.com", &domain.User{Email: "a@x.com", Name: "Ana", Role: domain.Guest})
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	request := &domain.User{Email: "a@x.com", Name: "Ana", Role: domain.Guest, Status: domain.StatusRequested}
	second, err := service.UpsertProfile(context.Background(), "a@x.com", request)
	if err != nil {
		t.Fatalf("UpsertProfile with Requested failed: %v", err)
	}

	if second.Outcome != domain.OutcomeOverwritten {
		t.Errorf("expected Overwritten, got %s", second.Outcome)
	}

	stored, _ := store.GetByEmail(context.Background(), "a@x.com")
	if stored.Status != domain.StatusRequested {
		t.Errorf("expected stored status %q, got %q", domain.StatusRequested, stored.Status)
	}
	if !stored.Timestamp.Equal(first.User.Timestamp) {
		t.Error("overwrite must preserve the original registration timestamp")
	}
}

func TestGetByEmailUnknownIsEmptyNotError(t *testing.T) {
	service := NewUserService(newFakeUserStore(), testTracer())

	user, err := service.GetByEmail(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("expected no error for unknown email, got %v", err)
	}
	if user != nil {
		t.Errorf("expected empty result, got %+v", user)
	}
}

func TestUpdateRoleMergesRoleAndStatus(t *testing.T) {
	store := newFakeUserStore()
	service := NewUserService(store, testTracer())

	if _, err := service.UpsertProfile(context.Background(), "a@x.com", &domain.User{Email: "a@x.com", Role: domain.Guest, Status: domain.StatusRequested}); err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	if err := service.UpdateRole(context.Background(), "a@x.com", &domain.RoleUpdate{Role: domain.Host, Status: "Verified"}); err != nil {
		t.Fatalf("UpdateRole failed: %v", err)
	}

	stored, _ := store.GetByEmail(context.Background(), "a@x.com")
	if stored.Role != domain.Host {
		t.Errorf("expected role host, got %q", stored.Role)
	}
	if stored.Status != "Verified" {
		t.Errorf("expected status Verified, got %q", stored.Status)
	}
}
