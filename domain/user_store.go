package domain

import "context"

type UserStore interface {
	GetAll(ctx context.Context) ([]*User, error)
	// GetByEmail returns (nil, nil) when no profile exists for the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, user *User) (*User, error)
	Replace(ctx context.Context, email string, user *User) error
	UpdateRole(ctx context.Context, email string, update *RoleUpdate) error
	Count(ctx context.Context) (int64, error)
}
