package domain

import (
	"context"
	"time"

	"go-marketplace-backend/pkg/optional"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	Role         string    `json:"role"`
	Location     *string   `json:"location"`
	Bio          *string   `json:"bio"`
	ProfilePhoto *string   `json:"profilePhoto"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch carries a partial update of the identity fields.
// Absent fields are left untouched; null clears nullable fields.
type UserPatch struct {
	Name         optional.Value[string] `json:"name" binding:"omitempty,min=1,max=120,valid_name"`
	Email        optional.Value[string] `json:"email" binding:"omitempty,email"`
	Phone        optional.Value[string] `json:"phone" binding:"omitempty,valid_phone"`
	Role         optional.Value[string] `json:"role" binding:"omitempty,max=40"`
	Location     optional.Value[string] `json:"location" binding:"omitempty,max=200,no_emoji"`
	Bio          optional.Value[string] `json:"bio" binding:"omitempty,max=2000"`
	ProfilePhoto optional.Value[string] `json:"profilePhoto" binding:"omitempty,url"`
}

// ClearsRequired reports whether the patch tries to null a non-nullable field.
func (p UserPatch) ClearsRequired() bool {
	return p.Name.Null || p.Email.Null
}

// ApplyTo merges present fields into u.
func (p UserPatch) ApplyTo(u *User) {
	p.Name.Apply(&u.Name)
	p.Email.Apply(&u.Email)
	p.Phone.ApplyPtr(&u.Phone)
	p.Role.Apply(&u.Role)
	p.Location.ApplyPtr(&u.Location)
	p.Bio.ApplyPtr(&u.Bio)
	p.ProfilePhoto.ApplyPtr(&u.ProfilePhoto)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
}

type UserUsecase interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error)
	UploadProfilePhoto(ctx context.Context, id int64, data []byte) (*User, error)
}
