package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type User struct {
	tableName struct{} `pg:"user"`

	UserID    uuid.UUID `pg:"user_id,pk,type:uuid,default:uuid_generate_v4()"`
	Email     string    `pg:"email"`
	IsAdmin   bool      `pg:"is_admin,use_zero"`
	CreatedAt time.Time `pg:"created_at,default:now()"`
	UpdatedAt time.Time `pg:"updated_at,default:now()"`
}

// GetOrCreateUser finds a user by email or creates one. The second return
// value reports whether a new row was inserted.
func GetOrCreateUser(ctx context.Context, db *pg.DB, email string) (*User, bool, error) {
	user := &User{}
	err := db.Model(user).
		Context(ctx).
		Where("email = ?", email).
		Limit(1).
		Select()
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, pg.ErrNoRows) {
		return nil, false, errors.Wrap(err, "failed to fetch user")
	}
	user.Email = email
	_, err = db.Model(user).
		Context(ctx).
		Insert()
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to insert user")
	}
	return user, true, nil
}

func GetUserByID(ctx context.Context, db *pg.DB, id uuid.UUID) (*User, error) {
	var u User
	err := db.Model(&u).
		Context(ctx).
		Where("user_id = ?", id).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user")
	}
	return &u, nil
}
