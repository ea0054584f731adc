package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// ErrReviewExists signals that the user has already reviewed the content.
// Only one review per (user, content) pair is allowed; the original rating
// stays in place.
var ErrReviewExists = errors.New("only one review allowed per content")

type Review struct {
	tableName struct{} `pg:"review"`

	ReviewID   uuid.UUID `pg:"review_id,pk,type:uuid,default:uuid_generate_v4()"`
	UserID     uuid.UUID `pg:"user_id,type:uuid"`
	ContentID  uuid.UUID `pg:"content_id,type:uuid"`
	Rating     int       `pg:"rating,use_zero"`
	ReviewText *string   `pg:"review_text"`
	CreatedAt  time.Time `pg:"created_at,default:now()"`

	User *User `pg:"rel:has-one,fk:user_id"`
}

// CreateReview inserts a review for the (user, content) pair. A second
// submission for the same pair does not touch the stored row and returns
// ErrReviewExists.
func CreateReview(ctx context.Context, db *pg.DB, r *Review) error {
	res, err := db.Model(r).
		Context(ctx).
		OnConflict("(user_id, content_id) DO NOTHING").
		Insert()
	if err != nil {
		return errors.Wrap(err, "failed to insert review")
	}
	if res.RowsAffected() == 0 {
		return ErrReviewExists
	}
	return nil
}

func GetReviewsForContent(ctx context.Context, db *pg.DB, contentID uuid.UUID) ([]*Review, error) {
	var reviews []*Review
	err := db.Model(&reviews).
		Context(ctx).
		Where("review.content_id = ?", contentID).
		Relation("User").
		Order("created_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch reviews")
	}
	return reviews, nil
}

func GetReviewsForUser(ctx context.Context, db *pg.DB, userID uuid.UUID) ([]*Review, error) {
	var reviews []*Review
	err := db.Model(&reviews).
		Context(ctx).
		Where("review.user_id = ?", userID).
		Order("created_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user reviews")
	}
	return reviews, nil
}
