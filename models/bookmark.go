package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type Bookmark struct {
	tableName struct{} `pg:"bookmark"`

	UserID    uuid.UUID `pg:"user_id,pk,type:uuid"`
	ContentID uuid.UUID `pg:"content_id,pk,type:uuid"`
	CreatedAt time.Time `pg:"created_at,default:now()"`

	Content *Content `pg:"rel:has-one,fk:content_id"`
}

func IsBookmarked(ctx context.Context, db *pg.DB, userID uuid.UUID, contentID uuid.UUID) (bool, error) {
	exists, err := db.Model((*Bookmark)(nil)).
		Context(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Exists()
	if err != nil {
		return false, errors.Wrap(err, "failed to check bookmark")
	}
	return exists, nil
}

// ToggleBookmark inserts or removes the bookmark for the (user, content)
// pair and reports whether the content is bookmarked afterwards. The
// insert goes first; a conflict on the composite key means the bookmark
// already existed and gets removed instead, so concurrent toggles never
// both report the bookmarked state.
func ToggleBookmark(ctx context.Context, db *pg.DB, userID uuid.UUID, contentID uuid.UUID) (bool, error) {
	b := &Bookmark{
		UserID:    userID,
		ContentID: contentID,
		CreatedAt: time.Now(),
	}
	res, err := db.Model(b).
		Context(ctx).
		OnConflict("DO NOTHING").
		Insert()
	if err != nil {
		return false, errors.Wrap(err, "failed to insert bookmark")
	}
	if res.RowsAffected() > 0 {
		return true, nil
	}
	_, err = db.Model((*Bookmark)(nil)).
		Context(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		Delete()
	if err != nil {
		return false, errors.Wrap(err, "failed to remove bookmark")
	}
	return false, nil
}

func GetBookmarksForUser(ctx context.Context, db *pg.DB, userID uuid.UUID) ([]*Bookmark, error) {
	var bookmarks []*Bookmark
	err := db.Model(&bookmarks).
		Context(ctx).
		Where("bookmark.user_id = ?", userID).
		Relation("Content").
		Order("created_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch bookmarks")
	}
	return bookmarks, nil
}
