package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type Download struct {
	tableName struct{} `pg:"download"`

	DownloadID uuid.UUID  `pg:"download_id,pk,type:uuid,default:uuid_generate_v4()"`
	ContentID  uuid.UUID  `pg:"content_id,type:uuid"`
	MovieID    *uuid.UUID `pg:"movie_id,type:uuid"`
	EpisodeID  *uuid.UUID `pg:"episode_id,type:uuid"`
	UserID     *uuid.UUID `pg:"user_id,type:uuid"`
	CreatedAt  time.Time  `pg:"created_at,default:now()"`
}

// RecordDownload appends a download log row and bumps the content download
// counter in a single transaction.
func RecordDownload(ctx context.Context, db *pg.DB, d *Download) error {
	return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		_, err := tx.Model(d).Insert()
		if err != nil {
			return errors.Wrap(err, "failed to insert download")
		}
		_, err = tx.Model((*Content)(nil)).
			Set("download_count = download_count + 1").
			Where("content_id = ?", d.ContentID).
			Update()
		if err != nil {
			return errors.Wrap(err, "failed to bump download count")
		}
		return nil
	})
}

func GetDownloadsForUser(ctx context.Context, db *pg.DB, userID uuid.UUID) ([]*Download, error) {
	var downloads []*Download
	err := db.Model(&downloads).
		Context(ctx).
		Where("download.user_id = ?", userID).
		Order("created_at DESC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch downloads")
	}
	return downloads, nil
}
