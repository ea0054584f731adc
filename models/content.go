package models

import (
	"context"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeTv    ContentType = "tv"
)

type ContentStatus string

const (
	ContentStatusCompleted ContentStatus = "completed"
	ContentStatusOngoing   ContentStatus = "ongoing"
	ContentStatusCancelled ContentStatus = "cancelled"
)

type Content struct {
	tableName struct{} `pg:"content"`

	ContentID     uuid.UUID     `pg:"content_id,pk,type:uuid,default:uuid_generate_v4()"`
	Title         string        `pg:"title,use_zero"`
	Description   string        `pg:"description,use_zero"`
	Genre         []string      `pg:"genre,array,use_zero"`
	ReleaseYear   *int16        `pg:"release_year"`
	PosterKey     *string       `pg:"poster_key"`
	BackdropKey   *string       `pg:"backdrop_key"`
	TrailerKey    *string       `pg:"trailer_key"`
	ContentType   ContentType   `pg:"content_type"`
	Status        ContentStatus `pg:"status"`
	UploadDate    time.Time     `pg:"upload_date,default:now()"`
	UploaderID    *uuid.UUID    `pg:"uploader_id"`
	DubberID      *uuid.UUID    `pg:"dubber_id"`
	DownloadCount int64         `pg:"download_count,use_zero"`
	IsActive      bool          `pg:"is_active,use_zero"`

	Dubber  *Dubber   `pg:"rel:has-one,fk:dubber_id"`
	Movie   *Movie    `pg:"rel:belongs-to,join_fk:content_id"`
	TvShow  *TvShow   `pg:"rel:belongs-to,join_fk:content_id"`
	Reviews []*Review `pg:"rel:has-many,fk:content_id"`
}

func GetContentByID(ctx context.Context, db *pg.DB, id uuid.UUID) (*Content, error) {
	var c Content
	err := db.Model(&c).
		Context(ctx).
		Where("content.content_id = ?", id).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch content")
	}
	return &c, nil
}

// GetContentWithDetails loads content together with its type-specific
// children (movie or tv show with seasons and episodes), its dubber and
// its reviews. Returns nil when the id is unknown.
func GetContentWithDetails(ctx context.Context, db *pg.DB, id uuid.UUID) (*Content, error) {
	var c Content
	err := db.Model(&c).
		Context(ctx).
		Where("content.content_id = ?", id).
		Relation("Dubber").
		Relation("Movie").
		Relation("TvShow").
		Relation("TvShow.Seasons", sortSeasons).
		Relation("TvShow.Seasons.Episodes", sortEpisodes).
		Relation("Reviews").
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch content details")
	}
	return &c, nil
}
