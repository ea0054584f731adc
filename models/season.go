package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type Season struct {
	tableName struct{} `pg:"season"`

	SeasonID     uuid.UUID `pg:"season_id,pk,type:uuid,default:uuid_generate_v4()"`
	TvShowID     uuid.UUID `pg:"tv_show_id,type:uuid"`
	SeasonNumber int       `pg:"season_number,use_zero"`
	Title        string    `pg:"title,use_zero"`

	Episodes []*Episode `pg:"rel:has-many,fk:season_id"`
}

func sortSeasons(q *orm.Query) (*orm.Query, error) {
	return q.Order("season_number ASC"), nil
}

func GetSeasonByID(ctx context.Context, db *pg.DB, id uuid.UUID) (*Season, error) {
	var s Season
	err := db.Model(&s).
		Context(ctx).
		Where("season.season_id = ?", id).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch season")
	}
	return &s, nil
}

func GetSeasonsForShow(ctx context.Context, db orm.DB, tvShowID uuid.UUID) ([]*Season, error) {
	var seasons []*Season
	err := db.ModelContext(ctx, &seasons).
		Where("season.tv_show_id = ?", tvShowID).
		Relation("Episodes", sortEpisodes).
		Order("season_number ASC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch seasons")
	}
	return seasons, nil
}
