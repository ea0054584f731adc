package models

import (
	"github.com/go-pg/pg/v10/orm"
	uuid "github.com/satori/go.uuid"
)

type Episode struct {
	tableName struct{} `pg:"episode"`

	EpisodeID       uuid.UUID `pg:"episode_id,pk,type:uuid,default:uuid_generate_v4()"`
	SeasonID        uuid.UUID `pg:"season_id,type:uuid"`
	EpisodeNumber   int       `pg:"episode_number,use_zero"`
	Title           string    `pg:"title,use_zero"`
	VideoFileKey    *string   `pg:"video_file_key"`
	StillKey        *string   `pg:"still_key"`
	DurationMinutes *int      `pg:"duration_minutes"`
}

func sortEpisodes(q *orm.Query) (*orm.Query, error) {
	return q.Order("episode_number ASC"), nil
}
