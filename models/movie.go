package models

import (
	uuid "github.com/satori/go.uuid"
)

type Movie struct {
	tableName struct{} `pg:"movie"`

	ContentID       uuid.UUID `pg:"content_id,pk,type:uuid"`
	DurationMinutes *int      `pg:"duration_minutes"`
	MovieFileKey    *string   `pg:"movie_file_key"`
	FileSizeMb      *float64  `pg:"file_size_mb"`

	Content *Content `pg:"rel:has-one,fk:content_id"`
}
