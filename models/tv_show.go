package models

import (
	uuid "github.com/satori/go.uuid"
)

type TvShow struct {
	tableName struct{} `pg:"tv_show"`

	ContentID uuid.UUID `pg:"content_id,pk,type:uuid"`

	Content *Content  `pg:"rel:has-one,fk:content_id"`
	Seasons []*Season `pg:"rel:has-many,fk:tv_show_id"`
}
