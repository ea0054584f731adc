package models

import (
	"testing"

	"github.com/go-pg/pg/v10/orm"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
)

func TestContentUpdateKeepsEmptyValues(t *testing.T) {
	c := &Content{
		ContentID:   uuid.NewV4(),
		Title:       "Silent Running",
		Description: "",
		Genre:       []string{},
		ContentType: ContentTypeMovie,
		Status:      ContentStatusCompleted,
		IsActive:    true,
	}

	s := orm.NewUpdateQuery(orm.NewQuery(nil, c).WherePK(), false).String()

	assert.Contains(t, s, `"description" = ''`)
	assert.Contains(t, s, `"genre" = '{}'`)
	assert.NotContains(t, s, `"description" = NULL`)
	assert.NotContains(t, s, `"genre" = NULL`)
}

func TestContentUpdateKeepsEmptyTitle(t *testing.T) {
	c := &Content{
		ContentID:   uuid.NewV4(),
		Genre:       []string{"Drama"},
		ContentType: ContentTypeMovie,
		Status:      ContentStatusCompleted,
	}

	s := orm.NewUpdateQuery(orm.NewQuery(nil, c).WherePK(), false).String()

	assert.Contains(t, s, `"title" = ''`)
	assert.NotContains(t, s, `"title" = NULL`)
}

func TestSeasonTitleUpdateKeepsEmptyTitle(t *testing.T) {
	s := &Season{
		SeasonID:     uuid.NewV4(),
		TvShowID:     uuid.NewV4(),
		SeasonNumber: 1,
	}

	q := orm.NewUpdateQuery(orm.NewQuery(nil, s).WherePK().Column("title"), false).String()

	assert.Contains(t, q, `"title" = ''`)
	assert.NotContains(t, q, `"title" = NULL`)
}

func TestEpisodeUpdateKeepsEmptyTitle(t *testing.T) {
	e := &Episode{
		EpisodeID:     uuid.NewV4(),
		SeasonID:      uuid.NewV4(),
		EpisodeNumber: 1,
	}

	q := orm.NewUpdateQuery(orm.NewQuery(nil, e).WherePK(), false).String()

	assert.Contains(t, q, `"title" = ''`)
	assert.NotContains(t, q, `"title" = NULL`)
}
