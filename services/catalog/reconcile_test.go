package catalog

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebox-io/web-catalog/models"
)

func makeSeason(number int, title string, episodes ...int) *models.Season {
	s := &models.Season{
		SeasonID:     uuid.NewV4(),
		SeasonNumber: number,
		Title:        title,
	}
	for _, n := range episodes {
		s.Episodes = append(s.Episodes, &models.Episode{
			EpisodeID:     uuid.NewV4(),
			SeasonID:      s.SeasonID,
			EpisodeNumber: n,
		})
	}
	return s
}

func seasonInputsFrom(seasons []*models.Season) []SeasonInput {
	var in []SeasonInput
	for _, s := range seasons {
		si := SeasonInput{Number: s.SeasonNumber, Title: s.Title}
		for _, e := range s.Episodes {
			si.Episodes = append(si.Episodes, EpisodeInput{
				Number: e.EpisodeNumber,
				Title:  e.Title,
			})
		}
		in = append(in, si)
	}
	return in
}

func TestDiffSeasons(t *testing.T) {
	t.Run("empty existing creates everything", func(t *testing.T) {
		incoming := []SeasonInput{
			{Number: 1, Title: "Season 1", Episodes: []EpisodeInput{{Number: 1}, {Number: 2}}},
			{Number: 2, Title: "Season 2"},
		}

		d := DiffSeasons(nil, incoming)

		assert.Len(t, d.Create, 2)
		assert.Empty(t, d.Update)
		assert.Empty(t, d.Delete)
	})

	t.Run("matched by number goes to update", func(t *testing.T) {
		existing := []*models.Season{makeSeason(1, "old title", 1, 2)}
		incoming := []SeasonInput{
			{Number: 1, Title: "new title", Episodes: []EpisodeInput{{Number: 1}, {Number: 2}}},
		}

		d := DiffSeasons(existing, incoming)

		require.Len(t, d.Update, 1)
		assert.Empty(t, d.Create)
		assert.Empty(t, d.Delete)
		assert.Equal(t, existing[0], d.Update[0].Existing)
		assert.Equal(t, "new title", d.Update[0].Incoming.Title)
	})

	t.Run("omitted season is deleted", func(t *testing.T) {
		existing := []*models.Season{
			makeSeason(1, "s1", 1, 2, 3),
			makeSeason(2, "s2", 1, 2, 3),
		}
		incoming := []SeasonInput{{Number: 1, Title: "s1"}}

		d := DiffSeasons(existing, incoming)

		require.Len(t, d.Delete, 1)
		assert.Equal(t, 2, d.Delete[0].SeasonNumber)
	})

	t.Run("reapplying the same input is a no-op diff", func(t *testing.T) {
		existing := []*models.Season{
			makeSeason(1, "s1", 1, 2),
			makeSeason(2, "s2", 1),
		}
		incoming := seasonInputsFrom(existing)

		d := DiffSeasons(existing, incoming)

		assert.Empty(t, d.Create)
		assert.Empty(t, d.Delete)
		require.Len(t, d.Update, 2)
		for _, up := range d.Update {
			assert.Empty(t, up.Episodes.Create)
			assert.Empty(t, up.Episodes.Delete)
		}
	})
}

func TestDiffEpisodes(t *testing.T) {
	t.Run("mixed create update delete", func(t *testing.T) {
		existing := []*models.Episode{
			{EpisodeID: uuid.NewV4(), EpisodeNumber: 1, Title: "one"},
			{EpisodeID: uuid.NewV4(), EpisodeNumber: 2, Title: "two"},
		}
		incoming := []EpisodeInput{
			{Number: 2, Title: "two updated"},
			{Number: 3, Title: "three"},
		}

		d := DiffEpisodes(existing, incoming)

		require.Len(t, d.Create, 1)
		assert.Equal(t, 3, d.Create[0].Number)
		require.Len(t, d.Update, 1)
		assert.Equal(t, 2, d.Update[0].Existing.EpisodeNumber)
		assert.Equal(t, "two updated", d.Update[0].Incoming.Title)
		require.Len(t, d.Delete, 1)
		assert.Equal(t, 1, d.Delete[0].EpisodeNumber)
	})

	t.Run("empty incoming deletes all", func(t *testing.T) {
		existing := []*models.Episode{
			{EpisodeID: uuid.NewV4(), EpisodeNumber: 1},
			{EpisodeID: uuid.NewV4(), EpisodeNumber: 2},
		}

		d := DiffEpisodes(existing, nil)

		assert.Empty(t, d.Create)
		assert.Empty(t, d.Update)
		assert.Len(t, d.Delete, 2)
	})
}
