package catalog

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cinebox-io/web-catalog/models"
)

func strPtr(s string) *string {
	return &s
}

func TestCollectStorageKeys(t *testing.T) {
	t.Run("movie with all presentation keys", func(t *testing.T) {
		c := &models.Content{
			ContentType: models.ContentTypeMovie,
			PosterKey:   strPtr("posters/a"),
			BackdropKey: strPtr("backdrops/a"),
			TrailerKey:  strPtr("trailers/a"),
			Movie: &models.Movie{
				MovieFileKey: strPtr("movies/a.mp4"),
			},
		}

		keys := CollectStorageKeys(c)

		assert.ElementsMatch(t, []string{
			"posters/a", "backdrops/a", "trailers/a", "movies/a.mp4",
		}, keys)
	})

	t.Run("tv show with 2 seasons of 3 episodes yields 6 video keys", func(t *testing.T) {
		show := &models.TvShow{}
		for s := 1; s <= 2; s++ {
			season := &models.Season{SeasonID: uuid.NewV4(), SeasonNumber: s}
			for e := 1; e <= 3; e++ {
				season.Episodes = append(season.Episodes, &models.Episode{
					EpisodeNumber: e,
					VideoFileKey:  strPtr("episodes/video"),
				})
			}
			show.Seasons = append(show.Seasons, season)
		}
		c := &models.Content{
			ContentType: models.ContentTypeTv,
			TvShow:      show,
		}

		keys := CollectStorageKeys(c)

		assert.Len(t, keys, 6)
	})

	t.Run("episode stills are included", func(t *testing.T) {
		c := &models.Content{
			ContentType: models.ContentTypeTv,
			PosterKey:   strPtr("posters/b"),
			TvShow: &models.TvShow{
				Seasons: []*models.Season{
					{
						Episodes: []*models.Episode{
							{VideoFileKey: strPtr("e1.mp4"), StillKey: strPtr("e1.jpg")},
						},
					},
				},
			},
		}

		keys := CollectStorageKeys(c)

		assert.ElementsMatch(t, []string{"posters/b", "e1.mp4", "e1.jpg"}, keys)
	})

	t.Run("nil and empty keys are skipped", func(t *testing.T) {
		c := &models.Content{
			ContentType: models.ContentTypeMovie,
			PosterKey:   strPtr(""),
			Movie:       &models.Movie{},
		}

		assert.Empty(t, CollectStorageKeys(c))
	})
}

func TestSplitGenres(t *testing.T) {
	t.Run("splits and trims", func(t *testing.T) {
		assert.Equal(t, []string{"Action", "Drama"}, SplitGenres(" Action , Drama "))
	})

	t.Run("drops empties and duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"Action"}, SplitGenres("Action,,Action, "))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SplitGenres(""))
	})
}
