package catalog

import (
	"strings"

	"github.com/cinebox-io/web-catalog/models"
)

// CollectStorageKeys gathers every storage key referenced by the content
// tree: poster, backdrop and trailer on the content row, the movie file
// for movies, and video plus still for each episode of a tv show. The
// content must have been loaded with its details.
func CollectStorageKeys(c *models.Content) []string {
	var keys []string
	add := func(k *string) {
		if k != nil && *k != "" {
			keys = append(keys, *k)
		}
	}
	add(c.PosterKey)
	add(c.BackdropKey)
	add(c.TrailerKey)
	if c.Movie != nil {
		add(c.Movie.MovieFileKey)
	}
	if c.TvShow != nil {
		for _, s := range c.TvShow.Seasons {
			for _, e := range s.Episodes {
				add(e.VideoFileKey)
				add(e.StillKey)
			}
		}
	}
	return keys
}

// SplitGenres turns the comma-separated genre string from upload forms
// into a trimmed, de-duplicated set. The result is never nil so the
// genre column is written as an empty array rather than NULL.
func SplitGenres(s string) []string {
	genres := []string{}
	seen := make(map[string]bool)
	for _, g := range strings.Split(s, ",") {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		genres = append(genres, g)
	}
	return genres
}
