package catalog

import (
	"github.com/cinebox-io/web-catalog/models"
)

type EpisodeInput struct {
	Number          int      `json:"number"`
	Title           string   `json:"title"`
	VideoFileKey    *string  `json:"video_file_key"`
	StillKey        *string  `json:"still_key"`
	DurationMinutes *int     `json:"duration_minutes"`
}

type SeasonInput struct {
	Number   int            `json:"number"`
	Title    string         `json:"title"`
	Episodes []EpisodeInput `json:"episodes"`
}

type EpisodeUpdate struct {
	Existing *models.Episode
	Incoming EpisodeInput
}

type EpisodeDiff struct {
	Create []EpisodeInput
	Update []EpisodeUpdate
	Delete []*models.Episode
}

type SeasonUpdate struct {
	Existing *models.Season
	Incoming SeasonInput
	Episodes EpisodeDiff
}

type SeasonDiff struct {
	Create []SeasonInput
	Update []SeasonUpdate
	Delete []*models.Season
}

// DiffSeasons matches incoming seasons against existing rows by season
// number. Matched seasons get their title updated and their episodes
// diffed, unmatched incoming seasons are created, existing seasons absent
// from the incoming set are deleted. Applying the resulting diff is
// idempotent: a second application of the same input is a no-op diff with
// empty create and delete sets.
func DiffSeasons(existing []*models.Season, incoming []SeasonInput) SeasonDiff {
	var d SeasonDiff
	byNumber := make(map[int]*models.Season, len(existing))
	for _, s := range existing {
		byNumber[s.SeasonNumber] = s
	}
	seen := make(map[int]bool, len(incoming))
	for _, in := range incoming {
		seen[in.Number] = true
		if cur, ok := byNumber[in.Number]; ok {
			d.Update = append(d.Update, SeasonUpdate{
				Existing: cur,
				Incoming: in,
				Episodes: DiffEpisodes(cur.Episodes, in.Episodes),
			})
		} else {
			d.Create = append(d.Create, in)
		}
	}
	for _, s := range existing {
		if !seen[s.SeasonNumber] {
			d.Delete = append(d.Delete, s)
		}
	}
	return d
}

// DiffEpisodes matches incoming episodes against existing rows by episode
// number, same semantics as DiffSeasons.
func DiffEpisodes(existing []*models.Episode, incoming []EpisodeInput) EpisodeDiff {
	var d EpisodeDiff
	byNumber := make(map[int]*models.Episode, len(existing))
	for _, e := range existing {
		byNumber[e.EpisodeNumber] = e
	}
	seen := make(map[int]bool, len(incoming))
	for _, in := range incoming {
		seen[in.Number] = true
		if cur, ok := byNumber[in.Number]; ok {
			d.Update = append(d.Update, EpisodeUpdate{Existing: cur, Incoming: in})
		} else {
			d.Create = append(d.Create, in)
		}
	}
	for _, e := range existing {
		if !seen[e.EpisodeNumber] {
			d.Delete = append(d.Delete, e)
		}
	}
	return d
}
