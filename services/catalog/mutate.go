package catalog

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/cinebox-io/web-catalog/models"
)

type MovieData struct {
	Title           string
	Description     string
	Genre           string
	ReleaseYear     *int16
	Status          models.ContentStatus
	PosterKey       *string
	BackdropKey     *string
	TrailerKey      *string
	DubberName      string
	UploaderID      *uuid.UUID
	DurationMinutes *int
	MovieFileKey    *string
	FileSizeMb      *float64
}

type TvShowData struct {
	Title       string
	Description string
	Genre       string
	ReleaseYear *int16
	Status      models.ContentStatus
	PosterKey   *string
	BackdropKey *string
	TrailerKey  *string
	DubberName  string
	UploaderID  *uuid.UUID
	Seasons     []SeasonInput
}

type SeasonData struct {
	TvShowID     uuid.UUID
	SeasonNumber int
	Title        string
}

type EpisodeData struct {
	SeasonID        uuid.UUID
	EpisodeNumber   int
	Title           string
	VideoFileKey    *string
	StillKey        *string
	DurationMinutes *int
}

// MovieUpdate carries a partial update. Nil fields are left untouched.
type MovieUpdate struct {
	Title           *string
	Description     *string
	Genre           *string
	ReleaseYear     *int16
	Status          *models.ContentStatus
	PosterKey       *string
	BackdropKey     *string
	TrailerKey      *string
	IsActive        *bool
	Dubber          DubberRef
	DurationMinutes *int
	MovieFileKey    *string
	FileSizeMb      *float64
}

type TvShowUpdate struct {
	Title       *string
	Description *string
	Genre       *string
	ReleaseYear *int16
	Status      *models.ContentStatus
	PosterKey   *string
	BackdropKey *string
	TrailerKey  *string
	IsActive    *bool
	Dubber      DubberRef
	Seasons     []SeasonInput
}

// CreateMovie inserts the content row and its movie child inside one
// transaction. The dubber name is resolved case-insensitively, creating
// the dubber when it does not exist yet.
func CreateMovie(ctx context.Context, db *pg.DB, data MovieData) (*models.Content, error) {
	c := &models.Content{
		Title:       data.Title,
		Description: data.Description,
		Genre:       SplitGenres(data.Genre),
		ReleaseYear: data.ReleaseYear,
		PosterKey:   data.PosterKey,
		BackdropKey: data.BackdropKey,
		TrailerKey:  data.TrailerKey,
		ContentType: models.ContentTypeMovie,
		Status:      models.ContentStatusCompleted,
		UploaderID:  data.UploaderID,
		IsActive:    true,
	}
	if data.Status != "" {
		c.Status = data.Status
	}
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if data.DubberName != "" {
			d, err := models.GetOrCreateDubber(ctx, tx, data.DubberName)
			if err != nil {
				return err
			}
			c.DubberID = &d.DubberID
		}
		_, err := tx.ModelContext(ctx, c).Insert()
		if err != nil {
			return errors.Wrap(err, "failed to insert content")
		}
		m := &models.Movie{
			ContentID:       c.ContentID,
			DurationMinutes: data.DurationMinutes,
			MovieFileKey:    data.MovieFileKey,
			FileSizeMb:      data.FileSizeMb,
		}
		_, err = tx.ModelContext(ctx, m).Insert()
		if err != nil {
			return errors.Wrap(err, "failed to insert movie")
		}
		c.Movie = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateTvShow inserts the content row, the tv show child and every
// supplied season with its episodes inside one transaction.
func CreateTvShow(ctx context.Context, db *pg.DB, data TvShowData) (*models.Content, error) {
	c := &models.Content{
		Title:       data.Title,
		Description: data.Description,
		Genre:       SplitGenres(data.Genre),
		ReleaseYear: data.ReleaseYear,
		PosterKey:   data.PosterKey,
		BackdropKey: data.BackdropKey,
		TrailerKey:  data.TrailerKey,
		ContentType: models.ContentTypeTv,
		Status:      models.ContentStatusOngoing,
		UploaderID:  data.UploaderID,
		IsActive:    true,
	}
	if data.Status != "" {
		c.Status = data.Status
	}
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if data.DubberName != "" {
			d, err := models.GetOrCreateDubber(ctx, tx, data.DubberName)
			if err != nil {
				return err
			}
			c.DubberID = &d.DubberID
		}
		_, err := tx.ModelContext(ctx, c).Insert()
		if err != nil {
			return errors.Wrap(err, "failed to insert content")
		}
		show := &models.TvShow{ContentID: c.ContentID}
		_, err = tx.ModelContext(ctx, show).Insert()
		if err != nil {
			return errors.Wrap(err, "failed to insert tv show")
		}
		for _, in := range data.Seasons {
			s, err := insertSeason(ctx, tx, show.ContentID, in)
			if err != nil {
				return err
			}
			show.Seasons = append(show.Seasons, s)
		}
		c.TvShow = show
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateSeason inserts a single season row for an existing tv show.
func CreateSeason(ctx context.Context, db *pg.DB, data SeasonData) (*models.Season, error) {
	s := &models.Season{
		TvShowID:     data.TvShowID,
		SeasonNumber: data.SeasonNumber,
		Title:        data.Title,
	}
	_, err := db.Model(s).Context(ctx).Insert()
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert season")
	}
	return s, nil
}

// CreateEpisode inserts a single episode row after verifying that the
// target season exists.
func CreateEpisode(ctx context.Context, db *pg.DB, data EpisodeData) (*models.Episode, error) {
	season, err := models.GetSeasonByID(ctx, db, data.SeasonID)
	if err != nil {
		return nil, err
	}
	if season == nil {
		return nil, ErrSeasonNotFound
	}
	e := &models.Episode{
		SeasonID:        data.SeasonID,
		EpisodeNumber:   data.EpisodeNumber,
		Title:           data.Title,
		VideoFileKey:    data.VideoFileKey,
		StillKey:        data.StillKey,
		DurationMinutes: data.DurationMinutes,
	}
	_, err = db.Model(e).Context(ctx).Insert()
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert episode")
	}
	return e, nil
}

// UpdateMovie applies a partial update to the content row and its movie
// child inside one transaction.
func UpdateMovie(ctx context.Context, db *pg.DB, contentID uuid.UUID, data MovieUpdate) (*models.Content, error) {
	var c *models.Content
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		var err error
		c, err = lockContent(ctx, tx, contentID, models.ContentTypeMovie)
		if err != nil {
			return err
		}
		applyContentUpdate(c, contentUpdate{
			Title:       data.Title,
			Description: data.Description,
			Genre:       data.Genre,
			ReleaseYear: data.ReleaseYear,
			Status:      data.Status,
			PosterKey:   data.PosterKey,
			BackdropKey: data.BackdropKey,
			TrailerKey:  data.TrailerKey,
			IsActive:    data.IsActive,
		})
		c.DubberID, err = data.Dubber.apply(ctx, tx, c.DubberID)
		if err != nil {
			return err
		}
		_, err = tx.ModelContext(ctx, c).WherePK().Update()
		if err != nil {
			return errors.Wrap(err, "failed to update content")
		}
		m := &models.Movie{ContentID: contentID}
		err = tx.ModelContext(ctx, m).WherePK().Select()
		if err != nil {
			return errors.Wrap(err, "failed to fetch movie")
		}
		if data.DurationMinutes != nil {
			m.DurationMinutes = data.DurationMinutes
		}
		if data.MovieFileKey != nil {
			m.MovieFileKey = data.MovieFileKey
		}
		if data.FileSizeMb != nil {
			m.FileSizeMb = data.FileSizeMb
		}
		_, err = tx.ModelContext(ctx, m).WherePK().Update()
		if err != nil {
			return errors.Wrap(err, "failed to update movie")
		}
		c.Movie = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateTvShow applies a partial update to the content row and reconciles
// the incoming season list against the stored seasons inside one
// transaction: matched seasons are updated and their episodes diffed by
// number, new seasons are inserted, seasons absent from the incoming set
// are deleted (episodes cascade).
func UpdateTvShow(ctx context.Context, db *pg.DB, contentID uuid.UUID, data TvShowUpdate) (*models.Content, error) {
	var c *models.Content
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		var err error
		c, err = lockContent(ctx, tx, contentID, models.ContentTypeTv)
		if err != nil {
			return err
		}
		applyContentUpdate(c, contentUpdate{
			Title:       data.Title,
			Description: data.Description,
			Genre:       data.Genre,
			ReleaseYear: data.ReleaseYear,
			Status:      data.Status,
			PosterKey:   data.PosterKey,
			BackdropKey: data.BackdropKey,
			TrailerKey:  data.TrailerKey,
			IsActive:    data.IsActive,
		})
		c.DubberID, err = data.Dubber.apply(ctx, tx, c.DubberID)
		if err != nil {
			return err
		}
		_, err = tx.ModelContext(ctx, c).WherePK().Update()
		if err != nil {
			return errors.Wrap(err, "failed to update content")
		}
		if data.Seasons == nil {
			return nil
		}
		existing, err := models.GetSeasonsForShow(ctx, tx, contentID)
		if err != nil {
			return err
		}
		return applySeasonDiff(ctx, tx, contentID, DiffSeasons(existing, data.Seasons))
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteContent removes the content row and everything below it. Storage
// keys referenced by the tree are deleted first; the database cascade
// removes the child rows once the content row goes.
func DeleteContent(ctx context.Context, db *pg.DB, store KeyDeleter, contentID uuid.UUID) error {
	if store == nil {
		return ErrStorageNotConfigured
	}
	c, err := models.GetContentWithDetails(ctx, db, contentID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrContentNotFound
	}
	err = store.DeleteKeys(ctx, CollectStorageKeys(c))
	if err != nil {
		return errors.Wrap(err, "failed to delete storage keys")
	}
	_, err = db.Model(c).Context(ctx).WherePK().Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete content")
	}
	return nil
}

// KeyDeleter removes objects from the storage bucket. Deletions run in
// parallel and the first failure is reported.
type KeyDeleter interface {
	DeleteKeys(ctx context.Context, keys []string) error
}

type contentUpdate struct {
	Title       *string
	Description *string
	Genre       *string
	ReleaseYear *int16
	Status      *models.ContentStatus
	PosterKey   *string
	BackdropKey *string
	TrailerKey  *string
	IsActive    *bool
}

func applyContentUpdate(c *models.Content, u contentUpdate) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Genre != nil {
		c.Genre = SplitGenres(*u.Genre)
	}
	if u.ReleaseYear != nil {
		c.ReleaseYear = u.ReleaseYear
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.PosterKey != nil {
		c.PosterKey = u.PosterKey
	}
	if u.BackdropKey != nil {
		c.BackdropKey = u.BackdropKey
	}
	if u.TrailerKey != nil {
		c.TrailerKey = u.TrailerKey
	}
	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}
}

func lockContent(ctx context.Context, tx *pg.Tx, contentID uuid.UUID, want models.ContentType) (*models.Content, error) {
	var c models.Content
	err := tx.ModelContext(ctx, &c).
		Where("content.content_id = ?", contentID).
		For("UPDATE").
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch content for update")
	}
	if c.ContentType != want {
		return nil, ErrContentNotFound
	}
	return &c, nil
}

func insertSeason(ctx context.Context, tx *pg.Tx, tvShowID uuid.UUID, in SeasonInput) (*models.Season, error) {
	s := &models.Season{
		TvShowID:     tvShowID,
		SeasonNumber: in.Number,
		Title:        in.Title,
	}
	_, err := tx.ModelContext(ctx, s).Insert()
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert season")
	}
	for _, ein := range in.Episodes {
		e := &models.Episode{
			SeasonID:        s.SeasonID,
			EpisodeNumber:   ein.Number,
			Title:           ein.Title,
			VideoFileKey:    ein.VideoFileKey,
			StillKey:        ein.StillKey,
			DurationMinutes: ein.DurationMinutes,
		}
		_, err = tx.ModelContext(ctx, e).Insert()
		if err != nil {
			return nil, errors.Wrap(err, "failed to insert episode")
		}
		s.Episodes = append(s.Episodes, e)
	}
	return s, nil
}

func applySeasonDiff(ctx context.Context, tx *pg.Tx, tvShowID uuid.UUID, diff SeasonDiff) error {
	for _, in := range diff.Create {
		_, err := insertSeason(ctx, tx, tvShowID, in)
		if err != nil {
			return err
		}
	}
	for _, up := range diff.Update {
		s := up.Existing
		s.Title = up.Incoming.Title
		_, err := tx.ModelContext(ctx, s).WherePK().Column("title").Update()
		if err != nil {
			return errors.Wrap(err, "failed to update season")
		}
		err = applyEpisodeDiff(ctx, tx, s.SeasonID, up.Episodes)
		if err != nil {
			return err
		}
	}
	for _, s := range diff.Delete {
		_, err := tx.ModelContext(ctx, s).WherePK().Delete()
		if err != nil {
			return errors.Wrap(err, "failed to delete season")
		}
	}
	return nil
}

func applyEpisodeDiff(ctx context.Context, tx *pg.Tx, seasonID uuid.UUID, diff EpisodeDiff) error {
	for _, in := range diff.Create {
		e := &models.Episode{
			SeasonID:        seasonID,
			EpisodeNumber:   in.Number,
			Title:           in.Title,
			VideoFileKey:    in.VideoFileKey,
			StillKey:        in.StillKey,
			DurationMinutes: in.DurationMinutes,
		}
		_, err := tx.ModelContext(ctx, e).Insert()
		if err != nil {
			return errors.Wrap(err, "failed to insert episode")
		}
	}
	for _, up := range diff.Update {
		e := up.Existing
		e.Title = up.Incoming.Title
		e.VideoFileKey = up.Incoming.VideoFileKey
		e.StillKey = up.Incoming.StillKey
		e.DurationMinutes = up.Incoming.DurationMinutes
		_, err := tx.ModelContext(ctx, e).WherePK().Update()
		if err != nil {
			return errors.Wrap(err, "failed to update episode")
		}
	}
	for _, e := range diff.Delete {
		_, err := tx.ModelContext(ctx, e).WherePK().Delete()
		if err != nil {
			return errors.Wrap(err, "failed to delete episode")
		}
	}
	return nil
}
