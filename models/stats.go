package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type DashboardStats struct {
	Movies    int `json:"movies"`
	TvShows   int `json:"tv_shows"`
	Users     int `json:"users"`
	Downloads int `json:"downloads"`
}

type UserStats struct {
	Downloads int `json:"downloads"`
	Bookmarks int `json:"bookmarks"`
	Reviews   int `json:"reviews"`
}

func GetDashboardStats(ctx context.Context, db *pg.DB) (*DashboardStats, error) {
	st := &DashboardStats{}
	var err error

	st.Movies, err = db.Model((*Movie)(nil)).Context(ctx).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count movies")
	}
	st.TvShows, err = db.Model((*TvShow)(nil)).Context(ctx).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count tv shows")
	}
	st.Users, err = db.Model((*User)(nil)).Context(ctx).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	st.Downloads, err = db.Model((*Download)(nil)).Context(ctx).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count downloads")
	}
	return st, nil
}

func GetUserStats(ctx context.Context, db *pg.DB, userID uuid.UUID) (*UserStats, error) {
	st := &UserStats{}
	var err error

	st.Downloads, err = db.Model((*Download)(nil)).
		Context(ctx).
		Where("user_id = ?", userID).
		Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count user downloads")
	}
	st.Bookmarks, err = db.Model((*Bookmark)(nil)).
		Context(ctx).
		Where("user_id = ?", userID).
		Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count user bookmarks")
	}
	st.Reviews, err = db.Model((*Review)(nil)).
		Context(ctx).
		Where("user_id = ?", userID).
		Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count user reviews")
	}
	return st, nil
}
