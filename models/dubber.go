package models

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type Dubber struct {
	tableName struct{} `pg:"dubber"`

	DubberID uuid.UUID `pg:"dubber_id,pk,type:uuid,default:uuid_generate_v4()"`
	Name     string    `pg:"name"`
}

// GetOrCreateDubber resolves a dubber by case-insensitive name match,
// creating a new row when no match exists. Accepts orm.DB so it can run
// inside content mutation transactions.
func GetOrCreateDubber(ctx context.Context, db orm.DB, name string) (*Dubber, error) {
	d := &Dubber{}
	err := db.ModelContext(ctx, d).
		Where("lower(name) = lower(?)", name).
		Limit(1).
		Select()
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, pg.ErrNoRows) {
		return nil, errors.Wrap(err, "failed to fetch dubber")
	}
	d.Name = name
	_, err = db.ModelContext(ctx, d).Insert()
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert dubber")
	}
	return d, nil
}

func GetDubbers(ctx context.Context, db *pg.DB) ([]*Dubber, error) {
	var dubbers []*Dubber
	err := db.Model(&dubbers).
		Context(ctx).
		Order("name ASC").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch dubbers")
	}
	return dubbers, nil
}
