package catalog

import (
	"context"

	"github.com/go-pg/pg/v10/orm"
	uuid "github.com/satori/go.uuid"

	"github.com/cinebox-io/web-catalog/models"
)

type dubberOp int

const (
	dubberNoChange dubberOp = iota
	dubberClear
	dubberSet
)

// DubberRef is a tagged update instruction for the dubber reference on
// content. An update payload distinguishes three states: the field was
// absent (keep the current reference), the field was an empty string
// (clear the reference) or the field carried a name (resolve or create
// a dubber with that name).
type DubberRef struct {
	op   dubberOp
	name string
}

func DubberNoChange() DubberRef {
	return DubberRef{op: dubberNoChange}
}

func DubberClear() DubberRef {
	return DubberRef{op: dubberClear}
}

func DubberSetTo(name string) DubberRef {
	return DubberRef{op: dubberSet, name: name}
}

// DubberRefFromForm maps an optional form/JSON string field onto the
// instruction: nil keeps, "" clears, anything else sets.
func DubberRefFromForm(name *string) DubberRef {
	if name == nil {
		return DubberNoChange()
	}
	if *name == "" {
		return DubberClear()
	}
	return DubberSetTo(*name)
}

func (r DubberRef) IsNoChange() bool {
	return r.op == dubberNoChange
}

func (r DubberRef) IsClear() bool {
	return r.op == dubberClear
}

func (r DubberRef) Name() (string, bool) {
	return r.name, r.op == dubberSet
}

// apply resolves the instruction against the current dubber id, creating
// the dubber row when a new name is set.
func (r DubberRef) apply(ctx context.Context, db orm.DB, current *uuid.UUID) (*uuid.UUID, error) {
	switch r.op {
	case dubberClear:
		return nil, nil
	case dubberSet:
		d, err := models.GetOrCreateDubber(ctx, db, r.name)
		if err != nil {
			return nil, err
		}
		return &d.DubberID, nil
	default:
		return current, nil
	}
}
