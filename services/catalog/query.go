package catalog

import (
	"context"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/pkg/errors"

	"github.com/cinebox-io/web-catalog/models"
)

// GetContent returns the filtered, sorted and paginated listing of active
// content. Genre filtering uses set overlap, so content tagged with any of
// the requested genres matches.
func GetContent(ctx context.Context, db *pg.DB, p ListParams) ([]*models.Content, error) {
	var list []*models.Content
	q := db.Model(&list).
		Context(ctx).
		Where("content.is_active = ?", true).
		Relation("Dubber")
	if len(p.Genres) > 0 {
		q = q.Where("content.genre && ?", pg.Array(p.Genres))
	}
	if len(p.Dubbers) > 0 {
		q = q.Where("content.dubber_id IN (?)", pg.In(p.Dubbers))
	}
	if p.ContentType != "" {
		q = q.Where("content.content_type = ?", p.ContentType)
	}
	if p.Query != "" {
		pattern := "%" + p.Query + "%"
		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			return q.
				WhereOr("content.title ILIKE ?", pattern).
				WhereOr("content.description ILIKE ?", pattern), nil
		})
	}
	q = q.OrderExpr("content." + p.SortBy.Column() + " " + sortDirection(p.SortOrder)).
		Limit(p.Limit).
		Offset(p.Offset)
	err := q.Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch content list")
	}
	return list, nil
}

func sortDirection(o SortOrder) string {
	if o == SortOrderAsc {
		return "ASC"
	}
	return "DESC"
}

// GetPopularContent is the listing with a fixed download-count sort,
// optionally restricted to one content type.
func GetPopularContent(ctx context.Context, db *pg.DB, limit int, contentType models.ContentType) ([]*models.Content, error) {
	return getRankedContent(ctx, db, limit, contentType, "content.download_count DESC")
}

// GetRecentContent is the listing with a fixed upload-date sort.
func GetRecentContent(ctx context.Context, db *pg.DB, limit int, contentType models.ContentType) ([]*models.Content, error) {
	return getRankedContent(ctx, db, limit, contentType, "content.upload_date DESC")
}

func getRankedContent(ctx context.Context, db *pg.DB, limit int, contentType models.ContentType, order string) ([]*models.Content, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var list []*models.Content
	q := db.Model(&list).
		Context(ctx).
		Where("content.is_active = ?", true)
	if contentType != "" {
		q = q.Where("content.content_type = ?", contentType)
	}
	err := q.OrderExpr(order).Limit(limit).Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch ranked content")
	}
	return list, nil
}
