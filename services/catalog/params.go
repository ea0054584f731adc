package catalog

import (
	"net/url"
	"strconv"
	"strings"

	uuid "github.com/satori/go.uuid"

	"github.com/cinebox-io/web-catalog/models"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

type SortField string

const (
	SortFieldTitle         SortField = "title"
	SortFieldReleaseYear   SortField = "releaseYear"
	SortFieldDownloadCount SortField = "downloadCount"
	SortFieldUploadDate    SortField = "uploadDate"
)

// Column returns the order-by column for the sort field. Sort columns are
// always taken from this fixed mapping, never from request input.
func (s SortField) Column() string {
	switch s {
	case SortFieldTitle:
		return "title"
	case SortFieldReleaseYear:
		return "release_year"
	case SortFieldDownloadCount:
		return "download_count"
	case SortFieldUploadDate:
		return "upload_date"
	default:
		return "upload_date"
	}
}

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

type ListParams struct {
	Genres      []string
	Dubbers     []uuid.UUID
	ContentType models.ContentType
	Query       string
	Limit       int
	Offset      int
	SortBy      SortField
	SortOrder   SortOrder
}

// ParseListParams maps raw query-string values onto listing parameters.
// Malformed numbers and unknown enum values fall back to defaults, they
// never produce an error.
func ParseListParams(v url.Values) ListParams {
	p := ListParams{
		Limit:     DefaultLimit,
		Offset:    DefaultOffset,
		SortBy:    SortFieldUploadDate,
		SortOrder: SortOrderDesc,
	}
	for _, g := range v["genre"] {
		g = strings.TrimSpace(g)
		if g != "" {
			p.Genres = append(p.Genres, g)
		}
	}
	for _, d := range v["dubbers"] {
		id, err := uuid.FromString(strings.TrimSpace(d))
		if err != nil {
			continue
		}
		p.Dubbers = append(p.Dubbers, id)
	}
	switch models.ContentType(v.Get("contentType")) {
	case models.ContentTypeMovie:
		p.ContentType = models.ContentTypeMovie
	case models.ContentTypeTv:
		p.ContentType = models.ContentTypeTv
	}
	p.Query = strings.TrimSpace(v.Get("q"))
	if l, err := strconv.Atoi(v.Get("limit")); err == nil && l > 0 {
		p.Limit = l
	}
	if o, err := strconv.Atoi(v.Get("offset")); err == nil && o > 0 {
		p.Offset = o
	}
	switch SortField(v.Get("sortBy")) {
	case SortFieldTitle:
		p.SortBy = SortFieldTitle
	case SortFieldReleaseYear:
		p.SortBy = SortFieldReleaseYear
	case SortFieldDownloadCount:
		p.SortBy = SortFieldDownloadCount
	case SortFieldUploadDate:
		p.SortBy = SortFieldUploadDate
	}
	if SortOrder(v.Get("sortOrder")) == SortOrderAsc {
		p.SortOrder = SortOrderAsc
	}
	return p
}
