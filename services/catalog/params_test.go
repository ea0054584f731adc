package catalog

import (
	"net/url"
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cinebox-io/web-catalog/models"
)

func TestParseListParams(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := ParseListParams(url.Values{})

		assert.Equal(t, DefaultLimit, p.Limit)
		assert.Equal(t, DefaultOffset, p.Offset)
		assert.Equal(t, SortFieldUploadDate, p.SortBy)
		assert.Equal(t, SortOrderDesc, p.SortOrder)
		assert.Empty(t, p.Genres)
		assert.Empty(t, p.Dubbers)
		assert.Empty(t, p.ContentType)
	})

	t.Run("repeatable genre and dubbers", func(t *testing.T) {
		d1 := uuid.NewV4()
		d2 := uuid.NewV4()
		v := url.Values{
			"genre":   []string{"Action", " Drama "},
			"dubbers": []string{d1.String(), d2.String()},
		}

		p := ParseListParams(v)

		assert.Equal(t, []string{"Action", "Drama"}, p.Genres)
		assert.Equal(t, []uuid.UUID{d1, d2}, p.Dubbers)
	})

	t.Run("invalid dubber id is skipped", func(t *testing.T) {
		v := url.Values{"dubbers": []string{"not-a-uuid"}}

		p := ParseListParams(v)

		assert.Empty(t, p.Dubbers)
	})

	t.Run("malformed numbers fall back to defaults", func(t *testing.T) {
		v := url.Values{
			"limit":  []string{"abc"},
			"offset": []string{"-5"},
		}

		p := ParseListParams(v)

		assert.Equal(t, DefaultLimit, p.Limit)
		assert.Equal(t, DefaultOffset, p.Offset)
	})

	t.Run("unknown sort falls back to upload date", func(t *testing.T) {
		v := url.Values{
			"sortBy":    []string{"rating"},
			"sortOrder": []string{"sideways"},
		}

		p := ParseListParams(v)

		assert.Equal(t, SortFieldUploadDate, p.SortBy)
		assert.Equal(t, SortOrderDesc, p.SortOrder)
	})

	t.Run("recognized values are applied", func(t *testing.T) {
		v := url.Values{
			"contentType": []string{"movie"},
			"q":           []string{" matrix "},
			"limit":       []string{"25"},
			"offset":      []string{"50"},
			"sortBy":      []string{"downloadCount"},
			"sortOrder":   []string{"asc"},
		}

		p := ParseListParams(v)

		assert.Equal(t, models.ContentTypeMovie, p.ContentType)
		assert.Equal(t, "matrix", p.Query)
		assert.Equal(t, 25, p.Limit)
		assert.Equal(t, 50, p.Offset)
		assert.Equal(t, SortFieldDownloadCount, p.SortBy)
		assert.Equal(t, SortOrderAsc, p.SortOrder)
	})

	t.Run("unknown content type is ignored", func(t *testing.T) {
		v := url.Values{"contentType": []string{"podcast"}}

		p := ParseListParams(v)

		assert.Empty(t, p.ContentType)
	})
}

func TestSortFieldColumn(t *testing.T) {
	assert.Equal(t, "title", SortFieldTitle.Column())
	assert.Equal(t, "release_year", SortFieldReleaseYear.Column())
	assert.Equal(t, "download_count", SortFieldDownloadCount.Column())
	assert.Equal(t, "upload_date", SortFieldUploadDate.Column())
	assert.Equal(t, "upload_date", SortField("bogus").Column())
}
