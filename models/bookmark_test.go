package models

import (
	"reflect"
	"testing"
	"time"

	"github.com/go-pg/pg/v10/orm"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkCompositeKey(t *testing.T) {
	table := orm.GetTable(reflect.TypeOf(Bookmark{}))

	require.Len(t, table.PKs, 2)
	assert.Equal(t, "user_id", table.PKs[0].SQLName)
	assert.Equal(t, "content_id", table.PKs[1].SQLName)
}

func TestBookmarkToggleInsertSuppressesConflict(t *testing.T) {
	b := &Bookmark{
		UserID:    uuid.NewV4(),
		ContentID: uuid.NewV4(),
		CreatedAt: time.Now(),
	}

	s := orm.NewInsertQuery(orm.NewQuery(nil, b).OnConflict("DO NOTHING")).String()

	assert.Contains(t, s, "ON CONFLICT DO NOTHING")
}
