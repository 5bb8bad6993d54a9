package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOrdersNewestFirst(t *testing.T) {
	email := &EmailEntry{ID: "e1", Type: KindEmail, CreatedAt: time.Unix(10, 0)}
	company := &CompanyEntry{ID: "c1", Type: KindCompany, CreatedAt: time.Unix(20, 0)}

	merged := Merge([]*EmailEntry{email}, []*CompanyEntry{company})
	require.Len(t, merged, 2)
	assert.Equal(t, "c1", merged[0].EntryID())
	assert.Equal(t, "e1", merged[1].EntryID())
}

func TestMergeTagsLegacyEmailEntries(t *testing.T) {
	legacy := &EmailEntry{ID: "old", CreatedAt: time.Unix(5, 0)} // no type written back then

	merged := Merge([]*EmailEntry{legacy}, nil)
	require.Len(t, merged, 1)
	assert.Equal(t, KindEmail, merged[0].(*EmailEntry).Type)
}

func TestMergeStableOnEqualTimestamps(t *testing.T) {
	at := time.Unix(42, 0)
	e1 := &EmailEntry{ID: "e1", Type: KindEmail, CreatedAt: at}
	e2 := &EmailEntry{ID: "e2", Type: KindEmail, CreatedAt: at}
	c1 := &CompanyEntry{ID: "c1", Type: KindCompany, CreatedAt: at}

	merged := Merge([]*EmailEntry{e1, e2}, []*CompanyEntry{c1})
	require.Len(t, merged, 3)
	assert.Equal(t, "e1", merged[0].EntryID())
	assert.Equal(t, "e2", merged[1].EntryID())
	assert.Equal(t, "c1", merged[2].EntryID())
}
