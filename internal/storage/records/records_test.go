package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/streamora/internal/storage/kv"
)

type entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestLoad_MissingKeyReturnsZeroValue(t *testing.T) {
	store := kv.NewMemory()

	list, err := Load[[]entry](context.Background(), store, "missing")
	require.NoError(t, err)
	assert.Nil(t, list)

	m, err := Load[map[string]entry](context.Background(), store, "missing")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLoad_CorruptJSONReturnsZeroValueAndError(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set(context.Background(), "broken", []byte("{not json")))

	list, err := Load[[]entry](context.Background(), store, "broken")
	assert.Error(t, err)
	assert.Nil(t, list)
}

func TestStoreAndLoad_RoundTrip(t *testing.T) {
	store := kv.NewMemory()
	src := []entry{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}

	require.NoError(t, Store(context.Background(), store, "entries", src))

	got, err := Load[[]entry](context.Background(), store, "entries")
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestUpsertBy(t *testing.T) {
	tests := []struct {
		name   string
		list   []entry
		record entry
		want   []entry
	}{
		{
			name:   "insert prepends to empty list",
			list:   nil,
			record: entry{ID: "1", Name: "a"},
			want:   []entry{{ID: "1", Name: "a"}},
		},
		{
			name:   "insert prepends new record",
			list:   []entry{{ID: "1", Name: "a"}},
			record: entry{ID: "2", Name: "b"},
			want:   []entry{{ID: "2", Name: "b"}, {ID: "1", Name: "a"}},
		},
		{
			name:   "existing record replaced in place",
			list:   []entry{{ID: "2", Name: "b"}, {ID: "1", Name: "a"}},
			record: entry{ID: "1", Name: "updated"},
			want:   []entry{{ID: "2", Name: "b"}, {ID: "1", Name: "updated"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpsertBy(tt.list, func(e entry) bool { return e.ID == tt.record.ID }, tt.record)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeleteBy(t *testing.T) {
	list := []entry{{ID: "1"}, {ID: "2"}, {ID: "1"}, {ID: "3"}}
	got := DeleteBy(list, func(e entry) bool { return e.ID == "1" })
	assert.Equal(t, []entry{{ID: "2"}, {ID: "3"}}, got)
}

func TestFindBy(t *testing.T) {
	list := []entry{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}

	found := FindBy(list, func(e entry) bool { return e.ID == "2" })
	require.NotNil(t, found)
	assert.Equal(t, "b", found.Name)

	assert.Nil(t, FindBy(list, func(e entry) bool { return e.ID == "9" }))
}
