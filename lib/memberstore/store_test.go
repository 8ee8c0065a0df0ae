package memberstore

import (
	"context"
	"testing"

	"vistos-backend/lib/scrapers/bioguide"

	"github.com/stretchr/testify/require"
)

func setup(t testing.TB) Store {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestPutGet(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	record := bioguide.MemberRecord{
		BioguideID: "C000127",
		FirstName:  "Maria",
		LastName:   "Cantwell",
		BirthYear:  "1958",
		Terms: []bioguide.TermRecord{
			{CongressNumber: 115, StartYear: 2017, EndYear: 2019, Position: "senator", State: "WA", Party: "democrat"},
		},
	}
	require.NoError(t, store.Put(ctx, record))

	got, ok, err := store.Get(ctx, "C000127")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, record, got)

	_, ok, err = store.Get(ctx, "Z999999")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPutOverwrites(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	record := bioguide.MemberRecord{
		BioguideID: "A000001",
		FirstName:  "Old",
		LastName:   "Name",
		Terms:      []bioguide.TermRecord{{CongressNumber: 1}},
	}
	require.NoError(t, store.Put(ctx, record))

	record.FirstName = "New"
	require.NoError(t, store.PutAll(ctx, []bioguide.MemberRecord{record}))

	got, ok, err := store.Get(ctx, "A000001")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "New", got.FirstName)
}
