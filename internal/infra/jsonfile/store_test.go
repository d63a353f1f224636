package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openparish/sacristy/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestRegistryRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	d, err := s.AddDiocese(ctx, domain.Diocese{Name: "Holy Cross"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.ID)

	p, err := s.AddParish(ctx, domain.Parish{ParishName: "St Peter", DioceseID: d.ID})
	require.NoError(t, err)

	got, err := s.GetParish(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = s.GetParish(ctx, 404)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBaptismRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	in := domain.Baptism{
		ParishID:          1,
		Source:            domain.SourceInternal,
		BaptismName:       "Jane",
		Surname:           "Doe",
		Gender:            "FEMALE",
		DateOfBirth:       "2020-01-15",
		FathersName:       "John",
		MothersName:       "Mary",
		SponsorNames:      "Ann",
		OfficiatingPriest: "Fr. X",
	}
	created, err := s.AddBaptism(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetBaptism(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestBaptismIDsNeverReused(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddBaptism(ctx, domain.Baptism{ParishID: 1, BaptismName: "A", Surname: "B"})
	require.NoError(t, err)
	second, err := s.AddBaptism(ctx, domain.Baptism{ParishID: 1, BaptismName: "C", Surname: "D"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestUpdateBaptismNoteHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b, err := s.AddBaptism(ctx, domain.Baptism{ParishID: 1, BaptismName: "Jane", Surname: "Doe"})
	require.NoError(t, err)

	_, err = s.UpdateBaptismNote(ctx, b.ID, "first")
	require.NoError(t, err)
	updated, err := s.UpdateBaptismNote(ctx, b.ID, "second")
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Note)

	notes, err := s.BaptismNotes(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Content)
	assert.Equal(t, "second", notes[1].Content)

	_, err = s.UpdateBaptismNote(ctx, 404, "x")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCommunionsScopedThroughBaptism(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	inParish, err := s.AddBaptism(ctx, domain.Baptism{ParishID: 1, BaptismName: "Jane", Surname: "Doe"})
	require.NoError(t, err)
	elsewhere, err := s.AddBaptism(ctx, domain.Baptism{ParishID: 2, BaptismName: "John", Surname: "Smith"})
	require.NoError(t, err)

	mine, err := s.AddCommunion(ctx, domain.Communion{BaptismID: inParish.ID, CommunionDate: "2024-06-01"})
	require.NoError(t, err)
	_, err = s.AddCommunion(ctx, domain.Communion{BaptismID: elsewhere.ID, CommunionDate: "2024-06-01"})
	require.NoError(t, err)

	listed, err := s.ListCommunions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, mine.ID, listed[0].ID)
}

func TestMarriageWithPartiesAndWitnesses(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m, err := s.AddMarriage(ctx,
		domain.Marriage{ParishID: 1, MarriageDate: "2024-09-14", OfficiatingPriest: "Fr. X", Parish: "St Peter"},
		[]domain.MarriageParty{
			{Role: domain.RoleGroom, FullName: "John Smith"},
			{Role: domain.RoleBride, FullName: "Jane Doe"},
		},
		[]domain.MarriageWitness{
			{FullName: "Witness One", SortOrder: 0},
			{FullName: "Witness Two", SortOrder: 1},
		},
	)
	require.NoError(t, err)

	parties, err := s.MarriageParties(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, parties, 2)
	for _, p := range parties {
		assert.Equal(t, m.ID, p.MarriageID)
		assert.NotZero(t, p.ID)
	}

	witnesses, err := s.MarriageWitnesses(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, witnesses, 2)
}

func TestWriteIsAtomicPerFile(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.AddDiocese(ctx, domain.Diocese{Name: "Holy Cross"})
	require.NoError(t, err)

	// no stray tmp file may survive a completed write
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()))
	}
}

func TestStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s1, err := New(dir)
	require.NoError(t, err)
	created, err := s1.AddBaptism(ctx, domain.Baptism{ParishID: 1, BaptismName: "Jane", Surname: "Doe"})
	require.NoError(t, err)

	s2, err := New(dir)
	require.NoError(t, err)
	got, err := s2.GetBaptism(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}
