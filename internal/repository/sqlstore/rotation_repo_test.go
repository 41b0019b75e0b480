package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/champion-rotations/internal/domain"
	"github.com/dom/champion-rotations/internal/repository/sqlstore"
	"github.com/dom/champion-rotations/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationRepository_LatestRotation_Empty(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlstore.NewRotationRepository(testDB.Connector)

	_, rows, err := repo.LatestRotation(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoData)
	assert.Nil(t, rows)
}

func TestRotationRepository_LatestRotation_OnlyLatestDate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlstore.NewRotationRepository(testDB.Connector)

	champs := testutil.SeedChampions(t, testDB.DB, "Ahri", "Garen", "Zed", "Lux")

	testutil.NewRotationBuilder().
		WithDate(testutil.Date(2024, time.January, 2)).
		WithVersion("13.24.1").
		WithChampions(champs[0], champs[1]).
		Build(t, testDB.DB)
	testutil.NewRotationBuilder().
		WithDate(testutil.Date(2024, time.January, 9)).
		WithVersion("14.1.1").
		WithChampions(champs[2], champs[3]).
		Build(t, testDB.DB)

	latest, rows, err := repo.LatestRotation(context.Background())
	require.NoError(t, err)

	assert.True(t, testutil.Date(2024, time.January, 9).Equal(latest), "latest = %v", latest)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.True(t, latest.Equal(row.RotationDate))
		require.NotNil(t, row.GameVersion)
		assert.Equal(t, "14.1.1", *row.GameVersion)
	}
	assert.Equal(t, "Lux", rows[0].ChampionName)
	assert.Equal(t, "Zed", rows[1].ChampionName)
}

func TestRotationRepository_LatestRotation_Ordering(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlstore.NewRotationRepository(testDB.Connector)

	champs := testutil.SeedChampions(t, testDB.DB, "Zed", "Annie", "Nami", "Brand", "Ashe")
	date := testutil.Date(2024, time.February, 6)

	testutil.NewRotationBuilder().
		WithDate(date).
		AsNewbie(10).
		WithChampions(champs[3], champs[4]).
		Build(t, testDB.DB)
	testutil.NewRotationBuilder().
		WithDate(date).
		WithChampions(champs[0], champs[1], champs[2]).
		Build(t, testDB.DB)

	_, rows, err := repo.LatestRotation(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 5)

	var got []string
	for _, row := range rows {
		got = append(got, row.ChampionName)
	}
	assert.Equal(t, []string{"Annie", "Nami", "Zed", "Ashe", "Brand"}, got)

	assert.False(t, rows[0].NewbieRotation)
	assert.True(t, rows[4].NewbieRotation)
	require.NotNil(t, rows[4].MaxNewbieLevel)
	assert.Equal(t, 10, *rows[4].MaxNewbieLevel)
	assert.Nil(t, rows[0].MaxNewbieLevel)
	assert.Equal(t, "Annie.png", rows[0].ImageFull)
	assert.Equal(t, "Annie", rows[0].ChampionKey)
	assert.Equal(t, "the Test Champion", rows[0].Title)
}

func TestRotationRepository_LatestRotation_NoChampions(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlstore.NewRotationRepository(testDB.Connector)

	testutil.NewRotationBuilder().Build(t, testDB.DB)

	_, rows, err := repo.LatestRotation(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRotationRepository_History(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlstore.NewRotationRepository(testDB.Connector)
	ctx := context.Background()

	entries, err := repo.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	champs := testutil.SeedChampions(t, testDB.DB, "Ahri", "Garen", "Zed", "Lux", "Annie", "Ashe")
	older := testutil.Date(2024, time.January, 2)
	newer := testutil.Date(2024, time.January, 9)

	testutil.NewRotationBuilder().
		WithDate(newer).
		AsNewbie(10).
		WithChampions(champs[3], champs[4]).
		Build(t, testDB.DB)
	testutil.NewRotationBuilder().
		WithDate(newer).
		WithChampions(champs[0], champs[1], champs[2]).
		Build(t, testDB.DB)
	testutil.NewRotationBuilder().
		WithDate(older).
		WithoutVersion().
		WithChampions(champs[5]).
		Build(t, testDB.DB)
	// A rotation without champions has no history entry
	testutil.NewRotationBuilder().
		WithDate(testutil.Date(2023, time.December, 26)).
		Build(t, testDB.DB)

	entries, err = repo.History(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.True(t, newer.Equal(entries[0].RotationDate))
	assert.False(t, entries[0].NewbieRotation)
	assert.EqualValues(t, 3, entries[0].ChampionCount)
	require.NotNil(t, entries[0].GameVersion)
	assert.Equal(t, "14.1.1", *entries[0].GameVersion)

	assert.True(t, newer.Equal(entries[1].RotationDate))
	assert.True(t, entries[1].NewbieRotation)
	assert.EqualValues(t, 2, entries[1].ChampionCount)

	assert.True(t, older.Equal(entries[2].RotationDate))
	assert.Nil(t, entries[2].GameVersion)
	assert.EqualValues(t, 1, entries[2].ChampionCount)
}

func TestRotationRepository_ConnectionFailure(t *testing.T) {
	repo := sqlstore.NewRotationRepository(testutil.UnreachableConnector(t))
	ctx := context.Background()

	_, _, err := repo.LatestRotation(ctx)
	assert.ErrorIs(t, err, domain.ErrConnection)

	_, err = repo.History(ctx)
	assert.ErrorIs(t, err, domain.ErrConnection)
}

func TestRotationRepository_QueryFailure(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := sqlstore.NewRotationRepository(testDB.Connector)

	require.NoError(t, testDB.DB.Exec("DROP TABLE rotation_champions").Error)

	_, err := repo.History(context.Background())
	assert.ErrorIs(t, err, domain.ErrQuery)
	assert.NotErrorIs(t, err, domain.ErrConnection)
}
