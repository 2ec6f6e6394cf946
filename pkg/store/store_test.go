package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/lifesim/pkg/life"
	"github.com/nikogura/lifesim/pkg/rank"
	"github.com/nikogura/lifesim/pkg/scorer"
)

func openStore(t *testing.T) (s *Store) {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lives.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func entry(city string, lifeRank, startRank rank.Rank, lifeScore float64) (e Entry) {
	e = Entry{
		Record: life.Record{
			Region:         "tokyo",
			Gender:         life.Female,
			BirthCity:      city,
			EducationLevel: life.LevelBachelor,
			DeathAge:       84,
		},
		Scores: scorer.Scores{
			Life:  scorer.Breakdown{Rubric: scorer.RubricLifeOutcome, TotalScore: lifeScore, Rank: lifeRank},
			Start: scorer.Breakdown{Rubric: scorer.RubricStartingConditions, TotalScore: 50, Rank: startRank},
		},
	}
	return e
}

func TestSaveAndReadRun(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	seed := int64(42)

	entries := []Entry{
		entry("Minato", rank.S, rank.B, 75),
		entry("Adachi", rank.B, rank.B, 50),
		entry("Nerima", rank.B, rank.C, 48),
	}

	run, err := s.SaveRun(ctx, "tokyo", &seed, entries)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 3, run.Count)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	require.NotNil(t, runs[0].Seed)
	assert.Equal(t, seed, *runs[0].Seed)

	lives, err := s.Lives(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, lives, 3)
	for i, l := range lives {
		assert.Equal(t, i, l.Seq)
		assert.Equal(t, entries[i].Record.BirthCity, l.Record.BirthCity)
		assert.Equal(t, entries[i].Scores.Life.Rank, l.Scores.Life.Rank)
	}
	assert.NotEqual(t, lives[0].ID, lives[1].ID)
}

func TestRunWithoutSeed(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	_, err := s.SaveRun(ctx, "hokkaido", nil, []Entry{entry("Sapporo", rank.A, rank.A, 65)})
	require.NoError(t, err)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Nil(t, runs[0].Seed)
}

func TestRankDistribution(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	run, err := s.SaveRun(ctx, "tokyo", nil, []Entry{
		entry("Minato", rank.S, rank.B, 75),
		entry("Adachi", rank.B, rank.B, 50),
		entry("Nerima", rank.B, rank.C, 48),
	})
	require.NoError(t, err)

	// a second run must not leak into the first one's counts
	_, err = s.SaveRun(ctx, "tokyo", nil, []Entry{entry("Ota", rank.D, rank.D, 5)})
	require.NoError(t, err)

	counts, err := s.RankDistribution(ctx, run.ID, scorer.RubricLifeOutcome)
	require.NoError(t, err)
	assert.Equal(t, map[rank.Rank]int{rank.S: 1, rank.B: 2}, counts)

	counts, err = s.RankDistribution(ctx, run.ID, scorer.RubricStartingConditions)
	require.NoError(t, err)
	assert.Equal(t, map[rank.Rank]int{rank.B: 2, rank.C: 1}, counts)

	_, err = s.RankDistribution(ctx, run.ID, scorer.Rubric("vibes"))
	assert.Error(t, err)
}

func TestReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lives.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.SaveRun(ctx, "tokyo", nil, []Entry{entry("Minato", rank.S, rank.B, 75)})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
