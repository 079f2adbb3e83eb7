package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuchen/hanzideck/internal/deck"
	"github.com/yuchen/hanzideck/internal/progress"
	"github.com/yuchen/hanzideck/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"app_state", "answers"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	// First run: no record yet, defaults apply.
	l, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Empty(t, l.PerLevel)

	l.PerLevel[vocab.LevelHSK1] = &deck.State{Order: []int{2, 0, 1}, Pos: 1}
	l.AddReview("k1")
	l.AddCustomCard(vocab.Card{Chinese: "猪", Pinyin: "zhū", English: "pig"})
	require.NoError(t, repo.Save(ctx, l))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.PerLevel[vocab.LevelHSK1])
	assert.Equal(t, []int{2, 0, 1}, got.PerLevel[vocab.LevelHSK1].Order)
	assert.Equal(t, 1, got.PerLevel[vocab.LevelHSK1].Pos)
	assert.True(t, got.InReview("k1"))
	assert.Len(t, got.CustomCards, 1)
}

func TestSaveReplacesWholeBundle(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	l := progress.NewLedger()
	l.AddReview("a")
	require.NoError(t, repo.Save(ctx, l))

	l.RemoveReview("a")
	l.AddReview("b")
	require.NoError(t, repo.Save(ctx, l))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got.InReview("a"))
	assert.True(t, got.InReview("b"))
}

func TestLoadToleratesCorruptPayload(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().Exec(
		`INSERT INTO app_state (id, payload, updated_at) VALUES (1, '{broken', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	got, err := s.StateRepo().Load(ctx)
	require.NoError(t, err, "corrupt payload must not fail the restore")
	require.NotNil(t, got)
	assert.Empty(t, got.PerLevel)
	assert.Empty(t, got.CustomCards)
}

func TestAnswerLogAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	log := s.AnswerLog()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := log.Append(ctx, AnswerRecord{
			SessionID: "sess-1",
			Level:     "hsk1",
			Mode:      "pinyin",
			CardKey:   "爱\x1fài",
			Given:     "ai",
			Correct:   i != 1,
			ElapsedMs: 1200 + i,
		})
		require.NoError(t, err)
	}

	recs, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
	for _, rec := range recs {
		assert.NotEmpty(t, rec.ID, "ids are assigned on append")
		assert.Equal(t, "sess-1", rec.SessionID)
	}
}

func TestAnswerLogSummaries(t *testing.T) {
	s := openTestStore(t)
	log := s.AnswerLog()
	ctx := context.Background()

	seed := []struct {
		level, mode string
		correct     bool
	}{
		{"hsk1", "english", true},
		{"hsk1", "english", false},
		{"hsk1", "pinyin", true},
		{"all", "english", true},
	}
	for _, a := range seed {
		require.NoError(t, log.Append(ctx, AnswerRecord{
			SessionID: "sess-2", Level: a.level, Mode: a.mode,
			CardKey: "k", Given: "g", Correct: a.correct,
		}))
	}

	sums, err := log.Summaries(ctx)
	require.NoError(t, err)

	byKey := make(map[string]LevelModeSummary)
	for _, s := range sums {
		byKey[s.Level+"/"+s.Mode] = s
	}
	assert.Equal(t, 1, byKey["hsk1/english"].Correct)
	assert.Equal(t, 2, byKey["hsk1/english"].Total)
	assert.Equal(t, 1, byKey["hsk1/pinyin"].Total)
	assert.Equal(t, 1, byKey["all/english"].Total)
}
