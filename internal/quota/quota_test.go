package quota

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "testforge.db"), limit)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCheckUnderLimit(t *testing.T) {
	s := openStore(t, 3)

	require.NoError(t, s.Check())
	require.NoError(t, s.Record(Run{RunID: "r1", Source: "a.xlsx", Framework: "selenium", Project: "demo", TestCount: 2}))
	require.NoError(t, s.Record(Run{RunID: "r2", Source: "a.xlsx", Framework: "selenium", Project: "demo", TestCount: 2}))
	assert.NoError(t, s.Check())
}

func TestCheckLimitReached(t *testing.T) {
	s := openStore(t, 1)

	require.NoError(t, s.Record(Run{RunID: "r1", Source: "a.xlsx", Framework: "selenium", Project: "demo"}))
	err := s.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimitReached)
}

func TestCheckIgnoresPreviousDays(t *testing.T) {
	s := openStore(t, 1)

	yesterday := time.Now().Add(-24 * time.Hour)
	require.NoError(t, s.Record(Run{RunID: "old", Source: "a.xlsx", Framework: "selenium", Project: "demo", CreatedAt: yesterday}))

	assert.NoError(t, s.Check())
}

func TestZeroLimitDisablesGate(t *testing.T) {
	s := openStore(t, 0)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(Run{RunID: "r", Source: "a.xlsx", Framework: "selenium", Project: "demo"}))
	}
	assert.NoError(t, s.Check())
}

func TestRecent(t *testing.T) {
	s := openStore(t, 0)

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, s.Record(Run{
			RunID:     id,
			Source:    "a.xlsx",
			Framework: "selenium",
			Project:   "demo",
			TestCount: i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	runs, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third", runs[0].RunID)
	assert.Equal(t, "second", runs[1].RunID)
	assert.Equal(t, 3, runs[0].TestCount)
}

func TestUnlimited(t *testing.T) {
	var svc Service = Unlimited{}
	assert.NoError(t, svc.Check())
	assert.NoError(t, svc.Record(Run{RunID: "r"}))
}
