package checkins

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/mindful/internal/client/models"
	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/dmitrijs2005/mindful/internal/kv"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func sample(id, user string, mood models.Mood, s models.Stressor, ts int64) models.CheckIn {
	return models.CheckIn{ID: id, UserID: user, Mood: mood, Stressor: s, Note: "n-" + id, Timestamp: ts}
}

func newSQLiteStore(t *testing.T) kv.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return kv.NewSQLite(db)
}

func TestKVRepository_All_Empty(t *testing.T) {
	r := NewKVRepository(kv.NewMemory(), "mindful_")

	list, err := r.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestKVRepository_Append_KeepsInsertionOrder(t *testing.T) {
	for name, store := range map[string]func(t *testing.T) kv.Store{
		"memory": func(*testing.T) kv.Store { return kv.NewMemory() },
		"sqlite": newSQLiteStore,
	} {
		t.Run(name, func(t *testing.T) {
			r := NewKVRepository(store(t), "mindful_")
			ctx := context.Background()

			want := []models.CheckIn{
				sample("a", "u1", models.MoodGood, models.StressorWork, 300),
				sample("b", "u2", models.MoodBad, models.StressorMoney, 100),
				sample("c", "u1", models.MoodOkay, models.StressorOther, 200),
			}
			for _, c := range want {
				require.NoError(t, r.Append(ctx, c))
			}

			got, err := r.All(ctx)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestKVRepository_StoredLayout(t *testing.T) {
	store := kv.NewMemory()
	r := NewKVRepository(store, "mindful_")
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, sample("a", "u1", models.MoodGreat, models.StressorHealth, 1700000000000)))

	raw, err := store.Get(ctx, "mindful_data")
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"id":"a","userId":"u1","mood":5,"stressor":"Health","note":"n-a","timestamp":1700000000000}]`,
		string(raw))
}

type failingStore struct {
	kv.Store
	err error
}

func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }

func TestKVRepository_All_StoreError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := NewKVRepository(failingStore{Store: kv.NewMemory(), err: boom}, "mindful_").All(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, common.ErrorInternal)
	assert.NotErrorIs(t, err, ErrCorrupt)
}

func TestKVRepository_Corrupt(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "mindful_data", []byte(`{"oops":true}`)))
	r := NewKVRepository(store, "mindful_")

	_, err := r.All(ctx)
	require.ErrorIs(t, err, ErrCorrupt)

	err = r.Append(ctx, sample("a", "u1", models.MoodGood, models.StressorWork, 1))
	require.ErrorIs(t, err, ErrCorrupt)

	_, err = r.SeedIfEmpty(ctx, ScopeGlobal, "u1", []models.CheckIn{sample("s", "u1", models.MoodBad, models.StressorExams, 1)})
	require.ErrorIs(t, err, ErrCorrupt)

	raw, err := store.Get(ctx, "mindful_data")
	require.NoError(t, err)
	assert.Equal(t, `{"oops":true}`, string(raw), "corrupt data must not be overwritten")
}

func TestKVRepository_SeedIfEmpty_Global(t *testing.T) {
	r := NewKVRepository(kv.NewMemory(), "mindful_")
	ctx := context.Background()
	seeds := []models.CheckIn{
		sample("s1", "u1", models.MoodBad, models.StressorExams, 1),
		sample("s2", "u1", models.MoodGood, models.StressorRelationships, 2),
	}

	ok, err := r.SeedIfEmpty(ctx, ScopeGlobal, "u1", seeds)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.SeedIfEmpty(ctx, ScopeGlobal, "u2", []models.CheckIn{sample("s3", "u2", models.MoodOkay, models.StressorWork, 3)})
	require.NoError(t, err)
	assert.False(t, ok, "store already holds records of another user")

	got, err := r.All(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestKVRepository_SeedIfEmpty_User(t *testing.T) {
	r := NewKVRepository(kv.NewMemory(), "mindful_")
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, sample("a", "u1", models.MoodGood, models.StressorWork, 1)))

	ok, err := r.SeedIfEmpty(ctx, ScopeUser, "u1", []models.CheckIn{sample("s1", "u1", models.MoodBad, models.StressorExams, 2)})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.SeedIfEmpty(ctx, ScopeUser, "u2", []models.CheckIn{sample("s2", "u2", models.MoodBad, models.StressorExams, 2)})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s2", got[1].ID)
}

func TestKVRepository_SeedIfEmpty_EmptyArrayCountsAsEmpty(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "mindful_data", []byte(`[]`)))

	ok, err := NewKVRepository(store, "mindful_").SeedIfEmpty(ctx, ScopeGlobal, "u1",
		[]models.CheckIn{sample("s1", "u1", models.MoodBad, models.StressorExams, 1)})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestKVRepository_SeedIfEmpty_NoSamples(t *testing.T) {
	ok, err := NewKVRepository(kv.NewMemory(), "mindful_").SeedIfEmpty(context.Background(), ScopeGlobal, "u1", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseSeedScope(t *testing.T) {
	tests := []struct {
		in      string
		want    SeedScope
		wantErr bool
	}{
		{"", ScopeGlobal, false},
		{"global", ScopeGlobal, false},
		{" User ", ScopeUser, false},
		{"device", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSeedScope(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, common.ErrorValidation, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
