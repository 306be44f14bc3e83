package ledger_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/adapters/ledger"
	"go.trai.ch/vlr/internal/core/domain"
)

func record(fp string, outcome domain.OutcomeKind) domain.VerificationRecord {
	return domain.VerificationRecord{
		Fingerprint:   fp,
		ManifestPath:  "/mnt/disc/Checksums",
		DataRoot:      "/mnt/disc",
		JobID:         "job-1",
		Outcome:       outcome,
		VerifiedBytes: 10,
		TotalBytes:    10,
		Timestamp:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := ledger.NewStore(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put(record("abc", domain.OutcomeSucceeded)))

	got, err := store.Get("abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.OutcomeSucceeded, got.Outcome)
	assert.True(t, got.Covers("/mnt/disc"))
	assert.False(t, got.Covers("/mnt/other"))
}

func TestStore_GetMissing(t *testing.T) {
	store, err := ledger.NewStore(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, err)

	got, err := store.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "ledger.json")

	store1, err := ledger.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store1.Put(record("abc", domain.OutcomeFailed)))
	require.NoError(t, store1.Put(record("abc", domain.OutcomeSucceeded)))

	store2, err := ledger.NewStore(path)
	require.NoError(t, err)

	got, err := store2.Get("abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.OutcomeSucceeded, got.Outcome)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), got.Timestamp.UTC())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := ledger.NewStore(path)
	require.Error(t, err)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := ledger.NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())
}
