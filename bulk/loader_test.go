package bulk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/featrec/blob"
	"github.com/arloliu/featrec/errs"
	"github.com/arloliu/featrec/feature"
	"github.com/arloliu/featrec/record"
)

func writePartition(t *testing.T, dir, name, modelID string) string {
	t.Helper()

	rec := &record.Record{
		ModelID: modelID,
		Means: []feature.Entry{
			{Identity: feature.NewIdentity("country", "us"), Value: 2.5},
			{Identity: feature.NewIdentity("device", "mobile"), Value: -1.0},
		},
	}

	encoder, err := blob.NewRecordEncoder()
	require.NoError(t, err)
	data, err := encoder.Encode(rec)
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePartition(t, dir, "part-0000.bin", "model-a"),
		writePartition(t, dir, "part-0001.bin", "model-b"),
		writePartition(t, dir, "part-0002.bin", "model-c"),
	}

	loader, err := NewLoader()
	require.NoError(t, err)

	records, err := loader.Load(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, records, 3)

	for _, modelID := range []string{"model-a", "model-b", "model-c"} {
		rec, ok := records[modelID]
		require.True(t, ok, "missing record for %s", modelID)
		assert.Equal(t, modelID, rec.ModelID)
		assert.Len(t, rec.Means, 2)
	}
}

func TestLoad_SinglePartition(t *testing.T) {
	dir := t.TempDir()
	path := writePartition(t, dir, "part.bin", "solo")

	loader, err := NewLoader(WithConcurrency(1))
	require.NoError(t, err)

	records, err := loader.Load(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Contains(t, records, "solo")
}

func TestLoad_NoPaths(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), nil)
	require.ErrorIs(t, err, errs.ErrNoInputPaths)
}

func TestLoad_EmptyPath(t *testing.T) {
	dir := t.TempDir()
	path := writePartition(t, dir, "part.bin", "model-a")

	loader, err := NewLoader()
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), []string{path, ""})
	require.ErrorIs(t, err, errs.ErrEmptyInputPath)
}

func TestLoad_TooFewPartitions(t *testing.T) {
	dir := t.TempDir()
	path := writePartition(t, dir, "part.bin", "model-a")

	loader, err := NewLoader(WithMinPartitions(4))
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), []string{path})
	require.ErrorIs(t, err, errs.ErrTooFewPartitions)
}

func TestLoad_DuplicateModelID(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePartition(t, dir, "part-0000.bin", "model-a"),
		writePartition(t, dir, "part-0001.bin", "model-a"),
	}

	loader, err := NewLoader()
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), paths)
	require.ErrorIs(t, err, errs.ErrDuplicateModelID)
}

func TestLoad_MissingFile(t *testing.T) {
	loader, err := NewLoader()
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), []string{filepath.Join(t.TempDir(), "absent.bin")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CorruptedPartition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a container"), 0o644))

	loader, err := NewLoader()
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), []string{path})
	require.Error(t, err)
}

func TestLoad_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	path := writePartition(t, dir, "part.bin", "model-a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader, err := NewLoader()
	require.NoError(t, err)

	_, err = loader.Load(ctx, []string{path})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewLoader_AppliesOptions(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writePartition(t, dir, "part-0000.bin", "model-a"),
		writePartition(t, dir, "part-0001.bin", "model-b"),
	}

	loader, err := NewLoader(WithMinPartitions(2), WithConcurrency(2))
	require.NoError(t, err)

	records, err := loader.Load(context.Background(), paths)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = loader.Load(context.Background(), paths[:1])
	require.ErrorIs(t, err, errs.ErrTooFewPartitions)
}

func TestNewLoader_InvalidOptions(t *testing.T) {
	_, err := NewLoader(WithConcurrency(0))
	require.ErrorIs(t, err, errs.ErrInvalidConcurrency)

	_, err = NewLoader(WithMinPartitions(0))
	require.ErrorIs(t, err, errs.ErrTooFewPartitions)
}
