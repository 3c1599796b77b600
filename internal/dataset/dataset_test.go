package dataset_test

import (
	"errors"
	"testing"
	"time"

	"li-dashboard-service/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalizesValues(t *testing.T) {
	ds, err := dataset.New("t", []string{"a", "b", "c", "d"}, [][]any{
		{int32(7), []byte("bytes"), float32(1.5), true},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]any{{int64(7), "bytes", 1.5, "true"}}, ds.Values())
}

func TestNew_RejectsBadShapes(t *testing.T) {
	_, err := dataset.New("t", []string{"a", "a"}, nil)
	assert.Error(t, err)

	_, err = dataset.New("t", []string{"a"}, [][]any{{1, 2}})
	assert.Error(t, err)

	_, err = dataset.New("t", []string{"a"}, [][]any{{struct{}{}}})
	assert.Error(t, err)
}

func TestFromRecords_MissingKeysAreNull(t *testing.T) {
	ds, err := dataset.FromRecords("t", []string{"a", "b"}, []dataset.Row{{"a": "x"}})
	require.NoError(t, err)

	v, err := ds.Value(0, "b")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDrop_RemovesColumns(t *testing.T) {
	ds := processes(t)

	out, err := ds.Drop("processid")
	require.NoError(t, err)

	assert.Equal(t, []string{"processtype", "licensetype", "jobtype"}, out.Columns())
	assert.True(t, ds.HasColumn("processid"))

	_, err = ds.Drop("nope")
	assert.True(t, errors.Is(err, dataset.ErrUnknownField))
}

func TestRename(t *testing.T) {
	ds := processes(t)

	out, err := ds.Rename(map[string]string{"licensetype": "License Type"})
	require.NoError(t, err)
	assert.Equal(t, []string{"processid", "processtype", "License Type", "jobtype"}, out.Columns())
	assert.Equal(t, ds.Values(), out.Values())

	_, err = ds.Rename(map[string]string{"licensetype": "jobtype"})
	assert.Error(t, err)
}

func TestMapColumn_LeavesSourceUntouched(t *testing.T) {
	ds := processes(t)

	out, err := ds.MapColumn("processid", func(v any) any {
		return dataset.FormatValue(v) + "!"
	})
	require.NoError(t, err)

	v, err := out.Value(0, "processid")
	require.NoError(t, err)
	assert.Equal(t, "1!", v)

	orig, err := ds.Value(0, "processid")
	require.NoError(t, err)
	assert.Equal(t, int64(1), orig)
}

func TestRecords_AreCopies(t *testing.T) {
	ds := processes(t)

	recs := ds.Records()
	recs[0]["processtype"] = "changed"

	v, err := ds.Value(0, "processtype")
	require.NoError(t, err)
	assert.Equal(t, "Application", v)
}

func TestLastUpdated(t *testing.T) {
	at := time.Date(2019, 2, 1, 6, 30, 0, 0, time.UTC)
	ds, err := dataset.New("last_ddl_time", []string{dataset.FreshnessColumn}, [][]any{{at}})
	require.NoError(t, err)

	got, ok, err := dataset.LastUpdated(ds)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, at.Equal(got))

	empty, err := dataset.New("last_ddl_time", []string{dataset.FreshnessColumn}, nil)
	require.NoError(t, err)
	_, ok, err = dataset.LastUpdated(empty)
	require.NoError(t, err)
	assert.False(t, ok)

	wrong, err := dataset.New("last_ddl_time", []string{"other"}, nil)
	require.NoError(t, err)
	_, _, err = dataset.LastUpdated(wrong)
	assert.True(t, errors.Is(err, dataset.ErrUnknownField))
}
