package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"access-stats/internal/models"
	"access-stats/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleReport() *models.Report {
	stats := models.NewStatisticsTable()
	entry := stats.Get("media/video.mp4")
	entry.Downloads = 2
	entry.Bandwidth = 2048
	entry.Dates.Add("2022-04-19")

	return &models.Report{
		ReportID:    "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		GeneratedAt: time.Date(2022, 4, 20, 12, 0, 0, 0, time.UTC),
		Stats:       stats,
	}
}

func TestReportStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	report := sampleReport()
	expectedKey := "reports/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	expectedJSON, _ := json.Marshal(report)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader) error {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return nil
		})

	err := store.Put(ctx, report)
	assert.NoError(t, err)
}

func TestReportStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	putError := errors.New("storage error")

	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any()).
		Return(putError)

	err := store.Put(ctx, sampleReport())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to put report")
	assert.Contains(t, err.Error(), "storage error")
}

func TestReportStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	expected := sampleReport()
	jsonData, _ := json.Marshal(expected)
	readCloser := &closableReader{Reader: bytes.NewReader(jsonData)}

	mockFileStorage.EXPECT().
		Get(ctx, "reports/01ARZ3NDEKTSV4RRFFQ69G5FAV.json").
		Return(readCloser, nil)

	report, err := store.Get(ctx, expected.ReportID)
	require.NoError(t, err)
	assert.Equal(t, expected.ReportID, report.ReportID)
	assert.Equal(t, int64(2), report.Stats["media/video.mp4"].Downloads)
	assert.True(t, report.Stats["media/video.mp4"].Dates.Contains("2022-04-19"))
	assert.True(t, readCloser.closed, "ReadCloser should be closed")
}

func TestReportStore_Get_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	storageError := errors.New("storage error")

	mockFileStorage.EXPECT().
		Get(ctx, "reports/missing.json").
		Return(nil, storageError)

	report, err := store.Get(ctx, "missing")
	assert.Nil(t, report)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get report")
}

func TestReportStore_Get_UnmarshalError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	readCloser := io.NopCloser(bytes.NewReader([]byte(`{"invalid": json}`)))

	mockFileStorage.EXPECT().
		Get(ctx, "reports/bad.json").
		Return(readCloser, nil)

	report, err := store.Get(ctx, "bad")
	assert.Nil(t, report)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal report")
}

// closableReader is a ReadCloser that tracks if it was closed
type closableReader struct {
	io.Reader
	closed bool
}

func (r *closableReader) Close() error {
	r.closed = true
	return nil
}
