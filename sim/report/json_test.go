package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Fields(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, twoOrderRun(t), "run-1"))

	var got ResultsJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, int64(7), got.Seed)
	assert.Equal(t, 2, got.OrdersComplete)
	assert.Equal(t, []float64{10, 20}, got.DepartureTimes)
	require.Len(t, got.Stations, 1)
	assert.Equal(t, []float64{0, 5}, got.Stations[0].Waits)
	require.Len(t, got.Orders, 2)
	assert.Equal(t, "Order-1", got.Orders[0].ID)
}

func TestWriteJSON_EmptyRun_EmptyArrays(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteJSON(&buf, emptyRun(t), ""))

	assert.Contains(t, buf.String(), `"orders": []`)
	assert.NotContains(t, buf.String(), "run_id")
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	require.NoError(t, SaveJSON(path, twoOrderRun(t), "abc"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run_id": "abc"`)
}
