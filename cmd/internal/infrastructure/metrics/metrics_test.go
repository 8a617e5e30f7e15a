package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteMetrics(t *testing.T) {
	m, err := NewNoteMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	m.Observe(OperationCreate, StatusSuccess)
	m.Observe(OperationCreate, StatusSuccess)
	m.Observe(OperationCreate, StatusInvalid)
	m.ObserveListSize(3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.operationsTotal.WithLabelValues(OperationCreate, StatusSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.operationsTotal.WithLabelValues(OperationCreate, StatusInvalid)), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "stickynotes_note_operations_total")
}

func TestNoteMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewNoteMetrics(registry)
	require.NoError(t, err)

	_, err = NewNoteMetrics(registry)
	assert.Error(t, err)
}

func TestNoteMetrics_NilIsNoop(t *testing.T) {
	var m *NoteMetrics
	assert.NotPanics(t, func() {
		m.Observe(OperationDelete, StatusSuccess)
		m.ObserveListSize(1)
	})
}
