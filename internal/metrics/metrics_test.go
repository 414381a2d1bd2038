package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAndHandler(t *testing.T) {
	before := testutil.ToFloat64(dispositionsProcessed.WithLabelValues("disposed"))
	DispositionProcessed("disposed")
	assert.Equal(t, before+1, testutil.ToFloat64(dispositionsProcessed.WithLabelValues("disposed")))

	ConflictCounter{}.WriteConflict("stockItems")
	assert.GreaterOrEqual(t, testutil.ToFloat64(writeConflicts.WithLabelValues("stockItems")), 1.0)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fleet_used_part_dispositions_total")
}
