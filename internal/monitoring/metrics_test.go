package monitoring

import (
	"testing"
	"time"

	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "test")

	m.RecordToggle("load")
	m.RecordToggle("load")
	m.RecordToggle("unload")
	m.RecordActivation(types.KindWall)
	m.RecordDeactivation(types.KindWall)
	m.RecordRefusal(types.KindBanner)
	m.SetActive(types.KindSmallScenery, 12)
	m.SetCatalogGroups(4)
	m.RecordScan(64, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Toggles.WithLabelValues("load")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Toggles.WithLabelValues("unload")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Activations.WithLabelValues("wall")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Deactivations.WithLabelValues("wall")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Refusals.WithLabelValues("banner")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.ActiveEntries.WithLabelValues("small_scenery")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.CatalogGroups))
	assert.Equal(t, 64.0, testutil.ToFloat64(m.ScanCells))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordToggle("load")
		m.RecordActivation(types.KindWall)
		m.RecordDeactivation(types.KindWall)
		m.RecordRefusal(types.KindWall)
		m.SetActive(types.KindWall, 1)
		m.SetCatalogGroups(1)
		m.RecordScan(1, time.Second)
	})
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry(), "a")
		NewMetrics(prometheus.NewRegistry(), "a")
	})
}
