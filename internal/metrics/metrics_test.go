package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculationOutcomes(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Calculation("calories", true)
	m.Calculation("calories", false)
	m.Calculation("calories", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("calories", "updated")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues("calories", "invalid_input")))
}

func TestSeparateRegistries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ScreenView("shop", "bot")

	// второй набор метрик на своём реестре не конфликтует с первым
	other := New(prometheus.NewRegistry())
	assert.Equal(t, 0.0, testutil.ToFloat64(other.ScreenViews.WithLabelValues("shop", "bot")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
