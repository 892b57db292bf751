package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SetupSentinel/internal/model"
)

func TestStopFromATR_Short(t *testing.T) {
	sug := StopFromATR(1.1000, model.DirectionShort, 0.0020, 1.5)
	assert.Equal(t, 1.1030, sug.Price)
	assert.Equal(t, 0.0030, sug.Distance)
	assert.Equal(t, model.StopSourceATR, sug.Source)
}

func TestStopFromATR_Long(t *testing.T) {
	sug := StopFromATR(1.1000, model.DirectionLong, 0.0020, 1.5)
	assert.Equal(t, 1.0970, sug.Price)
	assert.Equal(t, 0.0030, sug.Distance)
}

func TestStopDistance(t *testing.T) {
	assert.Equal(t, 0.0050, StopDistance(1.1000, 1.0950))
	assert.Equal(t, 0.0050, StopDistance(1.0950, 1.1000))
	assert.Equal(t, 0.0, StopDistance(1.1000, 1.1000))
}

func TestRMultiples_Long(t *testing.T) {
	tps := RMultiples(1.1000, 1.0950, model.DirectionLong, []float64{1.0, 2.0})
	require.Len(t, tps, 2)
	assert.Equal(t, model.TakeProfit{Multiple: 1.0, Price: 1.1050}, tps[0])
	assert.Equal(t, model.TakeProfit{Multiple: 2.0, Price: 1.1100}, tps[1])
}

func TestRMultiples_Short(t *testing.T) {
	tps := RMultiples(1.1000, 1.1050, model.DirectionShort, []float64{1.0, 1.5, 2.0})
	require.Len(t, tps, 3)
	assert.Equal(t, 1.0950, tps[0].Price)
	assert.Equal(t, 1.0925, tps[1].Price)
	assert.Equal(t, 1.0900, tps[2].Price)
}

func TestRMultiples_PreservesOrdering(t *testing.T) {
	tps := RMultiples(1.1000, 1.0950, model.DirectionLong, []float64{3.0, 1.0, 2.0})
	require.Len(t, tps, 3)
	assert.Equal(t, 3.0, tps[0].Multiple)
	assert.Equal(t, 1.0, tps[1].Multiple)
	assert.Equal(t, 2.0, tps[2].Multiple)
}

func TestRMultiples_ZeroDistanceDegenerate(t *testing.T) {
	tps := RMultiples(1.1000, 1.1000, model.DirectionLong, []float64{1.0, 2.0})
	require.Len(t, tps, 2)
	for _, tp := range tps {
		assert.Equal(t, 1.1000, tp.Price)
	}
}

func TestPositionSize(t *testing.T) {
	hint, err := PositionSize(10000, 1, 1.1000, 1.0950)
	require.NoError(t, err)
	assert.Equal(t, "100.00", hint.RiskAmount.StringFixed(2))
	assert.Equal(t, "20000.00", hint.Exposure.StringFixed(2))
}

func TestPositionSize_ZeroStopDistance(t *testing.T) {
	_, err := PositionSize(10000, 1, 1.1000, 1.1000)
	assert.ErrorIs(t, err, ErrZeroStopDistance)
}
