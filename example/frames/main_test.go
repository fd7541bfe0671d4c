package main

import (
	"errors"
	"testing"

	"github.com/akmonengine/algebra/detector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanRadiusSkipsFailures(t *testing.T) {
	measurements := []detector.Measurement{
		{Local: detector.Point2{10, 0}},
		{Err: errors.New("no such surface")},
		{Local: detector.Point2{14, 1}},
	}
	mean, converted := meanRadius(measurements)
	assert.Equal(t, 2, converted)
	assert.Equal(t, 12.0, mean)

	mean, converted = meanRadius([]detector.Measurement{{Err: errors.New("x")}})
	assert.Zero(t, converted)
	assert.Zero(t, mean)
}

func TestGeometry(t *testing.T) {
	det, err := SetupGeometry()
	require.NoError(t, err)
	assert.Equal(t, []string{"barrel", "endcap", "module", "tube"}, det.Surfaces())
}
