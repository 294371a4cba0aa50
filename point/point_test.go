package point_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthgeo/point"
)

func TestDistance(t *testing.T) {
	a := point.New("A", 0, 0)
	b := point.New("B", 3, 4)
	require.InDelta(t, 5.0, point.Distance(a, b), 1e-9)
}

func TestAngleBetweenRightAngle(t *testing.T) {
	a := point.New("A", 1, 0)
	b := point.New("B", 0, 0)
	c := point.New("C", 0, 1)
	got := point.AngleBetween(a, b, c)
	require.True(t, point.IsCloseTol(got, math.Pi/2, 0, 1e-9) || point.IsCloseTol(got, 3*math.Pi/2, 0, 1e-9))
}

func TestSameOrientation(t *testing.T) {
	square := []point.Point{point.New("A", 0, 0), point.New("B", 1, 0), point.New("C", 1, 1), point.New("D", 0, 1)}
	mirrored := []point.Point{point.New("A", 0, 0), point.New("D", 0, 1), point.New("C", 1, 1), point.New("B", 1, 0)}
	require.True(t, point.SameOrientation(square, square))
	require.False(t, point.SameOrientation(square, mirrored))
}

func TestIsClose(t *testing.T) {
	require.True(t, point.IsClose(1.0, 1.0+1e-12))
	require.False(t, point.IsClose(1.0, 1.1))
}
