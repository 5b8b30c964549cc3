package modelselection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func makeDataset(n int) (*mat.Dense, *mat.VecDense) {
	X := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		X.Set(i, 1, float64(i)*2)
		// 30% positive class
		if i%10 < 3 {
			y.SetVec(i, 1)
		}
	}
	return X, y
}

func TestTrainTestSplit(t *testing.T) {
	X, y := makeDataset(100)

	split, err := TrainTestSplit(X, y, 0.2, 42)
	require.NoError(t, err)

	trainRows, _ := split.XTrain.Dims()
	testRows, _ := split.XTest.Dims()
	assert.Equal(t, 80, trainRows)
	assert.Equal(t, 20, testRows)
	assert.Equal(t, 80, split.YTrain.Len())
	assert.Equal(t, 20, split.YTest.Len())

	// Row identity is preserved: column 1 is always twice column 0.
	seen := make(map[float64]bool)
	for _, m := range []*mat.Dense{split.XTrain, split.XTest} {
		rows, _ := m.Dims()
		for i := 0; i < rows; i++ {
			assert.Equal(t, m.At(i, 0)*2, m.At(i, 1))
			seen[m.At(i, 0)] = true
		}
	}
	assert.Len(t, seen, 100, "every row appears in exactly one partition")
}

func TestTrainTestSplitDeterminism(t *testing.T) {
	X, y := makeDataset(50)

	a, err := TrainTestSplit(X, y, 0.2, 42)
	require.NoError(t, err)
	b, err := TrainTestSplit(X, y, 0.2, 42)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a.XTest, b.XTest), "same seed must produce the same partition")

	c, err := TrainTestSplit(X, y, 0.2, 1)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a.XTest, c.XTest), "different seeds should shuffle differently")
}

func TestStratifiedTrainTestSplit(t *testing.T) {
	X, y := makeDataset(1000)

	split, err := StratifiedTrainTestSplit(X, y, 0.2, 42)
	require.NoError(t, err)

	countPositive := func(v *mat.VecDense) float64 {
		var c float64
		for i := 0; i < v.Len(); i++ {
			c += v.AtVec(i)
		}
		return c
	}

	fullRatio := countPositive(y) / float64(y.Len())
	trainRatio := countPositive(split.YTrain) / float64(split.YTrain.Len())
	testRatio := countPositive(split.YTest) / float64(split.YTest.Len())

	assert.InDelta(t, fullRatio, trainRatio, 0.01, "train partition class ratio")
	assert.InDelta(t, fullRatio, testRatio, 0.01, "test partition class ratio")

	trainRows, _ := split.XTrain.Dims()
	testRows, _ := split.XTest.Dims()
	assert.Equal(t, 1000, trainRows+testRows)
	assert.True(t, math.Abs(float64(testRows)-200) <= float64(2), "test size near 20%%, got %d", testRows)
}

func TestSplitValidation(t *testing.T) {
	X, y := makeDataset(10)

	_, err := TrainTestSplit(X, y, 0, 42)
	assert.Error(t, err, "testSize 0 rejected")

	_, err = TrainTestSplit(X, y, 1, 42)
	assert.Error(t, err, "testSize 1 rejected")

	short := mat.NewVecDense(5, nil)
	_, err = TrainTestSplit(X, short, 0.2, 42)
	assert.Error(t, err, "mismatched y length rejected")

	tiny, tinyY := makeDataset(3)
	_, err = TrainTestSplit(tiny, tinyY, 0.1, 42)
	assert.Error(t, err, "split that empties the test partition rejected")
}
