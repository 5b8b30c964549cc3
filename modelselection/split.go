// Package modelselection provides deterministic train/test splitting.
package modelselection

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"

	"mldemo/pkg/errors"
)

// Split holds one train/test partition of a dataset.
type Split struct {
	XTrain *mat.Dense
	XTest  *mat.Dense
	YTrain *mat.VecDense
	YTest  *mat.VecDense
}

// TrainTestSplit partitions (X, y) into train and test sets. The test
// partition holds round(n*testSize) rows chosen by a shuffle seeded
// with seed, so the same inputs always produce the same partition.
func TrainTestSplit(X mat.Matrix, y *mat.VecDense, testSize float64, seed uint64) (*Split, error) {
	n, err := validateSplitInput(X, y, testSize)
	if err != nil {
		return nil, err
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	r := rand.New(rand.NewPCG(seed, seed))
	r.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	testCount := roundedTestCount(n, testSize)
	return buildSplit(X, y, indices[testCount:], indices[:testCount]), nil
}

// StratifiedTrainTestSplit partitions (X, y) preserving the class
// proportions of y in both partitions. Labels are treated as integer
// class codes.
func StratifiedTrainTestSplit(X mat.Matrix, y *mat.VecDense, testSize float64, seed uint64) (*Split, error) {
	n, err := validateSplitInput(X, y, testSize)
	if err != nil {
		return nil, err
	}

	groups := make(map[int][]int)
	for i := 0; i < n; i++ {
		class := int(y.AtVec(i))
		groups[class] = append(groups[class], i)
	}

	classes := make([]int, 0, len(groups))
	for class := range groups {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	r := rand.New(rand.NewPCG(seed, seed))
	var trainIdx, testIdx []int
	for _, class := range classes {
		idx := groups[class]
		r.Shuffle(len(idx), func(i, j int) {
			idx[i], idx[j] = idx[j], idx[i]
		})
		classTest := roundedTestCount(len(idx), testSize)
		testIdx = append(testIdx, idx[:classTest]...)
		trainIdx = append(trainIdx, idx[classTest:]...)
	}
	sort.Ints(trainIdx)
	sort.Ints(testIdx)

	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return nil, errors.NewValueError("StratifiedTrainTestSplit", "split would leave an empty partition")
	}
	return buildSplit(X, y, trainIdx, testIdx), nil
}

func validateSplitInput(X mat.Matrix, y *mat.VecDense, testSize float64) (int, error) {
	n, _ := X.Dims()
	if n == 0 {
		return 0, errors.NewValueError("TrainTestSplit", "empty dataset")
	}
	if y.Len() != n {
		return 0, errors.NewDimensionError("TrainTestSplit", n, y.Len(), 0)
	}
	if testSize <= 0 || testSize >= 1 {
		return 0, errors.NewValidationError("testSize", "must be in (0, 1)", testSize)
	}
	if roundedTestCount(n, testSize) == 0 || roundedTestCount(n, testSize) == n {
		return 0, errors.NewValueError("TrainTestSplit", "split would leave an empty partition")
	}
	return n, nil
}

func roundedTestCount(n int, testSize float64) int {
	return int(math.Round(float64(n) * testSize))
}

func buildSplit(X mat.Matrix, y *mat.VecDense, trainIdx, testIdx []int) *Split {
	_, cols := X.Dims()
	return &Split{
		XTrain: takeRows(X, trainIdx, cols),
		XTest:  takeRows(X, testIdx, cols),
		YTrain: takeVec(y, trainIdx),
		YTest:  takeVec(y, testIdx),
	}
}

func takeRows(X mat.Matrix, idx []int, cols int) *mat.Dense {
	out := mat.NewDense(len(idx), cols, nil)
	for i, row := range idx {
		for j := 0; j < cols; j++ {
			out.Set(i, j, X.At(row, j))
		}
	}
	return out
}

func takeVec(y *mat.VecDense, idx []int) *mat.VecDense {
	out := mat.NewVecDense(len(idx), nil)
	for i, row := range idx {
		out.SetVec(i, y.AtVec(row))
	}
	return out
}
