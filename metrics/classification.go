package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"mldemo/pkg/errors"
)

// Accuracy computes the fraction of exactly matching predictions.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	var correct float64
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return correct / float64(n), nil
}

// ConfusionMatrix counts predictions per (true class, predicted class)
// pair. Classes holds the sorted union of labels seen in either vector;
// Counts[i][j] is the number of samples of Classes[i] predicted as
// Classes[j].
type ConfusionMatrix struct {
	Classes []int
	Counts  [][]int
}

// NewConfusionMatrix builds a confusion matrix from integer-coded label
// vectors.
func NewConfusionMatrix(yTrue, yPred *mat.VecDense) (*ConfusionMatrix, error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.NewValueError("ConfusionMatrix", "empty vector")
	}
	if yPred.Len() != n {
		return nil, errors.NewDimensionError("ConfusionMatrix", n, yPred.Len(), 0)
	}

	classSet := make(map[int]bool)
	for i := 0; i < n; i++ {
		classSet[int(yTrue.AtVec(i))] = true
		classSet[int(yPred.AtVec(i))] = true
	}
	classes := make([]int, 0, len(classSet))
	for c := range classSet {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	index := make(map[int]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	counts := make([][]int, len(classes))
	for i := range counts {
		counts[i] = make([]int, len(classes))
	}
	for i := 0; i < n; i++ {
		counts[index[int(yTrue.AtVec(i))]][index[int(yPred.AtVec(i))]]++
	}

	return &ConfusionMatrix{Classes: classes, Counts: counts}, nil
}

// ClassReport holds per-class precision, recall, F1 and support.
type ClassReport struct {
	Class     int
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report derives per-class precision/recall/F1 from the matrix. A class
// with no predicted samples gets precision 0, and one with no true
// samples gets recall 0, matching sklearn's zero_division=0 behavior.
func (cm *ConfusionMatrix) Report() []ClassReport {
	reports := make([]ClassReport, len(cm.Classes))
	for i, class := range cm.Classes {
		tp := cm.Counts[i][i]
		var predicted, actual int
		for j := range cm.Classes {
			predicted += cm.Counts[j][i]
			actual += cm.Counts[i][j]
		}

		var precision, recall, f1 float64
		if predicted > 0 {
			precision = float64(tp) / float64(predicted)
		}
		if actual > 0 {
			recall = float64(tp) / float64(actual)
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}

		reports[i] = ClassReport{
			Class:     class,
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   actual,
		}
	}
	return reports
}
