package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"mldemo/pkg/errors"
)

// ChurnSchema describes the customer churn dataset. Categorical
// covariates are integer-coded: contract_type 0=month-to-month 1=one
// year 2=two year, payment_method 0=electronic check 1=mailed check
// 2=bank transfer 3=credit card, internet_service 0=DSL 1=fiber 2=none,
// tech_support 0=no 1=yes.
var ChurnSchema = Schema{
	Features: []FeatureSpec{
		{Name: "age", Min: 18, Max: 80},
		{Name: "tenure", Min: 1, Max: 72},
		{Name: "monthly_charges", Min: 20, Max: 120},
		{Name: "total_charges", Min: 20, Max: math.Inf(1)},
		{Name: "contract_type", Min: 0, Max: 2},
		{Name: "payment_method", Min: 0, Max: 3},
		{Name: "internet_service", Min: 0, Max: 2},
		{Name: "tech_support", Min: 0, Max: 1},
	},
	Target: "churn",
}

const (
	totalChargesFloor      = 20.0
	totalChargesNoiseSigma = 100.0
	baseChurnProbability   = 0.1
)

// GenerateChurn synthesizes n labeled customer records. It is a pure
// function of (seed, n): the pseudo-random stream and the draw order
// (one column at a time, then the Bernoulli labels) are fixed.
func GenerateChurn(seed uint64, n int) (*Dataset, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "must be positive", n)
	}

	src := rand.NewPCG(seed, seed)
	rng := rand.New(src)
	noise := distuv.Normal{Mu: 0, Sigma: totalChargesNoiseSigma, Src: src}

	age := make([]float64, n)
	for i := range age {
		age[i] = float64(rng.IntN(63) + 18)
	}
	tenure := make([]float64, n)
	for i := range tenure {
		tenure[i] = float64(rng.IntN(72) + 1)
	}
	monthly := make([]float64, n)
	for i := range monthly {
		monthly[i] = 20 + rng.Float64()*100
	}
	total := make([]float64, n)
	for i := range total {
		total[i] = math.Max(monthly[i]*tenure[i]+noise.Rand(), totalChargesFloor)
	}
	contract := drawChoice(rng, n, []float64{0.5, 0.3, 0.2})
	payment := drawChoice(rng, n, []float64{0.4, 0.2, 0.2, 0.2})
	internet := drawChoice(rng, n, []float64{0.4, 0.4, 0.2})
	techSupport := drawChoice(rng, n, []float64{0.6, 0.4})

	X := mat.NewDense(n, len(ChurnSchema.Features), nil)
	Y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, age[i])
		X.Set(i, 1, tenure[i])
		X.Set(i, 2, monthly[i])
		X.Set(i, 3, total[i])
		X.Set(i, 4, contract[i])
		X.Set(i, 5, payment[i])
		X.Set(i, 6, internet[i])
		X.Set(i, 7, techSupport[i])
	}
	for i := 0; i < n; i++ {
		p := churnProbability(age[i], tenure[i], monthly[i], contract[i], payment[i], internet[i], techSupport[i])
		if rng.Float64() < p {
			Y.SetVec(i, 1)
		}
	}

	return &Dataset{Schema: ChurnSchema, X: X, Y: Y}, nil
}

// churnProbability is the affine indicator combination the labels are
// drawn from, clipped to [0, 1].
func churnProbability(age, tenure, monthly, contract, payment, internet, techSupport float64) float64 {
	p := baseChurnProbability
	if tenure < 6 {
		p += 0.3
	}
	if contract == 0 {
		p += 0.2
	}
	if payment == 0 {
		p += 0.15
	}
	if monthly > 80 {
		p += 0.1
	}
	if age < 30 {
		p += 0.1
	}
	if techSupport == 1 {
		p -= 0.15
	}
	if internet == 1 {
		p += 0.1
	}
	return math.Min(math.Max(p, 0), 1)
}

// drawChoice draws n integer codes from the discrete distribution given
// by probs (one probability per code, summing to 1).
func drawChoice(rng *rand.Rand, n int, probs []float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		r := rng.Float64()
		cum := 0.0
		code := len(probs) - 1
		for j, p := range probs {
			cum += p
			if r < cum {
				code = j
				break
			}
		}
		out[i] = float64(code)
	}
	return out
}
