package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"mldemo/pkg/errors"
)

// HousingSchema describes the house price dataset.
var HousingSchema = Schema{
	Features: []FeatureSpec{
		{Name: "bedrooms", Min: 1, Max: 5},
		{Name: "bathrooms", Min: 1, Max: 3},
		{Name: "sqft", Min: 800, Max: 3999},
		{Name: "age", Min: 0, Max: 49},
	},
	Target: "price",
}

// Price formula coefficients. The price floor doubles as the base
// price, so no generated price is below $50,000 regardless of noise.
const (
	basePrice        = 50000.0
	pricePerBedroom  = 25000.0
	pricePerBathroom = 15000.0
	pricePerSqft     = 100.0
	ageDepreciation  = 1000.0
	priceFloor       = 50000.0
	priceNoiseSigma  = 20000.0
)

// GenerateHousing synthesizes n house records with prices drawn from a
// fixed linear combination of the features plus Gaussian noise. Pure
// function of (seed, n), column-wise draw order.
func GenerateHousing(seed uint64, n int) (*Dataset, error) {
	if n <= 0 {
		return nil, errors.NewValidationError("n", "must be positive", n)
	}

	src := rand.NewPCG(seed, seed)
	rng := rand.New(src)
	noise := distuv.Normal{Mu: 0, Sigma: priceNoiseSigma, Src: src}

	bedrooms := make([]float64, n)
	for i := range bedrooms {
		bedrooms[i] = float64(rng.IntN(5) + 1)
	}
	bathrooms := make([]float64, n)
	for i := range bathrooms {
		bathrooms[i] = float64(rng.IntN(3) + 1)
	}
	sqft := make([]float64, n)
	for i := range sqft {
		sqft[i] = float64(rng.IntN(3200) + 800)
	}
	age := make([]float64, n)
	for i := range age {
		age[i] = float64(rng.IntN(50))
	}

	X := mat.NewDense(n, len(HousingSchema.Features), nil)
	Y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, bedrooms[i])
		X.Set(i, 1, bathrooms[i])
		X.Set(i, 2, sqft[i])
		X.Set(i, 3, age[i])
	}
	for i := 0; i < n; i++ {
		price := basePrice +
			bedrooms[i]*pricePerBedroom +
			bathrooms[i]*pricePerBathroom +
			sqft[i]*pricePerSqft -
			age[i]*ageDepreciation +
			noise.Rand()
		Y.SetVec(i, math.Max(price, priceFloor))
	}

	return &Dataset{Schema: HousingSchema, X: X, Y: Y}, nil
}
