package math

// Constants for the polynomial kernels. Every kernel picks the float32 or
// float64 set from the lane type; float32 lanes use shorter polynomials.

// kernelConstants holds the range reduction constants and the Horner
// coefficients of one function for one precision. poly is ordered from the
// highest degree down to the constant term.
type kernelConstants struct {
	ln2Hi, ln2Lo        float64
	overflow, underflow float64
	poly                []float64
}

const (
	invLn2 = 1.44269504088896341
	sqrt2  = 1.41421356237309504880
)

// Float32 constants for Exp
var exp_f32 = kernelConstants{
	ln2Hi:     0.693359375,
	ln2Lo:     -2.12194440e-4,
	overflow:  88.72283905206835,
	underflow: -87.33654475055310,
	poly: []float64{
		0.001388888888888889,
		0.008333333333333333,
		0.041666666666666664,
		0.16666666666666666,
		0.5,
		1.0,
		1.0,
	},
}

// Float64 constants for Exp
var exp_f64 = kernelConstants{
	ln2Hi:     0.6931471803691238,
	ln2Lo:     1.9082149292705877e-10,
	overflow:  709.782712893384,
	underflow: -708.3964185322641,
	poly: []float64{
		2.755731922398589e-07,
		2.7557319223985893e-06,
		2.48015873015873e-05,
		0.0001984126984126984,
		0.001388888888888889,
		0.008333333333333333,
		0.041666666666666664,
		0.16666666666666666,
		0.5,
		1.0,
		1.0,
	},
}

// Float32 constants for Log. poly is evaluated in y^2 where
// y = (m-1)/(m+1).
var log_f32 = kernelConstants{
	ln2Hi: 0.693359375,
	ln2Lo: -2.12194440e-4,
	poly: []float64{
		0.1111109921607489198,
		0.1428571437183119574,
		0.1999999999970470954,
		0.3333333333333367565,
		1.0,
	},
}

// Float64 constants for Log
var log_f64 = kernelConstants{
	ln2Hi: 0.6931471803691238,
	ln2Lo: 1.9082149292705877e-10,
	poly: []float64{
		0.07399099302558292955,
		0.0765691884960468666,
		0.0909178608080902506,
		0.1111109921607489198,
		0.1428571437183119574,
		0.1999999999970470954,
		0.3333333333333367565,
		1.0,
	},
}

// Tanh saturates to ±1 past these magnitudes.
const (
	tanhClamp_f32 = 9.0
	tanhClamp_f64 = 19.0
)

// Abramowitz and Stegun 7.1.26, absolute error below 1.5e-7.
const (
	erfA1 = 0.254829592
	erfA2 = -0.284496736
	erfA3 = 1.421413741
	erfA4 = -1.453152027
	erfA5 = 1.061405429
	erfP  = 0.3275911
)
