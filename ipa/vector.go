package ipa

import "github.com/takakv/svmzkp/ristretto"

// innerProduct returns Σ a[i]*b[i]. Grounded on the teacher's
// bulletproofs.ScalarProduct, rewritten over ristretto.Scalar.
func innerProduct(a, b []ristretto.Scalar) ristretto.Scalar {
	acc := ristretto.NewScalar()
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return acc
}

// weightedCommit returns Σ scalars[i]*factors[i]*points[i]. A nil factors
// slice is treated as all-ones, which is the common case outside the inner
// product argument's very first round (spec.md §4.3: "the first round
// fuses the initial scalar-factor multiplication ... to avoid computing a
// large point vector twice").
func weightedCommit(scalars []ristretto.Scalar, points []ristretto.Point, factors []ristretto.Scalar) ristretto.Point {
	terms := make([]ristretto.Scalar, len(scalars))
	if factors == nil {
		copy(terms, scalars)
	} else {
		for i := range scalars {
			terms[i] = scalars[i].Mul(factors[i])
		}
	}
	return ristretto.MultiMul(terms, points)
}
