package generators

import (
	"fmt"

	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ristretto"
)

// BulletproofGens holds the two parallel generator vectors G_vec/H_vec the
// inner-product argument and its zero-knowledge wrapper multiply against.
// Generators are deterministically derived from a fixed seed (spec.md §4.2:
// "any party with the same capacity parameters reproduces them exactly"),
// the same way the teacher's bulletproofs.Setup derives Gg/Hh via
// p256.MapToGroup with an index-suffixed seed string.
type BulletproofGens struct {
	label string
	G     []ristretto.Point
	H     []ristretto.Point
}

// NewBulletproofGens derives capacity independent generator pairs under label.
func NewBulletproofGens(label string, capacity int) BulletproofGens {
	g := make([]ristretto.Point, capacity)
	h := make([]ristretto.Point, capacity)
	for i := 0; i < capacity; i++ {
		g[i] = ristretto.HashToPoint(fmt.Sprintf("%s-G-%d", label, i))
		h[i] = ristretto.HashToPoint(fmt.Sprintf("%s-H-%d", label, i))
	}
	return BulletproofGens{label: label, G: g, H: h}
}

// Capacity returns the number of available generator pairs.
func (b BulletproofGens) Capacity() int {
	return len(b.G)
}

// Share returns the n-wide generator slice for aggregation party index j,
// i.e. G[j*n : j*n+n] and H likewise (spec.md §3: "A prover's view at
// aggregation index j uses G[j·n .. j·n+n] and H likewise"). This is kept
// from the teacher's bulletproofs/multibp.go multi-party slicing. Within
// this module it is reached only through Slice (j = 0); no composite proof
// runs against a share with j > 0.
func (b BulletproofGens) Share(n, j int) (BulletproofGens, error) {
	lo, hi := j*n, j*n+n
	if lo < 0 || hi > len(b.G) {
		return BulletproofGens{}, fmt.Errorf("generators: share [%d:%d] exceeds capacity %d", lo, hi, len(b.G))
	}
	return BulletproofGens{label: b.label, G: b.G[lo:hi], H: b.H[lo:hi]}, nil
}

// Slice returns the first n generator pairs, for a prover that doesn't need
// aggregation.
func (b BulletproofGens) Slice(n int) (BulletproofGens, error) {
	return b.Share(n, 0)
}

// VectorFromBulletproof derives a PedersenVector of length n whose per-index
// base is G[i]+H[i] from bp's first n generator pairs. The variance
// composite (svm package) relies on this coincidence of bases: its embedded
// inner-product proof's internal A-commitment is a linear combination of
// exactly these same G[i]/H[i] generators, so a channel committed under the
// PedersenVector this function returns lets n*C_m - C_sum collapse to that
// A-commitment in closed form (svm.ExpectedA), without the prover ever
// disclosing it separately.
func VectorFromBulletproof(bp BulletproofGens, n int, label string) (PedersenVector, error) {
	g, err := bp.Slice(n)
	if err != nil {
		return PedersenVector{}, errs.New(errs.InvalidGeneratorsLength, "%v", err)
	}
	b := make([]ristretto.Point, n)
	for i := 0; i < n; i++ {
		b[i] = g.G[i].Add(g.H[i])
	}
	return PedersenVector{B: b, BBlinding: ristretto.HashToPoint(label + "-B_blinding")}, nil
}
