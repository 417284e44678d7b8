package sigma

import (
	"io"

	"github.com/takakv/svmzkp/generators"
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/rangeproof"
	"github.com/takakv/svmzkp/ristretto"
	"github.com/takakv/svmzkp/transcript"
)

// FloorSqrtBits is the bit width the two bound range proofs run at. spec.md
// §4.5 fixes this at 32 bits, matching the teacher's BulletProofSetupParams
// which refuses N > 32 outright (bulletproofs/bp.go).
const FloorSqrtBits = 32

// FloorSqrtProof proves that cF opens to floor(sqrt(v)), where cV opens to
// v, without revealing v or the square root. It composes four sub-proofs
// over one shared transcript (spec.md §4.5, §9):
//
//  1. Square: cFSq opens to f*f, tying cF and cFSq together.
//  2. Range: v - f*f is in [0, 2^32), i.e. f*f <= v.
//  3. Square: the commitment cF + B to f+1 squares to the fresh commitment
//     cFp1Sq.
//  4. Range: (f+1)*(f+1) - v is in [0, 2^32), i.e. v < (f+1)*(f+1).
//
// Together these pin f*f <= v < (f+1)*(f+1), which holds for exactly one
// non-negative integer f: floor(sqrt(v)).
type FloorSqrtProof struct {
	SquareF   SquareProof
	RangeLo   rangeproof.Proof
	CFp1Sq    ristretto.Point
	SquareFp1 SquareProof
	RangeHi   rangeproof.Proof
}

// ProveFloorSqrt takes the opening (f, rF) of cF, the opening (f*f, rFSq) of
// cFSq, and the opening (v, rV) of cV, and proves f == floor(sqrt(v)).
// value and f are the scalars' uint64 values, needed to build the two
// range proofs over the non-negative differences.
func ProveFloorSqrt(bp generators.BulletproofGens, pc generators.PedersenScalar, tr *transcript.Transcript,
	value uint64, f uint64, rV, rF, rFSq ristretto.Scalar, cV, cF, cFSq ristretto.Point,
	rng io.Reader) (FloorSqrtProof, error) {
	fScalar := ristretto.ScalarFromUint64(f)

	sqF, err := ProveSquare(pc, tr, fScalar, rF, rFSq, cF, rng)
	if err != nil {
		return FloorSqrtProof{}, err
	}

	fsq := f * f
	if fsq > value {
		return FloorSqrtProof{}, errs.New(errs.VerificationError, "floorsqrt: f*f exceeds v, f is not a valid floor root")
	}
	diffLo := value - fsq
	rDiffLo := rV.Sub(rFSq)
	rangeLo, _, err := rangeproof.ProveSingle(bp, pc, tr, diffLo, rDiffLo, FloorSqrtBits, rng)
	if err != nil {
		return FloorSqrtProof{}, err
	}

	fp1 := f + 1
	rFp1 := rF
	cFp1 := cF.Add(pc.B)
	fp1Scalar := ristretto.ScalarFromUint64(fp1)
	fp1sq := fp1 * fp1
	rFp1Sq := ristretto.RandomScalar(rng)
	cFp1Sq := pc.Commit(ristretto.ScalarFromUint64(fp1sq), rFp1Sq)

	sqFp1, err := ProveSquare(pc, tr, fp1Scalar, rFp1, rFp1Sq, cFp1, rng)
	if err != nil {
		return FloorSqrtProof{}, err
	}

	if value >= fp1sq {
		return FloorSqrtProof{}, errs.New(errs.VerificationError, "floorsqrt: v exceeds (f+1)*(f+1), f is not a valid floor root")
	}
	diffHi := fp1sq - value
	rDiffHi := rFp1Sq.Sub(rV)
	rangeHi, _, err := rangeproof.ProveSingle(bp, pc, tr, diffHi, rDiffHi, FloorSqrtBits, rng)
	if err != nil {
		return FloorSqrtProof{}, err
	}

	return FloorSqrtProof{
		SquareF: sqF, RangeLo: rangeLo,
		CFp1Sq: cFp1Sq, SquareFp1: sqFp1, RangeHi: rangeHi,
	}, nil
}

// Verify replays all four sub-proofs against the commitments cV (to v), cF
// (to the claimed floor root), and cFSq (to the claimed square of that
// root), deriving cFp1 and the two range-proof commitments homomorphically
// exactly as the prover did.
func (p FloorSqrtProof) Verify(bp generators.BulletproofGens, pc generators.PedersenScalar, tr *transcript.Transcript,
	cV, cF, cFSq ristretto.Point) error {
	if err := p.SquareF.Verify(pc, tr, cF, cFSq); err != nil {
		return err
	}

	cDiffLo := cV.Sub(cFSq)
	if err := p.RangeLo.VerifySingle(bp, pc, tr, cDiffLo, FloorSqrtBits); err != nil {
		return err
	}

	cFp1 := cF.Add(pc.B)
	if err := p.SquareFp1.Verify(pc, tr, cFp1, p.CFp1Sq); err != nil {
		return err
	}

	cDiffHi := p.CFp1Sq.Sub(cV)
	return p.RangeHi.VerifySingle(bp, pc, tr, cDiffHi, FloorSqrtBits)
}
