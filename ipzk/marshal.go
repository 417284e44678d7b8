package ipzk

import (
	"github.com/takakv/svmzkp/internal/errs"
	"github.com/takakv/svmzkp/ipa"
	"github.com/takakv/svmzkp/ristretto"
)

const wordSize = 32

// MarshalBinary produces the canonical encoding of spec.md §4.4: four
// compressed points (A, S, T1, T2), three scalars (t_x, t_x_blinding,
// e_blinding), then the embedded inner-product argument (log2(n) (L, R)
// point pairs followed by the two final scalars a, b). Total length is
// 7*32 + 2*log2(n)*32 + 2*32 bytes.
func (p Proof) MarshalBinary() ([]byte, error) {
	logN := len(p.IPP.L)
	if len(p.IPP.R) != logN {
		return nil, errs.New(errs.FormatError, "ipzk: mismatched L/R lengths in proof")
	}
	out := make([]byte, 0, 7*wordSize+2*logN*wordSize+2*wordSize)
	for _, pt := range []ristretto.Point{p.A, p.S, p.T1, p.T2} {
		out = append(out, pt.Bytes()...)
	}
	for _, s := range []ristretto.Scalar{p.Tx, p.TxBlinding, p.EBlinding} {
		out = append(out, s.Bytes()...)
	}
	for i := 0; i < logN; i++ {
		out = append(out, p.IPP.L[i].Bytes()...)
		out = append(out, p.IPP.R[i].Bytes()...)
	}
	out = append(out, p.IPP.A.Bytes()...)
	out = append(out, p.IPP.B.Bytes()...)
	return out, nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary for a vector
// length of n. It rejects malformed input before touching any group
// arithmetic: the byte length must be a multiple of 32, at least the
// 7+2 fixed words, and the number of embedded (L, R) pairs implied by the
// length must match log2(n) for the caller-declared n.
func (p *Proof) UnmarshalBinary(data []byte, n int) error {
	if len(data)%wordSize != 0 {
		return errs.New(errs.FormatError, "ipzk: length %d is not a multiple of %d", len(data), wordSize)
	}
	minWords := 9
	if len(data) < minWords*wordSize {
		return errs.New(errs.FormatError, "ipzk: length %d shorter than minimum %d", len(data), minWords*wordSize)
	}

	logN := 0
	for 1<<uint(logN) < n {
		logN++
	}
	if 1<<uint(logN) != n {
		return errs.New(errs.FormatError, "ipzk: n=%d is not a power of two", n)
	}

	wantWords := 9 + 2*logN
	gotWords := len(data) / wordSize
	if gotWords != wantWords {
		return errs.New(errs.FormatError,
			"ipzk: embedded round count implies n=%d words, declared n=%d implies %d words", gotWords, n, wantWords)
	}

	words := make([][]byte, gotWords)
	for i := range words {
		words[i] = data[i*wordSize : (i+1)*wordSize]
	}

	var err error
	readPoint := func(b []byte) ristretto.Point {
		var pt ristretto.Point
		if err == nil {
			pt, err = ristretto.PointSetBytes(b)
		}
		return pt
	}
	readScalar := func(b []byte) ristretto.Scalar {
		var s ristretto.Scalar
		if err == nil {
			s, err = ristretto.ScalarSetBytes(b)
		}
		return s
	}

	p.A = readPoint(words[0])
	p.S = readPoint(words[1])
	p.T1 = readPoint(words[2])
	p.T2 = readPoint(words[3])
	p.Tx = readScalar(words[4])
	p.TxBlinding = readScalar(words[5])
	p.EBlinding = readScalar(words[6])

	ls := make([]ristretto.Point, logN)
	rs := make([]ristretto.Point, logN)
	for i := 0; i < logN; i++ {
		ls[i] = readPoint(words[7+2*i])
		rs[i] = readPoint(words[7+2*i+1])
	}
	a := readScalar(words[7+2*logN])
	b := readScalar(words[7+2*logN+1])

	if err != nil {
		return errs.New(errs.FormatError, "ipzk: %v", err)
	}

	p.IPP = ipa.Proof{L: ls, R: rs, A: a, B: b}
	return nil
}
