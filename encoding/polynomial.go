package encoding

import (
	"fmt"
	"math/big"

	"github.com/arloliu/polypack/errs"
	"github.com/arloliu/polypack/section"
)

// EncodePolynomial builds the token polynomial for plan.
//
// The header digit sits at weight 1, run i at weight HeaderRadix * runRadix^i.
// The sum is evaluated with Horner's rule from the highest run downwards.
//
// Returns:
//   - *big.Int: the polynomial, zero for an empty plan
func EncodePolynomial(plan Plan) *big.Int {
	poly := new(big.Int)
	if len(plan.Runs) == 0 {
		return poly
	}

	h := plan.Header
	radix := new(big.Int).SetUint64(RunDigitRadix(h.MaxValue, h.MaxRunLength))
	packer := NewPacker(h.MaxValue)

	var digit big.Int
	for i := len(plan.Runs) - 1; i >= 0; i-- {
		r := plan.Runs[i]
		poly.Mul(poly, radix)
		poly.Add(poly, digit.SetUint64(packer.Pack(r.Value, r.Count)))
	}

	poly.Mul(poly, new(big.Int).SetUint64(section.HeaderRadix))
	poly.Add(poly, digit.SetUint64(h.Digit()))

	return poly
}

// DecodePolynomial splits a token polynomial back into its header and runs.
//
// Decoding rejects every digit pattern the encoder cannot produce: header fields
// outside limits, run digits outside their bands, runs that are not strictly
// descending, and headers that disagree with the decoded runs.
//
// Parameters:
//   - poly: the polynomial, not modified
//   - limits: codec limits the header must respect
//
// Returns:
//   - Plan: header and runs, zero Plan for a zero polynomial
//   - error: ErrCorruptDigit
func DecodePolynomial(poly *big.Int, limits section.Limits) (Plan, error) {
	switch poly.Sign() {
	case 0:
		return Plan{}, nil
	case -1:
		return Plan{}, fmt.Errorf("%w: negative polynomial", errs.ErrCorruptDigit)
	}

	rest := new(big.Int)
	digit := new(big.Int)
	rest.DivMod(poly, new(big.Int).SetUint64(section.HeaderRadix), digit)

	header, err := section.ParseHeaderDigit(digit.Uint64())
	if err != nil {
		return Plan{}, err
	}
	if err := header.Validate(limits); err != nil {
		return Plan{}, err
	}
	if rest.Sign() == 0 {
		return Plan{}, fmt.Errorf("%w: header %d without runs", errs.ErrCorruptDigit, header.Digit())
	}

	radix := new(big.Int).SetUint64(RunDigitRadix(header.MaxValue, header.MaxRunLength))
	packer := NewPacker(header.MaxValue)

	runs := make([]Run, 0, 8)
	var maxRun uint32
	prev := header.MaxValue + 1
	for rest.Sign() != 0 {
		rest.DivMod(rest, radix, digit)

		run, err := packer.Unpack(digit.Uint64())
		if err != nil {
			return Plan{}, fmt.Errorf("run %d: %w", len(runs), err)
		}
		if run.Count == 0 || run.Count > header.MaxRunLength {
			return Plan{}, fmt.Errorf("%w: run %d count %d not in [1, %d]",
				errs.ErrCorruptDigit, len(runs), run.Count, header.MaxRunLength)
		}
		if run.Value >= prev {
			return Plan{}, fmt.Errorf("%w: run %d value %d does not descend from %d",
				errs.ErrCorruptDigit, len(runs), run.Value, prev)
		}

		runs = append(runs, run)
		maxRun = max(maxRun, run.Count)
		prev = run.Value
	}

	if runs[0].Value != header.MaxValue {
		return Plan{}, fmt.Errorf("%w: header max value %d, largest run value %d",
			errs.ErrCorruptDigit, header.MaxValue, runs[0].Value)
	}
	if maxRun != header.MaxRunLength {
		return Plan{}, fmt.Errorf("%w: header max run length %d, longest run %d",
			errs.ErrCorruptDigit, header.MaxRunLength, maxRun)
	}

	return Plan{Header: header, Runs: runs}, nil
}
