package encoding

import (
	"math/big"
	"math/rand"
	"slices"
	"testing"

	"github.com/arloliu/polypack/errs"
	"github.com/arloliu/polypack/section"
	"github.com/stretchr/testify/require"
)

func TestEncodePolynomial_SimpleCase(t *testing.T) {
	plan, err := PlanRuns([]uint32{1, 1, 2, 2, 2, 3}, compactLimits)
	require.NoError(t, err)

	// header 3|3<<16, runs (3,1)=7 (2,3)=14 (1,2)=9 with runRadix 17
	runPart := uint64(7 + 17*(14+17*9))
	expected := new(big.Int).SetUint64(runPart<<32 | (3 | 3<<16))

	poly := EncodePolynomial(plan)
	require.Equal(t, 0, expected.Cmp(poly), "got %s", poly)

	decoded, err := DecodePolynomial(poly, compactLimits)
	require.NoError(t, err)
	require.Equal(t, plan, decoded)
	require.Equal(t, []uint32{3, 2, 2, 2, 1, 1}, decoded.Expand())
}

func TestEncodePolynomial_Empty(t *testing.T) {
	poly := EncodePolynomial(Plan{})
	require.Equal(t, 0, poly.Sign())

	plan, err := DecodePolynomial(poly, compactLimits)
	require.NoError(t, err)
	require.Empty(t, plan.Runs)
	require.True(t, plan.Header.IsEmpty())
}

func TestPolynomial_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	limitsSet := []section.Limits{
		compactLimits,
		{MaxValue: 65500, MaxRunLength: 65535},
		{MaxValue: 1, MaxRunLength: 1},
	}
	for _, limits := range limitsSet {
		for _, size := range []int{1, 2, 50, 500} {
			input := make([]uint32, size)
			for i := range input {
				input[i] = uint32(rng.Intn(int(limits.MaxValue))) + 1 //nolint: gosec
			}

			plan, err := PlanRuns(input, limits)
			if err != nil {
				// MaxRunLength 1 rejects repeats
				require.ErrorIs(t, err, errs.ErrRunTooLong)
				continue
			}

			decoded, err := DecodePolynomial(EncodePolynomial(plan), limits)
			require.NoError(t, err)
			require.Equal(t, plan.Header, decoded.Header)

			expected := slices.Clone(input)
			slices.Sort(expected)
			slices.Reverse(expected)
			require.Equal(t, expected, decoded.Expand())
		}
	}
}

func TestPolynomial_HeaderFidelity(t *testing.T) {
	input := []uint32{17, 4, 4, 4, 4, 4, 4, 4, 250, 250, 1}
	plan, err := PlanRuns(input, compactLimits)
	require.NoError(t, err)

	decoded, err := DecodePolynomial(EncodePolynomial(plan), compactLimits)
	require.NoError(t, err)
	require.Equal(t, uint32(250), decoded.Header.MaxValue)
	require.Equal(t, uint32(7), decoded.Header.MaxRunLength)
}

func TestPolynomial_LargeRunLengthHeader(t *testing.T) {
	limits := section.Limits{MaxValue: 65500, MaxRunLength: 65535}
	input := make([]uint32, 0, 40001)
	for iter := 0; iter < 40000; iter++ {
		input = append(input, 65500)
	}
	input = append(input, 2)

	plan, err := PlanRuns(input, limits)
	require.NoError(t, err)
	require.Equal(t, uint32(40000), plan.Header.MaxRunLength)

	decoded, err := DecodePolynomial(EncodePolynomial(plan), limits)
	require.NoError(t, err)
	require.Equal(t, plan, decoded)
}

func TestDecodePolynomial_Corrupt(t *testing.T) {
	headerRadix := new(big.Int).SetUint64(section.HeaderRadix)

	compose := func(header uint64, runDigits ...uint64) *big.Int {
		h := section.Header{MaxValue: uint32(header & 0xFFFF), MaxRunLength: uint32(header >> 16)}
		radix := new(big.Int).SetUint64(RunDigitRadix(h.MaxValue, h.MaxRunLength))
		poly := new(big.Int)
		for i := len(runDigits) - 1; i >= 0; i-- {
			poly.Mul(poly, radix)
			poly.Add(poly, new(big.Int).SetUint64(runDigits[i]))
		}
		poly.Mul(poly, headerRadix)

		return poly.Add(poly, new(big.Int).SetUint64(header))
	}

	// header (3,3): band 4, runRadix 17
	header := uint64(3 | 3<<16)

	tests := []struct {
		name string
		poly *big.Int
	}{
		{"negative", big.NewInt(-5)},
		{"header only", new(big.Int).SetUint64(header)},
		{"zero max value", compose(0|3<<16, 5)},
		{"max value above limit", compose(301|1<<16, 301+302)},
		{"max run length above limit", compose(1|1001<<16, 1+2)},
		{"value band zero", compose(header, 4)},
		{"count zero", compose(header, 3)},
		{"not descending", compose(header, 3+4, 3+4)},
		{"ascending", compose(header, 2+12, 3+4)},
		{"header max value mismatch", compose(header, 2+12)},
		{"header run length mismatch", compose(header, 3+4, 2+4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePolynomial(tt.poly, compactLimits)
			require.ErrorIs(t, err, errs.ErrCorruptDigit)
		})
	}
}

func TestDecodePolynomial_DoesNotModifyInput(t *testing.T) {
	plan, err := PlanRuns([]uint32{9, 9, 4}, compactLimits)
	require.NoError(t, err)

	poly := EncodePolynomial(plan)
	snapshot := new(big.Int).Set(poly)

	_, err = DecodePolynomial(poly, compactLimits)
	require.NoError(t, err)
	require.Equal(t, 0, snapshot.Cmp(poly))
}

func BenchmarkEncodePolynomial(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	input := make([]uint32, 1000)
	for i := range input {
		input[i] = uint32(rng.Intn(300)) + 1 //nolint: gosec
	}
	plan, _ := PlanRuns(input, compactLimits)

	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		EncodePolynomial(plan)
	}
}

func BenchmarkDecodePolynomial(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	input := make([]uint32, 1000)
	for i := range input {
		input[i] = uint32(rng.Intn(300)) + 1 //nolint: gosec
	}
	plan, _ := PlanRuns(input, compactLimits)
	poly := EncodePolynomial(plan)

	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		_, _ = DecodePolynomial(poly, compactLimits)
	}
}
