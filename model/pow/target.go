package pow

import (
	"math/big"
)

// Target is an immutable proof-of-work threshold. Every operation returns a
// new value, so a Target can be shared between goroutines.
type Target struct {
	n *big.Int
}

func NewTarget(n *big.Int) Target {
	if n == nil {
		return Target{n: new(big.Int)}
	}
	return Target{n: new(big.Int).Set(n)}
}

// TargetFromCompact decodes bits, failing on overflow or a negative value.
func TargetFromCompact(bits uint32) (Target, error) {
	n, err := DecodeCompact(bits)
	if err != nil {
		return Target{}, err
	}
	return Target{n: n}, nil
}

func (t Target) value() *big.Int {
	if t.n == nil {
		return new(big.Int)
	}
	return t.n
}

// Big returns a copy of the underlying integer.
func (t Target) Big() *big.Int {
	return new(big.Int).Set(t.value())
}

func (t Target) Compact() uint32 {
	return BigToCompact(t.value())
}

func (t Target) Cmp(other Target) int {
	return t.value().Cmp(other.value())
}

func (t Target) Sign() int {
	return t.value().Sign()
}

// Mul returns t*m. A non-positive multiplier leaves t unchanged.
func (t Target) Mul(m int64) Target {
	if m <= 0 {
		return t
	}
	return Target{n: new(big.Int).Mul(t.value(), big.NewInt(m))}
}

// Div returns t/d truncated toward zero. A non-positive divisor leaves t
// unchanged.
func (t Target) Div(d int64) Target {
	if d <= 0 {
		return t
	}
	return Target{n: new(big.Int).Quo(t.value(), big.NewInt(d))}
}

// Scale returns t*num/den with the multiplication done first. When either
// side is not positive the ratio is taken as 1.
func (t Target) Scale(num, den int64) Target {
	if num <= 0 || den <= 0 {
		return t
	}
	n := new(big.Int).Mul(t.value(), big.NewInt(num))
	return Target{n: n.Quo(n, big.NewInt(den))}
}

// Clamp returns the smaller of t and limit.
func (t Target) Clamp(limit *big.Int) Target {
	if t.value().Cmp(limit) > 0 {
		return NewTarget(limit)
	}
	return t
}

// Average folds next into a running mean over count samples:
// t + (next - t)/count, the quotient truncated toward zero.
func (t Target) Average(next Target, count int64) Target {
	if count <= 0 {
		return t
	}
	n := new(big.Int).Sub(next.value(), t.value())
	n.Quo(n, big.NewInt(count))
	return Target{n: n.Add(n, t.value())}
}

func (t Target) String() string {
	return t.value().Text(16)
}
