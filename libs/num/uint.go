package num

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Uint is a wrapper around a 256 bit unsigned integer, used for all
// balance arithmetic so amounts can never silently go negative.
type Uint struct {
	u uint256.Int
}

// NewUint creates a new Uint with the value of the uint64 passed as a parameter.
func NewUint(val uint64) *Uint {
	return &Uint{*uint256.NewInt(val)}
}

// UintZero returns a new Uint set to zero.
func UintZero() *Uint {
	return NewUint(0)
}

// UintFromBig constructs a new Uint from a big.Int,
// returns true if an overflow happened.
func UintFromBig(b *big.Int) (*Uint, bool) {
	u, overflow := uint256.FromBig(b)
	if overflow {
		return UintZero(), true
	}
	return &Uint{*u}, false
}

// UintFromDecimal truncates the decimal part and returns the integer
// value as a Uint. The second return value is true on overflow or if
// the decimal was negative.
func UintFromDecimal(d Decimal) (*Uint, bool) {
	if d.IsNegative() {
		return UintZero(), true
	}
	return UintFromBig(d.BigInt())
}

// UintFromString creates a new Uint from a string interpreted in base 10.
// Returns true if the string could not be parsed or overflowed.
func UintFromString(str string) (*Uint, bool) {
	b, ok := big.NewInt(0).SetString(str, 10)
	if !ok {
		return UintZero(), true
	}
	return UintFromBig(b)
}

// MustUintFromString works like UintFromString but panics on failure.
// Reserved for hardcoded values.
func MustUintFromString(str string) *Uint {
	u, overflow := UintFromString(str)
	if overflow {
		panic(fmt.Sprintf("invalid uint string: %q", str))
	}
	return u
}

// Min returns the smallest of the 2 numbers.
func Min(a, b *Uint) *Uint {
	if a.LT(b) {
		return a.Clone()
	}
	return b.Clone()
}

// Max returns the largest of the 2 numbers.
func Max(a, b *Uint) *Uint {
	if a.GT(b) {
		return a.Clone()
	}
	return b.Clone()
}

// Sum is shorthand for UintZero().AddSum(vals...).
func Sum(vals ...*Uint) *Uint {
	return UintZero().AddSum(vals...)
}

// Pow10 returns 10^exp, used to scale amounts between decimal precisions.
func Pow10(exp uint8) *Uint {
	ten := NewUint(10)
	out := NewUint(1)
	for i := uint8(0); i < exp; i++ {
		out.Mul(out, ten)
	}
	return out
}

func (z *Uint) Set(oth *Uint) *Uint {
	z.u.Set(&oth.u)
	return z
}

func (z Uint) Uint64() uint64 {
	return z.u.Uint64()
}

func (z Uint) BigInt() *big.Int {
	return z.u.ToBig()
}

func (z *Uint) ToDecimal() Decimal {
	return DecimalFromUint(z)
}

// Add stores x + y in z, returning z for chaining.
func (z *Uint) Add(x, y *Uint) *Uint {
	z.u.Add(&x.u, &y.u)
	return z
}

// AddSum adds all the values to z in place, so x.AddSum(y, z) is x + y + z.
func (z *Uint) AddSum(vals ...*Uint) *Uint {
	for _, x := range vals {
		z.u.Add(&z.u, &x.u)
	}
	return z
}

// Sub stores x - y in z, returning z for chaining.
func (z *Uint) Sub(x, y *Uint) *Uint {
	z.u.Sub(&x.u, &y.u)
	return z
}

// SubOverflow stores x - y in z, the second return value is true
// if the subtraction underflowed.
func (z *Uint) SubOverflow(x, y *Uint) (*Uint, bool) {
	_, underflow := z.u.SubOverflow(&x.u, &y.u)
	return z, underflow
}

// Mul stores x * y in z, returning z for chaining.
func (z *Uint) Mul(x, y *Uint) *Uint {
	z.u.Mul(&x.u, &y.u)
	return z
}

// Div stores x / y in z, returning z for chaining.
func (z *Uint) Div(x, y *Uint) *Uint {
	z.u.Div(&x.u, &y.u)
	return z
}

func (z Uint) LT(oth *Uint) bool {
	return z.u.Lt(&oth.u)
}

func (z Uint) LTE(oth *Uint) bool {
	return z.u.Lt(&oth.u) || z.u.Eq(&oth.u)
}

func (z Uint) EQ(oth *Uint) bool {
	return z.u.Eq(&oth.u)
}

func (z Uint) NEQ(oth *Uint) bool {
	return !z.u.Eq(&oth.u)
}

func (z Uint) GT(oth *Uint) bool {
	return z.u.Gt(&oth.u)
}

func (z Uint) GTE(oth *Uint) bool {
	return z.u.Gt(&oth.u) || z.u.Eq(&oth.u)
}

func (z Uint) IsZero() bool {
	return z.u.IsZero()
}

// Clone returns a copy of the value, the equivalent of x := z.
func (z Uint) Clone() *Uint {
	return &Uint{z.u}
}

func (z Uint) String() string {
	return z.u.ToBig().String()
}

// Format implements fmt.Formatter.
func (z Uint) Format(s fmt.State, ch rune) {
	z.u.Format(s, ch)
}

// MarshalJSON encodes the value as a decimal string, amounts routinely
// exceed what JSON numbers can represent losslessly.
func (z Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

func (z *Uint) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	u, overflow := UintFromString(s)
	if overflow {
		return fmt.Errorf("invalid uint value: %s", string(data))
	}
	z.u.Set(&u.u)
	return nil
}
