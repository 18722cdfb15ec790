package num

// Int is a signed magnitude wrapper over Uint, used for balance deltas
// where a negative value means withdrawal or repayment.
type Int struct {
	// U is the magnitude.
	U *Uint
	// s is the sign, true for positive. Zero is always positive.
	s bool
}

// NewInt creates a new Int with the value of the int64 passed in.
func NewInt(val int64) *Int {
	if val < 0 {
		return &Int{
			U: NewUint(uint64(-val)),
			s: false,
		}
	}
	return &Int{
		U: NewUint(uint64(val)),
		s: true,
	}
}

// IntZero returns a new Int set to zero.
func IntZero() *Int {
	return NewInt(0)
}

// IntFromString parses a base 10 integer with an optional leading minus
// sign, the bool is true on failure.
func IntFromString(s string) (*Int, bool) {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	u, overflow := UintFromString(s)
	if overflow {
		return nil, true
	}
	return IntFromUint(u, !neg), false
}

// IntFromUint creates an Int with the given magnitude, s true for positive.
func IntFromUint(u *Uint, s bool) *Int {
	if u.IsZero() {
		s = true
	}
	return &Int{
		U: u.Clone(),
		s: s,
	}
}

func (i Int) IsZero() bool {
	return i.U.IsZero()
}

func (i Int) IsPositive() bool {
	return i.s && !i.IsZero()
}

func (i Int) IsNegative() bool {
	return !i.s && !i.IsZero()
}

// FlipSign negates the value in place.
func (i *Int) FlipSign() {
	if i.IsZero() {
		return
	}
	i.s = !i.s
}

func (i Int) Clone() *Int {
	return &Int{
		U: i.U.Clone(),
		s: i.s,
	}
}

func (i Int) GT(oth *Int) bool {
	if i.s != oth.s {
		return i.s
	}
	if i.s {
		return i.U.GT(oth.U)
	}
	return i.U.LT(oth.U)
}

func (i Int) LT(oth *Int) bool {
	return !i.GT(oth) && !i.EQ(oth)
}

func (i Int) EQ(oth *Int) bool {
	return i.s == oth.s && i.U.EQ(oth.U)
}

// AddSum adds the given values in place, returning i for chaining.
func (i *Int) AddSum(vals ...*Int) *Int {
	for _, x := range vals {
		if x.s == i.s {
			i.U.AddSum(x.U)
			continue
		}
		if i.U.GTE(x.U) {
			i.U.Sub(i.U, x.U)
		} else {
			i.U.Sub(x.U, i.U)
			i.s = x.s
		}
	}
	if i.U.IsZero() {
		i.s = true
	}
	return i
}

// ApplyTo adds the delta to the unsigned value, the second return is false
// if the result would go negative.
func (i Int) ApplyTo(u *Uint) (*Uint, bool) {
	if i.s {
		return Sum(u, i.U), true
	}
	if u.LT(i.U) {
		return UintZero(), false
	}
	return UintZero().Sub(u, i.U), true
}

func (i Int) String() string {
	if i.IsNegative() {
		return "-" + i.U.String()
	}
	return i.U.String()
}
