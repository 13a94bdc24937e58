package common

import (
	"fmt"
	"math/big"
)

type Hugeint struct {
	Lower uint64
	Upper int64
}

var (
	hugeintMin = new(big.Int).Lsh(big.NewInt(-1), 127)
	hugeintMax = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	hugeintMod = new(big.Int).Lsh(big.NewInt(1), 128)
	lower64    = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))
)

// HugeintFromString parses a decimal literal into the two halves.
// Negative values land in two's complement form.
func HugeintFromString(s string) (Hugeint, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Hugeint{}, fmt.Errorf("bad hugeint %s", s)
	}
	if v.Cmp(hugeintMin) < 0 || v.Cmp(hugeintMax) > 0 {
		return Hugeint{}, fmt.Errorf("hugeint out of range %s", s)
	}
	if v.Sign() < 0 {
		v.Add(v, hugeintMod)
	}
	return Hugeint{
		Lower: new(big.Int).And(v, lower64).Uint64(),
		Upper: int64(new(big.Int).Rsh(v, 64).Uint64()),
	}, nil
}

func (h Hugeint) String() string {
	v := big.NewInt(h.Upper)
	v.Lsh(v, 64)
	v.Add(v, new(big.Int).SetUint64(h.Lower))
	return v.String()
}

func (h *Hugeint) Equal(o *Hugeint) bool {
	return h.Lower == o.Lower && h.Upper == o.Upper
}

// Less is the signed 128-bit order: the upper half decides,
// the lower half breaks ties as an unsigned quantity.
func (h *Hugeint) Less(o *Hugeint) bool {
	if h.Upper != o.Upper {
		return h.Upper < o.Upper
	}
	return h.Lower < o.Lower
}
