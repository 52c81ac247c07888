package eos

import (
	"fmt"
	"strings"
)

// Variant は一般化三次状態方程式の種類を表す。
type Variant int

const (
	SRK  Variant = iota + 1 // Soave-Redlich-Kwong, d1 = 1
	PR                      // Peng-Robinson, d1 = 1 + √2
	RKPR                    // Redlich-Kwong-Peng-Robinson, d1 = f(Z_c)
)

var variantNames = map[Variant]string{
	SRK:  "SRK",
	PR:   "PR",
	RKPR: "RKPR",
}

func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant returns the variant named s (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown EOS: %s", ErrConfiguration, s)
}

// Variants returns the supported variants in their canonical order.
func Variants() []Variant {
	return []Variant{SRK, PR, RKPR}
}
