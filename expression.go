// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package acir

// MulTerm is a single quadratic term coefficient*w1*w2.
type MulTerm struct {
	Coefficient F
	Left        Witness
	Right       Witness
}

// LinearTerm is a single linear term coefficient*w.
type LinearTerm struct {
	Coefficient F
	Witness     Witness
}

// Expression is a multivariate polynomial of total degree at most
// two: a sum of quadratic terms, linear terms, and a constant.
//
// Every Expression this package produces satisfies deg(E) <= 2; there
// is no public constructor that can exceed it other than Mul, which
// refuses to build one.
type Expression struct {
	MulTerms            []MulTerm
	LinearCombinations  []LinearTerm
	QC                  F
}

// NewExpressionConstant builds the constant expression q_c.
func NewExpressionConstant(c F) Expression {
	return Expression{QC: c}
}

// NewExpressionWitness builds the degree-1 expression 1*w + 0.
func NewExpressionWitness(w Witness) Expression {
	return Expression{LinearCombinations: []LinearTerm{{Coefficient: FieldOne(), Witness: w}}}
}

// degree returns the total degree of e: 2 if any mul term has a
// nonzero coefficient, 1 if any linear term has a nonzero coefficient,
// else 0.
func (e Expression) degree() int {
	for _, t := range e.MulTerms {
		if !fieldIsZero(t.Coefficient) {
			return 2
		}
	}
	for _, t := range e.LinearCombinations {
		if !fieldIsZero(t.Coefficient) {
			return 1
		}
	}
	return 0
}

// IsLinear reports whether e has degree at most one.
func (e Expression) IsLinear() bool {
	return e.degree() <= 1
}

// IsConst reports whether e has degree zero.
func (e Expression) IsConst() bool {
	return e.degree() == 0
}

// ToWitness returns the underlying witness iff e is exactly 1*w + 0
// for some w, i.e. no mul terms, exactly one linear term with
// coefficient one, and a zero constant.
func (e Expression) ToWitness() (Witness, bool) {
	if len(e.MulTerms) != 0 || len(e.LinearCombinations) != 1 {
		return 0, false
	}
	if !fieldIsZero(e.QC) {
		return 0, false
	}
	term := e.LinearCombinations[0]
	if !fieldEqual(term.Coefficient, FieldOne()) {
		return 0, false
	}
	return term.Witness, true
}

// Add returns e + other.
func (e Expression) Add(other Expression) Expression {
	out := Expression{
		MulTerms:           append(append([]MulTerm{}, e.MulTerms...), other.MulTerms...),
		LinearCombinations: append(append([]LinearTerm{}, e.LinearCombinations...), other.LinearCombinations...),
		QC:                 fieldAdd(e.QC, other.QC),
	}
	return out.canonicalize()
}

// mulTermKey identifies a mul term's variable pair, treating (a,b)
// and (b,a) as the same term (multiplication commutes).
type mulTermKey struct{ a, b Witness }

func canonicalMulKey(l, r Witness) mulTermKey {
	if l <= r {
		return mulTermKey{l, r}
	}
	return mulTermKey{r, l}
}

// canonicalize merges mul terms sharing a variable pair and linear
// terms sharing a witness, summing coefficients, then drops any term
// whose summed coefficient is zero. Term order after canonicalize is
// first-occurrence order, matching the order the terms had before
// merging (stable for the common case where no merging occurs).
func (e Expression) canonicalize() Expression {
	mulOrder := make([]mulTermKey, 0, len(e.MulTerms))
	mulSums := make(map[mulTermKey]F, len(e.MulTerms))
	mulWitnesses := make(map[mulTermKey][2]Witness, len(e.MulTerms))
	for _, t := range e.MulTerms {
		key := canonicalMulKey(t.Left, t.Right)
		if _, ok := mulSums[key]; !ok {
			mulOrder = append(mulOrder, key)
			mulWitnesses[key] = [2]Witness{t.Left, t.Right}
		}
		mulSums[key] = fieldAdd(mulSums[key], t.Coefficient)
	}
	mulTerms := make([]MulTerm, 0, len(mulOrder))
	for _, key := range mulOrder {
		coeff := mulSums[key]
		if fieldIsZero(coeff) {
			continue
		}
		ws := mulWitnesses[key]
		mulTerms = append(mulTerms, MulTerm{Coefficient: coeff, Left: ws[0], Right: ws[1]})
	}

	linOrder := make([]Witness, 0, len(e.LinearCombinations))
	linSums := make(map[Witness]F, len(e.LinearCombinations))
	for _, t := range e.LinearCombinations {
		if _, ok := linSums[t.Witness]; !ok {
			linOrder = append(linOrder, t.Witness)
		}
		linSums[t.Witness] = fieldAdd(linSums[t.Witness], t.Coefficient)
	}
	linTerms := make([]LinearTerm, 0, len(linOrder))
	for _, w := range linOrder {
		coeff := linSums[w]
		if fieldIsZero(coeff) {
			continue
		}
		linTerms = append(linTerms, LinearTerm{Coefficient: coeff, Witness: w})
	}

	return Expression{MulTerms: mulTerms, LinearCombinations: linTerms, QC: e.QC}
}

// Sub returns e - other.
func (e Expression) Sub(other Expression) Expression {
	return e.Add(other.MulScalar(fieldNeg(FieldOne())))
}

// SubWitness returns e - w, used when reducing an expression to a
// fresh witness (constraint := expression - fresh_witness).
func (e Expression) SubWitness(w Witness) Expression {
	return e.Sub(NewExpressionWitness(w))
}

// MulScalar returns e scaled by the constant c.
func (e Expression) MulScalar(c F) Expression {
	out := Expression{
		MulTerms:           make([]MulTerm, len(e.MulTerms)),
		LinearCombinations: make([]LinearTerm, len(e.LinearCombinations)),
		QC:                 fieldMul(e.QC, c),
	}
	for i, t := range e.MulTerms {
		out.MulTerms[i] = MulTerm{Coefficient: fieldMul(t.Coefficient, c), Left: t.Left, Right: t.Right}
	}
	for i, t := range e.LinearCombinations {
		out.LinearCombinations[i] = LinearTerm{Coefficient: fieldMul(t.Coefficient, c), Witness: t.Witness}
	}
	return out
}

// AddMul returns e + c*other, used by radix_le_decompose to
// accumulate Σ limb_i * radix^i without an intermediate allocation
// per term.
func (e Expression) AddMul(c F, other Expression) Expression {
	return e.Add(other.MulScalar(c))
}

// Mul returns lhs*rhs, or ok=false if the product would exceed degree
// two (i.e. both operands already have a nonzero quadratic part, or
// one is quadratic and the other is not constant).
func (e Expression) Mul(other Expression) (Expression, bool) {
	degSum := e.degree() + other.degree()
	if degSum > 2 {
		return Expression{}, false
	}
	var out Expression
	out.QC = fieldMul(e.QC, other.QC)

	// const(e) * other
	if !fieldIsZero(e.QC) {
		scaled := other.MulScalar(e.QC)
		out.MulTerms = append(out.MulTerms, scaled.MulTerms...)
		out.LinearCombinations = append(out.LinearCombinations, scaled.LinearCombinations...)
	}
	// e_linear * const(other)
	if !fieldIsZero(other.QC) {
		for _, t := range e.LinearCombinations {
			out.LinearCombinations = append(out.LinearCombinations, LinearTerm{
				Coefficient: fieldMul(t.Coefficient, other.QC),
				Witness:     t.Witness,
			})
		}
		for _, t := range e.MulTerms {
			out.MulTerms = append(out.MulTerms, MulTerm{
				Coefficient: fieldMul(t.Coefficient, other.QC),
				Left:        t.Left,
				Right:       t.Right,
			})
		}
	}
	// e_linear * other_linear -> quadratic terms
	for _, a := range e.LinearCombinations {
		for _, b := range other.LinearCombinations {
			out.MulTerms = append(out.MulTerms, MulTerm{
				Coefficient: fieldMul(a.Coefficient, b.Coefficient),
				Left:        a.Witness,
				Right:       b.Witness,
			})
		}
	}
	return out.canonicalize(), true
}

// equalStructural compares e and other term-for-term in stored order,
// with no canonicalisation pass. This is the structural equality used
// by mul_with_witness's same-operand fast path (see SPEC_FULL.md §5
// Open Questions).
func (e Expression) equalStructural(other Expression) bool {
	if !fieldEqual(e.QC, other.QC) {
		return false
	}
	if len(e.MulTerms) != len(other.MulTerms) || len(e.LinearCombinations) != len(other.LinearCombinations) {
		return false
	}
	for i := range e.MulTerms {
		a, b := e.MulTerms[i], other.MulTerms[i]
		if a.Left != b.Left || a.Right != b.Right || !fieldEqual(a.Coefficient, b.Coefficient) {
			return false
		}
	}
	for i := range e.LinearCombinations {
		a, b := e.LinearCombinations[i], other.LinearCombinations[i]
		if a.Witness != b.Witness || !fieldEqual(a.Coefficient, b.Coefficient) {
			return false
		}
	}
	return true
}
