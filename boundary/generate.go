package boundary

import (
	"fmt"
	"math/big"
	"slices"

	"conversion-oracle/conversion"
	"conversion-oracle/primitive"
)

// DefaultSources is the section order of a generated suite.
var DefaultSources = []primitive.KindEnum{
	primitive.KindUint8, primitive.KindInt8,
	primitive.KindUint16, primitive.KindInt16,
	primitive.KindUint32, primitive.KindInt32,
	primitive.KindUint64, primitive.KindInt64,
	primitive.KindUint, primitive.KindInt,
	primitive.KindFloat16, primitive.KindFloat32, primitive.KindFloat64, primitive.KindFloat80,
}

// halfwayKinds contribute max+0.5 and min-0.5 candidates to every float section.
var halfwayKinds = []primitive.KindEnum{
	primitive.KindInt8, primitive.KindUint8,
	primitive.KindInt16, primitive.KindUint16,
	primitive.KindInt32, primitive.KindUint32,
	primitive.KindInt64, primitive.KindUint64,
}

type Options struct {
	// Sources limits the generated sections; nil means DefaultSources.
	Sources []primitive.KindEnum
}

// Generate builds the boundary suite of an integer target kind.
func Generate(target primitive.KindEnum, opts Options) (*Suite, error) {
	if !target.IsInteger() {
		return nil, fmt.Errorf("boundary: target %s is not an integer kind", target)
	}

	sources := opts.Sources
	if sources == nil {
		sources = DefaultSources
	}

	suite := &Suite{
		Name:        "To" + target.Name(),
		Target:      target,
		PointerBits: primitive.KindInt.Bits(),
	}

	for _, source := range sources {
		var section Section
		switch {
		case source.IsInteger():
			section = integerSection(source, target)
		case source.IsFloat():
			section = floatSection(source, target)
		default:
			return nil, fmt.Errorf("boundary: source %s is not a numeric kind", source)
		}

		suite.Sections = append(suite.Sections, section)
	}

	return suite, nil
}

type builder struct {
	groups map[Class][]Case
}

func (b *builder) add(class Class, c Case) {
	if b.groups == nil {
		b.groups = make(map[Class][]Case)
	}

	b.groups[class] = append(b.groups[class], c)
}

func (b *builder) section(source primitive.KindEnum, lo, hi *big.Int) Section {
	section := Section{Source: source, Min: literal(lo), Max: literal(hi)}
	for _, class := range []Class{NeverTraps, NeverFails, AlwaysTraps, AlwaysFails} {
		if cases := b.groups[class]; len(cases) > 0 {
			section.Groups = append(section.Groups, Group{Class: class, Cases: cases})
		}
	}

	return section
}

func integerSection(source, target primitive.KindEnum) Section {
	one := big.NewInt(1)
	candidates := []*big.Int{
		source.Min(),
		new(big.Int).Sub(target.Min(), one),
		target.Min(),
		new(big.Int),
		target.Max(),
		new(big.Int).Add(target.Max(), one),
		source.Max(),
	}

	candidates = slices.DeleteFunc(candidates, func(n *big.Int) bool { return !source.Contains(n) })
	slices.SortFunc(candidates, func(a, b *big.Int) int { return a.Cmp(b) })
	candidates = slices.CompactFunc(candidates, func(a, b *big.Int) bool { return a.Cmp(b) == 0 })

	var b builder
	for _, n := range candidates {
		src := literal(n)
		if target.Contains(n) {
			b.add(NeverTraps, Case{Source: src, Expected: literal(n)})
			b.add(NeverFails, Case{Source: src, Expected: literal(n)})
			continue
		}

		b.add(AlwaysTraps, Case{Source: src})
		b.add(AlwaysFails, Case{Source: src, Truncated: literal(target.Wrap(n))})
	}

	return b.section(source, source.Min(), source.Max())
}

func floatSection(source, target primitive.KindEnum) Section {
	var b builder

	for _, x := range floatCandidates(source, target) {
		src := conversion.RoundFloat(source, x).String()

		truncated, _ := x.Int(nil)
		if target.Contains(truncated) {
			b.add(NeverTraps, Case{Source: src, Expected: literal(truncated)})
		} else {
			b.add(AlwaysTraps, Case{Source: src})
		}

		if x.IsInt() && target.Contains(truncated) {
			b.add(NeverFails, Case{Source: src, Expected: literal(truncated)})
		} else {
			b.add(AlwaysFails, Case{Source: src})
		}
	}

	for _, special := range []string{"-.infinity", "-.nan", "-.signalingNaN", "+.infinity", "+.nan", "+.signalingNaN"} {
		b.add(AlwaysTraps, Case{Source: special})
		b.add(AlwaysFails, Case{Source: special})
	}

	exact := new(big.Int).Sub(source.MaxExactInteger(), big.NewInt(1))
	return b.section(source, new(big.Int).Neg(exact), exact)
}

// floatCandidates returns the finite values exactly representable in source,
// ascending, with negative zero right before positive zero.
func floatCandidates(source, target primitive.KindEnum) []*big.Float {
	const prec = 256

	one := big.NewInt(1)
	half := big.NewFloat(0.5)
	exactLimit := new(big.Int).Sub(source.MaxExactInteger(), one)

	integers := []*big.Int{
		big.NewInt(-1),
		new(big.Int).Neg(exactLimit),
		exactLimit,
		target.Min(),
		new(big.Int).Sub(target.Min(), one),
		target.Max(),
		new(big.Int).Add(target.Max(), one),
	}

	// past the exponent range the nearest float is the largest finite one
	maxFinite := source.MaxFinite()
	clamp := func(x *big.Float) *big.Float {
		if new(big.Float).Abs(x).Cmp(maxFinite) <= 0 {
			return x
		}

		res := new(big.Float).SetPrec(prec).Set(maxFinite)
		if x.Signbit() {
			res.Neg(res)
		}

		return res
	}

	var values []*big.Float
	for _, n := range integers {
		x := new(big.Float).SetPrec(prec).SetInt(n)
		values = append(values, x)

		// nearest floats around a bound the source cannot hold exactly
		p := uint(source.SignificandBits())
		values = append(values,
			clamp(new(big.Float).SetPrec(p).SetMode(big.ToNegativeInf).Set(x)),
			clamp(new(big.Float).SetPrec(p).SetMode(big.ToPositiveInf).Set(x)),
		)
	}

	values = append(values, new(big.Float).Neg(half), half)
	for _, k := range halfwayKinds {
		hi := new(big.Float).SetPrec(prec).SetInt(k.Max())
		values = append(values, hi.Add(hi, half))

		if k.IsSigned() {
			lo := new(big.Float).SetPrec(prec).SetInt(k.Min())
			values = append(values, lo.Sub(lo, half))
		}
	}

	values = slices.DeleteFunc(values, func(x *big.Float) bool {
		return x.Sign() == 0 || !conversion.IsExactIn(source, x)
	})
	slices.SortFunc(values, func(a, b *big.Float) int { return a.Cmp(b) })
	values = slices.CompactFunc(values, func(a, b *big.Float) bool { return a.Cmp(b) == 0 })

	negZero := new(big.Float).Neg(new(big.Float))
	at, _ := slices.BinarySearchFunc(values, negZero, func(a, b *big.Float) int { return a.Cmp(b) })

	return slices.Insert(values, at, negZero, new(big.Float))
}

func literal(n *big.Int) string {
	if n.Sign() < 0 {
		return n.String()
	}

	return "+" + n.String()
}
