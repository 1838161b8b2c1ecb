package packet

// VersionSum returns the packet's version plus the version sums of all its
// descendants.
func (p *Packet) VersionSum() uint64 {
	sum := uint64(p.Version)
	for _, c := range p.Children() {
		sum += c.VersionSum()
	}
	return sum
}

// Evaluate computes the numeric value of the packet tree. Children are
// evaluated first and the first child error aborts evaluation. Sums and
// products wrap modulo 2^64.
func (p *Packet) Evaluate() (uint64, error) {
	switch pl := p.Payload.(type) {
	case Literal:
		return pl.Value, nil
	case Operator:
		terms := make([]uint64, 0, len(pl.Children))
		for _, c := range pl.Children {
			v, err := c.Evaluate()
			if err != nil {
				return 0, err
			}
			terms = append(terms, v)
		}
		return apply(p.TypeID, terms)
	default:
		return 0, &EvalError{TypeID: p.TypeID, Err: ErrInvalidOperator}
	}
}

func apply(t TypeID, terms []uint64) (uint64, error) {
	switch t {
	case TypeSum:
		var sum uint64
		for _, v := range terms {
			sum += v
		}
		return sum, nil

	case TypeProduct:
		product := uint64(1)
		for _, v := range terms {
			product *= v
		}
		return product, nil

	case TypeMinimum, TypeMaximum:
		if len(terms) == 0 {
			return 0, &EvalError{TypeID: t, Err: ErrArity}
		}
		best := terms[0]
		for _, v := range terms[1:] {
			if (t == TypeMinimum && v < best) || (t == TypeMaximum && v > best) {
				best = v
			}
		}
		return best, nil

	case TypeGreater, TypeLess, TypeEqual:
		if len(terms) != 2 {
			return 0, &EvalError{TypeID: t, Terms: len(terms), Err: ErrArity}
		}
		var hit bool
		switch t {
		case TypeGreater:
			hit = terms[0] > terms[1]
		case TypeLess:
			hit = terms[0] < terms[1]
		default:
			hit = terms[0] == terms[1]
		}
		if hit {
			return 1, nil
		}
		return 0, nil
	}

	return 0, &EvalError{TypeID: t, Terms: len(terms), Err: ErrInvalidOperator}
}
