package parser

type chainStep[V any] struct {
	op  func(V, V) V
	arg V
}

func chainSteps[S, V any](p *Parser[S, V], op *Parser[S, func(V, V) V]) *Parser[S, []chainStep[V]] {
	return ZeroOrMore(Map2(Then(op, p), func(f func(V, V) V, v V) chainStep[V] {
		return chainStep[V]{f, v}
	}))
}

// ChainLeft returns a parser for one or more p separated by op, combined left to right:
// for input "a op b op c" the result is (a op b) op c.
func ChainLeft[S, V any](p *Parser[S, V], op *Parser[S, func(V, V) V]) *Parser[S, V] {
	return Map2(Then(p, chainSteps(p, op)), func(first V, steps []chainStep[V]) V {
		acc := first
		for _, s := range steps {
			acc = s.op(acc, s.arg)
		}
		return acc
	})
}

// ChainRight returns a parser for one or more p separated by op, combined right to left:
// for input "a op b op c" the result is a op (b op c).
func ChainRight[S, V any](p *Parser[S, V], op *Parser[S, func(V, V) V]) *Parser[S, V] {
	return Map2(Then(p, chainSteps(p, op)), func(first V, steps []chainStep[V]) V {
		if len(steps) == 0 {
			return first
		}

		acc := steps[len(steps)-1].arg
		for i := len(steps) - 1; i >= 0; i-- {
			left := first
			if i > 0 {
				left = steps[i-1].arg
			}
			acc = steps[i].op(left, acc)
		}
		return acc
	})
}

// ChainLeftZeroOrMore is ChainLeft yielding identity when no operand matches.
func ChainLeftZeroOrMore[S, V any](p *Parser[S, V], op *Parser[S, func(V, V) V], identity V) *Parser[S, V] {
	return ChainLeft(p, op).Otherwise(identity)
}

// ChainRightZeroOrMore is ChainRight yielding identity when no operand matches.
func ChainRightZeroOrMore[S, V any](p *Parser[S, V], op *Parser[S, func(V, V) V], identity V) *Parser[S, V] {
	return ChainRight(p, op).Otherwise(identity)
}
