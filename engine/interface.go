package engine

import (
	"fmt"
	"math"
)

// Interface is a capacity-bounded resource with a linear+quadratic cost
// function. It is an immutable value: construct via NewInterface and do not
// modify afterward.
type Interface struct {
	Name           string
	Capacity       float64
	LinearCoeff    float64
	QuadraticCoeff float64
}

// NewInterface validates and constructs an Interface. Degenerate inputs
// (empty name, non-positive capacity, non-positive linear coefficient,
// negative quadratic coefficient) are rejected here, never at routing time.
func NewInterface(name string, capacity, linearCoeff, quadraticCoeff float64) (Interface, error) {
	if name == "" {
		return Interface{}, fmt.Errorf("interface name must not be empty")
	}
	if capacity <= 0 {
		return Interface{}, fmt.Errorf("interface %q: capacity must be > 0, got %g", name, capacity)
	}
	if linearCoeff <= 0 {
		return Interface{}, fmt.Errorf("interface %q: linear coefficient must be > 0, got %g", name, linearCoeff)
	}
	if quadraticCoeff < 0 {
		return Interface{}, fmt.Errorf("interface %q: quadratic coefficient must be >= 0, got %g", name, quadraticCoeff)
	}
	return Interface{
		Name:           name,
		Capacity:       capacity,
		LinearCoeff:    linearCoeff,
		QuadraticCoeff: quadraticCoeff,
	}, nil
}

// Cost returns the enforcement cost of carrying n load units:
//
//	cost(n) = linear*n + quadratic*n*(n-1)/2
//
// Cost(0) == 0 and Cost is strictly increasing in n for valid coefficients.
func (i Interface) Cost(n int) float64 {
	if n <= 0 {
		return 0
	}
	fn := float64(n)
	return i.LinearCoeff*fn + i.QuadraticCoeff*fn*(fn-1)/2
}

// Headroom returns capacity minus the cost at load n.
func (i Interface) Headroom(n int) float64 {
	return i.Capacity - i.Cost(n)
}

// MaxFeasibleLoad returns the largest n with Cost(n) <= Capacity, clamped to
// bound. For quadratic cost it solves the positive root of
// q/2*n^2 + (l - q/2)*n - C = 0; for pure linear cost it is floor(C/l).
func (i Interface) MaxFeasibleLoad(bound int) int {
	if bound <= 0 {
		panic(fmt.Sprintf("MaxFeasibleLoad: bound must be > 0, got %d", bound))
	}
	var n int
	if i.QuadraticCoeff > 0 {
		a := i.QuadraticCoeff / 2
		b := i.LinearCoeff - i.QuadraticCoeff/2
		c := -i.Capacity
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0
		}
		n = int(math.Floor((-b + math.Sqrt(disc)) / (2 * a)))
	} else {
		n = int(math.Floor(i.Capacity / i.LinearCoeff))
	}
	if n < 0 {
		n = 0
	}
	if n > bound {
		n = bound
	}
	return n
}
