package engine

import "fmt"

// LoadVector maps interface names to non-negative integer loads.
// A missing key reads as zero at the accessor; zero entries are not stored.
// All arithmetic methods return a new vector and leave the receiver intact.
type LoadVector map[string]int

// NewLoadVector returns an empty load vector.
func NewLoadVector() LoadVector {
	return make(LoadVector)
}

// Load returns the load on the named interface, zero if absent.
func (lv LoadVector) Load(name string) int {
	return lv[name]
}

// Clone returns an independent copy of the vector.
func (lv LoadVector) Clone() LoadVector {
	out := make(LoadVector, len(lv))
	for name, n := range lv {
		if n != 0 {
			out[name] = n
		}
	}
	return out
}

// AddScaled returns lv + scale*other. Panics if any resulting entry would be
// negative: callers must never subtract more load than is present.
func (lv LoadVector) AddScaled(other LoadVector, scale int) LoadVector {
	out := lv.Clone()
	for name, n := range other {
		next := out[name] + scale*n
		if next < 0 {
			panic(fmt.Sprintf("LoadVector: negative load %d on %q", next, name))
		}
		if next == 0 {
			delete(out, name)
		} else {
			out[name] = next
		}
	}
	return out
}

// Add returns the pointwise sum lv + other.
func (lv LoadVector) Add(other LoadVector) LoadVector {
	return lv.AddScaled(other, 1)
}

// Sub returns the pointwise difference lv - other.
// Panics if any entry would go negative.
func (lv LoadVector) Sub(other LoadVector) LoadVector {
	return lv.AddScaled(other, -1)
}

// Equal reports content equality, treating missing keys as zero.
func (lv LoadVector) Equal(other LoadVector) bool {
	for name, n := range lv {
		if other[name] != n {
			return false
		}
	}
	for name, n := range other {
		if lv[name] != n {
			return false
		}
	}
	return true
}

// Total returns the sum of all loads.
func (lv LoadVector) Total() int {
	total := 0
	for _, n := range lv {
		total += n
	}
	return total
}
