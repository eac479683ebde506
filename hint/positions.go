package hint

import "github.com/bits-and-blooms/bitset"

// Positions is a set of 0-based indices into the word.
type Positions struct {
	b bitset.BitSet
}

func NewPositions(idx ...int) *Positions {
	p := &Positions{}
	for _, i := range idx {
		p.Add(i)
	}
	return p
}

func (p *Positions) Add(i int) {
	p.b.Set(uint(i))
}

func (p *Positions) Has(i int) bool {
	return p.b.Test(uint(i))
}

func (p *Positions) Len() int {
	return int(p.b.Count())
}

func (p *Positions) Union(o *Positions) {
	p.b.InPlaceUnion(&o.b)
}

func (p *Positions) Overlaps(o *Positions) bool {
	return p.b.IntersectionCardinality(&o.b) > 0
}

func (p *Positions) Clone() *Positions {
	return &Positions{b: *p.b.Clone()}
}

// Slice returns the indices in ascending order.
func (p *Positions) Slice() []int {
	ret := make([]int, 0, p.Len())
	for i, ok := p.b.NextSet(0); ok; i, ok = p.b.NextSet(i + 1) {
		ret = append(ret, int(i))
	}
	return ret
}
