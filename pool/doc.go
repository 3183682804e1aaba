// Package pool provides a fixed-size typed object pool.
//
// A Pool reserves storage for a fixed number of objects up front and hands
// out stable pointers into that storage. Slots freed with Delete are reused
// by later Create calls; the pool never allocates after New.
//
//	p, _ := pool.New[Widget](8)
//	w, err := p.Create(Widget{Name: "a"})
//	idx, _ := p.Position(w)
//	_ = p.Delete(idx)
package pool
