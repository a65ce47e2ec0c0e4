// SPDX-License-Identifier: MIT

package region

import (
	"container/list"
	"errors"
	"iter"
	"math"
	"slices"

	"github.com/bachm/grid"
)

// ErrComponentIndex indicates a requested component index is out of range.
var ErrComponentIndex = errors.New("region: component index out of range")

// Connectivity selects which cells count as neighbours.
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbour deltas for c, clockwise from north.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Neighbors yields the in-bounds neighbours of p, clockwise from north.
func Neighbors[T any](a *grid.Array2[T], p grid.Pos, conn Connectivity) iter.Seq[grid.Pos] {
	return func(yield func(grid.Pos) bool) {
		for _, d := range conn.Offsets() {
			q := grid.Pos{X: p.X + d[0], Y: p.Y + d[1]}
			if !a.InBounds(q.X, q.Y) {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// Components returns the connected regions of cells for which keep reports
// true. Regions are ordered by their first cell in row-major order.
func Components[T any](a *grid.Array2[T], keep func(T) bool, conn Connectivity) [][]grid.Pos {
	w := a.Width()
	accepted := acceptMask(a, keep)
	seen := make([]bool, len(accepted))
	var comps [][]grid.Pos

	for i0, ok := range accepted {
		if !ok || seen[i0] {
			continue
		}
		// BFS from the first unseen cell of a new region
		seen[i0] = true
		queue := []grid.Pos{{X: i0 % w, Y: i0 / w}}
		for qi := 0; qi < len(queue); qi++ {
			for q := range Neighbors(a, queue[qi], conn) {
				i := q.X + q.Y*w
				if accepted[i] && !seen[i] {
					seen[i] = true
					queue = append(queue, q)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Labels returns a new array of a's shape holding each cell's component index
// as ordered by Components, or -1 for rejected cells. opts configure the
// returned array.
func Labels[T any](a *grid.Array2[T], keep func(T) bool, conn Connectivity, opts ...grid.Option) (*grid.Array2[int], error) {
	labels, err := grid.FromElem(a.Width(), a.Height(), -1, opts...)
	if err != nil {
		return nil, err
	}
	for id, comp := range Components(a, keep, conn) {
		for _, p := range comp {
			labels.Set(p.X, p.Y, id)
		}
	}
	return labels, nil
}

// Bridge returns the cheapest path from any cell of component src to any cell
// of component dst, as indexed by Components. Each rejected cell on the path
// costs 1; accepted cells are free. The path includes both end cells.
func Bridge[T any](a *grid.Array2[T], keep func(T) bool, conn Connectivity, src, dst int) (path []grid.Pos, cost int, err error) {
	comps := Components(a, keep, conn)
	if src < 0 || src >= len(comps) || dst < 0 || dst >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	w := a.Width()
	accepted := acceptMask(a, keep)
	target := make([]bool, len(accepted))
	for _, p := range comps[dst] {
		target[p.X+p.Y*w] = true
	}

	dist := make([]int, len(accepted))
	prev := make([]int, len(accepted))
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	// 0-1 BFS: free steps at the front, paid steps at the back
	dq := list.New()
	for _, p := range comps[src] {
		i := p.X + p.Y*w
		dist[i] = 0
		dq.PushBack(i)
	}

	// every cell is passable, so a target is always reached
	end := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if target[u] {
			end = u
			break
		}
		for q := range Neighbors(a, grid.Pos{X: u % w, Y: u / w}, conn) {
			v := q.X + q.Y*w
			step := 1
			if accepted[v] {
				step = 0
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for at := end; at >= 0; at = prev[at] {
		path = append(path, grid.Pos{X: at % w, Y: at / w})
	}
	slices.Reverse(path)
	return path, dist[end], nil
}

// acceptMask evaluates keep once per cell in row-major order.
func acceptMask[T any](a *grid.Array2[T], keep func(T) bool) []bool {
	mask := make([]bool, 0, a.Len())
	for v := range a.Iter() {
		mask = append(mask, keep(v))
	}
	return mask
}
