// Copyright (C) 2026 The mph Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package mph

import "github.com/chmhash/mph/ints"

// resolve runs an iterative DFS over the graph, testing acyclicity and,
// if acyclic, assigning every vertex a value in [0, n) such that for
// every key i with endpoints (u, v): (value[u]+value[v]) mod n == i.
//
// Roots are visited in ascending vertex index, and within a vertex edges
// are visited in insertion order; both orders are part of the resolver's
// observable contract (a fixed PRNG seed plus a fixed insertion order
// always produces the same labeling), not implementation freedom.
//
// stats, if non-nil, accumulates traversal-stack high-water marks and
// vertex visit counts across every call made during one Build.
func (g *graph) resolve(stats *BuildStats) bool {
	n := len(g.vertices)
	stack := g.stack[:0]

	for root := 0; root < n; root++ {
		if g.vertices[root].visited {
			continue
		}

		g.vertices[root].value = 0
		stack = append(stack, stackFrame{vertex: root, parent: noParent})

		for len(stack) > 0 {
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			v, parent := frame.vertex, frame.parent

			g.vertices[v].visited = true
			if stats != nil {
				stats.VerticesExplored++
			}

			skip := true
			for _, e := range g.vertices[v].edges {
				to := e.to
				if skip && to == parent {
					skip = false
					continue
				}

				if g.vertices[to].visited {
					g.stack = stack
					return false
				}

				stack = append(stack, stackFrame{vertex: to, parent: v})
				if stats != nil && len(stack) > stats.StackPeak {
					stats.StackPeak = len(stack)
				}

				g.vertices[to].value = ints.Mod(e.label-g.vertices[v].value, n)
			}
		}
	}

	g.stack = stack

	for i := range g.vertices {
		if g.vertices[i].value < 0 {
			panic("mph: acyclic graph left a vertex unlabeled")
		}
	}

	return true
}
