package localsearch

import (
	"sort"

	"github.com/twocycletsp/solver/instance"
	"github.com/twocycletsp/solver/move"
	"github.com/twocycletsp/solver/solution"
)

// moveKey canonicalizes a Move for deduplication within the cached list.
type moveKey struct {
	kind       move.Kind
	v1, v2     int
	a, b, c, d int
	cycle      solution.CycleID
}

func keyOf(m move.Move) moveKey {
	return moveKey{kind: m.Kind, v1: m.V1, v2: m.V2, a: m.A, b: m.B, c: m.C, d: m.D, cycle: m.Cycle}
}

// runMoveListSteepest maintains a priority cache of improving moves,
// incrementally repairing it after each apply instead of re-enumerating the
// whole neighborhood. Both the affected-node purge and the per-pop
// validity recheck are required — omitting either lets stale deltas
// survive.
func runMoveListSteepest(inst *instance.Instance, s *solution.Solution, opts Options) int {
	running := s.Cost(inst)

	list := enumerateAll(inst, s, opts.Neighborhood, opts.Eps)
	sortAscending(list)

	for {
		idx := -1
		for i, ev := range list {
			if move.Valid(s, ev.Move) {
				idx = i

				break
			}
		}
		if idx == -1 {
			// Moves on edges whose direction a 2-opt reversal flipped are not
			// re-enumerated below, so an exhausted cache is confirmed by one
			// full enumeration before stopping.
			list = enumerateAll(inst, s, opts.Neighborhood, opts.Eps)
			if len(list) == 0 {
				return running
			}
			sortAscending(list)

			continue
		}

		chosen := list[idx]
		list = append(list[:idx], list[idx+1:]...) // entries before idx are invalid and stay in the list: the affected-node purge below drops those touching affected nodes, and the validity scan skips the rest

		move.Apply(s, chosen.Move)
		running += chosen.Delta
		if opts.Debug {
			running = checkInvariant(inst, s, running)
		}

		affected := affectedNodes(s, chosen.Move)
		list = purgeTouching(list, affected)

		fresh := enumerateTouching(inst, s, opts.Neighborhood, opts.Eps, affected)
		list = mergeDedup(list, fresh)
		sortAscending(list)
	}
}

func sortAscending(list []move.Evaluated) {
	sort.Slice(list, func(i, j int) bool { return list[i].Delta < list[j].Delta })
}

// affectedNodes returns the applied move's endpoints together with their
// current predecessors and successors, post-apply.
func affectedNodes(s *solution.Solution, m move.Move) map[int]struct{} {
	out := make(map[int]struct{})
	for _, v := range move.Support(m) {
		out[v] = struct{}{}
		if _, _, ok := s.FindNode(v); ok {
			prev, next := s.Neighbors(v)
			out[prev] = struct{}{}
			out[next] = struct{}{}
		}
	}

	return out
}

func purgeTouching(list []move.Evaluated, affected map[int]struct{}) []move.Evaluated {
	out := list[:0]
	for _, ev := range list {
		touches := false
		for _, v := range move.Support(ev.Move) {
			if _, ok := affected[v]; ok {
				touches = true

				break
			}
		}
		if !touches {
			out = append(out, ev)
		}
	}

	return out
}

// enumerateTouching re-evaluates every move of the configured neighborhood
// that involves at least one node in affected.
func enumerateTouching(inst *instance.Instance, s *solution.Solution, nb Neighborhood, eps int, affected map[int]struct{}) []move.Evaluated {
	var out []move.Evaluated
	seen := make(map[moveKey]struct{})

	add := func(ev move.Evaluated, ok bool) {
		if !ok || ev.Delta >= -eps {
			return
		}
		k := keyOf(ev.Move)
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		out = append(out, ev)
	}

	for v := range affected {
		cv, pv, ok := s.FindNode(v)
		if !ok {
			continue
		}
		other := cv.Other()
		for q := 0; q < s.Len(other); q++ {
			if cv == solution.Cycle1 {
				add(move.EvaluateInter(inst, s, pv, q))
			} else {
				add(move.EvaluateInter(inst, s, q, pv))
			}
		}
		for q := 0; q < s.Len(cv); q++ {
			if q == pv {
				continue
			}
			add(evaluateIntra(inst, s, cv, nb, pv, q))
		}
	}

	return out
}

func mergeDedup(list, fresh []move.Evaluated) []move.Evaluated {
	seen := make(map[moveKey]struct{}, len(list))
	for _, ev := range list {
		seen[keyOf(ev.Move)] = struct{}{}
	}
	for _, ev := range fresh {
		k := keyOf(ev.Move)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		list = append(list, ev)
	}

	return list
}
