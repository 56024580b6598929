package rtree

import "github.com/katalvlaran/platracer/geom"

// split partitions an overflowing node's maxEntries+1 entries into two
// groups using Guttman's quadratic-split heuristic: pick the pair of
// seed entries with the greatest normalized separation on either axis,
// then repeatedly assign the remaining entry whose enlargement
// preference between the two groups is strongest, until every group
// has at least minEntries or every entry is placed.
//
// n is mutated in place to hold group one; the returned node holds
// group two. Both nodes' rect fields are left stale for the caller to
// recompute, matching insertInto's post-split bookkeeping.
func (t *Tree[T]) split(n *node[T]) *node[T] {
	seedA, seedB := pickSeeds(n.entries)

	group1 := []entry[T]{n.entries[seedA]}
	group2 := []entry[T]{n.entries[seedB]}

	remaining := make([]entry[T], 0, len(n.entries)-2)
	for i, e := range n.entries {
		if i == seedA || i == seedB {
			continue
		}
		remaining = append(remaining, e)
	}

	rect1 := group1[0].rect
	rect2 := group2[0].rect

	for len(remaining) > 0 {
		if len(group1)+len(remaining) <= t.minEntries {
			group1 = append(group1, remaining...)
			remaining = nil
			break
		}
		if len(group2)+len(remaining) <= t.minEntries {
			group2 = append(group2, remaining...)
			remaining = nil
			break
		}

		pick, intoFirst := pickNext(rect1, rect2, remaining, len(group1), t.maxEntries)
		chosen := remaining[pick]
		remaining = append(remaining[:pick], remaining[pick+1:]...)

		if intoFirst {
			group1 = append(group1, chosen)
			rect1 = rect1.Merge(chosen.rect)
		} else {
			group2 = append(group2, chosen)
			rect2 = rect2.Merge(chosen.rect)
		}
	}

	sibling := &node[T]{leaf: n.leaf, entries: group2}
	n.entries = group1
	return sibling
}

// pickSeeds implements PickSeeds: for each axis, find the entry with
// the highest low-coordinate and the entry with the lowest
// high-coordinate, normalize their separation by the axis's total
// extent, and return the pair for whichever axis maximizes it.
func pickSeeds[T any](entries []entry[T]) (seedA, seedB int) {
	bestSeparation := -1.0
	bestA, bestB := 0, 1

	for _, axis := range []geom.Axis{geom.AxisHorizontal, geom.AxisVertical} {
		highestLowIdx, lowestHighIdx := 0, 0
		highestLow := entries[0].rect.AxisMinimum(axis)
		lowestHigh := entries[0].rect.AxisMaximum(axis)
		axisMin := entries[0].rect.AxisMinimum(axis)
		axisMax := entries[0].rect.AxisMaximum(axis)

		for i := 1; i < len(entries); i++ {
			lo := entries[i].rect.AxisMinimum(axis)
			hi := entries[i].rect.AxisMaximum(axis)
			if lo > highestLow {
				highestLow = lo
				highestLowIdx = i
			}
			if hi < lowestHigh {
				lowestHigh = hi
				lowestHighIdx = i
			}
			if lo < axisMin {
				axisMin = lo
			}
			if hi > axisMax {
				axisMax = hi
			}
		}

		if highestLowIdx == lowestHighIdx {
			// Degenerate pick on this axis; try the next-best lowestHigh
			// so the two seeds are always distinct entries.
			for i := range entries {
				if i == highestLowIdx {
					continue
				}
				hi := entries[i].rect.AxisMaximum(axis)
				if hi < lowestHigh || lowestHighIdx == highestLowIdx {
					lowestHigh = hi
					lowestHighIdx = i
				}
			}
		}

		extent := axisMax - axisMin
		separation := 0.0
		if extent > 0 {
			separation = (highestLow - lowestHigh) / extent
		}

		if separation > bestSeparation {
			bestSeparation = separation
			bestA, bestB = highestLowIdx, lowestHighIdx
		}
	}

	if bestA == bestB {
		// Only one distinct entry could be found across both axes
		// (all entries identical); fall back to the first two.
		bestA, bestB = 0, 1
	}
	return bestA, bestB
}

// pickNext implements PickNext plus the assignment rule: the candidate
// entry whose enlargement cost differs most between the two groups is
// assigned to whichever group needs the smaller enlargement, ties
// broken by smaller resulting area, then by which group currently has
// fewer entries (below half of maxEntries favors the first group).
func pickNext[T any](rect1, rect2 geom.Rect, candidates []entry[T], group1Len, maxEntries int) (index int, intoFirst bool) {
	bestIdx := 0
	bestDiff := -1.0
	bestIntoFirst := true

	for i, c := range candidates {
		enl1 := rect1.MergeEnlargement(c.rect)
		enl2 := rect2.MergeEnlargement(c.rect)
		diff := enl1 - enl2
		if diff < 0 {
			diff = -diff
		}

		intoFirst := enl1 < enl2
		if enl1 == enl2 {
			area1 := rect1.Merge(c.rect).Area()
			area2 := rect2.Merge(c.rect).Area()
			if area1 == area2 {
				intoFirst = group1Len < maxEntries/2
			} else {
				intoFirst = area1 < area2
			}
		}

		if diff > bestDiff {
			bestDiff = diff
			bestIdx = i
			bestIntoFirst = intoFirst
		}
	}

	return bestIdx, bestIntoFirst
}
