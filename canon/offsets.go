// SPDX-License-Identifier: MIT

package canon

import (
	"fmt"
	"sort"
)

// OrderVariables deduplicates vars by ID and sorts them by ascending ID.
//
// Errors:
//   - ErrInconsistentVariableSize  if one ID appears with two shapes.
//
// Complexity: O(n log n).
func OrderVariables(vars []Variable) ([]Variable, error) {
	seen := make(map[int]Variable, len(vars))
	ordered := make([]Variable, 0, len(vars))
	for _, v := range vars {
		prev, ok := seen[v.ID]
		if !ok {
			seen[v.ID] = v
			ordered = append(ordered, v)
			continue
		}
		if prev.Shape != v.Shape {
			return nil, fmt.Errorf("%w: variable %d seen as %s and %s",
				ErrInconsistentVariableSize, v.ID, prev.Shape, v.Shape)
		}
	}
	// IDs are unique after deduplication, so the order is total.
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	return ordered, nil
}

// AssignOffsets gives each distinct variable a column offset equal to the
// total width of the variables with smaller IDs, and returns the grand total.
// An empty input yields an empty map and 0.
//
// Errors:
//   - ErrInconsistentVariableSize  from OrderVariables.
func AssignOffsets(vars []Variable) (map[int]int, int, error) {
	ordered, err := OrderVariables(vars)
	if err != nil {
		return nil, 0, err
	}
	offsets, total := offsetsOf(ordered)

	return offsets, total, nil
}

// offsetsOf walks ordered variables accumulating widths.
func offsetsOf(ordered []Variable) (map[int]int, int) {
	offsets := make(map[int]int, len(ordered))
	total := 0
	for _, v := range ordered {
		offsets[v.ID] = total
		total += v.Width()
	}

	return offsets, total
}
