package binarytree

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Deeper levels are cut off when drawing a tree.
const maxPrintLevels = 7

func preOrderString[K Ordered](name string, keys []K) string {
	var values = make([]string, len(keys))
	for i, k := range keys {
		values[i] = fmt.Sprint(k)
	}
	return name + " pre-order { " + strings.Join(values, ", ") + " }"
}

// Draws the tree level by level, each key centered above its subtrees.
func render[K Ordered, N linkedNode[K, N]](root N, height int) string {
	var zero N
	if root == zero {
		return ""
	}

	var levels = height + 1
	var truncated = levels > maxPrintLevels
	if truncated {
		levels = maxPrintLevels
	}

	var rows = make([][]string, levels)
	fillLevels[K](rows, root, 0)

	var cell = 1
	for _, row := range rows {
		for _, s := range row {
			if w := utf8.RuneCountInString(s); w > cell {
				cell = w
			}
		}
	}
	cell++

	var b strings.Builder
	var width = cell << (levels - 1)
	for depth, row := range rows {
		var segment = width >> depth
		var line strings.Builder
		for _, s := range row {
			var w = utf8.RuneCountInString(s)
			var pad = (segment - w) / 2
			line.WriteString(strings.Repeat(" ", pad))
			line.WriteString(s)
			line.WriteString(strings.Repeat(" ", segment-pad-w))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	if truncated {
		b.WriteString("...\n")
	}
	return b.String()
}

// Absent nodes still take up a slot so every level lines up.
func fillLevels[K Ordered, N linkedNode[K, N]](rows [][]string, n N, depth int) {
	if depth >= len(rows) {
		return
	}

	var zero N
	if n == zero {
		rows[depth] = append(rows[depth], "")
		fillLevels[K](rows, zero, depth+1)
		fillLevels[K](rows, zero, depth+1)
		return
	}

	rows[depth] = append(rows[depth], fmt.Sprint(n.key()))
	fillLevels[K](rows, n.left(), depth+1)
	fillLevels[K](rows, n.right(), depth+1)
}
