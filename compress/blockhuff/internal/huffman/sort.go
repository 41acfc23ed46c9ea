// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "sort"

// Len is the number of elements in the collection.
func (t Table) Len() int {
	return len(t)
}

// Less compare two elements
func (t Table) Less(i int, j int) bool {
	return Compare(t[i].Block, t[j].Block) < 0
}

// Swap swaps the elements with indexes i and j.
func (t Table) Swap(i int, j int) {
	t[i], t[j] = t[j], t[i]
}

func sortTable(t Table) {
	if len(t) < 16 {
		insertSort(t)
		return
	}
	sort.Sort(t)
}

func insertSort(t Table) {
	for i := 1; i < len(t); i++ {
		for j := i; j > 0 && t.Less(j, j-1); j-- {
			t.Swap(j, j-1)
		}
	}
}
