// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "container/heap"

// Build merges the two least frequent nodes until a single root remains and
// returns it. The nodes slice is consumed.
//
// Ties go to the node that entered the working list first: leaves in the
// order given, merged nodes after every node already present. The first node
// extracted becomes the left child. With no nodes the root is an empty leaf;
// with one node that leaf is the root.
func Build(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return &Node{}
	}
	h := &nodeHeap{}
	for _, n := range nodes {
		h.add(n)
	}
	heap.Init(h)
	for h.Len() > 1 {
		left := heap.Pop(h).(*Node)
		right := heap.Pop(h).(*Node)
		heap.Push(h, &Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
		})
	}
	return heap.Pop(h).(*Node)
}

type queued struct {
	node *Node
	seq  int
}

// nodeHeap is a min-heap on (frequency, arrival). Popping from it is the same
// as a linear scan for the smallest frequency that keeps the first one found.
type nodeHeap struct {
	items []queued
	next  int
}

func (h *nodeHeap) add(n *Node) {
	h.items = append(h.items, queued{node: n, seq: h.next})
	h.next++
}

func (h *nodeHeap) Len() int { return len(h.items) }

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nodeHeap) Push(x interface{}) {
	h.add(x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	old[n-1] = queued{}
	h.items = old[:n-1]
	return x.node
}
