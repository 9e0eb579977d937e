package vdom

// Walk visits node and its static descendants depth-first, parents first.
// Component nodes are visited but not rendered. Returning false from fn
// skips the node's children.
func Walk(node *VNode, fn func(n *VNode, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node *VNode, depth int, fn func(n *VNode, depth int) bool) {
	if node == nil {
		return
	}
	if !fn(node, depth) {
		return
	}
	for _, child := range node.Children {
		walk(child, depth+1, fn)
	}
}

// CountNodes returns the number of static nodes in the tree.
func CountNodes(node *VNode) int {
	count := 0
	Walk(node, func(*VNode, int) bool {
		count++
		return true
	})
	return count
}
