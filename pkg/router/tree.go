package router

import (
	"fmt"
	"strings"
)

// routeNode is a node in the route tree.
type routeNode struct {
	// segment is the path segment this node matches
	segment string

	// isParam indicates this is a parameter segment (:id)
	isParam bool

	// isCatchAll indicates this is a catch-all segment (*slug)
	isCatchAll bool

	// paramName is the parameter name (without : or *)
	paramName string

	// pattern is the registered pattern, set on terminal nodes
	pattern string

	// page is the handler, set on terminal nodes
	page PageHandler

	// children are static segment children
	children []*routeNode

	// paramChild is the dynamic parameter child (:id)
	paramChild *routeNode

	// catchAllChild is the catch-all child (*slug)
	catchAllChild *routeNode
}

// newRouteNode creates a new route node.
func newRouteNode(segment string) *routeNode {
	return &routeNode{
		segment: segment,
	}
}

// findChild finds a child node with an exact segment match.
func (n *routeNode) findChild(segment string) *routeNode {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}
	return nil
}

// addChild adds or retrieves a child node for the given segment.
func (n *routeNode) addChild(segment string) *routeNode {
	if child := n.findChild(segment); child != nil {
		return child
	}
	child := newRouteNode(segment)
	n.children = append(n.children, child)
	return child
}

// addParamChild sets the parameter child node.
// Two patterns may not name the same position differently.
func (n *routeNode) addParamChild(name string) (*routeNode, error) {
	if n.paramChild != nil {
		if n.paramChild.paramName != name {
			return nil, fmt.Errorf("parameter :%s conflicts with :%s", name, n.paramChild.paramName)
		}
		return n.paramChild, nil
	}
	child := newRouteNode("")
	child.isParam = true
	child.paramName = name
	n.paramChild = child
	return child, nil
}

// addCatchAllChild sets the catch-all child node.
func (n *routeNode) addCatchAllChild(name string) (*routeNode, error) {
	if n.catchAllChild != nil {
		if n.catchAllChild.paramName != name {
			return nil, fmt.Errorf("catch-all *%s conflicts with *%s", name, n.catchAllChild.paramName)
		}
		return n.catchAllChild, nil
	}
	child := newRouteNode("")
	child.isCatchAll = true
	child.paramName = name
	n.catchAllChild = child
	return child, nil
}

// insertRoute adds a route to the tree and returns its terminal node.
func (n *routeNode) insertRoute(path string) (*routeNode, error) {
	segments := splitPath(path)
	current := n

	for i, seg := range segments {
		var err error
		switch {
		case strings.HasPrefix(seg, "*"):
			if i != len(segments)-1 {
				return nil, fmt.Errorf("catch-all %q must be the last segment", seg)
			}
			name := seg[1:]
			if name == "" {
				return nil, fmt.Errorf("catch-all segment needs a name")
			}
			current, err = current.addCatchAllChild(name)
		case strings.HasPrefix(seg, ":"):
			name := seg[1:]
			if name == "" {
				return nil, fmt.Errorf("parameter segment needs a name")
			}
			current, err = current.addParamChild(name)
		default:
			current = current.addChild(seg)
		}
		if err != nil {
			return nil, err
		}
	}

	return current, nil
}

// match finds a terminal node matching the given path segments.
// Static children win over parameters, parameters over catch-alls.
// A failed parameter branch backtracks.
func (n *routeNode) match(segments []string, params map[string]string) (*routeNode, bool) {
	if len(segments) == 0 {
		if n.page != nil {
			return n, true
		}
		// A catch-all also matches zero remaining segments
		if n.catchAllChild != nil && n.catchAllChild.page != nil {
			params[n.catchAllChild.paramName] = ""
			return n.catchAllChild, true
		}
		return nil, false
	}

	segment := segments[0]
	remaining := segments[1:]

	// Try exact match first
	if child := n.findChild(segment); child != nil {
		if node, ok := child.match(remaining, params); ok {
			return node, true
		}
	}

	// Try parameter match
	if n.paramChild != nil {
		params[n.paramChild.paramName] = segment
		if node, ok := n.paramChild.match(remaining, params); ok {
			return node, true
		}
		// Backtrack on failure
		delete(params, n.paramChild.paramName)
	}

	// Try catch-all match
	if n.catchAllChild != nil && n.catchAllChild.page != nil {
		params[n.catchAllChild.paramName] = strings.Join(segments, "/")
		return n.catchAllChild, true
	}

	return nil, false
}

// splitPath splits a path into segments.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
