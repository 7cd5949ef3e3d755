package condkit

import "strings"

// Node combines conditions and nested nodes with a single boolean operator.
// Nodes compose encoder output only; every condition they hold has already
// been validated by a Parser.
type Node struct {
	op         string
	conditions []Condition
	children   []*Node
}

// And creates a node joining its members with AND
func And(conditions ...Condition) *Node {
	return &Node{op: "AND", conditions: conditions}
}

// Or creates a node joining its members with OR
func Or(conditions ...Condition) *Node {
	return &Node{op: "OR", conditions: conditions}
}

// Add appends conditions to the node
func (n *Node) Add(conditions ...Condition) *Node {
	n.conditions = append(n.conditions, conditions...)
	return n
}

// Group appends a nested node, rendered inside parentheses
func (n *Node) Group(child *Node) *Node {
	n.children = append(n.children, child)
	return n
}

// SQL renders the node as a WHERE-clause body with '?' placeholders and the
// bound values in placeholder order. Values are never interpolated into the
// clause.
func (n *Node) SQL() (string, []any) {
	var (
		parts []string
		args  []any
	)
	for _, c := range n.conditions {
		fragment := c.Encode()
		parts = append(parts, fragment.Clause(c.Column))
		args = append(args, fragment.Value)
	}
	for _, child := range n.children {
		clause, childArgs := child.SQL()
		if clause == "" {
			continue
		}
		parts = append(parts, "("+clause+")")
		args = append(args, childArgs...)
	}
	return strings.Join(parts, " "+n.op+" "), args
}
