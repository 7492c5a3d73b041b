package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	for _, child := range Children(node) {
		Walk(child, fn)
	}
}

// Children returns the direct child nodes of node in source order.
func Children(node Node) []Node {
	var children []Node
	add := func(n Node) {
		if n != nil {
			children = append(children, n)
		}
	}

	switch n := node.(type) {
	case *ADLScript:
		for _, stmt := range n.Statements {
			add(stmt)
		}

	case *ImportStatement:
		for _, name := range n.Names {
			add(name)
		}

	case *ModelStatement:
		for _, dec := range n.Decorators {
			add(dec)
		}
		add(n.Name)
		for _, param := range n.TemplateParameters {
			add(param)
		}
		for _, base := range n.Extends {
			add(base)
		}
		add(n.Assignment)
		for _, item := range n.Properties {
			add(item)
		}

	case *ModelExpression:
		for _, item := range n.Properties {
			add(item)
		}

	case *ModelProperty:
		for _, dec := range n.Decorators {
			add(dec)
		}
		add(n.Name)
		add(n.Value)

	case *ModelSpreadProperty:
		add(n.Target)

	case *TemplateParameterDeclaration:
		add(n.Name)

	case *NamespaceStatement:
		for _, dec := range n.Decorators {
			add(dec)
		}
		add(n.Name)
		for _, param := range n.Parameters {
			add(param)
		}
		for _, prop := range n.Properties {
			add(prop)
		}

	case *NamespaceProperty:
		for _, dec := range n.Decorators {
			add(dec)
		}
		add(n.Name)
		for _, param := range n.Parameters {
			add(param)
		}
		add(n.ReturnType)

	case *DecoratorExpression:
		add(n.Target)
		for _, arg := range n.Arguments {
			add(arg)
		}

	case *TemplateApplication:
		add(n.Target)
		for _, arg := range n.Arguments {
			add(arg)
		}

	case *MemberExpression:
		add(n.Base)
		add(n.Member)

	case *ArrayExpression:
		add(n.Element)

	case *TupleExpression:
		for _, value := range n.Values {
			add(value)
		}

	case *UnionExpression:
		for _, option := range n.Options {
			add(option)
		}

	case *IntersectionExpression:
		for _, operand := range n.Operands {
			add(operand)
		}

	case *Identifier, *StringLiteral, *NumericLiteral, *BooleanLiteral:
		// Leaf nodes.
	}

	return children
}

// SetParents wires the non-owning parent back-reference on every node
// reachable from root. The links never imply ownership: the tree is built
// top-down and parents outlive their children.
func SetParents(root Node) {
	Walk(root, func(n Node) bool {
		for _, child := range Children(n) {
			child.SetParent(n)
		}
		return true
	})
}
