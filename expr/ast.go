package expr

// Expression is a node of a parsed filter expression.
// The concrete types are *LabelExpr, *InverseExpr and *OperationExpr.
type Expression interface {
	// String renders the node back into expression syntax, fully parenthesized
	String() string
	exprNode()
}

// LabelExpr references a label by name
type LabelExpr struct {
	Name string
}

// InverseExpr represents NOT applied to a single term
type InverseExpr struct {
	Operand Expression
}

// OperationExpr represents AND / OR between two expressions
type OperationExpr struct {
	Left  Expression
	Op    Operator // And or Or
	Right Expression
}

func (*LabelExpr) exprNode()     {}
func (*InverseExpr) exprNode()   {}
func (*OperationExpr) exprNode() {}

func (l *LabelExpr) String() string {
	return l.Name
}

func (i *InverseExpr) String() string {
	return "!" + i.Operand.String()
}

func (o *OperationExpr) String() string {
	return "(" + o.Left.String() + " " + o.Op.String() + " " + o.Right.String() + ")"
}

// Labels returns the distinct label names referenced by e in first-occurrence order
func Labels(e Expression) []string {
	var names []string
	seen := make(map[string]bool)

	var walk func(Expression)
	walk = func(node Expression) {
		switch n := node.(type) {
		case *LabelExpr:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case *InverseExpr:
			walk(n.Operand)
		case *OperationExpr:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(e)

	return names
}
