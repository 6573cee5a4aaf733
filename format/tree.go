package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/boolean-maybe/tagq/expr"
)

// Tree writes an indented dump of e, one node per line:
//
//	Operation &&
//	  Label "tag:a"
//	  Inverse
//	    Label "b"
func Tree(w io.Writer, e expr.Expression) error {
	return writeNode(w, e, 0)
}

func writeNode(w io.Writer, e expr.Expression, depth int) error {
	indent := strings.Repeat("  ", depth)

	switch n := e.(type) {
	case *expr.LabelExpr:
		_, err := fmt.Fprintf(w, "%sLabel %q\n", indent, n.Name)
		return err

	case *expr.InverseExpr:
		if _, err := fmt.Fprintf(w, "%sInverse\n", indent); err != nil {
			return err
		}
		return writeNode(w, n.Operand, depth+1)

	case *expr.OperationExpr:
		if _, err := fmt.Fprintf(w, "%sOperation %s\n", indent, n.Op); err != nil {
			return err
		}
		if err := writeNode(w, n.Left, depth+1); err != nil {
			return err
		}
		return writeNode(w, n.Right, depth+1)

	default:
		return fmt.Errorf("unsupported expression node %T", e)
	}
}
