package format

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/boolean-maybe/tagq/expr"
)

// JSON shape of a node, one object per node:
//
//	{"label":"tag:a"}
//	{"not":{...}}
//	{"op":"&&","left":{...},"right":{...}}

// ErrInvalidJSON is returned when a JSON document does not describe an expression tree
var ErrInvalidJSON = errors.New("invalid expression json")

// MarshalJSON encodes e as JSON
func MarshalJSON(e expr.Expression) ([]byte, error) {
	var a fastjson.Arena
	v, err := jsonNode(&a, e)
	if err != nil {
		return nil, err
	}
	return v.MarshalTo(nil), nil
}

func jsonNode(a *fastjson.Arena, e expr.Expression) (*fastjson.Value, error) {
	obj := a.NewObject()

	switch n := e.(type) {
	case *expr.LabelExpr:
		obj.Set("label", a.NewString(n.Name))

	case *expr.InverseExpr:
		operand, err := jsonNode(a, n.Operand)
		if err != nil {
			return nil, err
		}
		obj.Set("not", operand)

	case *expr.OperationExpr:
		left, err := jsonNode(a, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := jsonNode(a, n.Right)
		if err != nil {
			return nil, err
		}
		obj.Set("op", a.NewString(n.Op.String()))
		obj.Set("left", left)
		obj.Set("right", right)

	default:
		return nil, fmt.Errorf("unsupported expression node %T", e)
	}

	return obj, nil
}

// UnmarshalJSON decodes a tree produced by MarshalJSON.
// It enforces the same invariants as the parser: binary operators are '&&' or '||' only.
func UnmarshalJSON(data []byte) (expr.Expression, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return decodeNode(v, "$")
}

func decodeNode(v *fastjson.Value, path string) (expr.Expression, error) {
	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: expected object", ErrInvalidJSON, path)
	}

	switch {
	case obj.Get("label") != nil:
		if obj.Len() != 1 {
			return nil, fmt.Errorf("%w: %s: label node has extra fields", ErrInvalidJSON, path)
		}
		name, err := obj.Get("label").StringBytes()
		if err != nil || len(name) == 0 {
			return nil, fmt.Errorf("%w: %s.label: expected non-empty string", ErrInvalidJSON, path)
		}
		return &expr.LabelExpr{Name: string(name)}, nil

	case obj.Get("not") != nil:
		if obj.Len() != 1 {
			return nil, fmt.Errorf("%w: %s: not node has extra fields", ErrInvalidJSON, path)
		}
		operand, err := decodeNode(obj.Get("not"), path+".not")
		if err != nil {
			return nil, err
		}
		return &expr.InverseExpr{Operand: operand}, nil

	case obj.Get("op") != nil:
		if obj.Len() != 3 {
			return nil, fmt.Errorf("%w: %s: operation node needs exactly op, left and right", ErrInvalidJSON, path)
		}
		opText, err := obj.Get("op").StringBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: %s.op: expected string", ErrInvalidJSON, path)
		}
		op, err := binaryOperator(string(opText))
		if err != nil {
			return nil, fmt.Errorf("%w: %s.op: %v", ErrInvalidJSON, path, err)
		}
		leftValue, rightValue := obj.Get("left"), obj.Get("right")
		if leftValue == nil || rightValue == nil {
			return nil, fmt.Errorf("%w: %s: operation node needs left and right", ErrInvalidJSON, path)
		}
		left, err := decodeNode(leftValue, path+".left")
		if err != nil {
			return nil, err
		}
		right, err := decodeNode(rightValue, path+".right")
		if err != nil {
			return nil, err
		}
		return &expr.OperationExpr{Left: left, Op: op, Right: right}, nil

	default:
		return nil, fmt.Errorf("%w: %s: unknown node", ErrInvalidJSON, path)
	}
}

func binaryOperator(s string) (expr.Operator, error) {
	switch s {
	case expr.And.String():
		return expr.And, nil
	case expr.Or.String():
		return expr.Or, nil
	default:
		return 0, fmt.Errorf("%w: %q", expr.ErrInvalidBinaryOperator, s)
	}
}
