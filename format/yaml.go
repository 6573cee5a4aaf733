package format

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/boolean-maybe/tagq/expr"
)

// MarshalYAML encodes e as YAML using the same node shape as MarshalJSON
func MarshalYAML(e expr.Expression) ([]byte, error) {
	node, err := yamlNode(e)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlNode(e expr.Expression) (*yaml.Node, error) {
	switch n := e.(type) {
	case *expr.LabelExpr:
		return mapping(stringNode("label"), stringNode(n.Name)), nil

	case *expr.InverseExpr:
		operand, err := yamlNode(n.Operand)
		if err != nil {
			return nil, err
		}
		return mapping(stringNode("not"), operand), nil

	case *expr.OperationExpr:
		left, err := yamlNode(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := yamlNode(n.Right)
		if err != nil {
			return nil, err
		}
		return mapping(
			stringNode("op"), stringNode(n.Op.String()),
			stringNode("left"), left,
			stringNode("right"), right,
		), nil

	default:
		return nil, fmt.Errorf("unsupported expression node %T", e)
	}
}

func mapping(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Content: content}
}

// stringNode is tagged !!str so labels like "true" or "42" stay strings
func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
