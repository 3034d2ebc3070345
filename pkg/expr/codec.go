package expr

import (
	"github.com/wildfunctions/symbolics/pkg/errwrap"

	"gopkg.in/yaml.v2"
)

// Document is the serializable form of a tree. Operations are named by their
// prefix-grammar token and constants travel as facade-formatted strings.
type Document struct {
	Kind     string      `yaml:"kind" json:"kind"`
	Op       string      `yaml:"op,omitempty" json:"op,omitempty"`
	Value    string      `yaml:"value,omitempty" json:"value,omitempty"`
	Name     string      `yaml:"name,omitempty" json:"name,omitempty"`
	Operands []*Document `yaml:"operands,omitempty" json:"operands,omitempty"`
}

// Encode converts node into a Document.
func (s *Symbolics[T]) Encode(node Node[T]) (*Document, error) {
	return s.encode(node, 0)
}

func (s *Symbolics[T]) encode(node Node[T], depth int) (*Document, error) {
	if err := s.checkDepth(depth); err != nil {
		return nil, err
	}
	switch n := node.(type) {
	case *Constant[T]:
		return &Document{Kind: KindConstant.String(), Value: s.num.Format(n.Value)}, nil
	case *Variable[T]:
		return &Document{Kind: KindVariable.String(), Name: n.Name}, nil
	case *Unary[T], *Binary[T], *Multinary[T]:
		doc := &Document{Kind: node.Kind().String(), Op: PrefixToken(node)}
		var err error
		node.Step(func(child Node[T]) {
			if err != nil {
				return
			}
			var c *Document
			if c, err = s.encode(child, depth+1); err == nil {
				doc.Operands = append(doc.Operands, c)
			}
		})
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
	return nil, errwrap.Wrapf(ErrInternal, "unknown node variant %T", node)
}

// Decode rebuilds a tree from a Document.
func (s *Symbolics[T]) Decode(doc *Document) (Node[T], error) {
	return s.decode(doc, 0)
}

func (s *Symbolics[T]) decode(doc *Document, depth int) (Node[T], error) {
	if err := s.checkDepth(depth); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errwrap.Wrapf(ErrPrecondition, "empty document")
	}

	operands := make([]Node[T], len(doc.Operands))
	for i, o := range doc.Operands {
		c, err := s.decode(o, depth+1)
		if err != nil {
			return nil, err
		}
		operands[i] = c
	}
	arity := func(want int) error {
		if len(operands) != want {
			return errwrap.Wrapf(ErrPrecondition, "%s %q wants %d operands, got %d", doc.Kind, doc.Op, want, len(operands))
		}
		return nil
	}

	switch doc.Kind {
	case KindConstant.String():
		v, err := s.num.Parse(doc.Value)
		if err != nil {
			return nil, errwrap.Wrapf(err, "constant %q", doc.Value)
		}
		return Const(v), nil

	case KindVariable.String():
		if doc.Name == "" {
			return nil, errwrap.Wrapf(ErrPrecondition, "variable without a name")
		}
		return Var[T](doc.Name), nil

	case KindUnary.String():
		op, ok := UnaryTokens()[doc.Op]
		if !ok {
			break
		}
		if err := arity(1); err != nil {
			return nil, err
		}
		return NewUnary(op, operands[0]), nil

	case KindBinary.String():
		op, ok := BinaryTokens()[doc.Op]
		if !ok {
			break
		}
		if err := arity(2); err != nil {
			return nil, err
		}
		return NewBinary(op, operands[0], operands[1]), nil

	case KindMultinary.String():
		op, ok := MultinaryTokens()[doc.Op]
		if !ok {
			break
		}
		if len(operands) == 0 {
			return nil, errwrap.Wrapf(ErrPrecondition, "%s %q wants at least 1 operand", doc.Kind, doc.Op)
		}
		return NewMultinary(op, operands...), nil

	default:
		return nil, errwrap.Wrapf(ErrPrecondition, "unknown kind %q", doc.Kind)
	}

	return nil, errwrap.Wrapf(ErrPrecondition, "unknown %s op %q", doc.Kind, doc.Op)
}

// EncodeYAML renders node as a YAML document.
func (s *Symbolics[T]) EncodeYAML(node Node[T]) ([]byte, error) {
	doc, err := s.Encode(node)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// DecodeYAML parses a YAML document produced by EncodeYAML.
func (s *Symbolics[T]) DecodeYAML(data []byte) (Node[T], error) {
	doc := &Document{}
	if err := yaml.UnmarshalStrict(data, doc); err != nil {
		return nil, errwrap.Wrapf(err, "decode yaml")
	}
	return s.Decode(doc)
}
