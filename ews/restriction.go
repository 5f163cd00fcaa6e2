package ews

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/ews-go/internal/xmldom"
)

// MaxRestrictionLeaves is the largest number of leaf expressions the server
// accepts in one restriction.
const MaxRestrictionLeaves = 255

// Restriction is an immutable search expression for FindItem and
// FindFolder. The zero value is the empty restriction, which matches
// everything and renders nothing.
type Restriction struct {
	node restrictionNode
}

type restrictionNode interface {
	render() *etree.Element
	leaves() int
	err() error
}

// IsEmpty reports whether r is the zero restriction.
func (r Restriction) IsEmpty() bool {
	return r.node == nil
}

// Leaves returns the number of leaf expressions in r.
func (r Restriction) Leaves() int {
	if r.node == nil {
		return 0
	}
	return r.node.leaves()
}

// Validate reports a malformed value or a tree with too many leaves.
func (r Restriction) Validate() error {
	if r.node == nil {
		return nil
	}
	if err := r.node.err(); err != nil {
		return err
	}
	if n := r.node.leaves(); n > MaxRestrictionLeaves {
		return newExchangeError(ErrorRestrictionTooLong,
			fmt.Sprintf("restriction has %d leaves, at most %d are allowed", n, MaxRestrictionLeaves))
	}
	return nil
}

// XML renders the expression without the enclosing <m:Restriction>.
func (r Restriction) XML() string {
	if r.node == nil {
		return ""
	}
	return xmldom.String(r.node.render())
}

// element renders <m:Restriction>…</m:Restriction>, or nil for the empty
// restriction.
func (r Restriction) element() (*etree.Element, error) {
	if r.node == nil {
		return nil, nil
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	e := xmldom.New("m", "Restriction")
	e.AddChild(r.node.render())
	return e, nil
}

type existsNode struct {
	path PropertyPath
}

func (n existsNode) render() *etree.Element {
	e := xmldom.New("t", "Exists")
	e.AddChild(n.path.element())
	return e
}

func (existsNode) leaves() int { return 1 }
func (existsNode) err() error { return nil }

// Exists matches items that have path set.
func Exists(path PropertyPath) Restriction {
	return Restriction{node: existsNode{path: path}}
}

type excludesNode struct {
	path    PropertyPath
	bitmask int
}

func (n excludesNode) render() *etree.Element {
	e := xmldom.New("t", "Excludes")
	e.AddChild(n.path.element())
	xmldom.Add(e, "t", "Bitmask").CreateAttr("Value", strconv.Itoa(n.bitmask))
	return e
}

func (excludesNode) leaves() int { return 1 }
func (excludesNode) err() error { return nil }

// Excludes matches items where path ANDed with bitmask is zero.
func Excludes(path PropertyPath, bitmask int) Restriction {
	return Restriction{node: excludesNode{path: path, bitmask: bitmask}}
}

type compareNode struct {
	op       string
	path     PropertyPath
	constant string
	other    PropertyPath
	bad      error
}

func (n compareNode) render() *etree.Element {
	e := xmldom.New("t", n.op)
	e.AddChild(n.path.element())
	operand := xmldom.Add(e, "t", "FieldURIOrConstant")
	if n.other.Valid() {
		operand.AddChild(n.other.element())
	} else {
		xmldom.Add(operand, "t", "Constant").CreateAttr("Value", n.constant)
	}
	return e
}

func (compareNode) leaves() int { return 1 }
func (n compareNode) err() error { return n.bad }

func compare(op string, path PropertyPath, value any) Restriction {
	n := compareNode{op: op, path: path}
	if other, ok := value.(PropertyPath); ok {
		n.other = other
	} else {
		n.constant, n.bad = constantValue(value)
	}
	return Restriction{node: n}
}

// constantValue renders value in the lexical form the server expects.
func constantValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case DateTime:
		return string(v), nil
	case Date:
		return string(v), nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}
	return "", fmt.Errorf("restriction: unsupported constant type %T", value)
}

// IsEqualTo matches items where path equals value. value may be a
// constant or another PropertyPath.
func IsEqualTo(path PropertyPath, value any) Restriction {
	return compare("IsEqualTo", path, value)
}

// IsNotEqualTo matches items where path differs from value.
func IsNotEqualTo(path PropertyPath, value any) Restriction {
	return compare("IsNotEqualTo", path, value)
}

// IsGreaterThan matches items where path is greater than value.
func IsGreaterThan(path PropertyPath, value any) Restriction {
	return compare("IsGreaterThan", path, value)
}

// IsGreaterThanOrEqualTo matches items where path is at least value.
func IsGreaterThanOrEqualTo(path PropertyPath, value any) Restriction {
	return compare("IsGreaterThanOrEqualTo", path, value)
}

// IsLessThan matches items where path is less than value.
func IsLessThan(path PropertyPath, value any) Restriction {
	return compare("IsLessThan", path, value)
}

// IsLessThanOrEqualTo matches items where path is at most value.
func IsLessThanOrEqualTo(path PropertyPath, value any) Restriction {
	return compare("IsLessThanOrEqualTo", path, value)
}

type containsNode struct {
	path       PropertyPath
	value      string
	mode       ContainmentMode
	comparison ContainmentComparison
}

func (n containsNode) render() *etree.Element {
	e := xmldom.New("t", "Contains")
	e.CreateAttr("ContainmentMode", string(n.mode))
	e.CreateAttr("ContainmentComparison", string(n.comparison))
	e.AddChild(n.path.element())
	xmldom.Add(e, "t", "Constant").CreateAttr("Value", n.value)
	return e
}

func (containsNode) leaves() int { return 1 }
func (containsNode) err() error { return nil }

// ContainsOption adjusts a Contains restriction.
type ContainsOption func(*containsNode)

// WithContainmentMode sets how much of the property must match.
func WithContainmentMode(mode ContainmentMode) ContainsOption {
	return func(n *containsNode) { n.mode = mode }
}

// WithContainmentComparison sets how characters are compared.
func WithContainmentComparison(c ContainmentComparison) ContainsOption {
	return func(n *containsNode) { n.comparison = c }
}

// Contains matches items whose string property contains value. It defaults
// to a loose substring match.
func Contains(path PropertyPath, value string, opts ...ContainsOption) Restriction {
	n := containsNode{path: path, value: value, mode: Substring, comparison: Loose}
	for _, opt := range opts {
		opt(&n)
	}
	return Restriction{node: n}
}

type notNode struct {
	inner restrictionNode
}

func (n notNode) render() *etree.Element {
	e := xmldom.New("t", "Not")
	e.AddChild(n.inner.render())
	return e
}

func (n notNode) leaves() int { return n.inner.leaves() }
func (n notNode) err() error { return n.inner.err() }

// Not negates r. Negating the empty restriction yields the empty
// restriction.
func Not(r Restriction) Restriction {
	if r.node == nil {
		return r
	}
	return Restriction{node: notNode{inner: r.node}}
}

type logicalNode struct {
	op       string
	operands []restrictionNode
}

func (n logicalNode) render() *etree.Element {
	e := xmldom.New("t", n.op)
	for _, o := range n.operands {
		e.AddChild(o.render())
	}
	return e
}

func (n logicalNode) leaves() int {
	total := 0
	for _, o := range n.operands {
		total += o.leaves()
	}
	return total
}

func (n logicalNode) err() error {
	for _, o := range n.operands {
		if err := o.err(); err != nil {
			return err
		}
	}
	return nil
}

func logical(op string, a, b Restriction, more []Restriction) Restriction {
	var operands []restrictionNode
	for _, r := range append([]Restriction{a, b}, more...) {
		if r.node != nil {
			operands = append(operands, r.node)
		}
	}
	switch len(operands) {
	case 0:
		return Restriction{}
	case 1:
		return Restriction{node: operands[0]}
	}
	return Restriction{node: logicalNode{op: op, operands: operands}}
}

// And matches items that satisfy every operand. Empty operands are
// dropped; a single remaining operand is returned unchanged.
func And(a, b Restriction, more ...Restriction) Restriction {
	return logical("And", a, b, more)
}

// Or matches items that satisfy at least one operand.
func Or(a, b Restriction, more ...Restriction) Restriction {
	return logical("Or", a, b, more)
}
