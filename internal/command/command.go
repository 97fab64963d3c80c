// Package command models the shell commands to benchmark and the
// expansion of parameterized command templates.
package command

import (
	"math/big"
	"strconv"
	"strings"
)

type valueKind uint8

const (
	kindText valueKind = iota
	kindInt
	kindDecimal
)

// Value is a parameter value: either free text or a numeric value that
// keeps its integer/decimal character from the command line.
type Value struct {
	kind  valueKind
	text  string
	num   int64
	dec   *big.Rat
	scale int
}

// TextValue wraps a plain text parameter value.
func TextValue(s string) Value {
	return Value{kind: kindText, text: s}
}

// IntValue wraps an integer parameter value.
func IntValue(i int64) Value {
	return Value{kind: kindInt, num: i}
}

// DecimalValue wraps an exact decimal parameter value printed with the
// given number of fractional digits.
func DecimalValue(r *big.Rat, scale int) Value {
	return Value{kind: kindDecimal, dec: r, scale: scale}
}

func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindDecimal:
		return v.dec.FloatString(v.scale)
	default:
		return v.text
	}
}

// Parameter binds a parameter name to the value chosen for one
// expansion of a command template.
type Parameter struct {
	Name  string
	Value Value
}

// Command is one concrete, ready-to-run shell command.
type Command struct {
	name       string
	expression string
	params     []Parameter
}

// New creates a command without parameters. An empty name falls back
// to the shell expression itself.
func New(name, expression string) Command {
	return Command{name: name, expression: expression}
}

// NewParametrized creates a command whose display name and shell
// expression have {param} tokens substituted with the bound values.
func NewParametrized(name, expression string, params []Parameter) Command {
	return Command{name: name, expression: expression, params: params}
}

// Name returns the display name of the command.
func (c Command) Name() string {
	if c.name != "" {
		return c.substitute(c.name)
	}
	return c.ShellCommand()
}

// ShellCommand returns the text handed to the shell for execution.
func (c Command) ShellCommand() string {
	return c.substitute(c.expression)
}

// Parameters returns the bound parameters in declaration order.
func (c Command) Parameters() []Parameter {
	return c.params
}

// ParameterMap returns the bound parameters as name -> rendered value,
// the form used in exported results.
func (c Command) ParameterMap() map[string]string {
	if len(c.params) == 0 {
		return nil
	}
	m := make(map[string]string, len(c.params))
	for _, p := range c.params {
		m[p.Name] = p.Value.String()
	}
	return m
}

func (c Command) substitute(s string) string {
	for _, p := range c.params {
		s = strings.ReplaceAll(s, "{"+p.Name+"}", p.Value.String())
	}
	return s
}
