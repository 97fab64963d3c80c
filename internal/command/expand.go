package command

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Axis is one parameter dimension: a name and the ordered values the
// parameter takes.
type Axis struct {
	Var    string
	Values []Value
}

// ParseListAxis parses an enumerated parameter axis of the form
// "VAR value1,value2,...". Values are substituted verbatim; only scan
// axis bounds are numeric.
func ParseListAxis(spec string) (Axis, error) {
	parts := strings.SplitN(strings.TrimSpace(spec), " ", 2)
	if len(parts) != 2 || parts[0] == "" {
		return Axis{}, fmt.Errorf("invalid parameter list %q, expected \"VAR value1,value2,...\"", spec)
	}
	raw := strings.Split(parts[1], ",")
	values := make([]Value, 0, len(raw))
	for _, r := range raw {
		v := strings.TrimSpace(r)
		if v == "" {
			return Axis{}, fmt.Errorf("empty value in parameter list %q", spec)
		}
		values = append(values, TextValue(v))
	}
	return Axis{Var: parts[0], Values: values}, nil
}

// ParseScanAxis parses a numeric parameter axis of the form
// "VAR MIN MAX [STEP]". The step defaults to 1. Integer bounds yield
// integer values; a decimal anywhere promotes the whole axis to exact
// decimal stepping.
func ParseScanAxis(spec string) (Axis, error) {
	fields := strings.Fields(spec)
	if len(fields) < 3 || len(fields) > 4 {
		return Axis{}, fmt.Errorf("invalid parameter scan %q, expected \"VAR MIN MAX [STEP]\"", spec)
	}
	name := fields[0]
	step := "1"
	if len(fields) == 4 {
		step = fields[3]
	}

	values, err := scanValues(fields[1], fields[2], step)
	if err != nil {
		return Axis{}, fmt.Errorf("invalid parameter scan %q: %w", spec, err)
	}
	return Axis{Var: name, Values: values}, nil
}

func scanValues(minStr, maxStr, stepStr string) ([]Value, error) {
	iMin, okMin := parseInt(minStr)
	iMax, okMax := parseInt(maxStr)
	iStep, okStep := parseInt(stepStr)

	if okMin && okMax && okStep {
		if iStep <= 0 {
			return nil, fmt.Errorf("step size must be positive, got %d", iStep)
		}
		if iMin > iMax {
			return nil, fmt.Errorf("empty parameter range %d..%d", iMin, iMax)
		}
		var values []Value
		for v := iMin; v <= iMax; v += iStep {
			values = append(values, IntValue(v))
		}
		return values, nil
	}

	rMin, sMin, err := parseDecimal(minStr)
	if err != nil {
		return nil, err
	}
	rMax, sMax, err := parseDecimal(maxStr)
	if err != nil {
		return nil, err
	}
	rStep, sStep, err := parseDecimal(stepStr)
	if err != nil {
		return nil, err
	}
	if rStep.Sign() <= 0 {
		return nil, fmt.Errorf("step size must be positive, got %s", stepStr)
	}
	if rMin.Cmp(rMax) > 0 {
		return nil, fmt.Errorf("empty parameter range %s..%s", minStr, maxStr)
	}

	scale := sMin
	if sMax > scale {
		scale = sMax
	}
	if sStep > scale {
		scale = sStep
	}

	var values []Value
	for cur := new(big.Rat).Set(rMin); cur.Cmp(rMax) <= 0; cur.Add(cur, rStep) {
		values = append(values, DecimalValue(new(big.Rat).Set(cur), scale))
	}
	return values, nil
}

func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}

// parseDecimal accepts plain decimal numerals ("-1.25") and returns an
// exact rational plus the number of fractional digits.
func parseDecimal(s string) (*big.Rat, int, error) {
	body := strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	intPart, fracPart, hasDot := strings.Cut(body, ".")
	if intPart == "" || !isDigits(intPart) || (hasDot && (fracPart == "" || !isDigits(fracPart))) {
		return nil, 0, fmt.Errorf("%q is not a number", s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, 0, fmt.Errorf("%q is not a number", s)
	}
	return r, len(fracPart), nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// BuildCommands expands the command templates across all parameter
// axes: every template is combined with the cartesian product of the
// axis values, templates outermost, first axis varying slowest. With
// no axes, every template becomes exactly one command.
//
// Names, when given, apply per template (at most one per template) and
// may themselves contain {param} tokens. Duplicate parameter names
// across axes are a configuration error detected here, before anything
// is executed.
func BuildCommands(templates, names []string, axes []Axis) ([]Command, error) {
	if len(names) > len(templates) {
		return nil, fmt.Errorf("too many --command-name options: %d given for %d commands", len(names), len(templates))
	}
	seen := make(map[string]struct{}, len(axes))
	for _, axis := range axes {
		if _, dup := seen[axis.Var]; dup {
			return nil, fmt.Errorf("duplicate parameter name %q", axis.Var)
		}
		seen[axis.Var] = struct{}{}
	}

	combos := cartesian(axes)
	commands := make([]Command, 0, len(templates)*len(combos))
	for i, template := range templates {
		var name string
		if i < len(names) {
			name = names[i]
		}
		for _, params := range combos {
			commands = append(commands, NewParametrized(name, template, params))
		}
	}
	return commands, nil
}

func cartesian(axes []Axis) [][]Parameter {
	combos := [][]Parameter{nil}
	for _, axis := range axes {
		next := make([][]Parameter, 0, len(combos)*len(axis.Values))
		for _, combo := range combos {
			for _, v := range axis.Values {
				extended := make([]Parameter, len(combo), len(combo)+1)
				copy(extended, combo)
				next = append(next, append(extended, Parameter{Name: axis.Var, Value: v}))
			}
		}
		combos = next
	}
	return combos
}
