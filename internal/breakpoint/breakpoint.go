// Package breakpoint maps a container width to the number of scrollable
// columns that should be visible at once.
package breakpoint

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrEmptyRule is returned when a rule has neither a scalar count nor any
// breakpoint entries.
var ErrEmptyRule = errors.New("visible column rule is empty")

// ErrInvalidRule is returned for negative counts, negative thresholds or
// values that cannot be read as integers.
var ErrInvalidRule = errors.New("invalid visible column rule")

// Rule is either a constant visible count or a table of width thresholds.
// The zero value is an empty rule and fails Validate.
type Rule struct {
	scalar    int
	hasScalar bool
	table     map[int]int
	keys      []int // table keys, ascending
}

// NewScalar returns a rule that always resolves to n regardless of width.
func NewScalar(n int) Rule {
	return Rule{scalar: n, hasScalar: true}
}

// NewTable returns a rule resolved by the smallest threshold that is
// greater than or equal to the container width.
func NewTable(table map[int]int) Rule {
	r := Rule{table: make(map[int]int, len(table))}
	for k, v := range table {
		r.table[k] = v
		r.keys = append(r.keys, k)
	}
	slices.Sort(r.keys)
	return r
}

// Parse builds a rule from a decoded configuration value. It accepts an
// integer (scalar rule) or a map of integer-like keys to integer values.
func Parse(raw any) (Rule, error) {
	switch v := raw.(type) {
	case nil:
		return Rule{}, ErrEmptyRule
	case int:
		return NewScalar(v), nil
	case int64:
		return NewScalar(int(v)), nil
	case float64:
		n, err := toInt(v)
		if err != nil {
			return Rule{}, err
		}
		return NewScalar(n), nil
	case map[string]any:
		if len(v) == 0 {
			return Rule{}, ErrEmptyRule
		}
		table := make(map[int]int, len(v))
		for key, val := range v {
			threshold, err := strconv.Atoi(strings.TrimSpace(key))
			if err != nil {
				return Rule{}, fmt.Errorf("%w: threshold %q is not an integer", ErrInvalidRule, key)
			}
			count, err := toInt(val)
			if err != nil {
				return Rule{}, fmt.Errorf("%w: threshold %d: %w", ErrInvalidRule, threshold, err)
			}
			table[threshold] = count
		}
		return NewTable(table), nil
	case map[int]int:
		if len(v) == 0 {
			return Rule{}, ErrEmptyRule
		}
		return NewTable(v), nil
	default:
		return Rule{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidRule, raw)
	}
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("%w: %v is not a whole number", ErrInvalidRule, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: unsupported value type %T", ErrInvalidRule, v)
	}
}

// IsScalar reports whether the rule ignores the container width.
func (r Rule) IsScalar() bool {
	return r.hasScalar
}

// Thresholds returns the table thresholds in ascending order.
func (r Rule) Thresholds() []int {
	return slices.Clone(r.keys)
}

// Validate reports configuration errors in the rule.
func (r Rule) Validate() error {
	if r.hasScalar {
		if r.scalar < 0 {
			return fmt.Errorf("%w: negative count %d", ErrInvalidRule, r.scalar)
		}
		return nil
	}
	if len(r.keys) == 0 {
		return ErrEmptyRule
	}
	for _, k := range r.keys {
		if k < 0 {
			return fmt.Errorf("%w: negative threshold %d", ErrInvalidRule, k)
		}
		if r.table[k] < 0 {
			return fmt.Errorf("%w: negative count %d at threshold %d", ErrInvalidRule, r.table[k], k)
		}
	}
	return nil
}

// Resolve returns the visible column count for the given container width.
// A width above every threshold resolves to 0, which disables windowing.
func (r Rule) Resolve(containerWidth int) int {
	if r.hasScalar {
		return r.scalar
	}
	for _, k := range r.keys {
		if containerWidth <= k {
			return r.table[k]
		}
	}
	return 0
}

// Threshold returns the table threshold that decides containerWidth. ok is
// false for scalar rules and for widths above every threshold.
func (r Rule) Threshold(containerWidth int) (threshold int, ok bool) {
	if r.hasScalar {
		return 0, false
	}
	for _, k := range r.keys {
		if containerWidth <= k {
			return k, true
		}
	}
	return 0, false
}

// String renders the rule for status lines and reports.
func (r Rule) String() string {
	if r.hasScalar {
		return strconv.Itoa(r.scalar)
	}
	parts := make([]string, 0, len(r.keys))
	for _, k := range r.keys {
		parts = append(parts, fmt.Sprintf("<=%d:%d", k, r.table[k]))
	}
	return strings.Join(parts, " ")
}
