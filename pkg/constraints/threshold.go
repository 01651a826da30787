package constraints

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Threshold is one attribute constraint value. Numeric attributes use
// Value; ownership uses Owner. On the wire a threshold is a bare number
// or a bare owner string.
type Threshold struct {
	Value float64
	Owner string
}

// Num builds a numeric threshold.
func Num(v float64) Threshold { return Threshold{Value: v} }

// Own builds an ownership threshold.
func Own(owner string) Threshold { return Threshold{Owner: owner} }

// Constraints maps attribute name to its threshold.
type Constraints map[string]Threshold

// UnmarshalJSON accepts a JSON number or string.
func (t *Threshold) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case float64:
		*t = Threshold{Value: val}
	case string:
		*t = Threshold{Owner: val}
	default:
		return fmt.Errorf("threshold must be a number or owner string, got %T", v)
	}
	return nil
}

// MarshalJSON emits the wire form: number or string.
func (t Threshold) MarshalJSON() ([]byte, error) {
	if t.Owner != "" {
		return json.Marshal(t.Owner)
	}
	return json.Marshal(t.Value)
}

// UnmarshalYAML accepts a YAML number or string.
func (t *Threshold) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("threshold must be a scalar, got %s", value.Tag)
	}
	var f float64
	if err := value.Decode(&f); err == nil {
		*t = Threshold{Value: f}
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*t = Threshold{Owner: s}
	return nil
}

// ErrUnknownAttribute rejects constraints on attribute names outside the
// fixed enumeration.
var ErrUnknownAttribute = errors.New("unknown attribute")

// ValidateThreshold checks one constraint against the attribute table:
// the name must be recognized, the threshold kind must match the attribute
// kind, and numeric values must sit inside the attribute's valid range.
func ValidateThreshold(name string, th Threshold) error {
	spec, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	if spec.Kind == KindOwnerSet {
		if th.Owner == "" {
			return fmt.Errorf("attribute %q requires an owner string threshold", name)
		}
		return nil
	}
	if th.Owner != "" {
		return fmt.Errorf("attribute %q requires a numeric threshold, got owner %q", name, th.Owner)
	}
	if spec.Kind == KindInt && th.Value != math.Trunc(th.Value) {
		return fmt.Errorf("attribute %q requires an integer threshold, got %v", name, th.Value)
	}
	if th.Value < spec.Min || th.Value > spec.Max {
		return fmt.Errorf("attribute %q threshold %v outside range [%v, %v]", name, th.Value, spec.Min, spec.Max)
	}
	return nil
}

// Validate checks every constraint in the map.
func (c Constraints) Validate() error {
	for name, th := range c {
		if err := ValidateThreshold(name, th); err != nil {
			return err
		}
	}
	return nil
}
