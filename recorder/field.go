package recorder

import "fmt"

// Field is a per-session metadata value: either one value per trial or
// a single value repeated for every trial. The variant is fixed at
// construction rather than inferred from the runtime shape, so intent
// is explicit at the call site.
type Field struct {
	perTrial bool
	values   []string
	scalar   string
}

// PerTrial supplies one value per trial; the count must equal the
// session's iteration count or the session refuses to start.
func PerTrial(values ...string) Field {
	return Field{perTrial: true, values: values}
}

// Repeated supplies a single value fanned out to every trial. It is
// accepted for any iteration count.
func Repeated(value string) Field {
	return Field{scalar: value}
}

// resolve expands the field to exactly iterations values, validating
// per-trial arity.
func (f Field) resolve(name string, iterations int) ([]string, error) {
	if f.perTrial {
		if len(f.values) != iterations {
			return nil, fmt.Errorf("metadata %q: %d values for %d iterations", name, len(f.values), iterations)
		}
		return f.values, nil
	}
	out := make([]string, iterations)
	for i := range out {
		out[i] = f.scalar
	}
	return out, nil
}
