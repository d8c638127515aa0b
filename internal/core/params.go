package core

import "strconv"

// Parameter describes a single value a simulation reports to the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of values exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by simulations that describe their
// configuration.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// IntParam formats an integer parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

// StringParam formats a string parameter.
func StringParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Value: v}
}
