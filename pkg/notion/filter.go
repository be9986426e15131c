package notion

// Filter is a structured query filter. Only the combinators and conditions
// this client actually issues are modeled.
type Filter struct {
	And      []*Filter     `json:"and,omitempty"`
	Property string        `json:"property,omitempty"`
	Date     *DateFilter   `json:"date,omitempty"`
	Status   *StatusFilter `json:"status,omitempty"`
}

type DateFilter struct {
	OnOrAfter string `json:"on_or_after,omitempty"`
	Before    string `json:"before,omitempty"`
}

type StatusFilter struct {
	Equals string `json:"equals,omitempty"`
}

// And combines filters into a conjunction.
func And(filters ...*Filter) *Filter {
	return &Filter{And: filters}
}

// DateOnOrAfter matches pages whose date property is at or past the instant.
func DateOnOrAfter(property, instant string) *Filter {
	return &Filter{Property: property, Date: &DateFilter{OnOrAfter: instant}}
}

// DateBefore matches pages whose date property is before the instant.
func DateBefore(property, instant string) *Filter {
	return &Filter{Property: property, Date: &DateFilter{Before: instant}}
}

// StatusEquals matches pages whose status property has the given name.
func StatusEquals(property, name string) *Filter {
	return &Filter{Property: property, Status: &StatusFilter{Equals: name}}
}
