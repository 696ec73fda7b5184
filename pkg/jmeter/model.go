package jmeter

// Sampler is one HTTP request of the test plan together with the elements
// nested under it.
type Sampler struct {
	Name     string
	Domain   string
	Protocol string
	Path     string
	Method   string
	Body     string

	// Headers become a single HTTP Header Manager; none is written when empty.
	Headers []Header
	// Assertions are response-body substrings, one Response Assertion each.
	Assertions []string
}

// Header is a name/value pair of an HTTP Header Manager.
type Header struct {
	Name  string
	Value string
}

// Plan is a test plan with a single thread group running Samplers in order.
type Plan struct {
	Samplers []Sampler
}
