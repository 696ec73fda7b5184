package pulse

// -------------------------------------------------------------
// Pulse scenario file (scenarios: [{name, profile, requests}])
// -------------------------------------------------------------

// Request is one HTTP call of a scenario.
type Request struct {
	Name     string            `yaml:"name"`
	Method   string            `yaml:"method"`
	Protocol string            `yaml:"protocol"`
	Host     string            `yaml:"host"`
	Path     string            `yaml:"path"`
	Headers  map[string]string `yaml:"headers,omitempty"`
	Body     string            `yaml:"body,omitempty"`
	Expect   *Expect           `yaml:"expect,omitempty"`
}

// Expect lists the checks made on a response.
type Expect struct {
	Status       int      `yaml:"status,omitempty"`
	BodyContains []string `yaml:"body_contains,omitempty"`
}

// Profile sets the load shape of a scenario.
type Profile struct {
	Concurrency  int    `yaml:"concurrency"`
	RampUp       string `yaml:"ramp_up"`
	Duration     string `yaml:"duration"`
	RampDown     string `yaml:"ramp_down,omitempty"`
	Iterations   int    `yaml:"iterations,omitempty"`
	StartupDelay string `yaml:"startup_delay,omitempty"`
}

// Scenario is a named request sequence run under a profile.
type Scenario struct {
	Name     string    `yaml:"name"`
	Profile  Profile   `yaml:"profile"`
	Requests []Request `yaml:"requests"`
}

// ScenarioFile is the top level of a Pulse YAML file.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// DefaultProfile mirrors the thread group of a converted test plan: one
// user, one second of ramp-up.
func DefaultProfile() Profile {
	return Profile{
		Concurrency: 1,
		RampUp:      "1s",
		Duration:    "10s",
	}
}
