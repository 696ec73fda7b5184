package pulse

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"jmxify/pkg/jmeter"
)

// FromPlan builds a single-scenario file running every sampler of plan in
// order. Header names repeated within a sampler keep the last value.
func FromPlan(plan jmeter.Plan, name string, profile Profile) ScenarioFile {
	sc := Scenario{
		Name:     name,
		Profile:  profile,
		Requests: make([]Request, 0, len(plan.Samplers)),
	}

	for i, s := range plan.Samplers {
		req := Request{
			Name:     requestName(i, s),
			Method:   s.Method,
			Protocol: s.Protocol,
			Host:     s.Domain,
			Path:     s.Path,
			Body:     s.Body,
		}
		if len(s.Headers) > 0 {
			req.Headers = make(map[string]string, len(s.Headers))
			for _, h := range s.Headers {
				req.Headers[h.Name] = h.Value
			}
		}
		if len(s.Assertions) > 0 {
			req.Expect = &Expect{BodyContains: append([]string(nil), s.Assertions...)}
		}
		sc.Requests = append(sc.Requests, req)
	}

	return ScenarioFile{Scenarios: []Scenario{sc}}
}

// Write encodes f as YAML with a two-space indent.
func Write(w io.Writer, f ScenarioFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	return enc.Close()
}

// WriteFile writes f to path, replacing any existing file.
func WriteFile(path string, f ScenarioFile) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Load reads a scenario file back, the way the runner does.
func Load(path string) (ScenarioFile, error) {
	var f ScenarioFile
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("cannot read YAML file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("invalid YAML format: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return f, fmt.Errorf("no scenarios found in YAML")
	}
	return f, nil
}

// requestName prefixes the sampler name with its position so names stay
// unique in the runner's per-request metrics.
func requestName(i int, s jmeter.Sampler) string {
	return fmt.Sprintf("%02d_%s", i+1, sanitizeName(s.Name))
}

func sanitizeName(s string) string {
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
