// Package convert turns ReadyAPI/SoapUI project files into JMeter test plans.
package convert

import (
	"log/slog"
	"path/filepath"
	"strings"

	"jmxify/internal/logging"
	"jmxify/pkg/jmeter"
	"jmxify/pkg/readyapi"
)

// Converter holds the settings of a conversion. The zero value converts
// projects in the ReadyAPI namespace and logs through logging.L().
type Converter struct {
	// Namespace overrides the namespace URI of source elements.
	Namespace string
	Logger    *slog.Logger
}

// Convert reads the project at inputPath and writes the equivalent JMeter
// test plan to outputPath with the default Converter.
func Convert(inputPath, outputPath string) error {
	return (&Converter{}).Convert(inputPath, outputPath)
}

// Convert reads the project at inputPath and writes the equivalent JMeter
// test plan to outputPath. A *ParseError is returned when the input cannot be
// read, an *IOError when the output cannot be written.
func (c *Converter) Convert(inputPath, outputPath string) error {
	plan, err := c.PlanFile(inputPath)
	if err != nil {
		return err
	}

	if err := plan.WriteFile(outputPath); err != nil {
		return &IOError{Path: outputPath, Err: err}
	}

	c.logger().Info("converted project",
		"input", inputPath,
		"output", outputPath,
		"samplers", len(plan.Samplers))
	return nil
}

// PlanFile parses the project at path and builds the test plan in memory.
func (c *Converter) PlanFile(path string) (jmeter.Plan, error) {
	project, err := c.ReadProject(path)
	if err != nil {
		return jmeter.Plan{}, err
	}
	return c.Plan(project), nil
}

// Plan builds a test plan holding one sampler per project request, in
// document order.
func (c *Converter) Plan(project readyapi.Project) jmeter.Plan {
	log := c.logger()
	plan := jmeter.Plan{Samplers: make([]jmeter.Sampler, 0, len(project.Requests))}
	for _, req := range project.Requests {
		s := SamplerFromRequest(req)
		log.Debug("sampler",
			"name", s.Name,
			"method", s.Method,
			"protocol", s.Protocol,
			"domain", s.Domain,
			"path", s.Path,
			"headers", len(s.Headers),
			"assertions", len(s.Assertions))
		plan.Samplers = append(plan.Samplers, s)
	}
	return plan
}

// ReadProject parses the project at path with the converter's namespace.
func (c *Converter) ReadProject(path string) (readyapi.Project, error) {
	project, err := c.parser().ParseFile(path)
	if err != nil {
		return readyapi.Project{}, &ParseError{Path: path, Err: err}
	}
	return project, nil
}

func (c *Converter) parser() *readyapi.Parser {
	p := readyapi.NewParser()
	if c.Namespace != "" {
		p.Namespace = c.Namespace
	}
	return p
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.L()
}

// DefaultOutput derives an output path from inputPath by swapping its
// extension for ext.
func DefaultOutput(inputPath, ext string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}
