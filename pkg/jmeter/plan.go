package jmeter

import (
	"bytes"
	"io"
	"os"

	"github.com/beevik/etree"
)

const (
	// PlanName is the testname of the generated test plan.
	PlanName = "Converted from ReadyAPI"
	// ThreadGroupName is the testname of its single thread group.
	ThreadGroupName = "Thread Group"
)

// -------------------------------------------------------------
// Document
// -------------------------------------------------------------

// Document builds the .jmx tree: jmeterTestPlan > test plan > thread group
// > samplers. Each test element is followed by the hashTree holding its
// children, as JMeter expects.
func (p Plan) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("jmeterTestPlan")
	root.CreateAttr("version", "1.2")
	root.CreateAttr("properties", "5.0")
	root.CreateAttr("jmeter", "5.5")

	planTree := root.CreateElement("hashTree")
	testPlan(planTree)

	groupTree := planTree.CreateElement("hashTree")
	threadGroup(groupTree)

	samplerTree := groupTree.CreateElement("hashTree")
	for _, s := range p.Samplers {
		s.appendTo(samplerTree)
	}

	// Leaf values such as a whitespace-only body are payload, not indentation.
	indent := etree.NewIndentSettings()
	indent.Spaces = 2
	indent.PreserveLeafWhitespace = true
	doc.IndentWithSettings(indent)
	return doc
}

// WriteTo serializes the plan to w.
func (p Plan) WriteTo(w io.Writer) (int64, error) {
	return p.Document().WriteTo(w)
}

// WriteFile serializes the plan to path, replacing any existing file.
func (p Plan) WriteFile(path string) error {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// -------------------------------------------------------------
// Fixed skeleton
// -------------------------------------------------------------

func testPlan(parent *etree.Element) {
	el := testElement(parent, "TestPlan", "TestPlanGui", PlanName)
	stringProp(el, "TestPlan.comments", "")
	boolProp(el, "TestPlan.functional_mode", false)
	boolProp(el, "TestPlan.serialize_threadgroups", false)

	vars := el.CreateElement("elementProp")
	vars.CreateAttr("name", "TestPlan.user_defined_variables")
	vars.CreateAttr("elementType", "Arguments")
	vars.CreateAttr("guiclass", "ArgumentsPanel")
	vars.CreateAttr("testclass", "Arguments")
	vars.CreateAttr("enabled", "true")
	collectionProp(vars, "Arguments.arguments")

	stringProp(el, "TestPlan.user_define_classpath", "")
}

func threadGroup(parent *etree.Element) {
	el := testElement(parent, "ThreadGroup", "ThreadGroupGui", ThreadGroupName)
	stringProp(el, "ThreadGroup.num_threads", "1")
	stringProp(el, "ThreadGroup.ramp_time", "1")
	longProp(el, "ThreadGroup.start_time", "0")
	longProp(el, "ThreadGroup.end_time", "0")
	boolProp(el, "ThreadGroup.scheduler", false)
	stringProp(el, "ThreadGroup.on_sample_error", "continue")
}

// -------------------------------------------------------------
// Per-request elements
// -------------------------------------------------------------

func (s Sampler) appendTo(parent *etree.Element) {
	el := testElement(parent, "HTTPSamplerProxy", "HttpTestSampleGui", s.Name)
	stringProp(el, "HTTPSampler.domain", s.Domain)
	stringProp(el, "HTTPSampler.port", "")
	stringProp(el, "HTTPSampler.protocol", s.Protocol)
	stringProp(el, "HTTPSampler.path", s.Path)
	stringProp(el, "HTTPSampler.method", s.Method)
	boolProp(el, "HTTPSampler.postBodyRaw", true)

	args := el.CreateElement("elementProp")
	args.CreateAttr("name", "HTTPsampler.Arguments")
	args.CreateAttr("elementType", "Arguments")
	collectionProp(args, "Arguments.arguments")

	stringProp(el, "HTTPSampler.body", s.Body)

	children := parent.CreateElement("hashTree")
	if len(s.Headers) > 0 {
		headerManager(children, s.Headers)
	}
	for _, contains := range s.Assertions {
		responseAssertion(children, contains)
	}
}

func headerManager(parent *etree.Element, headers []Header) {
	el := testElement(parent, "HeaderManager", "HeaderPanel", "HTTP Header Manager")
	list := collectionProp(el, "HeaderManager.headers")
	for _, h := range headers {
		entry := list.CreateElement("elementProp")
		entry.CreateAttr("name", "")
		entry.CreateAttr("elementType", "Header")
		stringProp(entry, "Header.name", h.Name)
		stringProp(entry, "Header.value", h.Value)
	}
	parent.CreateElement("hashTree")
}

func responseAssertion(parent *etree.Element, contains string) {
	el := testElement(parent, "ResponseAssertion", "AssertionGui", "Response Assertion")
	// JMeter's own property name carries the "Asserion" spelling.
	tests := collectionProp(el, "Asserion.test_strings")
	stringProp(tests, "", contains)
	stringProp(el, "Assertion.test_field", "Assertion.response_data")
	boolProp(el, "Assertion.assume_success", false)
	intProp(el, "Assertion.test_type", "2")
	parent.CreateElement("hashTree")
}

// -------------------------------------------------------------
// Helpers
// -------------------------------------------------------------

func testElement(parent *etree.Element, class, gui, name string) *etree.Element {
	el := parent.CreateElement(class)
	el.CreateAttr("guiclass", gui)
	el.CreateAttr("testclass", class)
	el.CreateAttr("testname", name)
	el.CreateAttr("enabled", "true")
	return el
}

func prop(parent *etree.Element, kind, name, value string) *etree.Element {
	el := parent.CreateElement(kind)
	el.CreateAttr("name", name)
	if value != "" {
		el.SetText(value)
	}
	return el
}

func stringProp(parent *etree.Element, name, value string) *etree.Element {
	return prop(parent, "stringProp", name, value)
}

func longProp(parent *etree.Element, name, value string) *etree.Element {
	return prop(parent, "longProp", name, value)
}

func intProp(parent *etree.Element, name, value string) *etree.Element {
	return prop(parent, "intProp", name, value)
}

func boolProp(parent *etree.Element, name string, value bool) *etree.Element {
	v := "false"
	if value {
		v = "true"
	}
	return prop(parent, "boolProp", name, v)
}

func collectionProp(parent *etree.Element, name string) *etree.Element {
	return prop(parent, "collectionProp", name, "")
}
