package readyapi

import (
	"fmt"
	"io"
)

// Namespace is the namespace URI ReadyAPI and SoapUI use for project files.
const Namespace = "http://eviware.com/soapui/config"

// Request is one <con:request> element of a project, as found in the file.
// Values are raw: no property expansion has been applied.
type Request struct {
	Name       string
	Method     string
	Endpoint   string
	Content    string
	Headers    []Header
	Assertions []string
}

// Header is a <con:header name="...">value</con:header> entry.
type Header struct {
	Name  string
	Value string
}

// Project holds every request of a project file in document order.
type Project struct {
	Requests []Request
}

func (r Request) String() string {
	return fmt.Sprintf("%s %s (%s), %d headers, %d assertions",
		r.Method, r.Name, r.Endpoint, len(r.Headers), len(r.Assertions))
}

// Print writes a structured view of the project to writer.
func (p Project) Print(writer io.Writer) {
	fmt.Fprintf(writer, "%d requests\n", len(p.Requests))
	for i, r := range p.Requests {
		fmt.Fprintf(writer, "\n[%02d] %s\n", i+1, r.Name)
		fmt.Fprintf(writer, "\tMethod:      %s\n", r.Method)
		fmt.Fprintf(writer, "\tEndpoint:    %s\n", r.Endpoint)
		fmt.Fprintf(writer, "\tBody len:    %d\n", len(r.Content))
		fmt.Fprintf(writer, "\tHeaders:     %d\n", len(r.Headers))
		for _, h := range r.Headers {
			fmt.Fprintf(writer, "\t  %s: %s\n", h.Name, h.Value)
		}
		fmt.Fprintf(writer, "\tAssertions:  %d\n", len(r.Assertions))
	}
}
