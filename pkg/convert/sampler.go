package convert

import (
	"strings"

	"jmxify/pkg/jmeter"
	"jmxify/pkg/placeholder"
	"jmxify/pkg/readyapi"
)

// SamplerFromRequest maps a ReadyAPI request to a JMeter sampler, converting
// property expansions in the endpoint, body, headers and assertions.
// Assertions that are blank after conversion are dropped.
func SamplerFromRequest(req readyapi.Request) jmeter.Sampler {
	endpoint := placeholder.Convert(req.Endpoint)
	protocol, domain, path := SplitEndpoint(endpoint)

	s := jmeter.Sampler{
		Name:     req.Name,
		Domain:   domain,
		Protocol: protocol,
		Path:     path,
		Method:   req.Method,
		Body:     placeholder.Convert(req.Content),
	}

	for _, h := range req.Headers {
		s.Headers = append(s.Headers, jmeter.Header{
			Name:  placeholder.Convert(h.Name),
			Value: placeholder.Convert(h.Value),
		})
	}

	for _, a := range req.Assertions {
		contains := placeholder.Convert(a)
		if strings.TrimSpace(contains) == "" {
			continue
		}
		s.Assertions = append(s.Assertions, contains)
	}

	return s
}

// SplitEndpoint splits an endpoint URL into protocol, domain and path.
// The protocol is https only when the endpoint starts with "https"; the
// domain is everything up to the first "/" once the scheme is removed. The
// path keeps a single leading "/" and is empty when there is nothing after
// the domain.
func SplitEndpoint(endpoint string) (protocol, domain, path string) {
	protocol = "http"
	if strings.HasPrefix(endpoint, "https") {
		protocol = "https"
	}

	rest := strings.TrimPrefix(endpoint, "https://")
	rest = strings.TrimPrefix(rest, "http://")

	parts := strings.Split(rest, "/")
	domain = parts[0]
	path = strings.Join(parts[1:], "/")
	if path != "" {
		path = "/" + path
	}
	return protocol, domain, path
}
