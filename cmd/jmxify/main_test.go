package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jmxify/pkg/convert"
	"jmxify/pkg/pulse"
)

const project = `<con:soapui-project name="Demo" xmlns:con="http://eviware.com/soapui/config">
  <con:request name="Health" method="GET">
    <con:endpoint>https://${#Project#host}/health</con:endpoint>
    <con:header name="Accept">application/json</con:header>
    <con:assertion>UP</con:assertion>
  </con:request>
</con:soapui-project>`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func writeProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.xml")
	require.NoError(t, os.WriteFile(path, []byte(project), 0o644))
	return path
}

func TestConvertCommandDefaultOutput(t *testing.T) {
	in := writeProject(t)

	out, err := run(t, "convert", in)
	require.NoError(t, err)

	jmx := filepath.Join(filepath.Dir(in), "demo.jmx")
	assert.FileExists(t, jmx)
	assert.Contains(t, out, jmx)
}

func TestConvertCommandExplicitOutput(t *testing.T) {
	in := writeProject(t)
	jmx := filepath.Join(t.TempDir(), "plan.jmx")

	_, err := run(t, "convert", in, jmx)
	require.NoError(t, err)

	data, err := os.ReadFile(jmx)
	require.NoError(t, err)
	assert.Contains(t, string(data), "${host}")
}

func TestConvertCommandParseError(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.xml")
	require.NoError(t, os.WriteFile(bad, []byte("<nope"), 0o644))

	_, err := run(t, "convert", bad)
	var perr *convert.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestPulseCommand(t *testing.T) {
	in := writeProject(t)
	yml := filepath.Join(t.TempDir(), "demo.pulse.yaml")

	_, err := run(t, "pulse", in, yml)
	require.NoError(t, err)

	f, err := pulse.Load(yml)
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 1)
	assert.Equal(t, "demo", f.Scenarios[0].Name)
	require.Len(t, f.Scenarios[0].Requests, 1)
	req := f.Scenarios[0].Requests[0]
	assert.Equal(t, "https", req.Protocol)
	assert.Equal(t, "${host}", req.Host)
	assert.Equal(t, "/health", req.Path)
	require.NotNil(t, req.Expect)
	assert.Equal(t, []string{"UP"}, req.Expect.BodyContains)
}

func TestInspectCommand(t *testing.T) {
	out, err := run(t, "inspect", writeProject(t))
	require.NoError(t, err)
	assert.Contains(t, out, "[01] Health")
	assert.Contains(t, out, "Accept: application/json")
}

func TestConfigNamespaceIsUsed(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "jmxify.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("source:\n  namespace: urn:other\n"), 0o644))

	out, err := run(t, "inspect", writeProject(t), "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "0 requests")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "jmxify version")
}
