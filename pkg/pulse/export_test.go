package pulse

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jmxify/pkg/jmeter"
)

func samplePlan() jmeter.Plan {
	return jmeter.Plan{Samplers: []jmeter.Sampler{
		{
			Name:       "List users",
			Domain:     "api.example.com",
			Protocol:   "https",
			Path:       "/v1/users",
			Method:     "GET",
			Headers:    []jmeter.Header{{Name: "Accept", Value: "text/plain"}, {Name: "Accept", Value: "application/json"}},
			Assertions: []string{"${expected}"},
		},
		{
			Name:     "Create: user",
			Domain:   "${host}",
			Protocol: "http",
			Path:     "/v1/users",
			Method:   "POST",
			Body:     `{"id": "${id}"}`,
		},
	}}
}

func TestFromPlan(t *testing.T) {
	f := FromPlan(samplePlan(), "Demo", DefaultProfile())

	require.Len(t, f.Scenarios, 1)
	sc := f.Scenarios[0]
	assert.Equal(t, "Demo", sc.Name)
	assert.Equal(t, 1, sc.Profile.Concurrency)
	assert.Equal(t, "1s", sc.Profile.RampUp)
	require.Len(t, sc.Requests, 2)

	first := sc.Requests[0]
	assert.Equal(t, "01_List_users", first.Name)
	assert.Equal(t, "api.example.com", first.Host)
	assert.Equal(t, map[string]string{"Accept": "application/json"}, first.Headers)
	require.NotNil(t, first.Expect)
	assert.Equal(t, []string{"${expected}"}, first.Expect.BodyContains)

	second := sc.Requests[1]
	assert.Equal(t, "02_Create__user", second.Name)
	assert.Nil(t, second.Headers)
	assert.Nil(t, second.Expect)
	assert.Equal(t, `{"id": "${id}"}`, second.Body)
}

func TestWriteOmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FromPlan(samplePlan(), "Demo", DefaultProfile())))

	out := buf.String()
	assert.Contains(t, out, "name: Demo")
	assert.Contains(t, out, "body_contains:")
	assert.NotContains(t, out, "ramp_down")
	assert.NotContains(t, out, "status:")
}

func TestWriteFileThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.pulse.yaml")
	want := FromPlan(samplePlan(), "Demo", DefaultProfile())

	require.NoError(t, WriteFile(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios: []\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWriteFileFailsOnMissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "x.yaml"), ScenarioFile{})
	assert.Error(t, err)
}
