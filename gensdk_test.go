package gensdk

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacedriveapp/gensdk/api"
)

const testDatamodel = "model User {\n  id Int @id\n}\n"

// testGenerator returns a generator producing a fixed two-node tree and a
// pointer to its invocation count.
func testGenerator() (*Generator, *int) {
	calls := 0
	gen := New(func(args api.GenerateArgs, config api.ConfigMap) (*api.Module, error) {
		calls++
		return (&api.Module{Name: "Client", Contents: "A"}).
			Add(api.NewModule("Model", "B")), nil
	}, "Test Generator", "./generated")
	return gen, &calls
}

func request(t *testing.T, id any, method string, params any) string {
	t.Helper()
	line, err := json.Marshal(map[string]any{"id": id, "method": method, "params": params})
	require.NoError(t, err)
	return string(line) + "\n"
}

func generateParams(output string, config map[string]any) map[string]any {
	return map[string]any{
		"datamodel":  testDatamodel,
		"schemaPath": "./schema",
		"generator": map[string]any{
			"name":     "client",
			"provider": map[string]any{"fromEnvVar": nil, "value": "test-generator"},
			"output":   map[string]any{"fromEnvVar": nil, "value": output},
			"config":   config,
		},
	}
}

func responses(t *testing.T, out *bytes.Buffer) []map[string]any {
	t.Helper()
	var resps []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		resps = append(resps, resp)
	}
	return resps
}

func TestSession_GetManifest(t *testing.T) {
	gen, _ := testGenerator()
	var out bytes.Buffer

	// params content is irrelevant to the manifest query; EOF after the
	// handshake is a fatal read, which is fine for this test
	in := strings.NewReader(request(t, 1, "getManifest", map[string]any{"junk": true}))
	err := gen.run(in, &out, memfs.New())
	require.Error(t, err)

	resps := responses(t, &out)
	require.Len(t, resps, 1)
	assert.Equal(t, float64(1), resps[0]["id"])
	assert.Equal(t, "2.0", resps[0]["jsonrpc"])

	manifest := resps[0]["result"].(map[string]any)["manifest"].(map[string]any)
	assert.Equal(t, "Test Generator", manifest["prettyName"])
	assert.Equal(t, "./generated", manifest["defaultOutput"])
}

func TestSession_UnknownMethodContinues(t *testing.T) {
	gen, _ := testGenerator()
	var out bytes.Buffer

	in := strings.NewReader(
		request(t, 1, "somethingElse", nil) +
			request(t, 2, "getManifest", nil))
	err := gen.run(in, &out, memfs.New())
	require.Error(t, err) // input exhausted before any generate

	resps := responses(t, &out)
	require.Len(t, resps, 2, "session must continue past an unknown method")

	errBody := resps[0]["error"].(map[string]any)
	assert.Equal(t, float64(0), errBody["code"])
	assert.Contains(t, errBody["message"], "Test Generator")
	assert.Contains(t, errBody["message"], "somethingElse")

	assert.Contains(t, resps[1], "result")
}

func TestSession_GenerateFolderLayout(t *testing.T) {
	gen, calls := testGenerator()
	fs := memfs.New()
	var out bytes.Buffer

	// the line after generate must never be read
	in := strings.NewReader(
		request(t, 1, "getManifest", nil) +
			request(t, 2, "generate", generateParams("/generated", map[string]any{"clientFormat": "folder"})) +
			request(t, 3, "getManifest", nil))

	require.NoError(t, gen.run(in, &out, fs))
	assert.Equal(t, 1, *calls)

	resps := responses(t, &out)
	require.Len(t, resps, 2, "no request after generate is processed")
	assert.Equal(t, float64(2), resps[1]["id"])
	assert.Contains(t, resps[1], "result")
	assert.Nil(t, resps[1]["result"])

	header := "// File generated by Test Generator. DO NOT EDIT\n\n"
	model, err := util.ReadFile(fs, "/generated/model.rs")
	require.NoError(t, err)
	assert.Equal(t, header+"B", string(model))

	mod, err := util.ReadFile(fs, "/generated/mod.rs")
	require.NoError(t, err)
	assert.Equal(t, header+"pub mod model;\n\nA", string(mod))
}

func TestSession_GenerateFileLayout(t *testing.T) {
	gen, _ := testGenerator()
	fs := memfs.New()
	var out bytes.Buffer

	in := strings.NewReader(
		request(t, 1, "generate", generateParams("/generated.rs", map[string]any{"clientFormat": "file"})))

	require.NoError(t, gen.run(in, &out, fs))

	content, err := util.ReadFile(fs, "/generated.rs")
	require.NoError(t, err)
	assert.Equal(t, "// File generated by Test Generator. DO NOT EDIT\n\nBA", string(content))
}

func TestSession_GenerateCleansStaleOutput(t *testing.T) {
	gen, _ := testGenerator()
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/generated/stale.rs", []byte("old"), 0o644))

	var out bytes.Buffer
	in := strings.NewReader(
		request(t, 1, "generate", generateParams("/generated", map[string]any{})))
	require.NoError(t, gen.run(in, &out, fs))

	_, err := fs.Stat("/generated/stale.rs")
	assert.Error(t, err, "stale output must be removed before materialization")
}

func TestSession_GenerateFnErrorIsReported(t *testing.T) {
	gen := New(func(args api.GenerateArgs, config api.ConfigMap) (*api.Module, error) {
		return nil, assert.AnError
	}, "Test Generator", "./generated")

	var out bytes.Buffer
	in := strings.NewReader(
		request(t, "req-9", "generate", generateParams("/generated", map[string]any{})))

	require.NoError(t, gen.run(in, &out, memfs.New()),
		"a generation-function failure is recoverable, not fatal")

	resps := responses(t, &out)
	require.Len(t, resps, 1)
	assert.Equal(t, "req-9", resps[0]["id"])
	errBody := resps[0]["error"].(map[string]any)
	assert.Equal(t, float64(0), errBody["code"])
	assert.Equal(t, assert.AnError.Error(), errBody["message"])
}

func TestSession_FolderLayoutRejectsFilePath(t *testing.T) {
	gen, calls := testGenerator()
	var out bytes.Buffer

	in := strings.NewReader(
		request(t, 1, "generate", generateParams("/generated.rs", map[string]any{"clientFormat": "folder"})))
	err := gen.run(in, &out, memfs.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a directory")
	assert.Equal(t, 0, *calls, "generation function must not run on a config error")
	assert.Empty(t, out.String(), "fatal conditions produce no protocol response")
}

func TestSession_FileLayoutRejectsDirPath(t *testing.T) {
	gen, calls := testGenerator()
	var out bytes.Buffer

	in := strings.NewReader(
		request(t, 1, "generate", generateParams("/generated", map[string]any{"clientFormat": "file"})))
	err := gen.run(in, &out, memfs.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a file")
	assert.Equal(t, 0, *calls)
}

func TestSession_InvalidClientFormatIsFatal(t *testing.T) {
	gen, calls := testGenerator()
	var out bytes.Buffer

	in := strings.NewReader(
		request(t, 1, "generate", generateParams("/generated", map[string]any{"clientFormat": "zip"})))
	err := gen.run(in, &out, memfs.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "clientFormat")
	assert.Equal(t, 0, *calls)
}

func TestSession_MalformedLineIsFatal(t *testing.T) {
	gen, _ := testGenerator()
	var out bytes.Buffer

	err := gen.run(strings.NewReader("{not json}\n"), &out, memfs.New())
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestExecute_DirectInvocation(t *testing.T) {
	gen, _ := testGenerator()
	fs := memfs.New()

	value := "/out"
	err := gen.Execute(fs, &api.EngineInput{
		Datamodel: testDatamodel,
		Generator: api.GeneratorSpec{
			Output: &api.EnvValue{Value: &value},
			Config: api.ConfigMap{},
		},
	})
	require.NoError(t, err)

	_, err = fs.Stat("/out/mod.rs")
	assert.NoError(t, err)
}
