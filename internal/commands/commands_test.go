// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/bodkin/internal/config"
	"github.com/dacolabs/bodkin/internal/hub"
	"github.com/dacolabs/bodkin/internal/translate"
	"github.com/dacolabs/bodkin/internal/translate/gotypes"
	"github.com/dacolabs/bodkin/internal/translate/jsonschema"
	"github.com/dacolabs/bodkin/internal/translate/rust"
)

type location struct {
	Lat float64 `parquet:"lat"`
	Lon float64 `parquet:"lon"`
}

type reading struct {
	Sensor   string   `parquet:"sensor"`
	Value    float64  `parquet:"value"`
	Location location `parquet:"location"`
}

type meta struct {
	Tag string `parquet:"tag"`
}

type left struct {
	Meta meta `parquet:"meta"`
}

type right struct {
	Meta meta `parquet:"meta"`
}

type pair struct {
	Left  left  `parquet:"left"`
	Right right `parquet:"right"`
}

type stamped struct {
	At time.Time `parquet:"at"`
}

func parquetBytes[T any](t *testing.T, name string, rows []T) []byte {
	t.Helper()
	var buf bytes.Buffer
	var model T
	w := parquet.NewGenericWriter[T](&buf, parquet.NewSchema(name, parquet.SchemaOf(model)))
	_, err := w.Write(rows)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func readingsFile(t *testing.T) string {
	return writeFile(t, "readings.parquet", parquetBytes(t, "reading", []reading{{Sensor: "s1", Value: 1.5}}))
}

func testTranslators() translate.Register {
	return translate.Register{
		"rust":       &rust.Translator{},
		"go":         &gotypes.Translator{},
		"jsonschema": &jsonschema.Translator{},
	}
}

// execute runs the root command with an isolated default config.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	hasConfig := false
	for _, a := range args {
		if a == "--config" {
			hasConfig = true
		}
	}
	if !hasConfig {
		cfgPath := filepath.Join(t.TempDir(), config.FileName)
		cfg := config.Default()
		cfg.CacheDir = t.TempDir()
		require.NoError(t, cfg.Save(cfgPath))
		args = append([]string{"--config", cfgPath}, args...)
	}

	return executeWith(t, func(string) string { return "" }, args...)
}

func executeWith(t *testing.T, getenv func(string) string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(testTranslators(), getenv)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestGenerate_FromFile_Rust(t *testing.T) {
	path := readingsFile(t)

	stdout, _, err := execute(t, "generate", "--from-file", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "use arrow_convert::{ArrowDeserialize, ArrowField, ArrowSerialize};")
	assert.Contains(t, stdout, "pub sensor: String,")
	assert.Contains(t, stdout, "pub value: f64,")
	assert.Contains(t, stdout, "pub location: Location,")

	loc := strings.Index(stdout, "pub struct Location {")
	rec := strings.Index(stdout, "pub struct Reading {")
	require.NotEqual(t, -1, loc)
	require.NotEqual(t, -1, rec)
	assert.Less(t, loc, rec, "nested record must precede its parent")
}

func TestGenerate_FromFile_GoWithPackage(t *testing.T) {
	path := readingsFile(t)

	stdout, _, err := execute(t, "generate", "--from-file", path, "--target", "go", "--package", "sensors")
	require.NoError(t, err)

	assert.Contains(t, stdout, "package sensors")
	assert.Contains(t, stdout, "type Location struct")
	assert.Contains(t, stdout, "type Reading struct")
	assert.Contains(t, stdout, "`parquet:\"sensor\"`")
}

func TestGenerate_OutputFile(t *testing.T) {
	path := readingsFile(t)
	out := filepath.Join(t.TempDir(), "gen", "reading.schema.json")

	stdout, stderr, err := execute(t, "generate", "-f", path, "-t", "jsonschema", "-o", out)
	require.NoError(t, err)

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Output:")
	assert.Contains(t, stderr, out)

	content, err := os.ReadFile(out) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), `"$defs"`)
	assert.Contains(t, string(content), `"Location"`)
}

func TestGenerate_TargetFromConfig(t *testing.T) {
	path := readingsFile(t)

	cfgPath := filepath.Join(t.TempDir(), config.FileName)
	cfg := config.Default()
	cfg.Target = "go"
	cfg.Package = "fromconfig"
	require.NoError(t, cfg.Save(cfgPath))

	stdout, _, err := execute(t, "--config", cfgPath, "generate", "--from-file", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "package fromconfig")
}

func TestGenerate_UnsupportedColumn(t *testing.T) {
	path := writeFile(t, "stamped.parquet", parquetBytes(t, "stamped", []stamped{{At: time.Unix(0, 0)}}))
	out := filepath.Join(t.TempDir(), "stamped.rs")

	stdout, _, err := execute(t, "generate", "--from-file", path, "--output", out)
	require.Error(t, err)
	assert.ErrorIs(t, err, translate.ErrUnsupportedType)
	assert.Contains(t, err.Error(), `"at"`)

	assert.Empty(t, stdout)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output may be written on failure")
}

func TestGenerate_CollisionAndDepth(t *testing.T) {
	path := writeFile(t, "pair.parquet", parquetBytes(t, "pair", []pair{{}}))

	t.Run("qualify by default", func(t *testing.T) {
		stdout, _, err := execute(t, "generate", "--from-file", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "pub struct Meta {")
		assert.Contains(t, stdout, "pub struct RightMeta {")
		assert.Contains(t, stdout, "pub meta: RightMeta,")
	})

	t.Run("error policy", func(t *testing.T) {
		_, _, err := execute(t, "generate", "--from-file", path, "--on-collision", "error")
		assert.ErrorIs(t, err, translate.ErrNameCollision)
	})

	t.Run("max depth", func(t *testing.T) {
		_, _, err := execute(t, "generate", "--from-file", path, "--max-depth", "1")
		assert.ErrorIs(t, err, translate.ErrMaxDepth)
	})
}

func TestGenerate_FlagErrors(t *testing.T) {
	path := readingsFile(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "both sources",
			args:    []string{"generate", "--from-file", path, "--from-hf", "cifar10"},
			wantErr: "from-file",
		},
		{
			name:    "no source non-interactive",
			args:    []string{"generate", "--non-interactive"},
			wantErr: "one of --from-file or --from-hf is required",
		},
		{
			name:    "watch without output",
			args:    []string{"generate", "--from-file", path, "--watch"},
			wantErr: "--watch requires --from-file and --output",
		},
		{
			name:    "watch with dataset",
			args:    []string{"generate", "--from-hf", "cifar10", "--watch", "--output", "x.rs"},
			wantErr: "--watch requires --from-file and --output",
		},
		{
			name:    "unknown target",
			args:    []string{"generate", "--from-file", path, "--target", "cobol"},
			wantErr: `unsupported target "cobol". Available targets: go, jsonschema, rust`,
		},
		{
			name:    "unknown collision policy",
			args:    []string{"generate", "--from-file", path, "--on-collision", "merge"},
			wantErr: `unknown collision policy "merge"`,
		},
		{
			name:    "negative depth",
			args:    []string{"generate", "--from-file", path, "--max-depth", "-2"},
			wantErr: "--max-depth must not be negative",
		},
		{
			name:    "missing file",
			args:    []string{"generate", "--from-file", filepath.Join(t.TempDir(), "missing.parquet")},
			wantErr: "missing.parquet",
		},
		{
			name:    "positional argument",
			args:    []string{"generate", "data.parquet"},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func hubConfig(t *testing.T, endpoint string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), config.FileName)
	cfg := config.Default()
	cfg.CacheDir = t.TempDir()
	cfg.HubEndpoint = endpoint
	cfg.Datasets = map[string]hub.Coords{
		"sensors": {Name: "acme/sensors", Revision: "main", File: "data/train.parquet"},
	}
	require.NoError(t, cfg.Save(cfgPath))
	return cfgPath
}

func TestGenerate_FromHF(t *testing.T) {
	payload := parquetBytes(t, "reading", []reading{{Sensor: "s"}})

	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	getenv := func(k string) string {
		if k == "HF_TOKEN" {
			return "hf_test"
		}
		return ""
	}

	stdout, _, err := executeWith(t, getenv, "--config", hubConfig(t, srv.URL), "generate", "--from-hf", "sensors")
	require.NoError(t, err)

	assert.Equal(t, "/datasets/acme/sensors/resolve/main/data/train.parquet", gotPath)
	assert.Equal(t, "Bearer hf_test", gotAuth)
	assert.Contains(t, stdout, "pub struct Reading {")
}

func TestGenerate_FromHF_UnknownDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	_, _, err := execute(t, "--config", hubConfig(t, srv.URL), "generate", "--from-hf", "imagenet")
	assert.ErrorIs(t, err, hub.ErrDatasetNotFound)
}

func TestDatasets(t *testing.T) {
	stdout, _, err := execute(t, "--config", hubConfig(t, hub.DefaultEndpoint), "datasets")
	require.NoError(t, err)

	assert.Contains(t, stdout, "cifar10")
	assert.Contains(t, stdout, "refs/convert/parquet")
	assert.Contains(t, stdout, "plain_text/test/0000.parquet")
	assert.Contains(t, stdout, "sensors")
	assert.Contains(t, stdout, "acme/sensors")
	assert.Less(t, strings.Index(stdout, "cifar10"), strings.Index(stdout, "sensors"))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(dir))

	stdout, _, err := executeWith(t, nil, "init", "--target", "go", "--package", "models", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialization completed")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "go", cfg.Target)
	assert.Equal(t, "models", cfg.Package)
	assert.Equal(t, "qualify", cfg.OnCollision)
	assert.Equal(t, translate.DefaultMaxDepth, cfg.MaxDepth)

	_, _, err = executeWith(t, nil, "init", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
}

func TestInit_UnknownTarget(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(dir))

	_, _, err := executeWith(t, nil, "init", "--target", "cobol", "--non-interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported target")

	_, statErr := os.Stat(filepath.Join(dir, config.FileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestVersion(t *testing.T) {
	// An unreadable config must not break the version command.
	stdout, _, err := executeWith(t, nil, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "bodkin version "))
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, config.FileName, []byte("version: 9\n"))

	_, _, err := executeWith(t, nil, "--config", cfgPath, "datasets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
