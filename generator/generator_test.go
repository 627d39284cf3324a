package generator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maja42/incbin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAssets = []string{"a.png", "b-c.png"}

const expectedAssembly = `.global _ion_simulator_a_start
.global _ion_simulator_a_end
_ion_simulator_a_start:
    .incbin "ion/src/simulator/assets/a.png"
_ion_simulator_a_end:

.global _ion_simulator_b_c_start
.global _ion_simulator_b_c_end
_ion_simulator_b_c_start:
    .incbin "ion/src/simulator/assets/b-c.png"
_ion_simulator_b_c_end:

`

const expectedHeader = `#ifndef ION_SIMULATOR_LINUX_IMAGES_H
#define ION_SIMULATOR_LINUX_IMAGES_H

// This file is auto-generated by incbin

extern unsigned char _ion_simulator_a_start;
extern unsigned char _ion_simulator_a_end;
extern unsigned char _ion_simulator_b_c_start;
extern unsigned char _ion_simulator_b_c_end;

class ResourceMap {
public:
  constexpr ResourceMap(const char * identifier, unsigned char * start, unsigned char * end) : m_identifier(identifier), m_start(start), m_end(end) {}
  const char * identifier() const { return m_identifier; }
  unsigned char * start() const { return m_start; }
  unsigned char * end() const { return m_end; }
private:
  const char * m_identifier;
  unsigned char * m_start;
  unsigned char * m_end;
};

constexpr static ResourceMap resources_addresses[] = {
ResourceMap("a.png", &_ion_simulator_a_start, &_ion_simulator_a_end),
ResourceMap("b-c.png", &_ion_simulator_b_c_start, &_ion_simulator_b_c_end),
};

#endif
`

func TestWriteAssembly(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteAssembly(buf, testAssets, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, expectedAssembly, buf.String())

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "_start\n.global"))
	assert.Equal(t, 2, strings.Count(out, ".incbin"))
}

func TestWriteAssembly_options(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteAssembly(buf, []string{"README"}, Options{Prefix: "app", AssetDir: "res/"})
	require.NoError(t, err)
	assert.Equal(t, ".global _app_README_start\n"+
		".global _app_README_end\n"+
		"_app_README_start:\n"+
		"    .incbin \"res/README\"\n"+
		"_app_README_end:\n\n", buf.String())
}

func TestWriteHeader(t *testing.T) {
	buf := new(bytes.Buffer)
	err := WriteHeader(buf, testAssets, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, expectedHeader, buf.String())

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "extern unsigned char "))
	assert.Equal(t, 2, strings.Count(out, "ResourceMap(\""))
	assert.Less(t, strings.Index(out, `"a.png"`), strings.Index(out, `"b-c.png"`))
}

func TestWriteHeader_customGuard(t *testing.T) {
	opts := DefaultOptions()
	opts.Guard = "ASSETS_H"

	buf := new(bytes.Buffer)
	require.NoError(t, WriteHeader(buf, testAssets, opts))
	assert.True(t, strings.HasPrefix(buf.String(), "#ifndef ASSETS_H\n#define ASSETS_H\n\n"))
	assert.True(t, strings.HasSuffix(buf.String(), "};\n\n#endif\n"))
}

type errWriter struct{}

func (errWriter) Write([]byte) (n int, err error) {
	return 0, errors.New("simulated error")
}

func TestWrite_writeError(t *testing.T) {
	assert.EqualError(t, WriteAssembly(errWriter{}, testAssets, DefaultOptions()), "simulated error")
	assert.EqualError(t, WriteHeader(errWriter{}, testAssets, DefaultOptions()), "simulated error")
}

func testConfig(output string, assets ...string) Config {
	return Config{
		Output:  output,
		Assets:  assets,
		Options: DefaultOptions(),
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	t.Run("assembly", func(t *testing.T) {
		path := filepath.Join(dir, "images.s")
		require.NoError(t, Generate(testConfig(path, testAssets...), nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, expectedAssembly, string(data))
	})

	t.Run("header", func(t *testing.T) {
		path := filepath.Join(dir, "images.h")
		require.NoError(t, Generate(testConfig(path, testAssets...), nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, expectedHeader, string(data))
	})
}

func TestGenerate_idempotent(t *testing.T) {
	for _, name := range []string{"images.s", "images.h"} {
		path := filepath.Join(t.TempDir(), name)

		require.NoError(t, Generate(testConfig(path, testAssets...), nil))
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		require.NoError(t, Generate(testConfig(path, testAssets...), nil))
		second, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Equal(t, first, second, name)
	}
}

func TestGenerate_overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images.s")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("garbage\n", 1000)), 0644))

	require.NoError(t, Generate(testConfig(path, testAssets...), nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expectedAssembly, string(data))
}

func TestGenerate_logger(t *testing.T) {
	var lines []string
	logger := func(format string, args ...interface{}) {
		lines = append(lines, format)
	}
	path := filepath.Join(t.TempDir(), "images.h")
	require.NoError(t, Generate(testConfig(path, testAssets...), logger))
	assert.Len(t, lines, 1+len(testAssets))
}

func TestGenerate_unrecognizedOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	err := Generate(testConfig(path, testAssets...), nil)
	assert.True(t, errors.Is(err, incbin.ErrUnrecognizedOutput))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_validation(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"no output", testConfig("", "a.png"), incbin.ErrNoOutput},
		{"no assets", testConfig(filepath.Join(dir, "x.s")), incbin.ErrNoAssets},
		{"empty guard", Config{Output: filepath.Join(dir, "x.h"), Assets: []string{"a"}}, incbin.ErrInvalidGuard},
		{"strict collision", func() Config {
			cfg := testConfig(filepath.Join(dir, "x.s"), "logo.png", "logo.jpg")
			cfg.Strict = true
			return cfg
		}(), incbin.ErrSymbolCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Generate(tt.cfg, nil)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_collisionsAllowedByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "images.s")
	require.NoError(t, Generate(testConfig(path, "logo.png", "logo.jpg"), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "_ion_simulator_logo_start:\n"))
}

func TestGenerate_notWritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "images.s")
	err := Generate(testConfig(path, testAssets...), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, errors.Is(err, incbin.ErrWriteOutput))
}
