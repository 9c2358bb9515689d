package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randstr"
	"github.com/katalvlaran/randstr/alphabet"
)

func load(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	fs := pflag.NewFlagSet("randstr-test", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	return Load(fs, args)
}

func quietLogger() *logrus.Logger {
	return newLogger(&bytes.Buffer{}, false)
}

func TestLoad_Defaults(t *testing.T) {
	opts, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, defaultLength, opts.Length)
	assert.Equal(t, defaultCount, opts.Count)
	assert.Empty(t, opts.Classes)
	assert.Empty(t, opts.Must)
	assert.Zero(t, opts.Seed)
}

func TestLoad_Flags(t *testing.T) {
	opts, err := load(t, "-c", "letter,digit", "--must", "symbol", "-m", "digit",
		"--custom", "_", "-l", "24", "-n", "3", "--seed", "99", "-v", "-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"letter", "digit"}, opts.Classes)
	assert.Equal(t, []string{"symbol", "digit"}, opts.Must)
	assert.Equal(t, "_", opts.Custom)
	assert.Equal(t, 24, opts.Length)
	assert.Equal(t, 3, opts.Count)
	assert.Equal(t, int64(99), opts.Seed)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.All)
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"negative_length", []string{"--length=-1"}, "invalid length"},
		{"zero_count", []string{"-n", "0"}, "invalid count"},
		{"huge_count", []string{"-n", "100001"}, "invalid count"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := load(t, "--help")
	require.ErrorIs(t, err, pflag.ErrHelp)
}

// TestLoad_ConfigFileAndEnv checks the layering: file < env < flags.
func TestLoad_ConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "randstr.yaml")
	doc := "classes: [lower]\nmust: [digit]\nlength: 6\ncount: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	opts, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"lower"}, opts.Classes)
	assert.Equal(t, []string{"digit"}, opts.Must)
	assert.Equal(t, 6, opts.Length)
	assert.Equal(t, 4, opts.Count)

	t.Setenv("RANDSTR_LENGTH", "9")
	t.Setenv("RANDSTR_CLASSES", "upper, symbol")
	opts, err = load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 9, opts.Length, "env beats file")
	assert.Equal(t, []string{"upper", "symbol"}, opts.Classes)

	opts, err = load(t, "--config", path, "-l", "12")
	require.NoError(t, err)
	assert.Equal(t, 12, opts.Length, "flag beats env")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := load(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestOptions_Spec(t *testing.T) {
	opts := Options{
		Classes: []string{"lower", "custom"},
		Must:    []string{"digits", "custom"},
		Custom:  "#",
		Length:  5,
		Count:   1,
	}
	s, err := opts.Spec()
	require.NoError(t, err)
	assert.True(t, s.Enabled(alphabet.Lower))
	assert.True(t, s.Mandatory(alphabet.Digit))
	assert.True(t, s.Mandatory(alphabet.Custom))
	assert.Equal(t, 5, s.Config().Length)

	_, err = Options{Classes: []string{"glyph"}}.Spec()
	require.ErrorIs(t, err, alphabet.ErrUnknownKind)
	_, err = Options{Must: []string{"glyph"}}.Spec()
	require.ErrorIs(t, err, alphabet.ErrUnknownKind)
}

func TestRun_WritesCountLines(t *testing.T) {
	opts := Options{Classes: []string{"letter"}, Must: []string{"digit"}, Length: 10, Count: 25, Seed: 3}

	var out bytes.Buffer
	require.NoError(t, Run(opts, &out, quietLogger()))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 25)
	for _, l := range lines {
		require.Len(t, l, 10)
		require.True(t, alphabet.Of(alphabet.Digit).ContainsAny([]byte(l)), "no digit in %q", l)
	}
}

func TestRun_SeedIsReproducible(t *testing.T) {
	opts := Options{All: true, Length: 12, Count: 5, Seed: 42}

	var a, b bytes.Buffer
	require.NoError(t, Run(opts, &a, quietLogger()))
	require.NoError(t, Run(opts, &b, quietLogger()))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_BuildErrors(t *testing.T) {
	err := Run(Options{Length: 4, Count: 1}, &bytes.Buffer{}, quietLogger())
	require.ErrorIs(t, err, randstr.ErrNoAlphabet)

	err = Run(Options{Must: []string{"upper", "lower"}, Length: 1, Count: 1}, &bytes.Buffer{}, quietLogger())
	require.ErrorIs(t, err, randstr.ErrTooShort)
}

func TestRun_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	opts := Options{Classes: []string{"digit"}, Length: 4, Count: 1, Seed: 1}
	require.NoError(t, Run(opts, &bytes.Buffer{}, newLogger(&logs, true)))
	assert.Contains(t, logs.String(), "generator compiled")
	assert.Contains(t, logs.String(), "alphabet=10")
}

func TestLoad_UnknownClassName(t *testing.T) {
	_, err := load(t, "-c", "digit,glyph")
	require.ErrorIs(t, err, alphabet.ErrUnknownKind)

	_, err = load(t, "-m", "glyph")
	require.ErrorIs(t, err, alphabet.ErrUnknownKind)
}

// TestLoad_LibraryConfigFile feeds a file written by randstr.Config.WriteYAML.
func TestLoad_LibraryConfigFile(t *testing.T) {
	chars := "#"
	cfg := randstr.Config{Lower: true, MustDigit: true, Custom: &chars, MustCustom: true, Length: 7}

	var doc bytes.Buffer
	require.NoError(t, cfg.WriteYAML(&doc))
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, doc.Bytes(), 0o600))

	opts, err := load(t, "--config", path, "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, 7, opts.Length)
	assert.Equal(t, "#", opts.Custom)

	s, err := opts.Spec()
	require.NoError(t, err)
	g, err := s.TryBuild()
	require.NoError(t, err)
	assert.Len(t, g.Alphabet(), 26+10+1)
	assert.Equal(t, 2, g.MandatoryCount())
	for i := 0; i < 200; i++ {
		out := g.Generate()
		require.Len(t, out, 7)
		require.True(t, alphabet.Of(alphabet.Digit).ContainsAny([]byte(out)), "no digit in %q", out)
		require.Contains(t, out, "#")
	}
}

func TestLoad_RejectsUnknownFileKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "randstr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: blue\nlength: 4\n"), 0o600))

	_, err := load(t, "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestExecute_ExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"ok", []string{"-c", "digit", "-l", "4", "-n", "2"}, exitOK},
		{"help", []string{"--help"}, exitOK},
		{"unknown_class", []string{"-c", "glyph"}, exitUsage},
		{"bad_count", []string{"-c", "digit", "-n", "0"}, exitUsage},
		{"unknown_flag", []string{"--colour"}, exitUsage},
		{"no_alphabet", []string{"-l", "4"}, exitFailure},
		{"too_short", []string{"-m", "upper,lower", "-l", "1"}, exitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tc.want, execute(tc.args, &stdout, &stderr), "stderr: %s", stderr.String())
			if tc.name == "ok" {
				assert.Equal(t, 2, strings.Count(stdout.String(), "\n"))
			}
		})
	}
}
