package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	code   int
}

func runCLI(t *testing.T, stdin string, args ...string) *cli {
	t.Helper()
	c := &cli{}
	c.code = run(args, strings.NewReader(stdin), &c.stdout, &c.stderr)
	return c
}

// isolate points the config lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(summarizerEnv, "")
	return dir
}

func hooksProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, ".claude", "hooks", filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestRun_CopyThenSkip(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X", "b.py": "Y"})
	dst := t.TempDir()

	first := runCLI(t, "", "--source", src, "--method=copy", "-q", dst)
	require.Equal(t, 0, first.code, first.stderr.String())
	out := first.stdout.String()
	assert.Contains(t, out, "Sync Summary:\n")
	assert.Contains(t, out, "  Total files processed: 2\n")
	assert.Contains(t, out, "  Copied: 2\n")
	assert.Contains(t, out, "  All files synced successfully!\n")

	data, err := os.ReadFile(filepath.Join(dst, ".claude", "hooks", "a.py"))
	require.NoError(t, err)
	assert.Equal(t, "X", string(data))

	second := runCLI(t, "", "--source", src, "--method=copy", "-q", dst)
	require.Equal(t, 0, second.code, second.stderr.String())
	assert.Contains(t, second.stdout.String(), "  Skipped (already synced): 2\n")
	assert.Contains(t, second.stdout.String(), "  Copied: 0\n")
}

func TestRun_TargetValidation(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X"})
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	missing := runCLI(t, "", "--source", src, filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, missing.code)
	assert.Contains(t, missing.stderr.String(), "Error: target directory")

	notDir := runCLI(t, "", "--source", src, file)
	assert.Equal(t, 1, notDir.code)
	assert.Contains(t, notDir.stderr.String(), "is not a directory")

	noArgs := runCLI(t, "")
	assert.Equal(t, 1, noArgs.code)
}

func TestRun_InvalidFlags(t *testing.T) {
	isolate(t)
	dst := t.TempDir()

	badMethod := runCLI(t, "", "--method=rsync", dst)
	assert.Equal(t, 1, badMethod.code)
	assert.Contains(t, badMethod.stderr.String(), "unknown sync method")

	badDigest := runCLI(t, "", "--digest=md5", dst)
	assert.Equal(t, 1, badDigest.code)
	assert.Contains(t, badDigest.stderr.String(), "unknown digest")

	both := runCLI(t, "", "-v", "-q", dst)
	assert.Equal(t, 1, both.code)
}

func TestRun_NoHookFiles(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"README.md": "docs"})

	res := runCLI(t, "", "--source", src, t.TempDir())
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr.String(), "no hook files found")
	assert.NotContains(t, res.stdout.String(), "Sync Summary")
}

func TestRun_MissingSource(t *testing.T) {
	isolate(t)
	res := runCLI(t, "", "--source", filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr.String(), "Error: discover")
}

func TestRun_PartialFailure(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X", "sub/b.py": "Y"})
	dst := t.TempDir()
	hooks := filepath.Join(dst, ".claude", "hooks")
	require.NoError(t, os.MkdirAll(hooks, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hooks, "sub"), []byte("blocker"), 0o644))

	res := runCLI(t, "", "--source", src, "-q", dst)
	assert.Equal(t, 1, res.code)

	out := res.stdout.String()
	assert.Contains(t, out, "Failed to sync: sub/b.py\n")
	assert.Contains(t, out, "  Symlinked: 1\n")
	assert.Contains(t, out, "  Errors: 1\n")
	assert.Contains(t, out, "  1 files failed to sync\n")
	assert.NotContains(t, res.stderr.String(), "Error:")
}

func TestRun_UncreatableTargetStillSummarizes(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X", "b.py": "Y"})
	dst := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dst, ".claude"), []byte("blocker"), 0o644))

	res := runCLI(t, "", "--source", src, "-q", dst)
	assert.Equal(t, 1, res.code)

	out := res.stdout.String()
	assert.Contains(t, out, "Sync Summary:\n")
	assert.Contains(t, out, "  Errors: 2\n")
	assert.NotContains(t, res.stderr.String(), "Error:")
}

func TestRun_DirectoryTargetFailsInDryRun(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X"})
	dst := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dst, ".claude", "hooks", "a.py", "inner"), 0o755))

	for _, args := range [][]string{
		{"--source", src, "--method=copy", "--dry-run", "-q", dst},
		{"--source", src, "--method=copy", "-q", dst},
	} {
		res := runCLI(t, "", args...)
		assert.Equal(t, 1, res.code, args)
		assert.Contains(t, res.stdout.String(), "  Errors: 1\n", args)
		assert.Contains(t, res.stdout.String(), "  Copied: 0\n", args)
	}
	assert.DirExists(t, filepath.Join(dst, ".claude", "hooks", "a.py", "inner"))
}

func TestRun_DryRun(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X", "b.py": "Y"})
	dst := t.TempDir()

	res := runCLI(t, "", "--source", src, "--dry-run", "-q", dst)
	require.Equal(t, 0, res.code, res.stderr.String())
	assert.Contains(t, res.stdout.String(), "(dry run: no changes made)")
	assert.Contains(t, res.stdout.String(), "  Symlinked: 2\n")

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_Verbose(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X", "notes.txt": "skip me"})
	dst := t.TempDir()

	res := runCLI(t, "", "--source", src, "-v", dst)
	require.Equal(t, 0, res.code, res.stderr.String())
	assert.Contains(t, res.stdout.String(), "found 1 hook files\n")
	assert.Contains(t, res.stdout.String(), "symlink  a.py\n")
	assert.Contains(t, res.stdout.String(), "done ✓")
	assert.Contains(t, res.stderr.String(), "level=DEBUG")

	again := runCLI(t, "", "--source", src, "-v", dst)
	require.Equal(t, 0, again.code)
	assert.Contains(t, again.stdout.String(), "skip  a.py  (symlinked)\n")
}

func TestRun_ExtensionsAndFilters(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{
		"run.sh":           "sh",
		"lib.py":           "py",
		"vendor/dep.sh":    "vendored",
		"vendor/keep.sh":   "kept",
		"__pycache__/x.sh": "cache",
	})
	rules := filepath.Join(t.TempDir(), "rules")
	require.NoError(t, os.WriteFile(rules, []byte("# cache dirs\n- __pycache__/\n"), 0o644))
	dst := t.TempDir()

	res := runCLI(t, "",
		"--source", src, "-q",
		"--ext", ".sh",
		"--include", "vendor/keep.sh",
		"--exclude", "vendor/*.sh",
		"--filter", rules,
		dst,
	)
	require.Equal(t, 0, res.code, res.stderr.String())
	assert.Contains(t, res.stdout.String(), "  Total files processed: 2\n")

	hooks := filepath.Join(dst, ".claude", "hooks")
	assert.FileExists(t, filepath.Join(hooks, "run.sh"))
	assert.FileExists(t, filepath.Join(hooks, "vendor", "keep.sh"))
	assert.NoFileExists(t, filepath.Join(hooks, "lib.py"))
	assert.NoFileExists(t, filepath.Join(hooks, "vendor", "dep.sh"))
}

func TestRun_ConfigDefaults(t *testing.T) {
	cfgHome := isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X", "b.sh": "Y", "test_a.sh": "Z"})
	require.NoError(t, os.MkdirAll(filepath.Join(cfgHome, "hooksync"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgHome, "hooksync", "config.toml"), []byte(`
[defaults]
method = "copy"
source = "`+filepath.ToSlash(src)+`"
digest = "xxhash"
extensions = [".sh"]

[filter]
exclude = ["test_*"]
`), 0o644))

	dst := t.TempDir()
	res := runCLI(t, "", "-q", dst)
	require.Equal(t, 0, res.code, res.stderr.String())
	assert.Contains(t, res.stdout.String(), "  Copied: 1\n")
	assert.Contains(t, res.stdout.String(), "  Total files processed: 1\n")

	// A flag beats the config value.
	dst2 := t.TempDir()
	res = runCLI(t, "", "-q", "--method", "symlink", dst2)
	require.Equal(t, 0, res.code, res.stderr.String())
	assert.Contains(t, res.stdout.String(), "  Symlinked: 1\n")
}

func TestRun_BadConfigMethod(t *testing.T) {
	cfgHome := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfgHome, "hooksync"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgHome, "hooksync", "config.toml"),
		[]byte("[defaults]\nmethod = \"teleport\"\n"), 0o644))

	res := runCLI(t, "", t.TempDir())
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr.String(), "config defaults.method")
}

func TestRun_LogFile(t *testing.T) {
	isolate(t)
	src := hooksProject(t, map[string]string{"a.py": "X"})
	logPath := filepath.Join(t.TempDir(), "sync.log")

	res := runCLI(t, "", "--source", src, "-q", "--log", logPath, t.TempDir())
	require.Equal(t, 0, res.code, res.stderr.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(data)
	assert.Contains(t, log, `"msg":"hooksync.event"`)
	assert.Contains(t, log, `"type":"FileSynced"`)
	assert.Contains(t, log, `"path":"a.py"`)
	assert.NotContains(t, res.stderr.String(), "hooksync.event")
}

func TestRun_Version(t *testing.T) {
	res := runCLI(t, "", "--version")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "hooksync dev\n", res.stdout.String())
}

func TestSummarize(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			"template",
			`{"type":"PostToolUse","payload":{"tool_name":"Read","tool_input":{"file_path":"/test/file.txt"}}}`,
			nil,
			"PostToolUse: Read /test/file.txt\n",
		},
		{"malformed", `{"type":`, nil, "Hook event\n"},
		{"empty stdin", ``, nil, "Hook event\n"},
		{
			"external command",
			`{"type":"Stop","payload":{}}`,
			[]string{"--command", "cat >/dev/null; echo agent finished"},
			"agent finished\n",
		},
		{
			"failing command",
			`{"type":"Stop","payload":{}}`,
			[]string{"--command", "exit 7"},
			"Stop\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.stdin, append([]string{"summarize"}, tt.args...)...)
			assert.Equal(t, 0, res.code, res.stderr.String())
			assert.Equal(t, tt.want, res.stdout.String())
		})
	}
}

func TestSummarize_EnvCommand(t *testing.T) {
	isolate(t)
	t.Setenv(summarizerEnv, "cat >/dev/null; echo from env")

	res := runCLI(t, `{"type":"Stop"}`, "summarize")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "from env\n", res.stdout.String())
}

func TestGenDocs(t *testing.T) {
	dir := t.TempDir()
	res := runCLI(t, "", "gen-docs", "--format", "markdown", "--dir", dir)
	require.Equal(t, 0, res.code, res.stderr.String())
	assert.FileExists(t, filepath.Join(dir, "hooksync.md"))
	assert.FileExists(t, filepath.Join(dir, "hooksync_summarize.md"))

	bad := runCLI(t, "", "gen-docs", "--format", "pdf", "--dir", dir)
	assert.Equal(t, 1, bad.code)
}
