package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdamBrianBright/callbackreturn/internal/jssyntax"
	"github.com/AdamBrianBright/callbackreturn/internal/rule"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newRule(t *testing.T) *rule.Rule {
	t.Helper()
	r, err := rule.New(rule.Config{})
	require.NoError(t, err)
	return r
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.js"), "")
	writeFile(t, filepath.Join(dir, "a.mjs"), "")
	writeFile(t, filepath.Join(dir, "lib", "c.cjs"), "")
	writeFile(t, filepath.Join(dir, "lib", "d.jsx"), "")
	writeFile(t, filepath.Join(dir, "lib", "readme.md"), "")
	writeFile(t, filepath.Join(dir, "node_modules", "dep", "index.js"), "")
	writeFile(t, filepath.Join(dir, ".git", "hook.js"), "")
	writeFile(t, filepath.Join(dir, "script.ts"), "")

	files, err := Collect([]string{dir, filepath.Join(dir, "b.js"), filepath.Join(dir, "script.ts")})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.mjs"),
		filepath.Join(dir, "b.js"),
		filepath.Join(dir, "lib", "c.cjs"),
		filepath.Join(dir, "lib", "d.jsx"),
		filepath.Join(dir, "script.ts"),
	}, files)
}

func TestCollectErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Collect([]string{dir})
	require.ErrorIs(t, err, ErrNoFiles)

	_, err = Collect([]string{filepath.Join(dir, "missing")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.js")
	bad := filepath.Join(dir, "bad.js")
	broken := filepath.Join(dir, "broken.js")
	missing := filepath.Join(dir, "missing.js")
	writeFile(t, good, "function a(err) { if (err) { return callback(err); } callback(); }\n")
	writeFile(t, bad, "function a(err) {\n  if (err) { callback(err); }\n  done();\n}\n")
	writeFile(t, broken, "function ( {")

	files := []string{good, bad, broken, missing}
	results, err := Run(context.Background(), newRule(t), files, 2)
	require.NoError(t, err)
	require.Len(t, results, len(files))

	for i, res := range results {
		require.Equal(t, files[i], res.Path)
	}

	require.False(t, results[0].Failed())

	require.True(t, results[1].Failed())
	require.NoError(t, results[1].Err)
	require.Len(t, results[1].Diagnostics, 1)
	require.Equal(t, 2, results[1].Diagnostics[0].Line)
	require.Equal(t, 14, results[1].Diagnostics[0].Column)

	require.ErrorIs(t, results[2].Err, jssyntax.ErrSyntax)
	require.ErrorIs(t, results[3].Err, os.ErrNotExist)
}

func TestRunDefaultJobs(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.js", "b.js", "c.js", "d.js", "e.js"} {
		path := filepath.Join(dir, name)
		writeFile(t, path, "function a() { callback(1); callback(2); }\n")
		files = append(files, path)
	}

	results, err := Run(context.Background(), newRule(t), files, 0)
	require.NoError(t, err)
	for i, res := range results {
		require.Equal(t, files[i], res.Path)
		require.Len(t, res.Diagnostics, 1)
	}

	results, err = Run(context.Background(), newRule(t), nil, 4)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestRunCanceled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.js")
	writeFile(t, path, "callback();\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, newRule(t), []string{path}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
