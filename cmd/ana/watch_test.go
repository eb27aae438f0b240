package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boynton/ana/config"
)

func TestWatch(test *testing.T) {
	srcDir, outDir := test.TempDir(), test.TempDir()
	in := filepath.Join(srcDir, "profile.ana")
	out := filepath.Join(outDir, "profile.json")
	require.NoError(test, os.WriteFile(in, []byte(source), 0644))

	saved := opts
	defer func() { opts = saved }()
	opts = config.Default()
	opts.Output = out

	contains := func(s string) func() bool {
		return func() bool {
			data, err := os.ReadFile(out)
			return err == nil && strings.Contains(string(data), s)
		}
	}

	stop := make(chan os.Signal)
	done := make(chan error, 1)
	go func() {
		done <- watch(in, stop)
	}()
	require.Eventually(test, contains(`"app.example.profile"`), 5*time.Second, 20*time.Millisecond)

	changed := strings.Replace(source, "app.example.profile", "app.example.changed", 1)
	require.NoError(test, os.WriteFile(in, []byte(changed), 0644))
	require.Eventually(test, contains(`"app.example.changed"`), 5*time.Second, 20*time.Millisecond)

	// a broken edit is reported and the last good output stays
	require.NoError(test, os.WriteFile(in, []byte("lexicon app.example.changed\nx: Float\n"), 0644))
	time.Sleep(100 * time.Millisecond)
	assert.True(test, contains(`"app.example.changed"`)())

	close(stop)
	select {
	case err := <-done:
		assert.NoError(test, err)
	case <-time.After(5 * time.Second):
		test.Fatal("watch did not stop")
	}
}
