package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain refuses to run unless GO_ENV=test. Load reads .env.<GO_ENV>, so any
// other value would pull a real DATABASE_URL into these tests.
func TestMain(m *testing.M) {
	if env := os.Getenv("GO_ENV"); env != "test" {
		fmt.Fprintf(os.Stderr, "config tests: GO_ENV is %q, refusing to load .env.%s\n", env, env)
		fmt.Fprintln(os.Stderr, "config tests: run with GO_ENV=test go test ./...")
		os.Exit(1)
	}

	os.Exit(m.Run())
}
