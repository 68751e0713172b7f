// Package gold implements golden files for encoder output.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// Bytes checks data against the committed golden file name. Run tests with
// -update to rewrite it.
func Bytes(t testing.TB, data []byte, name string) {
	t.Helper()

	p := Path(name)
	if Update {
		writeFile(t, p, data)
		return
	}

	expected, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s missing (run with -update to create it)", name)
	}
	if err != nil {
		t.Fatalf("golden file %s: %+v", name, err)
	}
	if !bytes.Equal(expected, data) {
		t.Errorf("golden file %s mismatch: %d bytes, want %d (run with -update to refresh)",
			name, len(data), len(expected))
	}
}

func writeFile(t testing.TB, p string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Logf("wrote golden file %s", p)
}
