package gold_test

import (
	"os"
	"testing"

	"github.com/go-plotz/plotz/internal/gold"
)

func TestBytes(t *testing.T) {
	gold.Bytes(t, append([]byte{1, 2, 3}, "Hi!"...), "bytes.raw")
}

func TestMain(m *testing.M) {
	// Explicitly registering flags for golden files.
	gold.Init()

	os.Exit(m.Run())
}
