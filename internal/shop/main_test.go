package shop

import (
	"testing"

	"go.uber.org/goleak"
)

// Nothing in this package starts goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
