//go:build unit

package pointers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-unwrap/pointers"
)

func TestNew(t *testing.T) {
	t.Parallel()

	p := pointers.New(42)
	require.NotNil(t, p)
	require.Equal(t, 42, *p)
}

func TestNewReturnsCopy(t *testing.T) {
	t.Parallel()

	v := 42
	p := pointers.New(v)
	*p = 99

	require.Equal(t, 42, v)
}

func TestValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, 42, pointers.Value(pointers.New(42)))
	require.Zero(t, pointers.Value[int](nil))
	require.Empty(t, pointers.Value[string](nil))
}
