package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMem_SetGet(t *testing.T) {
	m := &Mem{}

	require.NoError(t, m.Set("hello"))

	got, err := m.Get()
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestMem_Clear(t *testing.T) {
	m := &Mem{}
	require.NoError(t, m.Set("something"))

	require.NoError(t, m.Clear())

	got, err := m.Get()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMem_Err(t *testing.T) {
	boom := errors.New("no clipboard here")
	m := &Mem{Err: boom}
	m.text = "untouched"

	require.ErrorIs(t, m.Set("x"), boom)
	require.ErrorIs(t, m.Clear(), boom)

	_, err := m.Get()
	require.ErrorIs(t, err, boom)
	require.Equal(t, "untouched", m.text)
}
