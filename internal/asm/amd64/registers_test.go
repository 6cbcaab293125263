package amd64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_IsExtended(t *testing.T) {
	require.False(t, RAX.IsExtended())
	require.False(t, RDI.IsExtended())
	require.True(t, R8.IsExtended())
	require.True(t, R15.IsExtended())
}

func TestRegister_RequiresREX(t *testing.T) {
	require.False(t, RAX.RequiresREX())
	require.True(t, R8.RequiresREX())
	require.False(t, AL.RequiresREX())
	require.False(t, AH.RequiresREX())
	require.True(t, SPL.RequiresREX())
	require.True(t, BPL.RequiresREX())
	require.True(t, SIL.RequiresREX())
	require.True(t, DIL.RequiresREX())
}

func TestRegister_IsHighByteAlias(t *testing.T) {
	for _, r := range []Register{AH, BH, CH, DH} {
		require.True(t, r.IsHighByteAlias(), r.Name)
	}
	for _, r := range []Register{AL, BL, CL, DL, SPL, BPL, SIL, DIL} {
		require.False(t, r.IsHighByteAlias(), r.Name)
	}
}

func TestRegister_SPLAndAHShareIndex(t *testing.T) {
	// SPL and AH alias the same 4-bit index; REX presence disambiguates them.
	require.Equal(t, SPL.Index, AH.Index)
	require.NotEqual(t, SPL.RequiresREX(), AH.RequiresREX())
}
