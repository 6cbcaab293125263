package amd64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize_FieldOrder(t *testing.T) {
	bf := &BinaryFormat{
		HasLegacyPrefix: true,
		LegacyPrefix:    0x64,
		HasRex:          true,
		Rex:             REX{W: true},
		Opcode:          []byte{0x8B},
		HasModRM:        true,
		ModRM:           ModRM{Mod: 0, Reg: 0, RM: 4},
		HasSIB:          true,
		SIB:             SIB{Scale: 0, Index: 4, Base: 5},
		Disp:            [8]byte{0x28, 0, 0, 0},
		DispCount:       4,
	}
	got := Serialize(bf)
	require.Equal(t, []byte{0x64, 0x48, 0x8B, 0x04, 0x25, 0x28, 0x00, 0x00, 0x00}, got)
}

func TestSerialize_VEXRecordStartsWithVEXEscape(t *testing.T) {
	bf := &BinaryFormat{
		HasVEX: true,
		VEX:    VEX{Map: 1, PP: 3},
		Opcode: []byte{0x58},
	}
	got := Serialize(bf)
	require.True(t, got[0] == 0xC5 || got[0] == 0xC4)
}

func TestSerializeVEX_TwoByteForm(t *testing.T) {
	// No X/B/W set and Map == 0F: eligible for the 2-byte (C5) form.
	v := VEX{Map: 1, PP: 3, Source: 15}
	require.False(t, v.needsThreeByteForm())
	got := serializeVEX(v)
	require.Len(t, got, 2)
	require.Equal(t, byte(0xC5), got[0])
}

func TestSerializeVEX_ThreeByteFormWhenWSet(t *testing.T) {
	v := VEX{Map: 1, PP: 3, W: true}
	require.True(t, v.needsThreeByteForm())
	got := serializeVEX(v)
	require.Len(t, got, 3)
	require.Equal(t, byte(0xC4), got[0])
}

func TestSerializeVEX_ThreeByteFormWhenExtendedRegisterSet(t *testing.T) {
	v := VEX{Map: 1, PP: 0}
	v.setB(true)
	require.True(t, v.needsThreeByteForm())
	got := serializeVEX(v)
	require.Len(t, got, 3)
}

func TestREX_Encode(t *testing.T) {
	require.Equal(t, byte(0x40), REX{}.encode())
	require.Equal(t, byte(0x48), REX{W: true}.encode())
	require.Equal(t, byte(0x41), REX{B: true}.encode())
	require.Equal(t, byte(0x4F), REX{W: true, R: true, X: true, B: true}.encode())
}

func TestModRM_Encode(t *testing.T) {
	require.Equal(t, byte(0xD8), ModRM{Mod: 3, Reg: 3, RM: 0}.encode())
}

func TestSIB_Encode(t *testing.T) {
	require.Equal(t, byte(0x25), SIB{Scale: 0, Index: 4, Base: 5}.encode())
}
