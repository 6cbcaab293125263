package amd64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsmOperand_Size(t *testing.T) {
	require.Equal(t, uint8(8), RegOperand(RAX).Size())
	require.Equal(t, uint8(4), RegOperand(EAX).Size())
	require.Equal(t, uint8(1), RegOperand(AL).Size())
	require.Equal(t, uint8(16), RegOperand(XMM0).Size())
	require.Equal(t, uint8(32), RegOperand(YMM0).Size())
	require.Equal(t, uint8(8), IndirectOperand(RBP, 8).Size())
	require.Equal(t, uint8(4), DispOperand(RBP, -8, 4).Size())
	require.Equal(t, uint8(8), SegOffsetOperand(SegFS, 0x28).Size())
	require.Equal(t, uint8(1), UintOperand(1, 1).Size())
	require.Equal(t, uint8(4), UintOperand(1, 0).Size())
	require.Equal(t, uint8(4), Float32Operand(1).Size())
	require.Equal(t, uint8(8), Float64Operand(1).Size())
}

func TestRegOperand_PicksFRegForXMMAndYMM(t *testing.T) {
	require.Equal(t, HighReg, RegOperand(RAX).Kind)
	require.Equal(t, HighFReg, RegOperand(XMM0).Kind)
	require.Equal(t, HighFReg, RegOperand(YMM0).Kind)
}

func TestLowKind_Expand_RegisterOperandsAreSizeConsistentWithSize(t *testing.T) {
	// Every (kind, size) pair a LowKind expands to for a register operand
	// must match what AsmOperand.Size() actually reports for a real
	// register of that kind, or the trie and the selector would disagree.
	cases := []struct {
		lk   LowKind
		reg  Register
		kind HighKind
	}{
		{LowR8, AL, HighReg},
		{LowR16, AX, HighReg},
		{LowR32, EAX, HighReg},
		{LowR64, RAX, HighReg},
		{LowXMM1S32, XMM0, HighFReg},
		{LowXMM1S64, XMM0, HighFReg},
	}
	for _, tc := range cases {
		op := RegOperand(tc.reg)
		found := false
		for _, k := range tc.lk.expand() {
			if k.kind == tc.kind && k.size == op.Size() {
				found = true
			}
		}
		require.True(t, found, "LowKind %v does not expand to match a real %v operand's key", tc.lk, tc.reg.Name)
	}
}

func TestLowKind_Expand_RM_IncludesRegisterAndAllMemoryShapes(t *testing.T) {
	keys := LowRM32.expand()
	require.Contains(t, keys, operandKey{HighReg, 4})
	require.Contains(t, keys, operandKey{HighIndirectReg, 4})
	require.Contains(t, keys, operandKey{HighDispReg, 4})
	require.Contains(t, keys, operandKey{HighSIBReg, 4})
	require.Contains(t, keys, operandKey{HighRIPRelative, 4})
	require.Contains(t, keys, operandKey{HighSegOffset, 4})
}

func TestLowKind_Expand_XMM2M128_IsFRegOnly(t *testing.T) {
	keys := LowXMM2M128.expand()
	require.Equal(t, []operandKey{{HighFReg, 16}}, keys)
}
