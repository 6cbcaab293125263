package amd64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill_SlashDigitSetsModRMReg(t *testing.T) {
	f := form("inc_rm32", "inc", "", []byte{0xFF}, []Extension{ExtSlash0}, rmSlot(LowRM32))
	bf, err := Fill(&f, AsmInst{Mnemonic: "inc", Operands: []AsmOperand{RegOperand(EAX)}})
	require.NoError(t, err)
	require.Equal(t, uint8(0), bf.ModRM.Reg)
	require.Equal(t, uint8(3), bf.ModRM.Mod)
}

func TestFill_REXWSetsRexWAndForcesRex(t *testing.T) {
	f := form("mov_rm64_r64", "mov", "", []byte{0x89}, []Extension{ExtREXW, ExtSlashR}, rmSlot(LowRM64), regSlot(LowR64))
	bf, err := Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{RegOperand(RAX), RegOperand(RBX)}})
	require.NoError(t, err)
	require.True(t, bf.HasRex)
	require.True(t, bf.Rex.W)
}

func TestFill_ExtendedRegisterForcesRexWithoutREXWExtension(t *testing.T) {
	f := form("mov_rm32_r32", "mov", "", []byte{0x89}, []Extension{ExtSlashR}, rmSlot(LowRM32), regSlot(LowR32))
	bf, err := Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{RegOperand(R8D), RegOperand(EAX)}})
	require.NoError(t, err)
	require.True(t, bf.HasRex)
	require.False(t, bf.Rex.W)
	require.True(t, bf.Rex.B)
}

func TestFill_IndirectRBPAndR13ForceDisp8Zero(t *testing.T) {
	f := form("mov_r32_rm32", "mov", "", []byte{0x8B}, []Extension{ExtSlashR}, regSlot(LowR32), rmSlot(LowRM32))

	bf, err := Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{RegOperand(EAX), IndirectOperand(RBP, 4)}})
	require.NoError(t, err)
	require.Equal(t, uint8(1), bf.ModRM.Mod)
	require.Equal(t, 1, bf.DispCount)
	require.Equal(t, byte(0), bf.Disp[0])

	bf, err = Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{RegOperand(EAX), IndirectOperand(R13, 4)}})
	require.NoError(t, err)
	require.Equal(t, uint8(1), bf.ModRM.Mod)
	require.True(t, bf.Rex.B)
}

func TestFill_IndirectRSPAndR12EmitSIB(t *testing.T) {
	f := form("mov_r32_rm32", "mov", "", []byte{0x8B}, []Extension{ExtSlashR}, regSlot(LowR32), rmSlot(LowRM32))

	bf, err := Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{RegOperand(EAX), IndirectOperand(RSP, 4)}})
	require.NoError(t, err)
	require.True(t, bf.HasSIB)
	require.Equal(t, uint8(4), bf.ModRM.RM)
	require.Equal(t, uint8(4), bf.SIB.Index) // no-index sentinel.
	require.Equal(t, uint8(4), bf.SIB.Base)

	bf, err = Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{RegOperand(EAX), IndirectOperand(R12, 4)}})
	require.NoError(t, err)
	require.True(t, bf.HasSIB)
	require.True(t, bf.Rex.B)
}

func TestFill_SIBBaseRBPForcesExplicitDisp(t *testing.T) {
	f := form("mov_r32_rm32", "mov", "", []byte{0x8B}, []Extension{ExtSlashR}, regSlot(LowR32), rmSlot(LowRM32))
	bf, err := Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{
		RegOperand(EAX), SIBOperand(RBP, RCX, 4, 0, 4),
	}})
	require.NoError(t, err)
	require.NotEqual(t, uint8(0), bf.ModRM.Mod)
	require.Equal(t, 1, bf.DispCount)
}

func TestFill_RIPOperandUsesModZeroRMFive(t *testing.T) {
	f := form("lea_r64_m", "lea", "", []byte{0x8D}, []Extension{ExtREXW, ExtSlashR}, regSlot(LowR64), rmSlot(LowM))
	bf, err := Fill(&f, AsmInst{Mnemonic: "lea", Operands: []AsmOperand{RegOperand(RDI), RIPOperand(0x100, 0)}})
	require.NoError(t, err)
	require.Equal(t, uint8(0), bf.ModRM.Mod)
	require.Equal(t, uint8(5), bf.ModRM.RM)
	require.Equal(t, 4, bf.DispCount)
}

func TestFill_SegOffsetUsesAbsoluteSIBAndLegacyPrefix(t *testing.T) {
	f := form("mov_r64_seg", "mov", "", []byte{0x8B}, []Extension{ExtREXW, ExtSlashR}, regSlot(LowR64), rmSlot(LowSEG64))
	bf, err := Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{RegOperand(RAX), SegOffsetOperand(SegFS, 0x28)}})
	require.NoError(t, err)
	require.Equal(t, byte(0x64), bf.LegacyPrefix)
	require.True(t, bf.HasLegacyPrefix)
	require.True(t, bf.HasSIB)
	require.Equal(t, uint8(5), bf.SIB.Base)
	require.Equal(t, uint8(4), bf.SIB.Index)
}

func TestFill_SlashRWithoutRMOperandIsRejected(t *testing.T) {
	// A form that declares /r but whose only operand slot has role
	// MODRM_REG (never MODRM_RM) violates the invariant from spec.md §9.
	f := form("bogus", "bogus", "", []byte{0x00}, []Extension{ExtSlashR}, regSlot(LowR32))
	_, err := Fill(&f, AsmInst{Mnemonic: "bogus", Operands: []AsmOperand{RegOperand(EAX)}})
	require.Error(t, err)
	require.IsType(t, &UnsupportedOperandError{}, err)
}

func TestFill_DisplacementWidthBoundaries(t *testing.T) {
	f := form("mov_r32_rm32", "mov", "", []byte{0x8B}, []Extension{ExtSlashR}, regSlot(LowR32), rmSlot(LowRM32))

	for _, tc := range []struct {
		disp      int32
		wantCount int
	}{
		{-128, 1}, {127, 1}, {-129, 4}, {128, 4},
	} {
		bf, err := Fill(&f, AsmInst{Mnemonic: "mov", Operands: []AsmOperand{RegOperand(EAX), DispOperand(RBX, tc.disp, 4)}})
		require.NoError(t, err)
		require.Equal(t, tc.wantCount, bf.DispCount, "disp=%d", tc.disp)
	}
}

func TestFill_VexSourceIsOnesComplementOfIndex(t *testing.T) {
	f := form("vaddsd_xmm_xmm_xmm", "vaddsd", "", []byte{0x58},
		[]Extension{ExtVexF2, ExtVex0F, ExtVexWIG, ExtSlashR},
		regSlot(LowXMM1S64), vvvvSlot(LowXMM1S64), rmSlot(LowXMM2M64))
	bf, err := Fill(&f, AsmInst{Mnemonic: "vaddsd", Operands: []AsmOperand{
		RegOperand(XMM0), RegOperand(XMM1), RegOperand(XMM2),
	}})
	require.NoError(t, err)
	require.True(t, bf.HasVEX)
	require.Equal(t, uint8(15-1), bf.VEX.Source)
}
