package amd64

// Mnemonic identifies a group of instruction forms sharing an assembly
// mnemonic (e.g. all "add" forms), matching the source's mnemonic_group.
type Mnemonic string

// AsmOperand is a tagged union over the high-level operand kinds an
// assembly instruction can carry. Exactly the fields relevant to Kind are
// populated; the encoder switches exhaustively over Kind instead of relying
// on an untyped payload, per the Design Notes in spec.md §9.
type AsmOperand struct {
	Kind HighKind

	Reg Register // HighReg, HighFReg

	// HighDispReg / HighSIBReg / HighRIPRelative / HighIndirectReg.
	Base  Register
	Index Register // HighSIBReg only; Index.Name == "" means no index.
	Scale uint8    // HighSIBReg only: 1, 2, 4, or 8.
	Disp  int32    // HighDispReg, HighSIBReg, HighRIPRelative displacement.

	// SizeHint is the pointee width (1/2/4/8/16/32 bytes, 0 if the
	// addressed size is irrelevant, e.g. for LEA) for the four memory
	// addressing kinds. Memory operands carry no register to infer a size
	// from, so the assembly instruction must declare it explicitly — the
	// same role "byte"/"word"/"dword"/"qword" plays in Intel syntax.
	SizeHint uint8

	Seg       string // HighSegOffset: SegFS or SegGS.
	SegOffset int32  // HighSegOffset absolute offset.

	Imm     uint64  // HighUint8/16/32/64/HighUint.
	ImmSize uint8   // 1, 2, 4, or 8; size of Imm's natural width.
	Float32 float32 // HighFloat32.
	Float64 float64 // HighFloat64.
}

// Size reports the operand's width in bytes, used as the second half of the
// trie key alongside Kind.
func (o AsmOperand) Size() uint8 {
	switch o.Kind {
	case HighReg, HighFReg:
		return o.Reg.Size
	case HighIndirectReg, HighDispReg, HighSIBReg, HighRIPRelative:
		return o.SizeHint
	case HighSegOffset:
		return 8
	case HighUint8:
		return 1
	case HighUint16:
		return 2
	case HighUint32, HighUint:
		return 4
	case HighUint64:
		return 8
	case HighFloat32:
		return 4
	case HighFloat64:
		return 8
	default:
		return 0
	}
}

// RegOperand builds a HighReg/HighFReg operand for the given register.
func RegOperand(r Register) AsmOperand {
	kind := HighReg
	if isXMMOrYMM(r) {
		kind = HighFReg
	}
	return AsmOperand{Kind: kind, Reg: r}
}

// IndirectOperand builds a [base] operand of the given pointee size
// ([rbp]/[r13] get zero-disp forcing applied by fill, not here).
func IndirectOperand(base Register, size uint8) AsmOperand {
	return AsmOperand{Kind: HighIndirectReg, Base: base, SizeHint: size}
}

// DispOperand builds a [base+disp] operand of the given pointee size.
func DispOperand(base Register, disp int32, size uint8) AsmOperand {
	return AsmOperand{Kind: HighDispReg, Base: base, Disp: disp, SizeHint: size}
}

// SIBOperand builds a [base + index*scale + disp] operand of the given
// pointee size. Pass a zero-value Register for index to request the
// no-index SIB form.
func SIBOperand(base, index Register, scale uint8, disp int32, size uint8) AsmOperand {
	return AsmOperand{Kind: HighSIBReg, Base: base, Index: index, Scale: scale, Disp: disp, SizeHint: size}
}

// RIPOperand builds a [rip+disp] operand. Pointee size is irrelevant for
// most consumers (e.g. LEA) so it defaults to 0; pass size for load/store
// forms that need to disambiguate RM8/RM16/RM32/RM64 at this address.
func RIPOperand(disp int32, size uint8) AsmOperand {
	return AsmOperand{Kind: HighRIPRelative, Disp: disp, SizeHint: size}
}

// SegOffsetOperand builds an fs:off/gs:off operand.
func SegOffsetOperand(seg string, offset int32) AsmOperand {
	return AsmOperand{Kind: HighSegOffset, Seg: seg, SegOffset: offset}
}

// UintOperand builds a sized unsigned-integer immediate.
func UintOperand(v uint64, size uint8) AsmOperand {
	kind := HighUint
	switch size {
	case 1:
		kind = HighUint8
	case 2:
		kind = HighUint16
	case 4:
		kind = HighUint32
	case 8:
		kind = HighUint64
	}
	return AsmOperand{Kind: kind, Imm: v, ImmSize: size}
}

// Float32Operand builds a 32-bit float immediate.
func Float32Operand(f float32) AsmOperand { return AsmOperand{Kind: HighFloat32, Float32: f} }

// Float64Operand builds a 64-bit float immediate.
func Float64Operand(f float64) AsmOperand { return AsmOperand{Kind: HighFloat64, Float64: f} }

func isXMMOrYMM(r Register) bool { return r.Size == 16 || r.Size == 32 }

// AsmInst is one architectural assembly instruction: a mnemonic and up to
// four typed operands. It has no legacy-prefix field; a legacy prefix comes
// only from the chosen form or from an fs:/gs: operand.
type AsmInst struct {
	Mnemonic Mnemonic
	Operands []AsmOperand // length 0..4
}

// needsREX implements spec.md §4.2 step 4: any register operand with index
// >= 8, or one of the REX-only byte aliases, forces a REX prefix.
func (i AsmInst) needsREX() bool {
	for _, op := range i.Operands {
		switch op.Kind {
		case HighReg, HighFReg, HighIndirectReg, HighDispReg, HighSIBReg:
			if op.Reg.RequiresREX() || op.Base.RequiresREX() {
				return true
			}
			if op.Kind == HighSIBReg && op.Index.Name != "" && op.Index.RequiresREX() {
				return true
			}
		}
	}
	return false
}

// hasHighByteReg implements spec.md §4.2 step 4: ah/bh/ch/dh anywhere in
// the operand list makes REX-carrying forms illegal.
func (i AsmInst) hasHighByteReg() bool {
	for _, op := range i.Operands {
		if (op.Kind == HighReg || op.Kind == HighIndirectReg) && op.Reg.IsHighByteAlias() {
			return true
		}
	}
	return false
}
