package amd64

// Fill builds a BinaryFormat from the chosen form and the assembly
// instruction's operands, applying the extensions phase then the operand
// phase exactly as spec.md §4.3 describes.
func Fill(form *InstructionForm, inst AsmInst) (*BinaryFormat, error) {
	bf := &BinaryFormat{FormID: form.ID}
	bf.Opcode = append(bf.Opcode, form.Opcode...)
	if form.HasPrefix {
		bf.LegacyPrefix = form.LegacyPrefix
		bf.HasLegacyPrefix = true
	}

	hasSlashR := false
	for _, ext := range form.Extensions {
		if digit, ok := ext.slashDigit(); ok {
			bf.ensureModRM()
			bf.ModRM.Reg = digit
			continue
		}
		switch ext {
		case ExtSlashR:
			bf.ensureModRM()
			hasSlashR = true
		case ExtREX:
			bf.HasRex = true
		case ExtREXW:
			bf.HasRex = true
			bf.Rex.W = true
		case ExtVex128, ExtVex256, ExtVex66, ExtVexF2, ExtVexF3, ExtVex0F, ExtVex0F38, ExtVex0F3A, ExtVexW0, ExtVexW1, ExtVexWIG:
			applyVexExtension(bf, ext)
		}
	}

	if inst.needsREX() && !bf.HasRex && !bf.HasVEX {
		bf.HasRex = true
	}

	rmOperandSeen := false
	for i, slot := range form.Operands {
		if i >= len(inst.Operands) {
			return nil, &UnsupportedOperandError{FormID: form.ID, Role: slot.Role, Reason: "form declares more operand slots than the instruction supplies"}
		}
		op := inst.Operands[i]
		if slot.Role == RoleModRMRM {
			rmOperandSeen = true
		}
		if err := fillOperand(bf, form, slot, op); err != nil {
			return nil, err
		}
	}

	// Open Question in spec.md §9: assert the /r invariant instead of
	// silently leaving the ModR/M default mod value in place.
	if hasSlashR && !rmOperandSeen {
		return nil, &UnsupportedOperandError{FormID: form.ID, Reason: "form declares /r but no operand slot has role MODRM_RM"}
	}

	return bf, nil
}

func applyVexExtension(bf *BinaryFormat, ext Extension) {
	bf.HasVEX = true
	if bf.VEX.Map == 0 {
		bf.VEX.Map = 1 // default opcode map is 0F unless overridden below.
	}
	switch ext {
	case ExtVex128:
		bf.VEX.L256 = false
	case ExtVex256:
		bf.VEX.L256 = true
	case ExtVex66:
		bf.VEX.PP = 1
	case ExtVexF3:
		bf.VEX.PP = 2
	case ExtVexF2:
		bf.VEX.PP = 3
	case ExtVex0F:
		bf.VEX.Map = 1
	case ExtVex0F38:
		bf.VEX.Map = 2
	case ExtVex0F3A:
		bf.VEX.Map = 3
	case ExtVexW1:
		bf.VEX.W = true
	case ExtVexW0, ExtVexWIG:
		bf.VEX.W = false
	}
}

func fillOperand(bf *BinaryFormat, form *InstructionForm, slot OperandSlot, op AsmOperand) error {
	switch op.Kind {
	case HighReg, HighFReg:
		return fillRegisterOperand(bf, form, slot, op)
	case HighDispReg:
		return fillDispOperand(bf, slot, op)
	case HighIndirectReg:
		return fillIndirectOperand(bf, slot, op)
	case HighRIPRelative:
		return fillRIPOperand(bf, slot, op)
	case HighSIBReg:
		return fillSIBOperand(bf, slot, op)
	case HighSegOffset:
		return fillSegOffsetOperand(bf, slot, op)
	case HighUint8, HighUint16, HighUint32, HighUint64, HighUint, HighFloat32, HighFloat64:
		return fillImmediateOperand(bf, slot, op)
	default:
		return &UnsupportedOperandError{FormID: form.ID, Role: slot.Role, Kind: op.Kind}
	}
}

func fillRegisterOperand(bf *BinaryFormat, form *InstructionForm, slot OperandSlot, op AsmOperand) error {
	idx := op.Reg.Index
	switch slot.Role {
	case RoleModRMRM:
		bf.ensureModRM()
		bf.ModRM.Mod = 3
		bf.ModRM.RM = idx & 7
		if bf.HasRex {
			bf.Rex.B = idx >= 8
		} else if bf.HasVEX {
			bf.VEX.setB(idx >= 8)
		}
	case RoleModRMReg:
		bf.ensureModRM()
		bf.ModRM.Reg = idx & 7
		if bf.HasRex {
			bf.Rex.R = idx >= 8
		} else if bf.HasVEX {
			bf.VEX.setR(idx >= 8)
		}
	case RoleOpcodePlus:
		bf.Opcode[len(bf.Opcode)-1] += idx & 7
		if bf.HasRex && idx >= 8 {
			bf.Rex.B = true
		}
	case RoleVexVVVV:
		bf.VEX.setSource(idx)
	default:
		return &UnsupportedOperandError{FormID: form.ID, Role: slot.Role, Kind: op.Kind}
	}
	return nil
}

func fillDispOperand(bf *BinaryFormat, slot OperandSlot, op AsmOperand) error {
	idx := op.Base.Index
	bf.ensureModRM()
	bf.ModRM.RM = idx & 7
	// rm==4 (RSP/R12) is the SIB escape, so [rsp+d]/[r12+d] need a SIB
	// byte with the no-index sentinel, as in fillIndirectOperand.
	if idx&7 == 4 {
		bf.HasSIB = true
		bf.SIB = SIB{Scale: 0, Index: 4, Base: idx & 7}
	}
	if op.Disp >= -128 && op.Disp <= 127 {
		bf.ModRM.Mod = 1
		bf.setDisp1(int8(op.Disp))
	} else {
		bf.ModRM.Mod = 2
		bf.setDisp4(op.Disp)
	}
	setBaseRex(bf, idx)
	return nil
}

func fillIndirectOperand(bf *BinaryFormat, slot OperandSlot, op AsmOperand) error {
	idx := op.Base.Index
	bf.ensureModRM()
	bf.ModRM.RM = idx & 7
	bf.ModRM.Mod = 0
	// spec.md §3 invariant: rm==4 (RSP/R12) means "SIB follows" rather than
	// a direct base register, so a SIB byte with the no-index sentinel must
	// be emitted to actually address [rsp]/[r12].
	if idx&7 == 4 {
		bf.HasSIB = true
		bf.SIB = SIB{Scale: 0, Index: 4, Base: idx & 7}
	}
	// spec.md §3 invariant: indirect RBP/R13 (index 5/13) requires mod=01
	// with a single zero displacement byte, since mod=00,rm=5 means
	// RIP-relative instead of [rbp].
	if idx&7 == 5 {
		bf.ModRM.Mod = 1
		bf.setDisp1(0)
	}
	setBaseRex(bf, idx)
	return nil
}

func fillRIPOperand(bf *BinaryFormat, slot OperandSlot, op AsmOperand) error {
	bf.ensureModRM()
	bf.ModRM.Mod = 0
	bf.ModRM.RM = 5
	bf.setDisp4(op.Disp)
	return nil
}

func fillSIBOperand(bf *BinaryFormat, slot OperandSlot, op AsmOperand) error {
	bf.ensureModRM()
	bf.ModRM.RM = 4
	bf.HasSIB = true

	baseIdx := op.Base.Index
	bf.SIB.Base = baseIdx & 7
	if op.Index.Name != "" {
		bf.SIB.Index = op.Index.Index & 7
		setIndexRex(bf, op.Index.Index)
	} else {
		bf.SIB.Index = 4 // no-index sentinel
	}
	switch op.Scale {
	case 2:
		bf.SIB.Scale = 1
	case 4:
		bf.SIB.Scale = 2
	case 8:
		bf.SIB.Scale = 3
	default:
		bf.SIB.Scale = 0
	}

	switch {
	case op.Disp == 0:
		bf.ModRM.Mod = 0
	case op.Disp >= -128 && op.Disp <= 127:
		bf.ModRM.Mod = 1
		bf.setDisp1(int8(op.Disp))
	default:
		bf.ModRM.Mod = 2
		bf.setDisp4(op.Disp)
	}
	// RBP/R13 as SIB base requires an explicit displacement even when the
	// caller asked for zero.
	if baseIdx&7 == 5 && bf.ModRM.Mod == 0 {
		bf.ModRM.Mod = 1
		bf.setDisp1(0)
	}
	setBaseRex(bf, baseIdx)
	return nil
}

func fillSegOffsetOperand(bf *BinaryFormat, slot OperandSlot, op AsmOperand) error {
	switch op.Seg {
	case SegGS:
		bf.LegacyPrefix = 0x65
	default:
		bf.LegacyPrefix = 0x64
	}
	bf.HasLegacyPrefix = true
	bf.ensureModRM()
	bf.ModRM.Mod = 0
	bf.ModRM.RM = 4
	bf.HasSIB = true
	bf.SIB = SIB{Scale: 0, Index: 4, Base: 5}
	bf.setDisp4(op.SegOffset)
	return nil
}

func fillImmediateOperand(bf *BinaryFormat, slot OperandSlot, op AsmOperand) error {
	switch op.Kind {
	case HighUint8:
		bf.Imm[0] = byte(op.Imm)
		bf.ImmCount = 1
	case HighUint16:
		bf.Imm[0] = byte(op.Imm)
		bf.Imm[1] = byte(op.Imm >> 8)
		bf.ImmCount = 2
	case HighUint32:
		putLE32(bf.Imm[:4], uint32(op.Imm))
		bf.ImmCount = 4
	case HighUint64:
		putLE64(bf.Imm[:8], op.Imm)
		bf.ImmCount = 8
	case HighUint:
		// Generic integer immediate promotes to a 4-byte slot.
		putLE32(bf.Imm[:4], uint32(op.Imm))
		bf.ImmCount = 4
	case HighFloat32:
		putLE32(bf.Imm[:4], float32bits(op.Float32))
		bf.ImmCount = 4
	case HighFloat64:
		putLE64(bf.Imm[:8], float64bits(op.Float64))
		bf.ImmCount = 8
	}
	return nil
}

func setBaseRex(bf *BinaryFormat, idx uint8) {
	if bf.HasRex {
		bf.Rex.B = idx >= 8
	} else if bf.HasVEX {
		bf.VEX.setB(idx >= 8)
	}
}

func setIndexRex(bf *BinaryFormat, idx uint8) {
	if bf.HasRex {
		bf.Rex.X = idx >= 8
	} else if bf.HasVEX {
		bf.VEX.setX(idx >= 8)
	}
}
