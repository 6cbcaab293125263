package amd64

// Catalog is the static, process-lifetime table of every supported
// encoding form (spec.md §4.1). It is data: built once below by small
// constructor helpers, not hand-duplicated literals, so new mnemonics can
// be added without touching the trie or the encoder. Coverage is
// representative rather than exhaustive — wide enough to exercise every
// rule in spec.md §3/§4 at least once (see SPEC_FULL.md §4.1).
var Catalog = buildCatalog()

func buildCatalog() []InstructionForm {
	var forms []InstructionForm
	forms = append(forms, movForms()...)
	forms = append(forms, aluForms()...)
	forms = append(forms, leaForms()...)
	forms = append(forms, stackForms()...)
	forms = append(forms, controlFlowForms()...)
	forms = append(forms, unaryForms()...)
	forms = append(forms, shiftForms()...)
	forms = append(forms, miscForms()...)
	forms = append(forms, sseForms()...)
	forms = append(forms, avxForms()...)
	return forms
}

func rmSlot(lk LowKind) OperandSlot     { return OperandSlot{Low: lk, Role: RoleModRMRM} }
func regSlot(lk LowKind) OperandSlot    { return OperandSlot{Low: lk, Role: RoleModRMReg} }
func opPlusSlot(lk LowKind) OperandSlot { return OperandSlot{Low: lk, Role: RoleOpcodePlus} }
func immSlot(lk LowKind) OperandSlot    { return OperandSlot{Low: lk, Role: RoleImm} }
func vvvvSlot(lk LowKind) OperandSlot   { return OperandSlot{Low: lk, Role: RoleVexVVVV} }

func form(id string, mnemonic Mnemonic, display string, opcode []byte, exts []Extension, operands ...OperandSlot) InstructionForm {
	return InstructionForm{ID: id, Mnemonic: mnemonic, DisplayName: display, Opcode: opcode, Extensions: exts, Operands: operands}
}

func formPrefixed(id string, mnemonic Mnemonic, display string, prefix byte, opcode []byte, exts []Extension, operands ...OperandSlot) InstructionForm {
	f := form(id, mnemonic, display, opcode, exts, operands...)
	f.HasPrefix = true
	f.LegacyPrefix = prefix
	return f
}

// --- mov -------------------------------------------------------------------

func movForms() []InstructionForm {
	var fs []InstructionForm
	fs = append(fs,
		form("mov_rm8_r8", "mov", "MOV rm8, r8", []byte{0x88}, []Extension{ExtSlashR}, rmSlot(LowRM8), regSlot(LowR8)),
		form("mov_r8_rm8", "mov", "MOV r8, rm8", []byte{0x8A}, []Extension{ExtSlashR}, regSlot(LowR8), rmSlot(LowRM8)),
		formPrefixed("mov_rm16_r16", "mov", "MOV rm16, r16", 0x66, []byte{0x89}, []Extension{ExtSlashR}, rmSlot(LowRM16), regSlot(LowR16)),
		formPrefixed("mov_r16_rm16", "mov", "MOV r16, rm16", 0x66, []byte{0x8B}, []Extension{ExtSlashR}, regSlot(LowR16), rmSlot(LowRM16)),
		form("mov_rm32_r32", "mov", "MOV rm32, r32", []byte{0x89}, []Extension{ExtSlashR}, rmSlot(LowRM32), regSlot(LowR32)),
		form("mov_r32_rm32", "mov", "MOV r32, rm32", []byte{0x8B}, []Extension{ExtSlashR}, regSlot(LowR32), rmSlot(LowRM32)),
		form("mov_rm64_r64", "mov", "MOV rm64, r64", []byte{0x89}, []Extension{ExtREXW, ExtSlashR}, rmSlot(LowRM64), regSlot(LowR64)),
		form("mov_r64_rm64", "mov", "MOV r64, rm64", []byte{0x8B}, []Extension{ExtREXW, ExtSlashR}, regSlot(LowR64), rmSlot(LowRM64)),

		form("mov_r8_imm8", "mov", "MOV r8, imm8", []byte{0xB0}, nil, opPlusSlot(LowR8), immSlot(LowIMM8)),
		formPrefixed("mov_r16_imm16", "mov", "MOV r16, imm16", 0x66, []byte{0xB8}, nil, opPlusSlot(LowR16), immSlot(LowIMM16)),
		form("mov_r32_imm32", "mov", "MOV r32, imm32", []byte{0xB8}, nil, opPlusSlot(LowR32), immSlot(LowIMM32)),
		form("mov_r64_imm64", "mov", "MOV r64, imm64", []byte{0xB8}, []Extension{ExtREXW}, opPlusSlot(LowR64), immSlot(LowIMM64)),

		form("mov_rm32_imm32", "mov", "MOV rm32, imm32", []byte{0xC7}, []Extension{ExtSlash0}, rmSlot(LowRM32), immSlot(LowIMM32)),
		form("mov_rm64_imm32", "mov", "MOV rm64, imm32", []byte{0xC7}, []Extension{ExtREXW, ExtSlash0}, rmSlot(LowRM64), immSlot(LowIMM32)),

		form("mov_r64_seg", "mov", "MOV r64, fs/gs:off", []byte{0x8B}, []Extension{ExtREXW, ExtSlashR}, regSlot(LowR64), rmSlot(LowSEG64)),
		form("mov_seg_r64", "mov", "MOV fs/gs:off, r64", []byte{0x89}, []Extension{ExtREXW, ExtSlashR}, rmSlot(LowSEG64), regSlot(LowR64)),
	)
	return fs
}

// --- integer ALU -------------------------------------------------------------

type aluOp struct {
	mnemonic            Mnemonic
	rm8r8, r8rm8        byte
	rmRopc, rRMopc      byte // 16/32/64-bit rm,reg and reg,rm opcodes (66/REX.W distinguish width)
	digit               uint8
	imm8Opc, imm32Opc   byte // rm8,imm8 and rm16,imm16 / rm{32,64},imm32 opcodes
	noReversed          bool // TEST has no reg,rm form
}

var aluOps = []aluOp{
	{mnemonic: "add", rm8r8: 0x00, r8rm8: 0x02, rmRopc: 0x01, rRMopc: 0x03, digit: 0, imm8Opc: 0x80, imm32Opc: 0x81},
	{mnemonic: "or", rm8r8: 0x08, r8rm8: 0x0A, rmRopc: 0x09, rRMopc: 0x0B, digit: 1, imm8Opc: 0x80, imm32Opc: 0x81},
	{mnemonic: "and", rm8r8: 0x20, r8rm8: 0x22, rmRopc: 0x21, rRMopc: 0x23, digit: 4, imm8Opc: 0x80, imm32Opc: 0x81},
	{mnemonic: "sub", rm8r8: 0x28, r8rm8: 0x2A, rmRopc: 0x29, rRMopc: 0x2B, digit: 5, imm8Opc: 0x80, imm32Opc: 0x81},
	{mnemonic: "xor", rm8r8: 0x30, r8rm8: 0x32, rmRopc: 0x31, rRMopc: 0x33, digit: 6, imm8Opc: 0x80, imm32Opc: 0x81},
	{mnemonic: "cmp", rm8r8: 0x38, r8rm8: 0x3A, rmRopc: 0x39, rRMopc: 0x3B, digit: 7, imm8Opc: 0x80, imm32Opc: 0x81},
	{mnemonic: "test", rm8r8: 0x84, r8rm8: 0x84, rmRopc: 0x85, rRMopc: 0x85, digit: 0, imm8Opc: 0xF6, imm32Opc: 0xF7, noReversed: true},
}

func aluForms() []InstructionForm {
	var fs []InstructionForm
	for _, op := range aluOps {
		m := op.mnemonic
		fs = append(fs, form(string(m)+"_rm8_r8", m, "", []byte{op.rm8r8}, []Extension{ExtSlashR}, rmSlot(LowRM8), regSlot(LowR8)))
		if !op.noReversed {
			fs = append(fs, form(string(m)+"_r8_rm8", m, "", []byte{op.r8rm8}, []Extension{ExtSlashR}, regSlot(LowR8), rmSlot(LowRM8)))
		}
		fs = append(fs, formPrefixed(string(m)+"_rm16_r16", m, "", 0x66, []byte{op.rmRopc}, []Extension{ExtSlashR}, rmSlot(LowRM16), regSlot(LowR16)))
		if !op.noReversed {
			fs = append(fs, formPrefixed(string(m)+"_r16_rm16", m, "", 0x66, []byte{op.rRMopc}, []Extension{ExtSlashR}, regSlot(LowR16), rmSlot(LowRM16)))
		}
		fs = append(fs, form(string(m)+"_rm32_r32", m, "", []byte{op.rmRopc}, []Extension{ExtSlashR}, rmSlot(LowRM32), regSlot(LowR32)))
		if !op.noReversed {
			fs = append(fs, form(string(m)+"_r32_rm32", m, "", []byte{op.rRMopc}, []Extension{ExtSlashR}, regSlot(LowR32), rmSlot(LowRM32)))
		}
		fs = append(fs, form(string(m)+"_rm64_r64", m, "", []byte{op.rmRopc}, []Extension{ExtREXW, ExtSlashR}, rmSlot(LowRM64), regSlot(LowR64)))
		if !op.noReversed {
			fs = append(fs, form(string(m)+"_r64_rm64", m, "", []byte{op.rRMopc}, []Extension{ExtREXW, ExtSlashR}, regSlot(LowR64), rmSlot(LowRM64)))
		}

		digitExt := ExtSlash0 + Extension(op.digit)
		fs = append(fs, form(string(m)+"_rm8_imm8", m, "", []byte{op.imm8Opc}, []Extension{digitExt}, rmSlot(LowRM8), immSlot(LowIMM8)))
		fs = append(fs, formPrefixed(string(m)+"_rm16_imm16", m, "", 0x66, []byte{op.imm32Opc}, []Extension{digitExt}, rmSlot(LowRM16), immSlot(LowIMM16)))
		fs = append(fs, form(string(m)+"_rm32_imm32", m, "", []byte{op.imm32Opc}, []Extension{digitExt}, rmSlot(LowRM32), immSlot(LowIMM32)))
		fs = append(fs, form(string(m)+"_rm64_imm32", m, "", []byte{op.imm32Opc}, []Extension{ExtREXW, digitExt}, rmSlot(LowRM64), immSlot(LowIMM32)))
	}
	return fs
}

// --- lea ---------------------------------------------------------------------

func leaForms() []InstructionForm {
	return []InstructionForm{
		form("lea_r32_m", "lea", "LEA r32, m", []byte{0x8D}, []Extension{ExtSlashR}, regSlot(LowR32), rmSlot(LowM)),
		form("lea_r64_m", "lea", "LEA r64, m", []byte{0x8D}, []Extension{ExtREXW, ExtSlashR}, regSlot(LowR64), rmSlot(LowM)),
	}
}

// --- stack / control flow ------------------------------------------------------

func stackForms() []InstructionForm {
	return []InstructionForm{
		form("push_r64", "push", "PUSH r64", []byte{0x50}, nil, opPlusSlot(LowR64)),
		form("pop_r64", "pop", "POP r64", []byte{0x58}, nil, opPlusSlot(LowR64)),
		form("push_imm32", "push", "PUSH imm32", []byte{0x68}, nil, immSlot(LowIMM32)),
		form("push_rm64", "push", "PUSH rm64", []byte{0xFF}, []Extension{ExtSlash6}, rmSlot(LowRM64)),
		form("pop_rm64", "pop", "POP rm64", []byte{0x8F}, []Extension{ExtSlash0}, rmSlot(LowRM64)),
	}
}

func controlFlowForms() []InstructionForm {
	return []InstructionForm{
		form("ret", "ret", "RET", []byte{0xC3}, nil),
		form("call_rel32", "call", "CALL rel32", []byte{0xE8}, nil, immSlot(LowREL32)),
		form("call_rm64", "call", "CALL rm64", []byte{0xFF}, []Extension{ExtSlash2}, rmSlot(LowRM64)),
		form("jmp_rel8", "jmp", "JMP rel8", []byte{0xEB}, nil, immSlot(LowREL8)),
		form("jmp_rel32", "jmp", "JMP rel32", []byte{0xE9}, nil, immSlot(LowREL32)),
		form("je_rel8", "je", "JE rel8", []byte{0x74}, nil, immSlot(LowREL8)),
		form("je_rel32", "je", "JE rel32", []byte{0x0F, 0x84}, nil, immSlot(LowREL32)),
		form("jne_rel8", "jne", "JNE rel8", []byte{0x75}, nil, immSlot(LowREL8)),
		form("jne_rel32", "jne", "JNE rel32", []byte{0x0F, 0x85}, nil, immSlot(LowREL32)),
	}
}

// --- unary / shift / misc --------------------------------------------------

func unaryForms() []InstructionForm {
	var fs []InstructionForm
	type u struct {
		mnemonic Mnemonic
		opcode   byte
		digit    uint8
	}
	for _, o := range []u{{"inc", 0xFF, 0}, {"dec", 0xFF, 1}, {"not", 0xF7, 2}, {"neg", 0xF7, 3}} {
		digitExt := ExtSlash0 + Extension(o.digit)
		fs = append(fs,
			form(string(o.mnemonic)+"_rm32", o.mnemonic, "", []byte{o.opcode}, []Extension{digitExt}, rmSlot(LowRM32)),
			form(string(o.mnemonic)+"_rm64", o.mnemonic, "", []byte{o.opcode}, []Extension{ExtREXW, digitExt}, rmSlot(LowRM64)),
		)
	}
	return fs
}

func shiftForms() []InstructionForm {
	var fs []InstructionForm
	type s struct {
		mnemonic Mnemonic
		digit    uint8
	}
	for _, o := range []s{{"shl", 4}, {"shr", 5}, {"sar", 7}} {
		digitExt := ExtSlash0 + Extension(o.digit)
		fs = append(fs,
			form(string(o.mnemonic)+"_rm32_imm8", o.mnemonic, "", []byte{0xC1}, []Extension{digitExt}, rmSlot(LowRM32), immSlot(LowIMM8)),
			form(string(o.mnemonic)+"_rm64_imm8", o.mnemonic, "", []byte{0xC1}, []Extension{ExtREXW, digitExt}, rmSlot(LowRM64), immSlot(LowIMM8)),
		)
	}
	return fs
}

func miscForms() []InstructionForm {
	return []InstructionForm{
		form("nop", "nop", "NOP", []byte{0x90}, nil),
	}
}

// --- SSE / AVX ---------------------------------------------------------------

func sseForms() []InstructionForm {
	return []InstructionForm{
		formPrefixed("movss_xmm_xmm", "movss", "MOVSS xmm1, xmm2", 0xF3, []byte{0x0F, 0x10}, []Extension{ExtSlashR}, regSlot(LowXMM1S32), rmSlot(LowXMM2M32)),
		formPrefixed("movss_xmm_m32", "movss", "MOVSS xmm1, m32", 0xF3, []byte{0x0F, 0x10}, []Extension{ExtSlashR}, regSlot(LowXMM1S32), rmSlot(LowXMM2M32)),
		formPrefixed("movss_m32_xmm", "movss", "MOVSS m32, xmm1", 0xF3, []byte{0x0F, 0x11}, []Extension{ExtSlashR}, rmSlot(LowXMM2M32), regSlot(LowXMM1S32)),
		formPrefixed("movsd_xmm_xmm", "movsd", "MOVSD xmm1, xmm2", 0xF2, []byte{0x0F, 0x10}, []Extension{ExtSlashR}, regSlot(LowXMM1S64), rmSlot(LowXMM2M64)),
		formPrefixed("movsd_m64_xmm", "movsd", "MOVSD m64, xmm1", 0xF2, []byte{0x0F, 0x11}, []Extension{ExtSlashR}, rmSlot(LowXMM2M64), regSlot(LowXMM1S64)),
		formPrefixed("addss_xmm_xmm", "addss", "ADDSS xmm1, xmm2/m32", 0xF3, []byte{0x0F, 0x58}, []Extension{ExtSlashR}, regSlot(LowXMM1S32), rmSlot(LowXMM2M32)),
		formPrefixed("addsd_xmm_xmm", "addsd", "ADDSD xmm1, xmm2/m64", 0xF2, []byte{0x0F, 0x58}, []Extension{ExtSlashR}, regSlot(LowXMM1S64), rmSlot(LowXMM2M64)),
	}
}

func avxForms() []InstructionForm {
	return []InstructionForm{
		// VADDSD xmm1, xmm2, xmm3/m64 — VEX.LIG.F2.0F.WIG 58 /r.
		form("vaddsd_xmm_xmm_xmm", "vaddsd", "VADDSD xmm1, xmm2, xmm3/m64",
			[]byte{0x58}, []Extension{ExtVexF2, ExtVex0F, ExtVexWIG, ExtSlashR},
			regSlot(LowXMM1S64), vvvvSlot(LowXMM1S64), rmSlot(LowXMM2M64)),
		// VMOVSS xmm1, xmm2, xmm3 — VEX.LIG.F3.0F.WIG 10 /r.
		form("vmovss_xmm_xmm_xmm", "vmovss", "VMOVSS xmm1, xmm2, xmm3",
			[]byte{0x10}, []Extension{ExtVexF3, ExtVex0F, ExtVexWIG, ExtSlashR},
			regSlot(LowXMM1S32), vvvvSlot(LowXMM1S32), rmSlot(LowXMM2M32)),
	}
}
