package cmd

import "github.com/nature-lang/natasm/internal/asm/amd64"

// registerByName resolves a register name as it would appear in Intel
// syntax (case-insensitive) to its amd64.Register value.
var registerByName = map[string]amd64.Register{
	"rax": amd64.RAX, "rcx": amd64.RCX, "rdx": amd64.RDX, "rbx": amd64.RBX,
	"rsp": amd64.RSP, "rbp": amd64.RBP, "rsi": amd64.RSI, "rdi": amd64.RDI,
	"r8": amd64.R8, "r9": amd64.R9, "r10": amd64.R10, "r11": amd64.R11,
	"r12": amd64.R12, "r13": amd64.R13, "r14": amd64.R14, "r15": amd64.R15,

	"eax": amd64.EAX, "ecx": amd64.ECX, "edx": amd64.EDX, "ebx": amd64.EBX,
	"esp": amd64.ESP, "ebp": amd64.EBP, "esi": amd64.ESI, "edi": amd64.EDI,
	"r8d": amd64.R8D, "r9d": amd64.R9D, "r10d": amd64.R10D, "r11d": amd64.R11D,
	"r12d": amd64.R12D, "r13d": amd64.R13D, "r14d": amd64.R14D, "r15d": amd64.R15D,

	"ax": amd64.AX, "cx": amd64.CX, "dx": amd64.DX, "bx": amd64.BX,
	"sp": amd64.SP, "bp": amd64.BP, "si": amd64.SI, "di": amd64.DI,

	"al": amd64.AL, "cl": amd64.CL, "dl": amd64.DL, "bl": amd64.BL,
	"ah": amd64.AH, "ch": amd64.CH, "dh": amd64.DH, "bh": amd64.BH,
	"spl": amd64.SPL, "bpl": amd64.BPL, "sil": amd64.SIL, "dil": amd64.DIL,
	"r8b": amd64.R8B, "r9b": amd64.R9B,

	"xmm0": amd64.XMM0, "xmm1": amd64.XMM1, "xmm2": amd64.XMM2, "xmm3": amd64.XMM3,
	"xmm4": amd64.XMM4, "xmm5": amd64.XMM5, "xmm6": amd64.XMM6, "xmm7": amd64.XMM7,
	"xmm8": amd64.XMM8, "xmm9": amd64.XMM9, "xmm10": amd64.XMM10, "xmm11": amd64.XMM11,

	"ymm0": amd64.YMM0, "ymm1": amd64.YMM1, "ymm2": amd64.YMM2, "ymm3": amd64.YMM3,
}
