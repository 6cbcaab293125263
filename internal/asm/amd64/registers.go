package amd64

// Register is a single AMD64 register reference.
//
// Name identifies high-byte aliases (ah/bh/ch/dh) and the REX-only low-byte
// aliases (spl/bpl/sil/dil) that share an Index with a register that means
// something else without a REX prefix. Index is the 4-bit encoded register
// number; Size is the operand width in bytes the register occupies (1, 2, 4,
// 8, or 16/32 for XMM/YMM).
type Register struct {
	Name  string
	Index uint8
	Size  uint8
}

// IsExtended reports whether encoding this register requires a REX bit
// (or the VEX equivalent) because its index is in the high half 8-15.
func (r Register) IsExtended() bool { return r.Index >= 8 }

// RequiresREX reports whether this register can only be addressed with a
// REX prefix present, either because it is in the high half, or because it
// is one of the REX-only byte aliases (spl/bpl/sil/dil).
func (r Register) RequiresREX() bool {
	return r.IsExtended() || r.Size == 1 && rexOnlyByteReg[r.Name]
}

// IsHighByteAlias reports whether this register is one of ah/bh/ch/dh,
// which are illegal in any instruction carrying a REX prefix.
func (r Register) IsHighByteAlias() bool { return highByteReg[r.Name] }

var rexOnlyByteReg = map[string]bool{"spl": true, "bpl": true, "sil": true, "dil": true}

var highByteReg = map[string]bool{"ah": true, "bh": true, "ch": true, "dh": true}

// General-purpose 64-bit registers, index order fixed by the AMD64 encoding.
var (
	RAX = Register{"rax", 0, 8}
	RCX = Register{"rcx", 1, 8}
	RDX = Register{"rdx", 2, 8}
	RBX = Register{"rbx", 3, 8}
	RSP = Register{"rsp", 4, 8}
	RBP = Register{"rbp", 5, 8}
	RSI = Register{"rsi", 6, 8}
	RDI = Register{"rdi", 7, 8}
	R8  = Register{"r8", 8, 8}
	R9  = Register{"r9", 9, 8}
	R10 = Register{"r10", 10, 8}
	R11 = Register{"r11", 11, 8}
	R12 = Register{"r12", 12, 8}
	R13 = Register{"r13", 13, 8}
	R14 = Register{"r14", 14, 8}
	R15 = Register{"r15", 15, 8}
)

// 32-bit sub-registers.
var (
	EAX  = Register{"eax", 0, 4}
	ECX  = Register{"ecx", 1, 4}
	EDX  = Register{"edx", 2, 4}
	EBX  = Register{"ebx", 3, 4}
	ESP  = Register{"esp", 4, 4}
	EBP  = Register{"ebp", 5, 4}
	ESI  = Register{"esi", 6, 4}
	EDI  = Register{"edi", 7, 4}
	R8D  = Register{"r8d", 8, 4}
	R9D  = Register{"r9d", 9, 4}
	R10D = Register{"r10d", 10, 4}
	R11D = Register{"r11d", 11, 4}
	R12D = Register{"r12d", 12, 4}
	R13D = Register{"r13d", 13, 4}
	R14D = Register{"r14d", 14, 4}
	R15D = Register{"r15d", 15, 4}
)

// 16-bit sub-registers.
var (
	AX = Register{"ax", 0, 2}
	CX = Register{"cx", 1, 2}
	DX = Register{"dx", 2, 2}
	BX = Register{"bx", 3, 2}
	SP = Register{"sp", 4, 2}
	BP = Register{"bp", 5, 2}
	SI = Register{"si", 6, 2}
	DI = Register{"di", 7, 2}
)

// 8-bit sub-registers. AL/CL/DL/BL are addressable with or without REX;
// AH/BH/CH/DH are only addressable without REX; SPL/BPL/SIL/DIL only with.
var (
	AL  = Register{"al", 0, 1}
	CL  = Register{"cl", 1, 1}
	DL  = Register{"dl", 2, 1}
	BL  = Register{"bl", 3, 1}
	AH  = Register{"ah", 4, 1}
	CH  = Register{"ch", 5, 1}
	DH  = Register{"dh", 6, 1}
	BH  = Register{"bh", 7, 1}
	SPL = Register{"spl", 4, 1}
	BPL = Register{"bpl", 5, 1}
	SIL = Register{"sil", 6, 1}
	DIL = Register{"dil", 7, 1}
	R8B = Register{"r8b", 8, 1}
	R9B = Register{"r9b", 9, 1}
)

// XMM/YMM registers share the integer index space.
var (
	XMM0  = Register{"xmm0", 0, 16}
	XMM1  = Register{"xmm1", 1, 16}
	XMM2  = Register{"xmm2", 2, 16}
	XMM3  = Register{"xmm3", 3, 16}
	XMM4  = Register{"xmm4", 4, 16}
	XMM5  = Register{"xmm5", 5, 16}
	XMM6  = Register{"xmm6", 6, 16}
	XMM7  = Register{"xmm7", 7, 16}
	XMM8  = Register{"xmm8", 8, 16}
	XMM9  = Register{"xmm9", 9, 16}
	XMM10 = Register{"xmm10", 10, 16}
	XMM11 = Register{"xmm11", 11, 16}

	YMM0 = Register{"ymm0", 0, 32}
	YMM1 = Register{"ymm1", 1, 32}
	YMM2 = Register{"ymm2", 2, 32}
	YMM3 = Register{"ymm3", 3, 32}
)

// SegFS and SegGS identify the TLS-carrying segment registers used by
// SEG_OFFSET operands; they never appear in ModR/M, only as legacy prefixes.
const (
	SegFS = "fs"
	SegGS = "gs"
)
