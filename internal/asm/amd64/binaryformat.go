package amd64

// REX is the 0100WRXB prefix byte, present whenever a form demands it, even
// if every bit ends up zero (spec.md §3 invariant).
type REX struct {
	W, R, X, B bool
}

func (r REX) encode() byte {
	var b byte = 0x40
	if r.W {
		b |= 1 << 3
	}
	if r.R {
		b |= 1 << 2
	}
	if r.X {
		b |= 1 << 1
	}
	if r.B {
		b |= 1 << 0
	}
	return b
}

// VEX carries the fields needed to emit either the 2-byte (C5) or 3-byte
// (C4) VEX prefix. R/X/B are stored in ordinary (REX-style) polarity, true
// meaning "register index >= 8"; the serializer flips them to the VEX
// wire's inverted polarity at emission time (spec.md §4.4), so a zero-value
// VEX correctly defaults to "no extended registers" rather than requiring
// every caller to pre-invert.
type VEX struct {
	R, X, B bool
	Map     byte // opcode-map selector: 1 = 0F, 2 = 0F38, 3 = 0F3A.
	W       bool
	Source  uint8 // one's-complement vvvv nibble, already inverted.
	L256    bool  // vector length: false = 128-bit, true = 256-bit.
	PP      byte  // implied legacy prefix: 0 none, 1 = 0x66, 2 = 0xF3, 3 = 0xF2.
}

// setR sets R from a plain (non-inverted) REX.R-style bit.
func (v *VEX) setR(bit bool) { v.R = bit }

// setX sets X from a plain (non-inverted) REX.X-style bit.
func (v *VEX) setX(bit bool) { v.X = bit }

// setB sets B from a plain (non-inverted) REX.B-style bit.
func (v *VEX) setB(bit bool) { v.B = bit }

// setSource sets the vvvv nibble from a plain register index (not yet
// inverted); spec.md §4.3 defines vex.source = 15 - r.index.
func (v *VEX) setSource(index uint8) { v.Source = 15 - (index & 0xF) }

// needsThreeByteForm reports whether the 3-byte (C4) encoding is required:
// the 2-byte (C5) form is used only when X, B and W are all clear and the
// opcode map is 0F.
func (v VEX) needsThreeByteForm() bool {
	return v.X || v.B || v.Map != 1 || v.W
}

// ModRM is the addressing-mode byte.
type ModRM struct {
	Mod uint8 // 0..3
	Reg uint8 // 0..7
	RM  uint8 // 0..7
}

func (m ModRM) encode() byte { return (m.Mod << 6) | ((m.Reg & 7) << 3) | (m.RM & 7) }

// SIB is the scale-index-base byte.
type SIB struct {
	Scale uint8 // 0..3, meaning x1/x2/x4/x8
	Index uint8 // 0..7; 4 means "no index"
	Base  uint8 // 0..7
}

func (s SIB) encode() byte { return (s.Scale << 6) | ((s.Index & 7) << 3) | (s.Base & 7) }

// BinaryFormat is the intermediate record fill.go populates and
// serialize.go turns into bytes, per spec.md §3.
type BinaryFormat struct {
	LegacyPrefix    byte
	HasLegacyPrefix bool

	VEX    VEX
	HasVEX bool

	Rex    REX
	HasRex bool

	Opcode []byte // 1..3 bytes, copied from the chosen form and possibly bumped (OPCODE_PLUS).

	ModRM    ModRM
	HasModRM bool

	SIB    SIB
	HasSIB bool

	Disp      [8]byte
	DispCount int

	Imm      [8]byte
	ImmCount int

	FormID string
}

func (b *BinaryFormat) ensureModRM() {
	if !b.HasModRM {
		b.HasModRM = true
		// Default mod before any RM operand is processed; every known RM
		// path in fill.go overwrites this. fill.go asserts it was in fact
		// overwritten when a form declares /r, per the Open Question in
		// spec.md §9.
		b.ModRM = ModRM{Mod: 1}
	}
}

func (b *BinaryFormat) ensureRex() {
	if !b.HasVEX && !b.HasRex {
		b.HasRex = true
	}
}

func (b *BinaryFormat) setDisp1(v int8) {
	b.Disp[0] = byte(v)
	b.DispCount = 1
}

func (b *BinaryFormat) setDisp4(v int32) {
	putLE32(b.Disp[:4], uint32(v))
	b.DispCount = 4
}

func putLE32(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

func putLE64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}
