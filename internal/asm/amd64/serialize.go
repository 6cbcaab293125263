package amd64

// Serialize emits the binary format as a little-endian byte stream in the
// fixed canonical order from spec.md §4.4. Each field is present only if
// the corresponding Has* flag (or, for opcode/ModR/M, its structural
// presence) is set.
func Serialize(bf *BinaryFormat) []byte {
	out := make([]byte, 0, 15)

	if bf.HasLegacyPrefix {
		out = append(out, bf.LegacyPrefix)
	}

	if bf.HasVEX {
		out = append(out, serializeVEX(bf.VEX)...)
	}

	if bf.HasRex {
		out = append(out, bf.Rex.encode())
	}

	out = append(out, bf.Opcode...)

	if bf.HasModRM {
		out = append(out, bf.ModRM.encode())
	}

	if bf.HasSIB {
		out = append(out, bf.SIB.encode())
	}

	out = append(out, bf.Disp[:bf.DispCount]...)
	out = append(out, bf.Imm[:bf.ImmCount]...)

	return out
}

func serializeVEX(v VEX) []byte {
	// Emitted polarity is inverted: 1 means "register index < 8".
	rBit, xBit, bBit := bitOf(!v.R), bitOf(!v.X), bitOf(!v.B)
	lBit := byte(0)
	if v.L256 {
		lBit = 1
	}
	wBit := byte(0)
	if v.W {
		wBit = 1
	}

	if !v.needsThreeByteForm() {
		// 2-byte (C5) form: byte1 = (R<<7)|(source<<3)|(L<<2)|pp.
		byte1 := (rBit << 7) | (v.Source << 3) | (lBit << 2) | v.PP
		return []byte{0xC5, byte1}
	}
	// 3-byte (C4) form.
	byte1 := (rBit << 7) | (xBit << 6) | (bBit << 5) | v.Map
	byte2 := (wBit << 7) | (v.Source << 3) | (lBit << 2) | v.PP
	return []byte{0xC4, byte1, byte2}
}

func bitOf(b bool) byte {
	if b {
		return 1
	}
	return 0
}
