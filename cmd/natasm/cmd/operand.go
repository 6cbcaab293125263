package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nature-lang/natasm/internal/asm/amd64"
)

// parseOperand accepts one --operand flag value and builds the matching
// amd64.AsmOperand. The grammar is deliberately small; it exists to drive
// the encoder by hand, not to parse assembly syntax.
//
//	reg:<name>                        register, e.g. reg:rax
//	imm:<uint>[:size]                  unsigned immediate, e.g. imm:0x10:4
//	f32:<float> / f64:<float>          float immediate
//	mem:<base>[+disp]:<size>           [base] or [base+disp]
//	sib:<base>,<index>,<scale>[+disp]:<size>
//	rip:<disp>:<size>                  [rip+disp]
//	seg:<fs|gs>:<offset>                fs:off / gs:off
func parseOperand(s string) (amd64.AsmOperand, error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return amd64.AsmOperand{}, fmt.Errorf("operand %q: missing ':' after kind", s)
	}

	switch kind {
	case "reg":
		r, ok := registerByName[strings.ToLower(rest)]
		if !ok {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: unknown register %q", s, rest)
		}
		return amd64.RegOperand(r), nil

	case "imm":
		valPart, sizePart, _ := strings.Cut(rest, ":")
		v, err := strconv.ParseUint(valPart, 0, 64)
		if err != nil {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: %w", s, err)
		}
		size := uint8(0)
		if sizePart != "" {
			n, err := strconv.Atoi(sizePart)
			if err != nil {
				return amd64.AsmOperand{}, fmt.Errorf("operand %q: bad size %q", s, sizePart)
			}
			size = uint8(n)
		}
		return amd64.UintOperand(v, size), nil

	case "f32":
		f, err := strconv.ParseFloat(rest, 32)
		if err != nil {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: %w", s, err)
		}
		return amd64.Float32Operand(float32(f)), nil

	case "f64":
		f, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: %w", s, err)
		}
		return amd64.Float64Operand(f), nil

	case "mem":
		return parseMemOperand(s, rest)

	case "sib":
		return parseSIBOperand(s, rest)

	case "rip":
		dispPart, sizePart, _ := strings.Cut(rest, ":")
		disp, err := strconv.ParseInt(dispPart, 0, 32)
		if err != nil {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: %w", s, err)
		}
		size := parseSizeOrZero(sizePart)
		return amd64.RIPOperand(int32(disp), size), nil

	case "seg":
		segPart, offPart, ok := strings.Cut(rest, ":")
		if !ok {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: expected seg:<fs|gs>:<offset>", s)
		}
		seg := strings.ToLower(segPart)
		if seg != amd64.SegFS && seg != amd64.SegGS {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: segment must be fs or gs", s)
		}
		off, err := strconv.ParseInt(offPart, 0, 32)
		if err != nil {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: %w", s, err)
		}
		return amd64.SegOffsetOperand(seg, int32(off)), nil

	default:
		return amd64.AsmOperand{}, fmt.Errorf("operand %q: unknown kind %q", s, kind)
	}
}

func parseMemOperand(raw, rest string) (amd64.AsmOperand, error) {
	addrPart, sizePart, _ := strings.Cut(rest, ":")
	size := parseSizeOrZero(sizePart)

	baseName, dispStr, hasDisp := strings.Cut(addrPart, "+")
	base, ok := registerByName[strings.ToLower(baseName)]
	if !ok {
		return amd64.AsmOperand{}, fmt.Errorf("operand %q: unknown base register %q", raw, baseName)
	}
	if !hasDisp {
		return amd64.IndirectOperand(base, size), nil
	}
	disp, err := strconv.ParseInt(dispStr, 0, 32)
	if err != nil {
		return amd64.AsmOperand{}, fmt.Errorf("operand %q: bad displacement %q", raw, dispStr)
	}
	return amd64.DispOperand(base, int32(disp), size), nil
}

func parseSIBOperand(raw, rest string) (amd64.AsmOperand, error) {
	addrPart, sizePart, _ := strings.Cut(rest, ":")
	size := parseSizeOrZero(sizePart)

	fields := strings.Split(addrPart, ",")
	if len(fields) != 3 {
		return amd64.AsmOperand{}, fmt.Errorf("operand %q: expected sib:<base>,<index>,<scale>[+disp]:<size>", raw)
	}

	base, ok := registerByName[strings.ToLower(fields[0])]
	if !ok {
		return amd64.AsmOperand{}, fmt.Errorf("operand %q: unknown base register %q", raw, fields[0])
	}
	index, ok := registerByName[strings.ToLower(fields[1])]
	if !ok {
		return amd64.AsmOperand{}, fmt.Errorf("operand %q: unknown index register %q", raw, fields[1])
	}

	scalePart, dispStr, hasDisp := strings.Cut(fields[2], "+")
	scale, err := strconv.Atoi(scalePart)
	if err != nil {
		return amd64.AsmOperand{}, fmt.Errorf("operand %q: bad scale %q", raw, scalePart)
	}
	var disp int64
	if hasDisp {
		disp, err = strconv.ParseInt(dispStr, 0, 32)
		if err != nil {
			return amd64.AsmOperand{}, fmt.Errorf("operand %q: bad displacement %q", raw, dispStr)
		}
	}
	return amd64.SIBOperand(base, index, uint8(scale), int32(disp), size), nil
}

func parseSizeOrZero(s string) uint8 {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return uint8(n)
}
