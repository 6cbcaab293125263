package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/nature-lang/natasm/internal/asm/amd64"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <mnemonic>",
	Short: "Encode a single AMD64 instruction and print its bytes",
	Long: `encode builds one amd64.AsmInst from the mnemonic argument and
repeated --operand flags, runs it through the encoder, and prints the
resulting hex bytes and the chosen form id.

Example:
  natasm encode mov --operand reg:rax --operand reg:rbx
  natasm encode add --operand mem:rbp+-8:8 --operand imm:1:4`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

var operandFlags []string

func init() {
	encodeCmd.Flags().StringArrayVarP(&operandFlags, "operand", "o", nil,
		"operand in reg:/imm:/f32:/f64:/mem:/sib:/rip:/seg: form, repeatable in order")
}

func runEncode(cmd *cobra.Command, args []string) error {
	inst := amd64.AsmInst{Mnemonic: amd64.Mnemonic(args[0])}

	for _, raw := range operandFlags {
		op, err := parseOperand(raw)
		if err != nil {
			return err
		}
		inst.Operands = append(inst.Operands, op)
	}

	enc, err := amd64.Encode(inst)
	if err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}

	cmd.Printf("form:  %s\n", enc.FormID)
	cmd.Printf("bytes: %s\n", hex.EncodeToString(enc.Bytes))
	cmd.Printf("len:   %d\n", enc.Length)
	return nil
}
