package amd64

import "fmt"

// UnknownMnemonicError reports a mnemonic absent from the form trie's root.
type UnknownMnemonicError struct {
	Mnemonic Mnemonic
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("amd64: unknown mnemonic %q", string(e.Mnemonic))
}

// UnmatchableOperandError reports that trie descent failed at a given
// operand slot, or that every candidate form was filtered out afterward.
type UnmatchableOperandError struct {
	Mnemonic    Mnemonic
	Slot        int
	Kind        HighKind
	Size        uint8
	HasHighByte bool
	NeedsREX    bool
}

func (e *UnmatchableOperandError) Error() string {
	return fmt.Sprintf(
		"amd64: no form of %q matches operand %d (kind=%d size=%d, high-byte-reg=%v, needs-rex=%v)",
		string(e.Mnemonic), e.Slot, e.Kind, e.Size, e.HasHighByte, e.NeedsREX,
	)
}

// UnsupportedOperandError reports that a declared role in the chosen form
// cannot consume the high-level operand kind actually supplied, or that a
// catalog invariant about a form's extensions was violated.
type UnsupportedOperandError struct {
	FormID string
	Role   Role
	Kind   HighKind
	Reason string
}

func (e *UnsupportedOperandError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("amd64: form %q: %s", e.FormID, e.Reason)
	}
	return fmt.Sprintf("amd64: form %q cannot encode role %d with operand kind %d", e.FormID, e.Role, e.Kind)
}
