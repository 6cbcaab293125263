package amd64

import "sort"

// Select implements spec.md §4.2: walk the trie by mnemonic then by
// (high_kind, size) per operand, filter illegal REX/high-byte combinations,
// and return the deterministic winner.
func Select(trie *formTrie, inst AsmInst) (*InstructionForm, error) {
	root, ok := trie.mnemonics[inst.Mnemonic]
	if !ok {
		return nil, &UnknownMnemonicError{Mnemonic: inst.Mnemonic}
	}

	needsRex := inst.needsREX()
	hasHighByte := inst.hasHighByteReg()

	cur := root
	for slot, op := range inst.Operands {
		key := operandKey{kind: op.Kind, size: op.Size()}
		child, ok := cur.children[key]
		if !ok {
			return nil, &UnmatchableOperandError{
				Mnemonic: inst.Mnemonic, Slot: slot, Kind: op.Kind, Size: op.Size(),
				HasHighByte: hasHighByte, NeedsREX: needsRex,
			}
		}
		cur = child
	}

	candidates := cur.forms
	var filtered []*InstructionForm
	if hasHighByte {
		// A REX-requiring register would make Fill synthesize a REX prefix
		// for any form, so it leaves no legal candidate next to ah/bh/ch/dh.
		for _, f := range candidates {
			if !needsRex && !f.hasExtension(ExtREX) && !f.hasExtension(ExtREXW) {
				filtered = append(filtered, f)
			}
		}
	} else {
		filtered = candidates
	}

	if len(filtered) == 0 {
		lastSlot := len(inst.Operands) - 1
		var kind HighKind
		var size uint8
		if lastSlot >= 0 {
			kind, size = inst.Operands[lastSlot].Kind, inst.Operands[lastSlot].Size()
		}
		return nil, &UnmatchableOperandError{
			Mnemonic: inst.Mnemonic, Slot: lastSlot, Kind: kind, Size: size,
			HasHighByte: hasHighByte, NeedsREX: needsRex,
		}
	}

	// Stable sort ascending by the first operand's low-level kind ordinal
	// (spec.md §4.2 step 6); forms whose first kinds are equal keep their
	// catalog order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].firstLowKind() < filtered[j].firstLowKind()
	})
	return filtered[0], nil
}
