package amd64

import "sync"

var (
	catalogTrieOnce sync.Once
	catalogTrie     *formTrie
)

// trie returns the process-lifetime form-lookup trie, building it from the
// catalog on first use. Building is single-threaded; once built the trie is
// immutable and safe to share across goroutines without synchronization,
// per spec.md §5.
func trie() *formTrie {
	catalogTrieOnce.Do(func() {
		catalogTrie = buildTrie(Catalog)
	})
	return catalogTrie
}

// Encoded is the tuple returned for every encoded AsmInst: the emitted
// bytes, their length, and the id of the chosen form, which the downstream
// linker uses to recover the form's extension set for relocation/fix-up
// decisions (spec.md §6).
type Encoded struct {
	Bytes  []byte
	Length int
	FormID string
}

// Encode is the encoder's single entry point (spec.md §6): given one
// architectural assembly instruction, it selects the matching catalog form,
// fills the intermediate binary format, and serializes the final byte
// sequence. Each call is independent; there is no shared mutable state
// beyond the one-time trie build, and multiple goroutines may call Encode
// concurrently.
func Encode(inst AsmInst) (Encoded, error) {
	form, err := Select(trie(), inst)
	if err != nil {
		return Encoded{}, err
	}
	bf, err := Fill(form, inst)
	if err != nil {
		return Encoded{}, err
	}
	bytes := Serialize(bf)
	return Encoded{Bytes: bytes, Length: len(bytes), FormID: form.ID}, nil
}

// BuildTrieForTest exposes trie construction over an arbitrary catalog
// subset, so tests can exercise the selector against partial tables without
// depending on the full process-wide catalog (spec.md §9 Design Notes).
func BuildTrieForTest(forms []InstructionForm) *formTrie {
	return buildTrie(forms)
}
