package words

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/vovakirdan/wordguess/internal/registry"
)

// DefaultPack is the pack used when none is configured.
const DefaultPack = "classic"

//go:embed packs/*.yaml
var embeddedPacks embed.FS

func init() {
	entries, err := fs.ReadDir(embeddedPacks, "packs")
	if err != nil {
		panic(fmt.Sprintf("words: reading embedded packs: %v", err))
	}
	for _, e := range entries {
		data, err := embeddedPacks.ReadFile(path.Join("packs", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("words: reading embedded pack %s: %v", e.Name(), err))
		}
		pack, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("words: parsing embedded pack %s: %v", e.Name(), err))
		}
		register(pack)
	}
}

func register(pack *FilePack) {
	registry.Register(pack.PackID, func() registry.Pack { return pack })
}

// RegisterDir loads every pack file in root and registers the ones whose
// IDs are not taken yet. It returns the IDs that were registered and the
// IDs that were skipped as duplicates.
func RegisterDir(root string) (added, skipped []string, err error) {
	packs, err := LoadDir(root)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range packs {
		if registry.Exists(p.PackID) {
			skipped = append(skipped, p.PackID)
			continue
		}
		register(p)
		added = append(added, p.PackID)
	}
	return added, skipped, nil
}

// RegisterFile loads one pack file and registers it. It fails when the
// pack ID is already taken.
func RegisterFile(path string) (string, error) {
	p, err := LoadFile(path)
	if err != nil {
		return "", err
	}
	if registry.Exists(p.PackID) {
		return "", fmt.Errorf("words: pack %q is already registered", p.PackID)
	}
	register(p)
	return p.PackID, nil
}

// FromPack builds a bank from any registered pack.
func FromPack(p registry.Pack, opts ...BankOption) (*Bank, error) {
	answers, allowed, err := p.Words()
	if err != nil {
		return nil, fmt.Errorf("words: loading pack %q: %w", p.ID(), err)
	}
	bank, err := NewBank(answers, allowed, opts...)
	if err != nil {
		return nil, fmt.Errorf("words: pack %q: %w", p.ID(), err)
	}
	return bank, nil
}

// Open looks up a registered pack by ID and builds its bank.
func Open(id string, opts ...BankOption) (*Bank, registry.Pack, error) {
	p, err := registry.Create(id)
	if err != nil {
		return nil, nil, err
	}
	bank, err := FromPack(p, opts...)
	if err != nil {
		return nil, nil, err
	}
	return bank, p, nil
}
