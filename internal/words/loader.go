package words

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PackFile represents the YAML structure of a word pack file.
type PackFile struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Answers []string `yaml:"answers"`
	Allowed []string `yaml:"allowed,omitempty"`
}

// FilePack is a word pack backed by parsed file contents.
// It satisfies registry.Pack.
type FilePack struct {
	PackID    string
	PackTitle string
	Answers   []string
	Allowed   []string
	FilePath  string
}

// ID returns the pack identifier.
func (p *FilePack) ID() string { return p.PackID }

// Title returns the display name.
func (p *FilePack) Title() string { return p.PackTitle }

// Words returns the answers and extra allowed guesses.
func (p *FilePack) Words() ([]string, []string, error) {
	return p.Answers, p.Allowed, nil
}

// Bank builds a bank from the pack contents.
func (p *FilePack) Bank(opts ...BankOption) (*Bank, error) {
	return NewBank(p.Answers, p.Allowed, opts...)
}

// LoadFile loads a single pack file. Plain text files hold one word per
// line with '#' comments; every word is both an answer and a valid guess.
// YAML files follow PackFile. The pack ID defaults to the file name.
func LoadFile(path string) (*FilePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: reading %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	pack, err := parseByExtension(data, ext)
	if err != nil {
		return nil, fmt.Errorf("words: parsing %s: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if pack.PackID == "" {
		pack.PackID = base
	}
	if pack.PackTitle == "" {
		pack.PackTitle = pack.PackID
	}
	pack.FilePath = path

	return pack, nil
}

// LoadDir scans root (non-recursively) for pack files.
// Unreadable or malformed files are skipped. Packs are sorted by ID.
func LoadDir(root string) ([]*FilePack, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("words: reading directory %s: %w", root, err)
	}

	var packs []*FilePack
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		pack, err := LoadFile(filepath.Join(root, e.Name()))
		if err != nil {
			continue
		}
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].PackID < packs[j].PackID
	})
	return packs, nil
}

// ParseYAML parses a YAML pack file.
func ParseYAML(data []byte) (*FilePack, error) {
	var pf PackFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(pf.Answers) == 0 {
		return nil, ErrEmptyBank
	}
	return &FilePack{
		PackID:    pf.ID,
		PackTitle: pf.Title,
		Answers:   pf.Answers,
		Allowed:   pf.Allowed,
	}, nil
}

// ParseText parses a plain word list.
func ParseText(data []byte) (*FilePack, error) {
	var list []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		list = append(list, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyBank
	}
	return &FilePack{Answers: list}, nil
}

func isSupportedExtension(ext string) bool {
	switch ext {
	case ".yaml", ".yml", ".txt":
		return true
	}
	return false
}

func parseByExtension(data []byte, ext string) (*FilePack, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".txt", "":
		return ParseText(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
