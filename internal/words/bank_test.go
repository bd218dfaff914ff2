package words

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wordguess/internal/registry"
)

func TestNewBank_Normalizes(t *testing.T) {
	bank, err := NewBank(
		[]string{" apple ", "Apple", "sw1ft", "crane", ""},
		[]string{"alley", "APPLE", "half-word"},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, bank.Len(), "answers are de-duplicated and non-letters dropped")
	assert.Equal(t, 3, bank.DictionarySize(), "dictionary is answers plus allowed")
	assert.True(t, bank.IsValid("alley"))
	assert.True(t, bank.IsValid(" CrAnE "))
	assert.False(t, bank.IsValid("sw1ft"))
	assert.False(t, bank.IsValid("zzzzz"))
}

func TestNewBank_Empty(t *testing.T) {
	_, err := NewBank(nil, []string{"apple"})
	assert.ErrorIs(t, err, ErrEmptyBank)

	_, err = NewBank([]string{"123", "a-b"}, nil)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestNewBank_WithLength(t *testing.T) {
	bank, err := NewBank([]string{"BOOK", "APPLE", "ANCHOR", "CRANE"}, nil, WithLength(5))
	require.NoError(t, err)

	assert.Equal(t, 2, bank.Len())
	assert.Equal(t, []int{5}, bank.Lengths())
	// The dictionary still accepts words of any length.
	assert.True(t, bank.IsValid("book"))

	_, err = NewBank([]string{"BOOK"}, nil, WithLength(7))
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestBank_PickIsDeterministicPerSeed(t *testing.T) {
	bank, err := NewBank([]string{"APPLE", "CRANE", "SLATE", "BRICK"}, nil)
	require.NoError(t, err)

	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		assert.Equal(t, bank.Pick(a), bank.Pick(b))
	}
}

func TestBank_PickCoversAllCandidates(t *testing.T) {
	bank, err := NewBank([]string{"APPLE", "CRANE", "SLATE"}, nil)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(1))
	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		seen[bank.Pick(r)]++
	}
	assert.Len(t, seen, 3)
	for w, n := range seen {
		assert.Greater(t, n, 50, "word %s picked too rarely", w)
	}
}

func TestBank_PickExcluding(t *testing.T) {
	bank, err := NewBank([]string{"APPLE", "CRANE"}, nil)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		assert.Equal(t, "CRANE", bank.PickExcluding(r, "apple"))
	}

	single, err := NewBank([]string{"APPLE"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "APPLE", single.PickExcluding(r, "APPLE"))
}

func TestBank_SharedAcrossGoroutines(t *testing.T) {
	answers := []string{"APPLE", "CRANE", "SLATE", "BRICK", "TREE"}
	bank, err := NewBank(answers, []string{"ALLEY", "BOOST"})
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for j := 0; j < 200; j++ {
				w := bank.Pick(r)
				assert.Contains(t, answers, w)
				assert.NotEqual(t, w, bank.PickExcluding(r, w))
				assert.True(t, bank.IsValid(w))
				assert.True(t, bank.IsValid(" alley "))
				assert.False(t, bank.IsValid("ZZZZZ"))
				assert.Equal(t, len(answers), bank.Len())
				assert.Equal(t, []int{4, 5}, bank.Lengths())
				assert.Equal(t, 7, bank.DictionarySize())
			}
		}(int64(i))
	}
	wg.Wait()
}

func TestParseText(t *testing.T) {
	pack, err := ParseText([]byte("# comment\napple\n\ncrane # inline\nslate brick\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "crane", "slate", "brick"}, pack.Answers)

	_, err = ParseText([]byte("# only comments\n"))
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "animals.txt")
	require.NoError(t, os.WriteFile(txt, []byte("tiger\nzebra\n"), 0o644))

	yml := filepath.Join(dir, "fruit.yaml")
	require.NoError(t, os.WriteFile(yml, []byte(`id: fruit
title: Fruit
answers: [apple, mango]
allowed: [grape]
`), 0o644))

	pack, err := LoadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, "animals", pack.ID())
	assert.Equal(t, txt, pack.FilePath)

	pack, err = LoadFile(yml)
	require.NoError(t, err)
	assert.Equal(t, "fruit", pack.ID())
	assert.Equal(t, "Fruit", pack.Title())

	bank, err := pack.Bank()
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Len())
	assert.True(t, bank.IsValid("GRAPE"))

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("tiger\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yml"), []byte("answers: [apple]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("answers: [\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("tiger\n"), 0o644))

	packs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, packs, 2)
	assert.Equal(t, "a", packs[0].ID())
	assert.Equal(t, "b", packs[1].ID())
}

func TestEmbeddedPacks(t *testing.T) {
	for _, tc := range []struct {
		id     string
		length int
	}{
		{"classic", 5},
		{"short", 4},
		{"long", 6},
	} {
		t.Run(tc.id, func(t *testing.T) {
			require.True(t, registry.Exists(tc.id))

			bank, pack, err := Open(tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.id, pack.ID())
			assert.NotEmpty(t, pack.Title())
			assert.Equal(t, []int{tc.length}, bank.Lengths())
			assert.Greater(t, bank.DictionarySize(), bank.Len())
		})
	}

	bank, _, err := Open(DefaultPack)
	require.NoError(t, err)
	assert.True(t, bank.IsValid("APPLE"))
	assert.True(t, bank.IsValid("ALLEY"))
}

func TestRegisterDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "classic.txt"), []byte("apple\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "colors-test.txt"), []byte("amber\ncoral\n"), 0o644))

	added, skipped, err := RegisterDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"colors-test"}, added)
	assert.Equal(t, []string{"classic"}, skipped)

	bank, _, err := Open("colors-test")
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Len())
}

func TestRegisterFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fruit-test.txt")
	require.NoError(t, os.WriteFile(path, []byte("plum\npear\n"), 0o644))

	id, err := RegisterFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fruit-test", id)
	assert.True(t, registry.Exists("fruit-test"))

	_, err = RegisterFile(path)
	assert.Error(t, err, "second registration of the same ID")

	_, err = RegisterFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
