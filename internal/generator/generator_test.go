package generator

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/pankajredekar/namecraft/internal/models"
)

// scriptedSource returns the scripted values in order
type scriptedSource struct {
	values []int
	calls  []int
}

func (s *scriptedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func TestGenerateEmptyPool(t *testing.T) {
	got, err := Generate(nil, "", DefaultCount)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{NoNamesAvailable}) {
		t.Errorf("Expected sentinel only, got %v", got)
	}

	got, err = Generate([]models.NameList{{ID: "l1", Names: []string{}}}, "Mr. ", 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(got) != 1 || got[0] != NoNamesAvailable {
		t.Errorf("Lists without names should yield the sentinel, got %v", got)
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	lists := []models.NameList{{Names: []string{"Ava", "Bo"}}}
	got, err := Generate(lists, "Mr. ", 3)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 names, got %d", len(got))
	}
	for _, name := range got {
		if name != "Mr. Ava" && name != "Mr. Bo" {
			t.Errorf("Unexpected name %q", name)
		}
	}
}

func TestGenerateScriptedDraws(t *testing.T) {
	lists := []models.NameList{
		{Names: []string{"Ava", "Bo"}},
		{Names: []string{"Cy"}},
	}
	src := &scriptedSource{values: []int{2, 0, 2, 1}}
	gen := NewGenerator(src)

	got, err := gen.Generate(lists, "", 4)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []string{"Cy", "Ava", "Cy", "Bo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	for _, n := range src.calls {
		if n != 3 {
			t.Errorf("Expected draws over a pool of 3, got IntN(%d)", n)
		}
	}
}

func TestGenerateNoSeparator(t *testing.T) {
	gen := NewGenerator(&scriptedSource{values: []int{0}})
	got, _ := gen.Generate([]models.NameList{{Names: []string{"smith"}}}, "Black", 1)
	if got[0] != "Blacksmith" {
		t.Errorf("Expected prefix concatenated without separator, got %q", got[0])
	}
}

func TestGenerateZeroCount(t *testing.T) {
	got, err := Generate([]models.NameList{{Names: []string{"Ava"}}}, "", 0)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty batch, got %#v", got)
	}
}

func TestGenerateNegativeCount(t *testing.T) {
	got, err := Generate([]models.NameList{{Names: []string{"Ava"}}}, "", -1)
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Expected ErrNegativeCount, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected no partial result, got %v", got)
	}
}

func TestGenerateAllowsDuplicates(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	got, err := gen.Generate([]models.NameList{{Names: []string{"Only"}}}, "", 5)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, name := range got {
		if name != "Only" {
			t.Errorf("Expected every draw to be 'Only', got %q", name)
		}
	}
}

func TestPoolOrder(t *testing.T) {
	pool := Pool([]models.NameList{
		{Names: []string{"b", "a"}},
		{Names: []string{"a"}},
	})
	if !reflect.DeepEqual(pool, []string{"b", "a", "a"}) {
		t.Errorf("Unexpected pool order: %v", pool)
	}
}
