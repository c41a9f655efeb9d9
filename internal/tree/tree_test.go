package tree

import (
	"reflect"
	"testing"

	"github.com/pankajredekar/namecraft/internal/models"
)

func node(id string, children ...models.Category) models.Category {
	return models.Category{
		ID:            id,
		Name:          "name-" + id,
		Subcategories: append([]models.Category{}, children...),
	}
}

// sampleForest builds:
//
//	a
//	  a1
//	    a1x
//	  a2
//	b
//	  b1
func sampleForest() []models.Category {
	return []models.Category{
		node("a",
			node("a1", node("a1x")),
			node("a2"),
		),
		node("b", node("b1")),
	}
}

func ids(forest []models.Category) []string {
	var out []string
	for _, e := range Flatten(forest) {
		out = append(out, e.Category.ID)
	}
	return out
}

func TestFind(t *testing.T) {
	forest := sampleForest()

	c, ok := Find(forest, "a1x")
	if !ok {
		t.Fatal("Expected to find a1x")
	}
	if c.Name != "name-a1x" {
		t.Errorf("Expected name 'name-a1x', got '%s'", c.Name)
	}

	if _, ok := Find(forest, "missing"); ok {
		t.Error("Find should report not-found for unknown id")
	}
	if _, ok := Find(nil, "a"); ok {
		t.Error("Find on empty forest should report not-found")
	}
}

func TestFindReturnsFirstInPreOrder(t *testing.T) {
	forest := []models.Category{
		node("x", node("dup")),
		node("dup"),
	}
	forest[0].Subcategories[0].Name = "nested"
	forest[1].Name = "root"

	c, ok := Find(forest, "dup")
	if !ok {
		t.Fatal("Expected to find dup")
	}
	if c.Name != "nested" {
		t.Errorf("Expected pre-order first match 'nested', got '%s'", c.Name)
	}
}

func TestFindReturnsCopy(t *testing.T) {
	forest := sampleForest()
	c, _ := Find(forest, "a")
	c.Name = "changed"
	c.Subcategories[0].Name = "changed"

	if forest[0].Name != "name-a" || forest[0].Subcategories[0].Name != "name-a1" {
		t.Error("Mutating a found category must not change the forest")
	}
}

func TestInsertRoot(t *testing.T) {
	forest := sampleForest()
	out, ok := Insert(forest, "", node("c"))
	if !ok {
		t.Fatal("Insert at root should succeed")
	}
	if len(out) != 3 || out[2].ID != "c" {
		t.Fatalf("Expected c appended to roots, got %v", ids(out))
	}
	if out[2].IsSubcategory {
		t.Error("Root category must not be flagged as subcategory")
	}
	if len(forest) != 2 {
		t.Error("Insert must not mutate its input")
	}
}

func TestInsertUnderNestedParent(t *testing.T) {
	forest := sampleForest()
	before := Flatten(forest)

	out, ok := Insert(forest, "a1", node("new"))
	if !ok {
		t.Fatal("Insert under a1 should succeed")
	}

	parent, _ := Find(out, "a1")
	if len(parent.Subcategories) != 2 {
		t.Fatalf("Expected parent subcategory count 2, got %d", len(parent.Subcategories))
	}
	if last := parent.Subcategories[1]; last.ID != "new" || !last.IsSubcategory {
		t.Errorf("Expected appended subcategory 'new', got %+v", last)
	}

	// Every pre-existing node is unchanged apart from the new child.
	var after []Entry
	for _, e := range Flatten(out) {
		if e.Category.ID != "new" {
			after = append(after, e)
		}
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Insert changed other nodes:\nbefore %+v\nafter  %+v", before, after)
	}

	if !reflect.DeepEqual(forest, sampleForest()) {
		t.Error("Insert must not mutate its input")
	}
}

func TestInsertUnknownParent(t *testing.T) {
	forest := sampleForest()
	out, ok := Insert(forest, "missing", node("new"))
	if ok {
		t.Error("Insert under unknown parent should report ok=false")
	}
	if !reflect.DeepEqual(out, sampleForest()) {
		t.Error("Insert under unknown parent must return the forest unchanged")
	}
}

func TestInsertDuplicateID(t *testing.T) {
	forest := sampleForest()
	if _, ok := Insert(forest, "", node("a1x")); ok {
		t.Error("Insert with an id already in the forest should be rejected")
	}
	if _, ok := Insert(forest, "b", node("fresh", node("b1"))); ok {
		t.Error("Insert of a subtree containing a used id should be rejected")
	}
}

func TestInsertSetsSubcategoryFlagFromParent(t *testing.T) {
	c := node("c")
	c.IsSubcategory = true
	out, _ := Insert(nil, "", c)
	if out[0].IsSubcategory {
		t.Error("IsSubcategory should follow the parent reference at creation")
	}
}

func TestUpdate(t *testing.T) {
	forest := sampleForest()
	name := "Renamed"
	keywords := "k1, k2"

	out, ok := Update(forest, "a1x", Patch{Name: &name, SeoKeywords: &keywords})
	if !ok {
		t.Fatal("Update should succeed")
	}

	c, _ := Find(out, "a1x")
	if c.Name != "Renamed" || c.SeoKeywords != "k1, k2" {
		t.Errorf("Patch not applied: %+v", c)
	}
	if c.Description != "" {
		t.Error("Unpatched fields must be left unchanged")
	}

	orig, _ := Find(forest, "a1x")
	if orig.Name != "name-a1x" {
		t.Error("Update must not mutate its input")
	}

	other, _ := Find(out, "a2")
	if other.Name != "name-a2" {
		t.Error("Update must not touch other nodes")
	}
}

func TestUpdateNotFoundIsNoop(t *testing.T) {
	forest := sampleForest()
	name := "x"
	out, ok := Update(forest, "missing", Patch{Name: &name})
	if ok {
		t.Error("Update of unknown id should report ok=false")
	}
	if !reflect.DeepEqual(out, forest) {
		t.Error("Update of unknown id must return the forest unchanged")
	}
}

func TestDeleteRemovesSubtree(t *testing.T) {
	forest := sampleForest()
	desc := Descendants(forest, "a1")
	if !reflect.DeepEqual(desc, []string{"a1x"}) {
		t.Fatalf("Expected descendants [a1x], got %v", desc)
	}

	out, ok := Delete(forest, "a1")
	if !ok {
		t.Fatal("Delete should succeed")
	}

	if _, found := Find(out, "a1"); found {
		t.Error("Deleted node should not be found")
	}
	for _, d := range desc {
		if _, found := Find(out, d); found {
			t.Errorf("Descendant %s should be removed", d)
		}
	}

	want := []string{"a", "a2", "b", "b1"}
	if got := ids(out); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected remaining %v, got %v", want, got)
	}
	if Count(forest) != 6 {
		t.Error("Delete must not mutate its input")
	}
}

func TestDeletePreservesSiblingOrder(t *testing.T) {
	forest := []models.Category{
		node("p", node("c1"), node("c2"), node("c3"), node("c4")),
	}
	out, _ := Delete(forest, "c2")
	want := []string{"p", "c1", "c3", "c4"}
	if got := ids(out); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDeleteRoot(t *testing.T) {
	out, ok := Delete(sampleForest(), "a")
	if !ok {
		t.Fatal("Delete of root should succeed")
	}
	if got := ids(out); !reflect.DeepEqual(got, []string{"b", "b1"}) {
		t.Errorf("Expected [b b1], got %v", got)
	}
}

func TestDeleteNotFoundIsNoop(t *testing.T) {
	forest := sampleForest()
	out, ok := Delete(forest, "missing")
	if ok {
		t.Error("Delete of unknown id should report ok=false")
	}
	if !reflect.DeepEqual(out, forest) {
		t.Error("Delete of unknown id must return the forest unchanged")
	}
}

func TestFlatten(t *testing.T) {
	entries := Flatten(sampleForest())
	want := []struct {
		id     string
		parent string
		depth  int
	}{
		{"a", "", 0},
		{"a1", "a", 1},
		{"a1x", "a1", 2},
		{"a2", "a", 1},
		{"b", "", 0},
		{"b1", "b", 1},
	}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		e := entries[i]
		if e.Category.ID != w.id || e.ParentID != w.parent || e.Depth != w.depth {
			t.Errorf("Entry %d: expected %+v, got id=%s parent=%s depth=%d", i, w, e.Category.ID, e.ParentID, e.Depth)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleForest()); err != nil {
		t.Errorf("Valid forest should not error: %v", err)
	}

	bad := []models.Category{node("x", node("y")), node("y")}
	if err := Validate(bad); err == nil {
		t.Error("Forest with duplicate ids should error")
	}
}
