package model

import "testing"

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	if r.MinY() != 20 {
		t.Errorf("MinY() = %v, expected 20", r.MinY())
	}
	if r.MaxY() != 70 {
		t.Errorf("MaxY() = %v, expected 70", r.MaxY())
	}
	if r.IsEmpty() {
		t.Error("rect with area should not be empty")
	}
	if !NewRect(0, 0, 0, 10).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
	if moved := r.Offset(5, -5); moved.X != 15 || moved.Y != 15 {
		t.Errorf("Offset returned %+v", moved)
	}
}

func TestInsets_WithBottom(t *testing.T) {
	in := Insets{Top: 1, Bottom: 2}
	out := in.WithBottom(9)
	if out.Bottom != 9 || out.Top != 1 {
		t.Errorf("WithBottom returned %+v", out)
	}
	if in.Bottom != 2 {
		t.Error("WithBottom must not modify the receiver")
	}
}

func TestInstantiateType(t *testing.T) {
	if Class().Kind != InstantiateClass {
		t.Error("Class() should use InstantiateClass")
	}
	nib := Nib("SelectorCell", "forms")
	if nib.Kind != InstantiateNib || nib.Name != "SelectorCell" || nib.Bundle != "forms" {
		t.Errorf("Nib() returned %+v", nib)
	}
	if InstantiateNib.String() != "nib" {
		t.Errorf("InstantiateNib.String() = %s", InstantiateNib)
	}
}
