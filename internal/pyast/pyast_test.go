package pyast

import "testing"

func TestWalkFuncDefs_DocumentOrder(t *testing.T) {
	m := &Module{Body: []Stmt{
		&FuncDef{Line: 1, Name: "first"},
		&ClassDef{Line: 3, Name: "Box", Body: []Stmt{
			&FuncDef{Line: 4, Name: "method"},
		}},
		&Other{Line: 7, Body: []Stmt{
			&FuncDef{Line: 8, Name: "inner"},
		}},
	}}

	var names []string
	WalkFuncDefs(m, func(fn *FuncDef) {
		names = append(names, fn.Name)
	})

	want := []string{"first", "method", "inner"}
	if len(names) != len(want) {
		t.Fatalf("visited %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("visit %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestWalkFuncDefs_Nested(t *testing.T) {
	m := &Module{Body: []Stmt{
		&FuncDef{Line: 1, Name: "outer", Body: []Stmt{
			&FuncDef{Line: 2, Name: "inner"},
		}},
	}}

	var names []string
	WalkFuncDefs(m, func(fn *FuncDef) {
		names = append(names, fn.Name)
	})

	if len(names) != 2 || names[0] != "outer" || names[1] != "inner" {
		t.Errorf("visited %v, want [outer inner]", names)
	}
}
