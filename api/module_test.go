package api

import "testing"

func TestModule_FlattenOrder(t *testing.T) {
	root := (&Module{Name: "Client", Contents: "A"}).
		Add(NewModule("Model", "B")).
		Add((&Module{Name: "Types", Contents: "D"}).
			Add(NewModule("Inner", "C")))

	// children depth-first, own contents last
	if got := root.Flatten(); got != "BCDA" {
		t.Errorf("Flatten() = %q, want %q", got, "BCDA")
	}
}

func TestModule_FlattenIdempotent(t *testing.T) {
	root := (&Module{Name: "Client", Contents: "A"}).
		Add(NewModule("Model", "B"))

	first := root.Flatten()
	second := root.Flatten()
	if first != second {
		t.Errorf("Flatten changed between calls: %q then %q", first, second)
	}
}

func TestModule_AddPreservesOrder(t *testing.T) {
	root := &Module{Name: "root"}
	for _, name := range []string{"c", "a", "b"} {
		root.Add(NewModule(name, ""))
	}

	if len(root.Submodules) != 3 {
		t.Fatalf("Submodules = %d, want 3", len(root.Submodules))
	}
	for i, want := range []string{"c", "a", "b"} {
		if root.Submodules[i].Name != want {
			t.Errorf("Submodules[%d].Name = %q, want %q", i, root.Submodules[i].Name, want)
		}
	}
}
