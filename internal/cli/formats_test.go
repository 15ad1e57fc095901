package cli

import (
	"testing"

	"github.com/matzehuels/dotkit/pkg/viz"
)

func TestKindsFor(t *testing.T) {
	kinds, err := kindsFor("")
	if err != nil {
		t.Fatal(err)
	}
	if len(kinds) != 3 {
		t.Errorf("kinds = %v, want all three", kinds)
	}

	kinds, err = kindsFor("serializer")
	if err != nil {
		t.Fatal(err)
	}
	if len(kinds) != 1 || kinds[0] != viz.KindSerializer {
		t.Errorf("kinds = %v, want [serializer]", kinds)
	}

	if _, err := kindsFor("painter"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRunFormats(t *testing.T) {
	r := newRegistry()

	if err := runFormats(r, "", allKinds); err != nil {
		t.Errorf("runFormats all: %v", err)
	}
	if err := runFormats(r, "graphviz", allKinds); err != nil {
		t.Errorf("runFormats graphviz: %v", err)
	}
	if err := runFormats(r, "nope", allKinds); err == nil {
		t.Error("expected error for unknown provider")
	}
}
