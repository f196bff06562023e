package circsim_test

import (
	"reflect"
	"strings"
	"testing"

	cs "github.com/db47h/circsim"
)

func TestTable(t *testing.T) {
	tab := cs.NewTable()
	if _, err := tab.Get("a"); cs.KindOf(err) != cs.UndefinedSignal {
		t.Fatalf("expected %v, got %v", cs.UndefinedSignal, err)
	}
	if _, ok := tab.RoleOf("a"); ok {
		t.Fatal("unexpected role for a")
	}
	tab.Set("a", true)
	if v, err := tab.Get("a"); err != nil || !v {
		t.Fatalf("expected a = true, got %v, %v", v, err)
	}
	// Set does not declare anything
	if _, ok := tab.RoleOf("a"); ok {
		t.Fatal("unexpected role for a")
	}

	for _, d := range []struct {
		name string
		role cs.Role
	}{{"b", cs.UpdateOutput}, {"a", cs.Input}, {"c", cs.LatchOutput}} {
		if err := tab.Declare(d.name, d.role); err != nil {
			t.Fatal(err)
		}
		if r, ok := tab.RoleOf(d.name); !ok || r != d.role {
			t.Fatalf("%s: expected role %v, got %v", d.name, d.role, r)
		}
	}
	err := tab.Declare("a", cs.LatchOutput)
	if cs.KindOf(err) != cs.DuplicateSignalDeclaration || cs.SignalOf(err) != "a" {
		t.Fatalf("expected %v on a, got %v", cs.DuplicateSignalDeclaration, err)
	}
	if r, _ := tab.RoleOf("a"); r != cs.Input {
		t.Fatalf("role of a changed to %v", r)
	}
	if s := tab.Signals(); !reflect.DeepEqual(s, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected signal list %v", s)
	}
	if s := tab.String(); !strings.Contains(s, "a\t-> 1 (input)\n") {
		t.Fatalf("unexpected table dump %q", s)
	}
}

func TestKind_String(t *testing.T) {
	if s := cs.DuplicateSignalDeclaration.String(); s != "duplicate signal declaration" {
		t.Fatalf("unexpected kind name %q", s)
	}
	if s := cs.Kind(42).String(); s != "Kind(42)" {
		t.Fatalf("unexpected kind name %q", s)
	}
	if cs.KindOf(nil) != 0 {
		t.Fatal("KindOf(nil) != 0")
	}
}
