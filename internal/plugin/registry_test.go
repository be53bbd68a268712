package plugin

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	ok := func(prompt string, meta Metadata) (Sections, error) {
		return Sections{Instruction: prompt}, nil
	}

	if err := r.Register("rewriter", ok); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := r.Register("rewriter", ok); err == nil {
		t.Error("duplicate name should fail")
	}
	if err := r.Register("", ok); err == nil {
		t.Error("empty name should fail")
	}
	if err := r.Register("nilfn", nil); err == nil {
		t.Error("nil refiner should fail")
	}

	names := r.Names()
	if len(names) != 1 || names[0] != "rewriter" {
		t.Errorf("Names() = %v", names)
	}
}

func TestRegistryApply(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("echo", func(prompt string, meta Metadata) (Sections, error) {
		return Sections{
			Instruction: prompt,
			Constraints: "format: " + meta["format"],
		}, nil
	}); err != nil {
		t.Fatal(err)
	}

	sections, err := r.Apply("echo", "do the thing", Metadata{"format": "json"})
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if sections.Instruction != "do the thing" {
		t.Errorf("Instruction = %q", sections.Instruction)
	}
	if sections.Constraints != "format: json" {
		t.Errorf("Constraints = %q", sections.Constraints)
	}

	if _, err := r.Apply("missing", "x", nil); err == nil {
		t.Error("unregistered plugin should fail")
	}
}

func TestRegistryApplyWrapsErrors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")

	if err := r.Register("failing", func(prompt string, meta Metadata) (Sections, error) {
		return Sections{}, boom
	}); err != nil {
		t.Fatal(err)
	}

	_, err := r.Apply("failing", "x", nil)
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "failing") {
		t.Errorf("err %q does not name the plugin", err)
	}
}

func TestRegistryApplyContainsPanics(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("panicker", func(prompt string, meta Metadata) (Sections, error) {
		panic("unexpected state")
	}); err != nil {
		t.Fatal(err)
	}

	_, err := r.Apply("panicker", "x", nil)
	if err == nil {
		t.Fatal("panic should surface as an error")
	}
	if !strings.Contains(err.Error(), "panic") {
		t.Errorf("err = %v, want panic mention", err)
	}
}
