package command

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDispatchUnknownCommand(t *testing.T) {
	registry := NewRegistry()
	result := registry.Dispatch(context.Background(), "no_such_command", Args{})
	if !result.IsError {
		t.Fatalf("unknown command should be an error")
	}
	if !strings.Contains(result.Text, "unknown command") {
		t.Fatalf("unexpected error text: %s", result.Text)
	}
}

func TestDispatchMissingRequiredArgument(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Spec{
		Name:     "needs_id",
		Required: []string{"id"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			t.Fatalf("handler must not run without required args")
			return "", nil
		},
	})

	result := registry.Dispatch(context.Background(), "needs_id", Args{})
	if !result.IsError {
		t.Fatalf("missing required argument should be an error")
	}
	if !strings.Contains(result.Text, `"id"`) {
		t.Fatalf("error should name the missing key, got: %s", result.Text)
	}
}

func TestDispatchEnumViolation(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Spec{
		Name:  "set_status",
		Enums: map[string][]string{"status": {"pending", "paid"}},
		Handler: func(ctx context.Context, args Args) (string, error) {
			t.Fatalf("handler must not run with out-of-domain enum value")
			return "", nil
		},
	})

	result := registry.Dispatch(context.Background(), "set_status", Args{"status": "bogus"})
	if !result.IsError {
		t.Fatalf("enum violation should be an error")
	}
	if !strings.Contains(result.Text, "bogus") {
		t.Fatalf("error should include the offending value, got: %s", result.Text)
	}
}

func TestDispatchConvertsHandlerError(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Spec{
		Name: "fails",
		Handler: func(ctx context.Context, args Args) (string, error) {
			return "", errors.New("store exploded: connection refused")
		},
	})

	result := registry.Dispatch(context.Background(), "fails", nil)
	if !result.IsError {
		t.Fatalf("handler error should become an error envelope")
	}
	if result.Text != "store exploded: connection refused" {
		t.Fatalf("error text must be verbatim, got: %s", result.Text)
	}
}

func TestDispatchRecoversPanic(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Spec{
		Name: "panics",
		Handler: func(ctx context.Context, args Args) (string, error) {
			panic("nil map write")
		},
	})

	result := registry.Dispatch(context.Background(), "panics", Args{})
	if !result.IsError {
		t.Fatalf("panic should become an error envelope")
	}
	if !strings.Contains(result.Text, "nil map write") {
		t.Fatalf("panic text should surface, got: %s", result.Text)
	}
}

func TestDispatchSuccess(t *testing.T) {
	registry := NewRegistry()
	registry.Register(Spec{
		Name:     "echo",
		Required: []string{"value"},
		Handler: func(ctx context.Context, args Args) (string, error) {
			value, err := args.String("value")
			if err != nil {
				return "", err
			}
			return value, nil
		},
	})

	result := registry.Dispatch(context.Background(), "echo", Args{"value": "hello"})
	if result.IsError {
		t.Fatalf("dispatch failed: %s", result.Text)
	}
	if result.Text != "hello" {
		t.Fatalf("result want hello got %s", result.Text)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	registry := NewRegistry()
	spec := Spec{
		Name:    "dup",
		Handler: func(ctx context.Context, args Args) (string, error) { return "", nil },
	}
	registry.Register(spec)

	defer func() {
		if recovered := recover(); recovered == nil {
			t.Fatalf("duplicate registration should panic")
		}
	}()
	registry.Register(spec)
}

func TestSpecsPreserveRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	names := []string{"first", "second", "third"}
	for _, name := range names {
		registry.Register(Spec{
			Name:    name,
			Handler: func(ctx context.Context, args Args) (string, error) { return "", nil },
		})
	}

	specs := registry.Specs()
	if len(specs) != len(names) {
		t.Fatalf("specs want %d got %d", len(names), len(specs))
	}
	for i, name := range names {
		if specs[i].Name != name {
			t.Fatalf("spec %d want %s got %s", i, name, specs[i].Name)
		}
	}
}
