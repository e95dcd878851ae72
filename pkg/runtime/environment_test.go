package runtime

import (
	"errors"
	"testing"
)

func ident(name string) Token {
	return NewToken(TokenIdentifier, name, 1)
}

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define(GlobalScope, "greeting", StringValue{Val: "hello"})

	got, err := env.Get(GlobalScope, ident("greeting"))
	if err != nil {
		t.Fatalf("expected to retrieve binding: %v", err)
	}
	if gv, ok := got.(StringValue); !ok || gv.Val != "hello" {
		t.Fatalf("unexpected value returned: %#v", got)
	}
}

func TestEnvironmentAssignRespectsLexicalParent(t *testing.T) {
	env := NewEnvironment()
	env.Define(GlobalScope, "counter", NumberValue{Val: 1})

	child := env.Push(GlobalScope)
	if err := env.Assign(child, ident("counter"), NumberValue{Val: 2}); err != nil {
		t.Fatalf("assign into parent failed: %v", err)
	}
	if env.HasInCurrentScope(child, "counter") {
		t.Fatalf("assignment must not create a binding in the child scope")
	}

	env.Release(child)
	got, err := env.Get(GlobalScope, ident("counter"))
	if err != nil {
		t.Fatalf("parent lookup failed: %v", err)
	}
	if nv, ok := got.(NumberValue); !ok || nv.Val != 2 {
		t.Fatalf("unexpected counter value: %#v", got)
	}
}

func TestEnvironmentShadowingLeavesParentUntouched(t *testing.T) {
	env := NewEnvironment()
	env.Define(GlobalScope, "x", NumberValue{Val: 1})

	child := env.Push(GlobalScope)
	env.Define(child, "x", NumberValue{Val: 10})
	env.Define(child, "x", NumberValue{Val: 20})

	inner, err := env.Get(child, ident("x"))
	if err != nil {
		t.Fatalf("child lookup failed: %v", err)
	}
	if inner.(NumberValue).Val != 20 {
		t.Fatalf("expected redeclaration to overwrite child binding, got %#v", inner)
	}
	outer, err := env.Get(GlobalScope, ident("x"))
	if err != nil {
		t.Fatalf("global lookup failed: %v", err)
	}
	if outer.(NumberValue).Val != 1 {
		t.Fatalf("expected outer binding to stay 1, got %#v", outer)
	}
}

func TestEnvironmentAssignUnknownFails(t *testing.T) {
	env := NewEnvironment()
	name := NewToken(TokenIdentifier, "missing", 7)
	err := env.Assign(GlobalScope, name, NilValue{})
	if err == nil {
		t.Fatalf("expected error when assigning undefined variable")
	}
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected RuntimeError, got %T", err)
	}
	if rtErr.Error() != "Undefined variable 'missing'." {
		t.Fatalf("unexpected error message: %q", rtErr.Error())
	}
	if rtErr.Line() != 7 || rtErr.Token.Lexeme != "missing" {
		t.Fatalf("error should carry the offending token, got %#v", rtErr.Token)
	}
	if env.Has(GlobalScope, "missing") {
		t.Fatalf("failed assignment must not define the name")
	}
}

func TestEnvironmentGetUnknownFails(t *testing.T) {
	env := NewEnvironment()
	child := env.Push(GlobalScope)
	if _, err := env.Get(child, ident("nope")); err == nil {
		t.Fatalf("expected undefined variable error")
	}
}

func TestEnvironmentReleaseDropsNestedScopes(t *testing.T) {
	env := NewEnvironment()
	outer := env.Push(GlobalScope)
	inner := env.Push(outer)
	if inner != outer+1 {
		t.Fatalf("expected handles to be allocated in order, got %d then %d", outer, inner)
	}
	if env.Parent(inner) != outer || env.Parent(outer) != GlobalScope || env.Parent(GlobalScope) != NoScope {
		t.Fatalf("unexpected parent links")
	}

	env.Release(outer)
	if env.Len() != 1 {
		t.Fatalf("expected only the global scope to remain, got %d", env.Len())
	}
	again := env.Push(GlobalScope)
	if again != outer {
		t.Fatalf("expected released handle to be reused, got %d", again)
	}
	if len(env.Keys(again)) != 0 {
		t.Fatalf("reused scope must start empty")
	}
}

func TestEnvironmentKeysAndSnapshot(t *testing.T) {
	env := NewEnvironment()
	env.Define(GlobalScope, "b", BoolValue{Val: true})
	env.Define(GlobalScope, "a", NilValue{})

	keys := env.Keys(GlobalScope)
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys %v", keys)
	}
	snap := env.Snapshot(GlobalScope)
	snap["c"] = NumberValue{Val: 3}
	if env.Has(GlobalScope, "c") {
		t.Fatalf("snapshot must be a copy")
	}
}

func TestEnvironmentReleaseGlobalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when releasing the global scope")
		}
	}()
	NewEnvironment().Release(GlobalScope)
}
