package comparer

import "testing"

func TestOrdinal(t *testing.T) {
	if !Ordinal.EqualString("hello", "hello") {
		t.Error("Ordinal should equate identical strings")
	}
	if Ordinal.EqualString("hello", "HELLO") {
		t.Error("Ordinal must not fold case")
	}
}

func TestInvariantIgnoreCase(t *testing.T) {
	if !InvariantIgnoreCase.EqualString("hello", "HELLo") {
		t.Error("InvariantIgnoreCase should fold ASCII case")
	}
	if !InvariantIgnoreCase.Equal('a', 'A') {
		t.Error("InvariantIgnoreCase should fold rune case")
	}
	if InvariantIgnoreCase.EqualString("hello", "world") {
		t.Error("InvariantIgnoreCase must not equate different words")
	}
}

func TestFuncAdapter(t *testing.T) {
	c := Func[int](func(a, b int) bool { return a == b })
	if !c.Equal(3, 3) {
		t.Error("Func adapter should delegate to wrapped function")
	}
	if c.Equal(3, 4) {
		t.Error("Func adapter should delegate to wrapped function")
	}
}
