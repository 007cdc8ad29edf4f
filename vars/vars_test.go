package vars

import "testing"

func TestDerefOrZero(t *testing.T) {
	if got := DerefOrZero[int](nil); got != 0 {
		t.Fatalf("got %v", got)
	}
	workers := 8
	if got := DerefOrZero(&workers); got != 8 {
		t.Fatalf("got %v", got)
	}
}

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero(0, 64, 32); got != 64 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero("", "", "raw"); got != "raw" {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[int](); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Y":     true,
		" on ":  true,
		"1":     true,
		"false": false,
		"off":   false,
		"":      false,
		"maybe": false,
	} {
		if got := StrToBool(str); got != expected {
			t.Fatalf("%q: got %v", str, got)
		}
	}
}
