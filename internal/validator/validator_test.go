package validator

import "testing"

func TestValidator(t *testing.T) {
	v := New()
	if !v.Valid() {
		t.Fatal("new validator should be valid")
	}

	v.Check(false, "username", "must be provided")
	v.Check(true, "password", "must be provided")

	if v.Valid() {
		t.Fatal("validator with errors should not be valid")
	}
	if got := v.Errors["username"]; got != "must be provided" {
		t.Fatalf("unexpected message %q", got)
	}
	if _, ok := v.Errors["password"]; ok {
		t.Fatal("passing check should not record an error")
	}

	// The first failure for a field wins.
	v.AddError("username", "second message")
	if got := v.Errors["username"]; got != "must be provided" {
		t.Fatalf("first error was overwritten: %q", got)
	}
}
