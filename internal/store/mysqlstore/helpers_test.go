package mysqlstore

import "testing"

func TestSetClauseAssignments(t *testing.T) {
	var c setClause
	if !c.empty() {
		t.Fatal("fresh clause should be empty")
	}

	c.set("title", "a")
	c.set("status", "approved")

	if c.empty() {
		t.Fatal("clause with assignments reported empty")
	}
	if got, want := c.assignments(), "title = ?, status = ?"; got != want {
		t.Fatalf("assignments() = %q, want %q", got, want)
	}
	if len(c.args) != 2 {
		t.Fatalf("args = %d, want 2", len(c.args))
	}
	if c.args[0] != "a" || c.args[1] != "approved" {
		t.Fatalf("args out of order: %v", c.args)
	}
}

func TestSetClauseSingleColumn(t *testing.T) {
	var c setClause
	c.set("used_amount", 5)
	if got, want := c.assignments(), "used_amount = ?"; got != want {
		t.Fatalf("assignments() = %q, want %q", got, want)
	}
}
