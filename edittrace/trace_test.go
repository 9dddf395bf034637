package edittrace

import "testing"

func TestTraceWeighted(t *testing.T) {
	tr := Trace{Deletions: 1, Insertions: 2, Substitutions: 3}

	if got := tr.Weighted(DefaultCosts()); got != 6 {
		t.Errorf("Weighted(default) = %d, want 6", got)
	}

	if got := tr.Weighted(Costs{Delete: 2, Insert: 3, Substitute: 4}); got != 1*2+2*3+3*4 {
		t.Errorf("Weighted(custom) = %d, want %d", got, 1*2+2*3+3*4)
	}
}

func TestTraceTotal(t *testing.T) {
	tr := Trace{Deletions: 1, Insertions: 2, Substitutions: 3}
	if got := tr.Total(); got != 6 {
		t.Errorf("Total() = %d, want 6", got)
	}
}
