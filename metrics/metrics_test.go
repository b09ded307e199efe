package metrics

import "testing"

func TestCounter_IncAndAdd(t *testing.T) {
	c := NewCounter("test.counter")
	if c.Value() != 0 {
		t.Fatalf("initial value = %d, want 0", c.Value())
	}
	c.Inc()
	if c.Value() != 1 {
		t.Fatalf("after Inc() value = %d, want 1", c.Value())
	}
	c.Add(9)
	if c.Value() != 10 {
		t.Fatalf("after Add(9) value = %d, want 10", c.Value())
	}
	// Negative adds must be ignored (counters are monotonic).
	c.Add(-5)
	if c.Value() != 10 {
		t.Fatalf("after Add(-5) value = %d, want 10 (negatives ignored)", c.Value())
	}
	if c.Name() != "test.counter" {
		t.Fatalf("name = %q, want %q", c.Name(), "test.counter")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry()
	c1 := r.Counter("packets_packed_total")
	c2 := r.Counter("packets_packed_total")
	if c1 != c2 {
		t.Fatal("Counter should return the same instance for the same name")
	}
	c1.Inc()
	if c2.Value() != 1 {
		t.Fatalf("c2.Value() = %d, want 1", c2.Value())
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	r := NewRegistry()
	r.Counter("a").Add(3)
	r.Counter("b").Add(7)

	snap := r.Snapshot()
	if snap["a"] != 3 || snap["b"] != 7 {
		t.Fatalf("snapshot = %v, want a=3 b=7", snap)
	}
}
