package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestLRUGetAdd(t *testing.T) {
	c := New[string, int](3)
	c.Add("Patient.name", 1)
	c.Add("Patient.gender", 2)

	if v, ok := c.Get("Patient.name"); !ok || v != 1 {
		t.Errorf("Get(Patient.name) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("Patient.birthDate"); ok {
		t.Error("Get() of a missing key should return false")
	}

	c.Add("Patient.name", 10)
	if v, _ := c.Get("Patient.name"); v != 10 {
		t.Errorf("Get() after update = %d, want 10", v)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRUEviction(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Get("a")

	if !c.Add("c", 3) {
		t.Error("Add() beyond capacity should report an eviction")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("least recently used key should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("Get(%q) should hit", k)
		}
	}
}

func TestLRURemovePurge(t *testing.T) {
	c := New[string, int](4)
	c.Add("a", 1)
	c.Add("b", 2)

	c.Remove("a")
	c.Remove("missing")
	if c.Len() != 1 {
		t.Errorf("Len() after Remove = %d, want 1", c.Len())
	}

	c.Get("b")
	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() after Purge = %d, want 0", c.Len())
	}
	if c.Stats().Hits != 1 {
		t.Error("Purge() should keep the counters")
	}
}

func TestLRUStats(t *testing.T) {
	c := New[string, int](1)
	c.Add("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")
	c.Add("b", 2)

	s := c.Stats()
	want := Stats{Len: 1, Capacity: 1, Hits: 2, Misses: 1, Evictions: 1, HitRate: 2.0 / 3.0}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestLRUDefaultCapacity(t *testing.T) {
	if got := New[string, int](0).Capacity(); got != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", got, DefaultCapacity)
	}
}

func TestLRUConcurrent(t *testing.T) {
	c := New[int, int](50)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.Add(i, i*10)
		}(i)
		go func(i int) {
			defer wg.Done()
			c.Get(i)
		}(i)
	}
	wg.Wait()

	if c.Len() > 50 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
	for i := 0; i < 100; i++ {
		if v, ok := c.Get(i); ok && v != i*10 {
			t.Errorf("Get(%d) = %d, want %d", i, v, i*10)
		}
	}
}

func BenchmarkLRUGet(b *testing.B) {
	c := New[string, int](1000)
	keys := make([]string, 1000)
	for i := range keys {
		keys[i] = fmt.Sprintf("Patient.field%d", i)
		c.Add(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(keys[i%len(keys)])
	}
}
