package ratelimit

import (
	"fmt"
	"sync"
	"testing"
)

func TestAllowWithinBurst(t *testing.T) {
	krl := New(1, 3)
	defer krl.Stop()

	for i := 0; i < 3; i++ {
		if !krl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if krl.Allow("10.0.0.1") {
		t.Fatal("request beyond burst should be denied")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	krl := New(1, 1)
	defer krl.Stop()

	if !krl.Allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if krl.Allow("10.0.0.1") {
		t.Fatal("first key should be exhausted")
	}
	if !krl.Allow("10.0.0.2") {
		t.Fatal("second key should have its own bucket")
	}
}

func TestConcurrentAccess(t *testing.T) {
	krl := New(1000, 1000)
	defer krl.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("10.0.0.%d", n%5)
			for j := 0; j < 20; j++ {
				krl.Allow(key)
			}
		}(i)
	}
	wg.Wait()
}

func TestStopIsIdempotent(t *testing.T) {
	krl := New(1, 1)
	krl.Stop()
	krl.Stop()
}
