package dispatchx

import "testing"

// BenchmarkEmit measures single-listener delivery.
// Target: < 500ns per emission
func BenchmarkEmit(b *testing.B) {
	em, err := New()
	if err != nil {
		b.Fatalf("Failed to create emitter: %v", err)
	}

	var sink int
	em.On("bench", func(payload any) { sink++ })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		em.Emit("bench", i)
	}
}

// BenchmarkEmitTenListeners measures fan-out to ten listeners.
func BenchmarkEmitTenListeners(b *testing.B) {
	em, err := New()
	if err != nil {
		b.Fatalf("Failed to create emitter: %v", err)
	}

	var sink int
	for i := 0; i < 10; i++ {
		em.On("bench", func(payload any) { sink++ })
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		em.Emit("bench", i)
	}
}

// BenchmarkEmitNoListeners measures the zero-subscriber no-op path.
func BenchmarkEmitNoListeners(b *testing.B) {
	em, err := New()
	if err != nil {
		b.Fatalf("Failed to create emitter: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		em.Emit("bench", i)
	}
}

// BenchmarkRegisterUnregister measures registry churn.
func BenchmarkRegisterUnregister(b *testing.B) {
	em, err := New()
	if err != nil {
		b.Fatalf("Failed to create emitter: %v", err)
	}

	fn := Listener(func(payload any) {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		em.On("bench", fn)
		em.Off("bench", fn)
	}
}

// BenchmarkEmitAllowListed measures the allow-list check overhead.
func BenchmarkEmitAllowListed(b *testing.B) {
	em, err := New(WithAllowedEvents("bench"))
	if err != nil {
		b.Fatalf("Failed to create emitter: %v", err)
	}

	var sink int
	em.On("bench", func(payload any) { sink++ })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		em.Emit("bench", i)
	}
}
