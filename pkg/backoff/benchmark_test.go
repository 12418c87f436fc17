package backoff

import (
	"testing"
	"time"
)

func BenchmarkExponential_Period(b *testing.B) {
	policy := NewExponential()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = policy.Period(i & 63)
	}
}

func BenchmarkMinimum_Period(b *testing.B) {
	policy := NewMinimum(NewExponential(), 30*time.Millisecond)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = policy.Period(i & 63)
	}
}

func BenchmarkToDelayType(b *testing.B) {
	fn := ToDelayType(NewExponential())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(uint(i&63)+1, nil, nil)
	}
}
