package serializer

import (
	"strings"
	"testing"
)

// benchmarkValues returns a set of values for targeted benchmarking
func benchmarkValues() map[string]any {
	return map[string]any{
		"SmallString":  "v",
		"MediumString": "medium length value for testing serialization",
		"LargeString":  strings.Repeat("x", 1024),
		"Struct":       person{Name: "john", Age: 52},
		"IntSlice":     []int64{1, 2, 3, 4, 5, 6, 7, 8},
	}
}

// BenchmarkSerialize measures encoding throughput per format and value shape
func BenchmarkSerialize(b *testing.B) {
	for name, factory := range testSerializers {
		s := factory()
		for valueName, value := range benchmarkValues() {
			b.Run(name+"/"+valueName, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := s.Serialize(value); err != nil {
						b.Fatalf("Failed to serialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkRoundTrip measures a full encode/decode cycle for the struct shape
func BenchmarkRoundTrip(b *testing.B) {
	for name, factory := range testSerializers {
		s := factory()
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			in := person{Name: "john", Age: 52}
			for i := 0; i < b.N; i++ {
				data, err := s.Serialize(in)
				if err != nil {
					b.Fatalf("Failed to serialize: %v", err)
				}
				var out person
				if err := s.Deserialize(data, &out); err != nil {
					b.Fatalf("Failed to deserialize: %v", err)
				}
			}
		})
	}
}
