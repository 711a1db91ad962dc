package serializer

import (
	"reflect"
	"testing"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() ISerializer{
	"CBOR": NewCBORSerializer,
	"JSON": NewJSONSerializer,
	"GOB":  NewGOBSerializer,
}

// person mirrors the kind of struct users store in collections
type person struct {
	Name string `json:"name" cbor:"name"`
	Age  uint8  `json:"age" cbor:"age"`
}

// TestSerializerRoundTrip tests that values can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()

			// Struct round trip
			in := person{Name: "john", Age: 52}
			data, err := s.Serialize(in)
			if err != nil {
				t.Fatalf("Failed to serialize struct: %v", err)
			}
			var out person
			if err := s.Deserialize(data, &out); err != nil {
				t.Fatalf("Failed to deserialize struct: %v", err)
			}
			if !reflect.DeepEqual(in, out) {
				t.Errorf("Struct doesn't match after round trip:\nOriginal: %+v\nResult: %+v", in, out)
			}

			// String round trip
			data, err = s.Serialize("test-value")
			if err != nil {
				t.Fatalf("Failed to serialize string: %v", err)
			}
			var str string
			if err := s.Deserialize(data, &str); err != nil {
				t.Fatalf("Failed to deserialize string: %v", err)
			}
			if str != "test-value" {
				t.Errorf("String doesn't match after round trip: got %q", str)
			}

			// Slice round trip
			ints := []int64{-1, 0, 1, 1 << 40}
			data, err = s.Serialize(ints)
			if err != nil {
				t.Fatalf("Failed to serialize slice: %v", err)
			}
			var decoded []int64
			if err := s.Deserialize(data, &decoded); err != nil {
				t.Fatalf("Failed to deserialize slice: %v", err)
			}
			if !reflect.DeepEqual(ints, decoded) {
				t.Errorf("Slice doesn't match after round trip: %v != %v", ints, decoded)
			}
		})
	}
}

// TestSerializerDeterministic checks that encoding the same value twice yields
// identical bytes. Collection operations like LREM and SISMEMBER compare
// stored bytes on the server, so this is a hard requirement.
func TestSerializerDeterministic(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()
			in := person{Name: "john", Age: 52}

			a, err := s.Serialize(in)
			if err != nil {
				t.Fatalf("Failed to serialize: %v", err)
			}
			b, err := s.Serialize(in)
			if err != nil {
				t.Fatalf("Failed to serialize: %v", err)
			}
			if !reflect.DeepEqual(a, b) {
				t.Errorf("Encoding is not deterministic:\nFirst:  %x\nSecond: %x", a, b)
			}
		})
	}
}

// TestSerializerNames checks the reported format names
func TestSerializerNames(t *testing.T) {
	for want, factory := range map[string]func() ISerializer{
		"cbor": NewCBORSerializer,
		"json": NewJSONSerializer,
		"gob":  NewGOBSerializer,
	} {
		if got := factory().Name(); got != want {
			t.Errorf("Name mismatch: expected %q, got %q", want, got)
		}
	}
}

// TestInvalidData tests how the serializers handle corrupt data
func TestInvalidData(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			s := factory()
			var out person
			if err := s.Deserialize([]byte{0xff, 0x00, 0x13, 0x37}, &out); err == nil {
				t.Errorf("Expected error deserializing garbage but got none")
			}
		})
	}
}
