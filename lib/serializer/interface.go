package serializer

// ISerializer is the interface for all value serializers.
// A serializer converts a typed Go value into the opaque byte string stored
// in redis and back. Implementations must be deterministic and stateless.
type ISerializer interface {
	// Serialize serializes a value into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(v any) ([]byte, error)
	// Deserialize deserializes a byte array into a value
	// It takes a byte array and a pointer to the target value as parameters
	// It returns an error if any
	Deserialize(b []byte, v any) error
	// Name returns the name of the serialization format (e.g. "cbor")
	Name() string
}
