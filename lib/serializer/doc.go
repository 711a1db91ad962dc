// Package serializer provides value serialization for the redis-backed
// collection library. It defines a common interface and multiple
// implementations for converting typed Go values to and from the opaque
// byte strings stored in redis.
//
// The package focuses on:
//   - Providing a consistent interface for different serialization formats
//   - Guaranteeing round-trip fidelity: Deserialize(Serialize(v)) == v
//   - Offering multiple implementations with different trade-offs
//
// Key Components:
//
//   - ISerializer: Core interface that all serializer implementations must
//     satisfy.
//
//   - cborSerializerImpl: CBOR (RFC 8949) implementation and the default.
//     Produces a compact, self-describing binary encoding that is
//     interoperable with CBOR clients in other languages, so data written
//     by an existing deployment can be read back without migration.
//
//   - jsonSerializerImpl: Implementation using JSON encoding, useful for
//     debugging or interoperability with other systems, but with larger
//     payloads.
//
//   - gobSerializerImpl: Implementation using Go's built-in gob encoding,
//     offering good compatibility with Go's type system but readable only
//     by Go clients.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
//
// Usage:
//
//	Serializers are typically created once and reused throughout the
//	application:
//
//	  s := serializer.NewCBORSerializer()
//	  data, err := s.Serialize(person)
//	  // ... store data ...
//	  var decoded Person
//	  err = s.Deserialize(data, &decoded)
package serializer
