package serializer

import (
	"github.com/fxamacker/cbor/v2"
)

// NewCBORSerializer creates a new serializer using the CBOR binary format.
// This is the default serializer: it produces a compact, self-describing
// encoding and is wire-compatible with values stored by other CBOR clients.
func NewCBORSerializer() ISerializer {
	return &cborSerializerImpl{}
}

// cborSerializerImpl implements the ISerializer interface using CBOR encoding
type cborSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (c cborSerializerImpl) Serialize(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

func (c cborSerializerImpl) Deserialize(b []byte, v any) error {
	return cbor.Unmarshal(b, v)
}

func (c cborSerializerImpl) Name() string {
	return "cbor"
}
