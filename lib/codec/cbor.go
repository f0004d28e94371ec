// Copyright 2026 The Secretdev Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// The one encoder and decoder configuration the control protocol
// uses. Encoding is Core Deterministic (RFC 8949 §4.2): sorted map
// keys, shortest-form integers, no indefinite lengths, so the same
// value always serializes to the same bytes. Decoding forces untyped
// maps to map[string]any; the protocol has no non-string keys, and
// handlers decoding into any would otherwise get the CBOR default of
// map[interface{}]interface{}.
var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: building CBOR encode mode: " + err.Error())
	}
	return mode
}

func mustDecMode() cbor.DecMode {
	mode, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: building CBOR decode mode: " + err.Error())
	}
	return mode
}

// Marshal encodes v with the protocol's deterministic configuration.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Aliases so the rest of the tree imports only lib/codec, never the
// CBOR library directly.
type (
	// Encoder streams CBOR values to a writer.
	Encoder = cbor.Encoder
	// Decoder streams CBOR values from a reader.
	Decoder = cbor.Decoder
	// RawMessage holds an encoded CBOR value for deferred decoding.
	RawMessage = cbor.RawMessage
)

// NewEncoder returns an Encoder writing to w with the deterministic
// configuration.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}
