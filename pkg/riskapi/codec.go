package riskapi

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Named wire formats.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Media types spoken by the RiskAPI server.
const (
	MediaTypeJSON    = "application/json"
	MediaTypeMsgpack = "application/x-msgpack"
)

// Codec serializes and deserializes one wire format.
type Codec interface {
	MediaType() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type jsonCodec struct{}

func (jsonCodec) MediaType() string { return MediaTypeJSON }

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling json: %w", err)
	}

	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

type msgpackCodec struct{}

func (msgpackCodec) MediaType() string { return MediaTypeMsgpack }

func (msgpackCodec) Marshal(v interface{}) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling msgpack: %w", err)
	}

	return data, nil
}

func (msgpackCodec) Unmarshal(data []byte, v interface{}) error {
	err := msgpack.Unmarshal(data, v)
	if err != nil {
		return fmt.Errorf("unmarshaling msgpack: %w", err)
	}

	return nil
}

// JSONCodec returns the codec for the json format.
func JSONCodec() Codec { return jsonCodec{} }

// MsgpackCodec returns the codec for the msgpack binary-map format.
func MsgpackCodec() Codec { return msgpackCodec{} }

// LookupFormat resolves a format name to its codec.
func LookupFormat(name string) (Codec, error) {
	switch name {
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatMsgpack:
		return msgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected %s or %s)",
			ErrUnknownFormat, name, FormatJSON, FormatMsgpack)
	}
}

// FormatNames lists the supported format names.
func FormatNames() []string {
	return []string{FormatJSON, FormatMsgpack}
}

// DecoderRegistry is an ordered dispatch table from response media types to
// codecs. The transport consults it to self-detect how to deserialize a
// response body; a content type matching no entry degrades to raw bytes.
type DecoderRegistry struct {
	codecs []Codec
}

// NewDecoderRegistry builds a registry dispatching to the given codecs in
// order.
func NewDecoderRegistry(codecs ...Codec) *DecoderRegistry {
	return &DecoderRegistry{codecs: codecs}
}

// DefaultDecoders returns the registry with every codec this build carries:
// JSON and msgpack.
func DefaultDecoders() *DecoderRegistry {
	return NewDecoderRegistry(jsonCodec{}, msgpackCodec{})
}

// Match returns the first codec whose media type appears in contentType.
func (r *DecoderRegistry) Match(contentType string) (Codec, bool) {
	if r == nil || contentType == "" {
		return nil, false
	}

	for _, codec := range r.codecs {
		if strings.Contains(contentType, codec.MediaType()) {
			return codec, true
		}
	}

	return nil, false
}

// EncodeBody serializes v with the given codec and optionally gzip-compresses
// the result. Request-side encoding is the caller's job: the transport only
// ever sees opaque bytes on the way in.
func EncodeBody(codec Codec, v interface{}, compress bool) ([]byte, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return nil, err
	}

	if !compress {
		return data, nil
	}

	var buf bytes.Buffer

	writer := gzip.NewWriter(&buf)

	_, err = writer.Write(data)
	if err != nil {
		return nil, fmt.Errorf("compressing request body: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("compressing request body: %w", err)
	}

	return buf.Bytes(), nil
}
