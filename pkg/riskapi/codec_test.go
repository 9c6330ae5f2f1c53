package riskapi_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/statpro-io/riskapi-client/pkg/riskapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFormat(t *testing.T) {
	t.Parallel()
	t.Run("resolves json", func(t *testing.T) {
		t.Parallel()

		codec, err := riskapi.LookupFormat(riskapi.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, riskapi.MediaTypeJSON, codec.MediaType())
	})

	t.Run("resolves msgpack", func(t *testing.T) {
		t.Parallel()

		codec, err := riskapi.LookupFormat(riskapi.FormatMsgpack)
		require.NoError(t, err)
		assert.Equal(t, riskapi.MediaTypeMsgpack, codec.MediaType())
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()

		codec, err := riskapi.LookupFormat("xml")
		require.ErrorIs(t, err, riskapi.ErrUnknownFormat)
		assert.Contains(t, err.Error(), "xml")
		assert.Nil(t, codec)
	})
}

func TestDecoderRegistry_Match(t *testing.T) {
	t.Parallel()
	t.Run("matches media type inside parameters", func(t *testing.T) {
		t.Parallel()

		registry := riskapi.DefaultDecoders()

		codec, ok := registry.Match("application/json; charset=utf-8")
		require.True(t, ok)
		assert.Equal(t, riskapi.MediaTypeJSON, codec.MediaType())

		codec, ok = registry.Match("application/x-msgpack")
		require.True(t, ok)
		assert.Equal(t, riskapi.MediaTypeMsgpack, codec.MediaType())
	})

	t.Run("misses unknown media types", func(t *testing.T) {
		t.Parallel()

		_, ok := riskapi.DefaultDecoders().Match("text/html")
		assert.False(t, ok)
	})

	t.Run("partial registry misses absent codecs", func(t *testing.T) {
		t.Parallel()

		registry := riskapi.NewDecoderRegistry(riskapi.JSONCodec())

		_, ok := registry.Match("application/x-msgpack")
		assert.False(t, ok)
	})

	t.Run("empty content type never matches", func(t *testing.T) {
		t.Parallel()

		_, ok := riskapi.DefaultDecoders().Match("")
		assert.False(t, ok)
	})
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	value := map[string]interface{}{"status": "ok", "count": int8(3)}

	for _, name := range riskapi.FormatNames() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			codec, err := riskapi.LookupFormat(name)
			require.NoError(t, err)

			data, err := codec.Marshal(value)
			require.NoError(t, err)

			var decoded map[string]interface{}

			require.NoError(t, codec.Unmarshal(data, &decoded))
			assert.Equal(t, "ok", decoded["status"])
			assert.EqualValues(t, 3, decoded["count"])
		})
	}
}

func TestEncodeBody(t *testing.T) {
	t.Parallel()
	t.Run("plain encoding passes codec output through", func(t *testing.T) {
		t.Parallel()

		data, err := riskapi.EncodeBody(riskapi.JSONCodec(), map[string]string{"a": "b"}, false)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"b"}`, string(data))
	})

	t.Run("compressed encoding inflates back to codec output", func(t *testing.T) {
		t.Parallel()

		data, err := riskapi.EncodeBody(riskapi.JSONCodec(), map[string]string{"a": "b"}, true)
		require.NoError(t, err)

		reader, err := gzip.NewReader(bytes.NewReader(data))
		require.NoError(t, err)

		inflated, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"b"}`, string(inflated))
	})
}
