package model

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func loadFixture(t *testing.T) *Params {
	t.Helper()
	data, err := os.ReadFile("../testdata/latin/latin.json")
	require.NoError(t, err)
	p, err := DecodeJSON(data)
	require.NoError(t, err)
	return p
}

func TestProto_RoundTrip(t *testing.T) {
	want := loadFixture(t)

	got, err := DecodeProto(EncodeProto(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSON_RoundTrip(t *testing.T) {
	want := loadFixture(t)

	data, err := EncodeJSON(want)
	require.NoError(t, err)
	got, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEncodeProto_Deterministic(t *testing.T) {
	p := loadFixture(t)
	assert.Equal(t, EncodeProto(p), EncodeProto(p))
}

func TestDecodeProto_SkipsUnknownFields(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 15, protowire.VarintType)
	b = protowire.AppendVarint(b, 3)
	b = protowire.AppendTag(b, fieldAbbrevTypes, protowire.BytesType)
	b = protowire.AppendString(b, "cn")

	p, err := DecodeProto(b)
	require.NoError(t, err)
	assert.True(t, p.IsAbbreviation("cn"))
}

func TestDecodeProto_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated length", []byte{0x0a, 0x05, 'a'}},
		{"wrong wire type", []byte{0x08, 0x01}},
		{"bad tag", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"invalid utf8", []byte{0x0a, 0x02, 0xff, 0xfe}},
		{"incomplete collocation", func() []byte {
			var m []byte
			m = protowire.AppendTag(m, fieldFirst, protowire.BytesType)
			m = protowire.AppendString(m, "cn")
			b := protowire.AppendTag(nil, fieldCollocations, protowire.BytesType)
			return protowire.AppendBytes(b, m)
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProto(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestDecode_ProtoArtifact(t *testing.T) {
	want := loadFixture(t)
	data, err := Encode("latin.pb", want)
	require.NoError(t, err)

	got, err := Decode("latin.pb", data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
