package model

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// Protobuf layout of a .pb artifact:
//
//	message BoundaryModel {
//	  repeated string      abbrev_types  = 1;
//	  repeated Collocation collocations  = 2;
//	  repeated string      sent_starters = 3;
//	  map<string, int32>   ortho_context = 4;
//	}
//	message Collocation {
//	  string first  = 1;
//	  string second = 2;
//	}
//
// Unknown fields are skipped.
const (
	fieldAbbrevTypes  protowire.Number = 1
	fieldCollocations protowire.Number = 2
	fieldSentStarters protowire.Number = 3
	fieldOrthoContext protowire.Number = 4

	fieldFirst  protowire.Number = 1
	fieldSecond protowire.Number = 2
)

var errWireType = errors.New("unexpected wire type")

// DecodeProto parses the protobuf encoding of a boundary model.
func DecodeProto(data []byte) (*Params, error) {
	var (
		abbrevs, starters []string
		collocations      []Collocation
		ortho             = make(map[string]Ortho)
	)

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("parsing tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch num {
		case fieldAbbrevTypes, fieldSentStarters:
			s, n, err := consumeString(typ, data)
			if err != nil {
				return nil, fmt.Errorf("field %d: %w", num, err)
			}
			data = data[n:]
			if num == fieldAbbrevTypes {
				abbrevs = append(abbrevs, s)
			} else {
				starters = append(starters, s)
			}

		case fieldCollocations:
			b, n, err := consumeMessage(typ, data)
			if err != nil {
				return nil, fmt.Errorf("collocation: %w", err)
			}
			data = data[n:]
			c, err := decodeCollocation(b)
			if err != nil {
				return nil, fmt.Errorf("collocation: %w", err)
			}
			collocations = append(collocations, c)

		case fieldOrthoContext:
			b, n, err := consumeMessage(typ, data)
			if err != nil {
				return nil, fmt.Errorf("ortho context: %w", err)
			}
			data = data[n:]
			key, flags, err := decodeOrthoEntry(b)
			if err != nil {
				return nil, fmt.Errorf("ortho context: %w", err)
			}
			ortho[key] |= flags

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("skipping field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}

	return NewParams(abbrevs, starters, collocations, ortho), nil
}

func decodeCollocation(b []byte) (Collocation, error) {
	var c Collocation
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return c, protowire.ParseError(n)
		}
		b = b[n:]
		switch num {
		case fieldFirst, fieldSecond:
			s, n, err := consumeString(typ, b)
			if err != nil {
				return c, err
			}
			b = b[n:]
			if num == fieldFirst {
				c.First = s
			} else {
				c.Second = s
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return c, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	if c.First == "" || c.Second == "" {
		return c, fmt.Errorf("incomplete pair %q,%q", c.First, c.Second)
	}
	return c, nil
}

func decodeOrthoEntry(b []byte) (string, Ortho, error) {
	var (
		key   string
		flags Ortho
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return "", 0, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1:
			s, n, err := consumeString(typ, b)
			if err != nil {
				return "", 0, err
			}
			key = s
			b = b[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return "", 0, protowire.ParseError(n)
			}
			flags = Ortho(int32(v))
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return "", 0, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	if flags < 0 {
		return "", 0, fmt.Errorf("negative flags for %q", key)
	}
	return key, flags, nil
}

func consumeString(typ protowire.Type, b []byte) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	if !utf8.Valid(v) {
		return "", 0, errors.New("invalid UTF-8 in string field")
	}
	return string(v), n, nil
}

func consumeMessage(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// EncodeProto serializes p deterministically: tables are written in sorted
// order.
func EncodeProto(p *Params) []byte {
	var b []byte
	for _, a := range p.Abbreviations() {
		b = protowire.AppendTag(b, fieldAbbrevTypes, protowire.BytesType)
		b = protowire.AppendString(b, a)
	}
	for _, c := range p.Collocations() {
		var m []byte
		m = protowire.AppendTag(m, fieldFirst, protowire.BytesType)
		m = protowire.AppendString(m, c.First)
		m = protowire.AppendTag(m, fieldSecond, protowire.BytesType)
		m = protowire.AppendString(m, c.Second)
		b = protowire.AppendTag(b, fieldCollocations, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	for _, s := range p.SentenceStarters() {
		b = protowire.AppendTag(b, fieldSentStarters, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	ortho := p.OrthoContexts()
	for _, typ := range sortedOrthoKeys(ortho) {
		var m []byte
		m = protowire.AppendTag(m, 1, protowire.BytesType)
		m = protowire.AppendString(m, typ)
		m = protowire.AppendTag(m, 2, protowire.VarintType)
		m = protowire.AppendVarint(m, uint64(ortho[typ]))
		b = protowire.AppendTag(b, fieldOrthoContext, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	return b
}

func sortedOrthoKeys(m map[string]Ortho) []string {
	set := make(map[string]struct{}, len(m))
	for k := range m {
		set[k] = struct{}{}
	}
	return sortedKeys(set)
}
