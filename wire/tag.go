package wire

import "github.com/vmihailenco/msgpack/v5/msgpcode"

// Tag classifies the shape a value takes in the MessagePack encoding,
// independent of its Go type. Handlers declare the tag they expect;
// the variant resolver classifies peeked values against those
// declarations.
type Tag uint8

const (
	TagInvalid Tag = iota
	TagNil
	TagBool
	TagInt
	TagUint
	TagFloat32
	TagFloat64
	TagString
	TagBinary
	TagExtension
	TagArray
	TagMap
	TagCustomObject
)

var tagNames = [...]string{
	TagInvalid:      "invalid",
	TagNil:          "nil",
	TagBool:         "bool",
	TagInt:          "int",
	TagUint:         "uint",
	TagFloat32:      "float32",
	TagFloat64:      "float64",
	TagString:       "string",
	TagBinary:       "binary",
	TagExtension:    "extension",
	TagArray:        "array",
	TagMap:          "map",
	TagCustomObject: "object",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// IsNumeric reports whether the tag is one of the integer or float shapes.
func (t Tag) IsNumeric() bool {
	return t >= TagInt && t <= TagFloat64
}

// IsComposite reports whether the tag opens a nested structure.
func (t Tag) IsComposite() bool {
	return t == TagArray || t == TagMap
}

// Matches reports whether a value peeked off the wire can decode into
// a handler declaring t as its expected shape. Tags match exactly,
// with one exception: composite handlers declare TagCustomObject but
// appear as maps on the wire. TagInvalid matches nothing.
func (t Tag) Matches(peeked Tag) bool {
	if t == TagCustomObject {
		return peeked == TagMap
	}
	if t == TagInvalid {
		return false
	}
	return t == peeked
}

// Classify maps a MessagePack format code to its Tag. Non-negative
// integers travel in the uint family (positive fixint or uint codes),
// so values written through the signed writer still classify as
// TagUint unless they are negative.
func Classify(code byte) Tag {
	switch {
	case code <= msgpcode.PosFixedNumHigh:
		return TagUint
	case code >= msgpcode.NegFixedNumLow:
		return TagInt
	case msgpcode.IsFixedMap(code):
		return TagMap
	case msgpcode.IsFixedArray(code):
		return TagArray
	case msgpcode.IsString(code):
		return TagString
	case msgpcode.IsBin(code):
		return TagBinary
	case msgpcode.IsExt(code):
		return TagExtension
	}

	switch code {
	case msgpcode.Nil:
		return TagNil
	case msgpcode.False, msgpcode.True:
		return TagBool
	case msgpcode.Float:
		return TagFloat32
	case msgpcode.Double:
		return TagFloat64
	case msgpcode.Uint8, msgpcode.Uint16, msgpcode.Uint32, msgpcode.Uint64:
		return TagUint
	case msgpcode.Int8, msgpcode.Int16, msgpcode.Int32, msgpcode.Int64:
		return TagInt
	case msgpcode.Array16, msgpcode.Array32:
		return TagArray
	case msgpcode.Map16, msgpcode.Map32:
		return TagMap
	}

	return TagInvalid
}
