package wire

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code byte
		want Tag
	}{
		{"positive fixint", 0x00, TagUint},
		{"positive fixint high", 0x7f, TagUint},
		{"negative fixint", 0xe0, TagInt},
		{"negative fixint high", 0xff, TagInt},
		{"nil", msgpcode.Nil, TagNil},
		{"false", msgpcode.False, TagBool},
		{"true", msgpcode.True, TagBool},
		{"float", msgpcode.Float, TagFloat32},
		{"double", msgpcode.Double, TagFloat64},
		{"uint8", msgpcode.Uint8, TagUint},
		{"uint64", msgpcode.Uint64, TagUint},
		{"int8", msgpcode.Int8, TagInt},
		{"int64", msgpcode.Int64, TagInt},
		{"fixstr", 0xa3, TagString},
		{"str8", msgpcode.Str8, TagString},
		{"bin8", msgpcode.Bin8, TagBinary},
		{"ext8", msgpcode.Ext8, TagExtension},
		{"fixext1", msgpcode.FixExt1, TagExtension},
		{"fixarray", 0x93, TagArray},
		{"array16", msgpcode.Array16, TagArray},
		{"fixmap", 0x82, TagMap},
		{"map32", msgpcode.Map32, TagMap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.code); got != tt.want {
				t.Errorf("Classify(0x%02x) = %s, want %s", tt.code, got, tt.want)
			}
		})
	}
}

func TestTagMatches(t *testing.T) {
	tests := []struct {
		name     string
		expected Tag
		peeked   Tag
		want     bool
	}{
		{"bool matches bool", TagBool, TagBool, true},
		{"bool rejects float", TagBool, TagFloat64, false},
		{"float32 rejects float64", TagFloat32, TagFloat64, false},
		{"float64 rejects float32", TagFloat64, TagFloat32, false},
		{"int rejects uint", TagInt, TagUint, false},
		{"uint rejects int", TagUint, TagInt, false},
		{"string matches string", TagString, TagString, true},
		{"object matches map", TagCustomObject, TagMap, true},
		{"object rejects array", TagCustomObject, TagArray, false},
		{"map matches map", TagMap, TagMap, true},
		{"invalid matches nothing", TagInvalid, TagInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expected.Matches(tt.peeked); got != tt.want {
				t.Errorf("%s.Matches(%s) = %v, want %v", tt.expected, tt.peeked, got, tt.want)
			}
		})
	}
}

func TestTagString(t *testing.T) {
	if got := TagFloat64.String(); got != "float64" {
		t.Errorf("TagFloat64.String() = %q, want %q", got, "float64")
	}
	if got := Tag(200).String(); got != "unknown" {
		t.Errorf("Tag(200).String() = %q, want %q", got, "unknown")
	}
}

func TestTagPredicates(t *testing.T) {
	if !TagInt.IsNumeric() || !TagFloat64.IsNumeric() {
		t.Error("int and float64 should be numeric")
	}
	if TagString.IsNumeric() {
		t.Error("string should not be numeric")
	}
	if !TagArray.IsComposite() || !TagMap.IsComposite() {
		t.Error("array and map should be composite")
	}
	if TagExtension.IsComposite() {
		t.Error("extension should not be composite")
	}
}
