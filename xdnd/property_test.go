package xdnd

import (
	"reflect"
	"testing"

	"github.com/jezek/xgb/xproto"
)

func TestDecodeAtomArray(t *testing.T) {
	// three little-endian uint32 atoms back to back
	value := []byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0xff, 0x00, 0x00, 0x00,
	}
	got := decodeAtomArray(value)
	want := []xproto.Atom{1, 2, 255}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decodeAtomArray() = %v, want %v", got, want)
	}
}

func TestDecodeAtomArray_Empty(t *testing.T) {
	got := decodeAtomArray(nil)
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestSplitNullSeparated(t *testing.T) {
	value := []byte("copy\x00move\x00link")
	got := splitNullSeparated(value)
	want := []string{"copy", "move", "link"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitNullSeparated() = %v, want %v", got, want)
	}
}

func TestSplitNullSeparated_TrailingNull(t *testing.T) {
	value := []byte("copy\x00")
	got := splitNullSeparated(value)
	want := []string{"copy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitNullSeparated() = %v, want %v", got, want)
	}
}
