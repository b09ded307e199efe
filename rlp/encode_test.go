package rlp

import (
	"bytes"
	"math/big"
	"testing"
)

func TestEncodeEmptyString(t *testing.T) {
	got, err := EncodeToBytes("")
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x80}; !bytes.Equal(got, want) {
		t.Fatalf("empty string: got %x, want %x", got, want)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	got, err := EncodeToBytes([]uint64{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0xc0}; !bytes.Equal(got, want) {
		t.Fatalf("empty list: got %x, want %x", got, want)
	}
}

func TestEncodeDog(t *testing.T) {
	got, err := EncodeToBytes("dog")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x83, 0x64, 0x6f, 0x67}
	if !bytes.Equal(got, want) {
		t.Fatalf("\"dog\": got %x, want %x", got, want)
	}
}

func TestEncodeLongString(t *testing.T) {
	s := "Lorem ipsum dolor sit amet, consectetur adipisicing elit"
	got, err := EncodeToBytes(s)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0xb8 || got[1] != 0x38 {
		t.Fatalf("long string header: got %x %x", got[0], got[1])
	}
	if !bytes.Equal(got[2:], []byte(s)) {
		t.Fatal("long string data mismatch")
	}
}

func TestEncodeUint(t *testing.T) {
	tests := []struct {
		name string
		val  interface{}
		want []byte
	}{
		{"uint(0)", uint64(0), []byte{0x80}},
		{"uint(1)", uint64(1), []byte{0x01}},
		{"uint(15)", uint64(15), []byte{0x0f}},
		{"uint(127)", uint64(127), []byte{0x7f}},
		{"uint(128)", uint64(128), []byte{0x81, 0x80}},
		{"uint(256)", uint64(256), []byte{0x82, 0x01, 0x00}},
		{"uint(1024)", uint64(1024), []byte{0x82, 0x04, 0x00}},
		{"uint32(65536)", uint32(65536), []byte{0x83, 0x01, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeToBytes(tt.val)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("%s: got %x, want %x", tt.name, got, tt.want)
			}
		})
	}
}

func TestEncodeBigInt(t *testing.T) {
	got, err := EncodeToBytes(big.NewInt(0))
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x80}; !bytes.Equal(got, want) {
		t.Fatalf("zero big.Int: got %x, want %x", got, want)
	}
}

func TestEncodeList(t *testing.T) {
	got, err := EncodeToBytes([]string{"cat", "dog"})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestEncodeStruct(t *testing.T) {
	type pair struct {
		A uint64
		B string
	}
	got, err := EncodeToBytes(pair{A: 1, B: "x"})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xc2, 0x01, 'x'}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}
