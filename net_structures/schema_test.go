package net_structures_test

import (
	"testing"

	ns "github.com/go-mclib/picocraft/net_structures"
)

type compoundTestStruct struct {
	ID     ns.VarInt
	Name   ns.BoundedString
	Flag   ns.Boolean
	Hidden ns.VarInt `mc:"-"`
	Score  ns.Int32
}

func TestCompoundRoundTrip(t *testing.T) {
	in := compoundTestStruct{
		ID:     7,
		Name:   ns.BoundedString{Value: "steve", MaxChars: 32},
		Flag:   true,
		Hidden: 999,
		Score:  -42,
	}

	buf := ns.NewWriter()
	if err := ns.EncodeCompound(buf, &in); err != nil {
		t.Fatalf("EncodeCompound() error = %v", err)
	}

	var out compoundTestStruct
	out.Name.MaxChars = 32
	if err := ns.DecodeCompound(ns.NewReader(buf.Bytes()), &out); err != nil {
		t.Fatalf("DecodeCompound() error = %v", err)
	}

	if out.ID != in.ID {
		t.Errorf("ID = %v, want %v", out.ID, in.ID)
	}
	if out.Name.Value != in.Name.Value {
		t.Errorf("Name.Value = %v, want %v", out.Name.Value, in.Name.Value)
	}
	if out.Flag != in.Flag {
		t.Errorf("Flag = %v, want %v", out.Flag, in.Flag)
	}
	if out.Score != in.Score {
		t.Errorf("Score = %v, want %v", out.Score, in.Score)
	}
	if out.Hidden != 0 {
		t.Errorf("Hidden = %v, want 0 (mc:\"-\" field should be skipped)", out.Hidden)
	}
}

func TestEncodeCompoundRejectsNonStruct(t *testing.T) {
	buf := ns.NewWriter()
	if err := ns.EncodeCompound(buf, 5); err == nil {
		t.Error("EncodeCompound() should reject a non-struct value")
	}
}

func TestDecodeCompoundRejectsNilPointer(t *testing.T) {
	var p *compoundTestStruct
	if err := ns.DecodeCompound(ns.NewReader(nil), p); err == nil {
		t.Error("DecodeCompound() should reject a nil pointer")
	}
}

func TestDecodeCompoundRejectsNonPointer(t *testing.T) {
	var v compoundTestStruct
	if err := ns.DecodeCompound(ns.NewReader(nil), v); err == nil {
		t.Error("DecodeCompound() should reject a non-pointer value")
	}
}
