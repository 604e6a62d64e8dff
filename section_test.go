package hap

import (
	"errors"
	"testing"
)

func TestReadSectionHeaderTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		buf        []byte
		wantHeader int
		wantLength uint32
		wantType   byte
		wantErr    error
	}{
		{name: "short-header", buf: []byte{2, 0, 0, 0xAB, 1, 2}, wantHeader: 4, wantLength: 2, wantType: 0xAB},
		{name: "short-header-trailing", buf: []byte{1, 0, 0, 0xBE, 1, 2, 3}, wantHeader: 4, wantLength: 1, wantType: 0xBE},
		{name: "long-header", buf: []byte{0, 0, 0, 0xCF, 3, 0, 0, 0, 1, 2, 3}, wantHeader: 8, wantLength: 3, wantType: 0xCF},
		{name: "long-header-empty", buf: []byte{0, 0, 0, 0x02, 0, 0, 0, 0}, wantHeader: 8, wantLength: 0, wantType: 0x02},
		{name: "too-short", buf: []byte{1, 0, 0}, wantErr: ErrBadFrame},
		{name: "empty", buf: nil, wantErr: ErrBadFrame},
		{name: "zero-length-without-long-header", buf: []byte{0, 0, 0, 0xAB, 1, 2, 3}, wantErr: ErrBadFrame},
		{name: "short-overrun", buf: []byte{5, 0, 0, 0xAB, 1, 2, 3, 4}, wantErr: ErrBadFrame},
		{name: "long-overrun", buf: []byte{0, 0, 0, 0xAB, 0xFF, 0xFF, 0xFF, 0xFF, 1}, wantErr: ErrBadFrame},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, err := readSectionHeader(tc.buf)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("readSectionHeader: %v", err)
			}
			if h.headerLen != tc.wantHeader || h.length != tc.wantLength || h.typ != tc.wantType {
				t.Fatalf("got header=%d length=%d type=0x%02X, want header=%d length=%d type=0x%02X",
					h.headerLen, h.length, h.typ, tc.wantHeader, tc.wantLength, tc.wantType)
			}
		})
	}
}

func TestWriteSectionHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int
		want   int
	}{
		{name: "one", length: 1, want: 4},
		{name: "max-short", length: maxUint24, want: 4},
		{name: "min-long", length: maxUint24 + 1, want: 8},
		{name: "empty", length: 0, want: 8},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hl := headerLenFor(tc.length)
			if hl != tc.want {
				t.Fatalf("headerLenFor(%d) = %d, want %d", tc.length, hl, tc.want)
			}

			buf := make([]byte, hl+tc.length)
			writeSectionHeader(buf, hl, uint32(tc.length), 0xBB)
			if hl == longHeaderLen && (buf[0] != 0 || buf[1] != 0 || buf[2] != 0) {
				t.Fatalf("long header short length = % X, want zero", buf[:3])
			}

			h, err := readSectionHeader(buf)
			if err != nil {
				t.Fatalf("readSectionHeader: %v", err)
			}
			if h.headerLen != hl || int(h.length) != tc.length || h.typ != 0xBB {
				t.Fatalf("round-trip mismatch: %+v", h)
			}
			if len(h.payload(buf)) != tc.length {
				t.Fatalf("payload length = %d, want %d", len(h.payload(buf)), tc.length)
			}
		})
	}
}

func TestParseInstructionsErrors(t *testing.T) {
	t.Parallel()

	sizes2 := make([]byte, 8)
	sizes3 := make([]byte, 12)

	tests := []struct {
		name  string
		instr []byte
	}{
		{
			name: "count-mismatch",
			instr: appendSection(
				appendSection(nil, sectionCompressorTable, []byte{codeCompressorNone, codeCompressorNone}),
				sectionChunkSizeTable, sizes3),
		},
		{
			name:  "missing-size-table",
			instr: appendSection(nil, sectionCompressorTable, []byte{codeCompressorNone}),
		},
		{
			name:  "missing-compressor-table",
			instr: appendSection(nil, sectionChunkSizeTable, sizes2),
		},
		{
			name: "offset-count-mismatch",
			instr: appendSection(appendSection(
				appendSection(nil, sectionCompressorTable, []byte{codeCompressorNone, codeCompressorNone}),
				sectionChunkSizeTable, sizes2),
				sectionChunkOffsetTable, sizes3),
		},
		{
			name: "empty-offsets-with-chunks",
			instr: appendSection(appendSection(
				appendSection(nil, sectionCompressorTable, []byte{codeCompressorNone, codeCompressorNone}),
				sectionChunkSizeTable, sizes2),
				sectionChunkOffsetTable, nil),
		},
		{
			name:  "truncated-child",
			instr: append(appendSection(nil, sectionCompressorTable, []byte{codeCompressorNone}), 1, 0),
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseInstructions(tc.instr)
			if !errors.Is(err, ErrBadFrame) {
				t.Fatalf("expected ErrBadFrame, got %v", err)
			}
		})
	}
}

func TestParseInstructionsIgnoresUnknownSections(t *testing.T) {
	t.Parallel()

	instr := appendSection(nil, 0x0A, []byte{1, 2, 3})
	instr = appendSection(instr, sectionCompressorTable, []byte{codeCompressorNone, codeCompressorSnappy})
	instr = appendSection(instr, sectionChunkSizeTable, []byte{1, 0, 0, 0, 2, 0, 0, 0})

	got, err := parseInstructions(instr)
	if err != nil {
		t.Fatalf("parseInstructions: %v", err)
	}
	if got.count != 2 {
		t.Fatalf("count = %d, want 2", got.count)
	}
	if got.size(1) != 2 || got.compressor(1) != codeCompressorSnappy {
		t.Fatalf("unexpected chunk 1: size %d compressor 0x%X", got.size(1), got.compressor(1))
	}
	if _, ok := got.offset(0); ok {
		t.Fatalf("offset table reported without one")
	}
}
