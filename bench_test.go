package hap

import "testing"

// benchFrameSize is the DXT5 payload of a 1920x1080 frame.
var benchFrameSize = TextureFormatRGBADXT5.ExpectedLength(1920, 1080)

func BenchmarkEncode(b *testing.B) {
	src := blockPattern(benchFrameSize, 3)
	dst := make([]byte, MaxEncodedLength(len(src)))

	for _, compressor := range []Compressor{CompressorNone, CompressorSnappy} {
		b.Run(compressor.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(src)))
			b.ResetTimer()

			for b.Loop() {
				if _, err := Encode(dst, src, TextureFormatRGBADXT5, compressor); err != nil {
					b.Fatalf("encode: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecodeSnappy(b *testing.B) {
	src := blockPattern(benchFrameSize, 3)
	frame := encodeFrame(b, src, TextureFormatRGBADXT5, CompressorSnappy)
	dst := make([]byte, len(src))

	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()

	for b.Loop() {
		if _, _, err := Decode(dst, frame, Sequential); err != nil {
			b.Fatalf("decode: %v", err)
		}
	}
}

// benchComplexFrame splits the payload into 16 snappy chunks.
func benchComplexFrame() ([]byte, int) {
	const count = 16
	per := benchFrameSize / count
	chunks := make([]testChunk, count)
	for i := range chunks {
		chunks[i] = testChunk{code: codeCompressorSnappy, raw: blockPattern(per, byte(i))}
	}
	return buildComplex(codeFormatRGBADXT5, chunks, true, false), per * count
}

func BenchmarkDecodeComplex(b *testing.B) {
	frame, size := benchComplexFrame()
	dst := make([]byte, size)

	dispatchers := map[string]Dispatcher{
		"sequential": Sequential,
		"parallel":   Parallel(0),
	}
	for name, d := range dispatchers {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				if _, _, err := Decode(dst, frame, d); err != nil {
					b.Fatalf("decode: %v", err)
				}
			}
		})
	}
}
