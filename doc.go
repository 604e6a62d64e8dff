/*
Package hap implements the Hap texture frame container: encoding and decoding
of DXT1/DXT5 payloads with optional snappy second-stage compression.

A frame is one section: a 4- or 8-byte header (length + type byte) followed
by the payload. The type byte packs the compressor in the high nibble and the
texture format in the low nibble. Frames stored with the complex compressor
carry a Decode Instructions Container followed by independently compressed
chunks, which Decode hands to a caller-supplied Dispatcher so they can be
decompressed in parallel.

The package never inspects the BCn payload itself; it only frames it.
*/
package hap
