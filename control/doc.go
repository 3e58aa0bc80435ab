// Package control provides the block framing used to stream encoded amounts.
//
// Control blocks use a prefix coding scheme to indicate the type of the
// current byte (which then further indicates how many bytes the block
// contains). Small payloads are packed directly into the control byte so a
// typical amount costs two or three bytes on the wire.
//
// Control Block
//
// This diagram indicates the bits that are fixed (filled in) vs bits that are
// available for encoding data (blanks). Only the first byte is shown.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           |                                              |
//  |---------------|---------------||----------------|----------------------------------------------|
//  | 1 |                           || Data           | 2^7 = 128 values                             |
//  | 0 . 1 |                       || Data Size      | 1 to 64 bytes of data                        |
//  | 0 . 0 . 1 |                   || Data + 1       | 2^(5+8) = 8192 values                        |
//  | 0 . 0 . 0 . 1 |               || Data + 2       | 2^(4+8+8) = 1048576 values                   |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size | 1 to 8 size bytes followed by the data       |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | Null value (for nullable fields)             |
//  |---------------|---------------||----------------|----------------------------------------------|
//
// Sizes are indexed starting at 1. Zero length data cannot be encoded.
//
// Data Size Size blocks have 3 parts:
//
//  1. Number of bytes for the data size
//  2. Number of bytes that contain data (big-endian)
//  3. Data
//
// The encoder always picks the smallest block able to hold the data, so
// decoding and re-encoding a stream reproduces it byte for byte.
package control
