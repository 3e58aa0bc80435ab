// Package decimal provides fixed point base 10 numbers for ledger amounts.
//
// The equation for a decimal number is:
//
//	number = magnitude / 10 ^ scale
//
// Where magnitude is an unbounded signed integer and scale is the number of
// implied fractional digits. For example:
//
//	1.23 = 123 / 10^2
//
// # Precision
//
// Parsed values carry at most MaxScale (7) fractional digits, the precision
// of the ledger which stores amounts as signed 64-bit counts of 10^-7.
// Extra digits are truncated, never rounded.
//
// Addition and subtraction align both operands to the larger scale. Alignment
// only multiplies so it never loses digits. Multiplication keeps the full
// product (the scales add up). Division and the fee helpers produce a fixed
// number of fractional digits and truncate toward zero:
//
//	10 / 3              = 3.3333333
//	100 + 1.5% fee      = 101.5
//	fee of 1.5% on 100  = 1.5
//
// # Canonical Form
//
// String never emits trailing fractional zeros or a bare decimal point:
//
//	| magnitude | scale | String      |
//	|-----------|-------|-------------|
//	| 1230      | 3     | 1.23        |
//	| 500       | 2     | 5           |
//	| -1        | 7     | -0.0000001  |
//	| 0         | 4     | 0           |
//	|-----------|-------|-------------|
//
// # Encoding
//
// The binary form is laid out first by the magnitude (with trailing sign bit,
// see package integer), then the scale, and finally the last 2 bits are the
// scale size:
//
//	| 0 | 1 | Available Scale |
//	|-------|-----------------|
//	| 0 . 0 | No Scale        | 1 byte, all zero.
//	| 0 . 1 | 2^6 Scale       | 1 byte, remaining bits are the scale value.
//	| 1 . 0 | 2^14 Scale      | 2 bytes
//	| 1 . 1 | 2^22 Scale      | 3 bytes
//	|-------|-----------------|
//	| 0 | 1 |
//
// Encoder and Decoder frame each value in a control block. A Fixed schema
// drops the scale and writes bare magnitudes at the schema scale, which is how
// ledger unit streams are stored.
//
// # Examples
//
// 1.5 (2 bytes, framed as a Data + 1 control block)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 1 . 1 . 1 . 1 | 0 | Magnitude of +15.
//	|-------------------------------|
//	| 0 . 0 . 0 . 0 . 0 . 1 | 0 . 1 | 2^6 Scale with scale of 1.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// -0.0000001 (2 bytes, framed as a Data + 1 control block)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 0 . 0 . 0 . 1 | 1 | Magnitude of -1.
//	|-------------------------------|
//	| 0 . 0 . 0 . 1 . 1 . 1 | 0 . 1 | 2^6 Scale with scale of 7.
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
package decimal
