// Package scale implements SCALE (Simple Concatenated Aggregate
// Little-Endian), a non-self-describing binary codec: encoders and decoders
// must agree on the type schema out-of-band, and the wire format carries no
// type tags, headers, or version bytes.
//
// The package is organized around a handful of small capability interfaces
// (Encodable, Decodable, Skippable, FixedSizer, MaxEncodedLener) plus
// generic helpers (Encode, Decode, DecodeAll, DecodeWithDepthLimit,
// EncodeAppend, CompactAsUint64) rather than one large codec object, so
// that a type opts into exactly the behaviors it supports.
package scale
