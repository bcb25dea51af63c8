// Package tlv implements BER-TLV decoding of PIV card data objects.
//
// The decoder follows ISO/IEC 7816-4 BER-TLV with definite lengths of at most 3 subsequent octets.
// Decoded nodes reference the input buffer; the caller must not modify it while the nodes are in use.
package tlv
