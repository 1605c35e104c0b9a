// Package ss58 encodes and decodes Substrate SS58 account addresses.
//
// An address is base58(prefix || public key || checksum), where the checksum
// is the first two bytes of blake2b-512("SS58PRE" || prefix || public key).
// Network prefixes below 64 take one byte, prefixes up to 16383 take two.
package ss58

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	publicKeyLength = 32
	checksumLength  = 2
	maxPrefix       = 16383
)

var (
	// ErrInvalidPrefix is returned when the network prefix cannot be encoded.
	ErrInvalidPrefix = errors.New("invalid ss58 prefix")

	// ErrInvalidPublicKey is returned when the public key is not 32 bytes long.
	ErrInvalidPublicKey = errors.New("invalid public key length")

	// ErrInvalidAddress is returned when an address cannot be decoded.
	ErrInvalidAddress = errors.New("invalid ss58 address")

	// ErrInvalidChecksum is returned when the address checksum does not match.
	ErrInvalidChecksum = errors.New("invalid ss58 checksum")
)

var checksumPreimage = []byte("SS58PRE")

func encodePrefix(prefix uint16) ([]byte, error) {
	switch {
	case prefix < 64:
		return []byte{byte(prefix)}, nil
	case prefix <= maxPrefix:
		first := byte((prefix&0b0000_0000_1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte((prefix&0b0000_0000_0000_0011)<<6)
		return []byte{first, second}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrefix, prefix)
	}
}

func checksum(data []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(checksumPreimage)
	h.Write(data)
	return h.Sum(nil)[:checksumLength]
}

// Encode returns the SS58 address of a 32-byte public key on the network
// identified by prefix.
func Encode(publicKey []byte, prefix uint16) (string, error) {
	if len(publicKey) != publicKeyLength {
		return "", fmt.Errorf("%w: %d", ErrInvalidPublicKey, len(publicKey))
	}

	data, err := encodePrefix(prefix)
	if err != nil {
		return "", err
	}

	data = append(data, publicKey...)
	data = append(data, checksum(data)...)

	return base58.Encode(data), nil
}

// Decode parses an SS58 address and returns its public key and network prefix.
func Decode(address string) ([]byte, uint16, error) {
	data, err := base58.Decode(address)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if len(data) == 0 {
		return nil, 0, ErrInvalidAddress
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case data[0] < 64:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128 && len(data) > 1:
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0b0011_1111
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return nil, 0, ErrInvalidAddress
	}

	if len(data) != prefixLen+publicKeyLength+checksumLength {
		return nil, 0, ErrInvalidAddress
	}

	body := data[:prefixLen+publicKeyLength]
	sum := checksum(body)
	if sum[0] != data[len(data)-2] || sum[1] != data[len(data)-1] {
		return nil, 0, ErrInvalidChecksum
	}

	return body[prefixLen:], prefix, nil
}

// Condense shortens an address for display, keeping the first and last six
// characters.
func Condense(address string) string {
	if len(address) <= 15 {
		return address
	}
	return address[:6] + "..." + address[len(address)-6:]
}
