package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// HexBytes is a byte slice that travels through JSON as a "0x"-prefixed
// hexadecimal string (e.g., "0xdeadbeef"). It is used for opaque chain values
// such as session keys, where equality is decided on the decoded bytes rather
// than on the textual representation.
type HexBytes []byte

// HexBytesFromString decodes a "0x"-prefixed hexadecimal string.
func HexBytesFromString(s string) (HexBytes, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("hex string must start with 0x")
	}

	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return nil, fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return HexBytes(b), nil
}

// String returns the lowercase "0x"-prefixed representation.
func (h HexBytes) String() string {
	return "0x" + hex.EncodeToString(h)
}

// Equal reports whether both values hold the same bytes.
func (h HexBytes) Equal(other HexBytes) bool {
	return bytes.Equal(h, other)
}

// MarshalJSON encodes the bytes as a "0x"-prefixed JSON string.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON parses a "0x"-prefixed JSON string into bytes. A JSON null
// leaves the value untouched.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	b, err := HexBytesFromString(s)
	if err != nil {
		return err
	}

	*h = b
	return nil
}
