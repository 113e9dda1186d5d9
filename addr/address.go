package addr

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/goccy/go-json"
)

// Address is a 20-byte EVM account identifier.
// It is stored as raw bytes and rendered as an EIP-55 checksummed hex string.
type Address [20]byte

var (
	_ json.Marshaler   = (*Address)(nil)
	_ json.Unmarshaler = (*Address)(nil)

	_ sql.Scanner   = (*Address)(nil)
	_ driver.Valuer = (*Address)(nil)

	_ fmt.Stringer = (*Address)(nil)
)

func (x *Address) ToCommon() common.Address {
	return common.BytesToAddress(x[:])
}

func (x *Address) FromCommon(a common.Address) *Address {
	copy(x[:], a.Bytes())
	return x
}

func FromCommon(a common.Address) *Address {
	return new(Address).FromCommon(a)
}

func (x *Address) String() string {
	return x.ToCommon().Hex()
}

func (x *Address) FromString(str string) (*Address, error) {
	if !common.IsHexAddress(str) {
		return nil, errors.Wrapf(ErrInvalidAddress, "%s", str)
	}
	return x.FromCommon(common.HexToAddress(str)), nil
}

var ErrInvalidAddress = errors.New("invalid address")

func MustFromString(str string) *Address {
	a, err := new(Address).FromString(str)
	if err != nil {
		panic(errors.Wrapf(err, "%s", str))
	}
	return a
}

func (x *Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

func (x *Address) UnmarshalJSON(raw []byte) error {
	s := strings.Replace(string(raw), "\"", "", 2)
	if _, err := x.FromString(s); err != nil {
		return fmt.Errorf("cannot unmarshal %s to address", s)
	}
	return nil
}

func (x *Address) UnmarshalText(data []byte) error {
	_, err := x.FromString(string(data))
	return err
}

func (x *Address) Value() (driver.Value, error) {
	if x == nil {
		return nil, nil
	}
	none := true
	for _, i := range x {
		if i != 0 {
			none = false
			break
		}
	}
	if none {
		return nil, nil
	}
	return x[:], nil
}

func (x *Address) Scan(value interface{}) error {
	var i sql.NullString

	if value == nil {
		return nil
	}

	if err := i.Scan(value); err != nil {
		return err
	}
	if !i.Valid {
		return fmt.Errorf("error converting type %T into address", value)
	}
	if l := len(i.String); l != 20 {
		return fmt.Errorf("wrong address length %d", l)
	}

	copy(x[0:20], i.String)
	return nil
}

func Equal(x, y *Address) bool {
	if x != nil && y != nil && bytes.Equal(x[:], y[:]) {
		return true
	}
	return false
}

// HexBytes renders 32-byte hashes and other fixed blobs as 0x-prefixed hex,
// matching how addresses are rendered on the wire.
func HexBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
