package addr

import (
	"database/sql/driver"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_TypeKind(t *testing.T) {
	a, err := new(Address).FromString("0x9c2e93815b23ab13f98bf42d92b38299571bf049")
	assert.Nil(t, err)

	v := reflect.ValueOf(a)
	vt := v.Type()

	assert.Equal(t, reflect.Pointer, vt.Kind())
	assert.Equal(t, reflect.Array, vt.Elem().Kind())
	assert.Equal(t, reflect.Uint8, vt.Elem().Elem().Kind())
	assert.True(t, vt.Implements(reflect.TypeOf((*driver.Valuer)(nil)).Elem()))

	r, err := v.Interface().(driver.Valuer).Value()
	assert.Nil(t, err)

	rb, ok := r.([]byte)
	assert.True(t, ok)
	assert.Len(t, rb, 20)
}

func TestAddress_FromString(t *testing.T) {
	var testCases = []string{
		"0x9c2e93815b23ab13f98bf42d92b38299571bf049",
		"0x0E41DC1DC3C9067ED24248580E12B3359818D83D",
	}

	for _, raw := range testCases {
		a, err := new(Address).FromString(raw)
		assert.Nil(t, err)

		// rendering is EIP-55 checksummed, compare case-insensitively
		assert.Equal(t, strings.ToLower(raw), strings.ToLower(a.String()))

		got, err := new(Address).FromString(a.String())
		assert.Nil(t, err)
		assert.True(t, Equal(a, got))
	}
}

func TestAddress_FromString_Invalid(t *testing.T) {
	for _, raw := range []string{"", "0x", "0x123", "not-an-address", "0xzzze93815b23ab13f98bf42d92b38299571bf049"} {
		_, err := new(Address).FromString(raw)
		assert.NotNil(t, err)
	}
}

func TestAddress_JSON(t *testing.T) {
	a := MustFromString("0x9c2e93815b23ab13f98bf42d92b38299571bf049")

	raw, err := a.MarshalJSON()
	assert.Nil(t, err)

	var b Address
	err = b.UnmarshalJSON(raw)
	assert.Nil(t, err)
	assert.True(t, Equal(a, &b))
}
