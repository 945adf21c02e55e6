package postcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	valid := []string{"SW1A 1AA", "sw1a1aa", "M1 1AE", "B33 8TH", "CR2 6XH", "DN55 1PT", "  EC1A 1BB  ", "W1A0AX"}
	for _, pc := range valid {
		assert.Truef(t, Valid(pc), "expected %q to be valid", pc)
	}

	invalid := []string{"", "SW1A  1AA", "12345", "SW1A 1A", "ABC1 1AA", "SW1A-1AA", "1AA SW1"}
	for _, pc := range invalid {
		assert.Falsef(t, Valid(pc), "expected %q to be invalid", pc)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "SW1A 1AA", Format("sw1a1aa"))
	assert.Equal(t, "M1 1AE", Format(" m1   1ae "))
	assert.Equal(t, "AB", Format("a b"))
	assert.Equal(t, "", Format("   "))
}

func TestOutward(t *testing.T) {
	assert.Equal(t, "SW1A", Outward("sw1a 1aa"))
	assert.Equal(t, "M1", Outward("M11AE"))
	assert.Equal(t, "DN55", Outward("DN55 1PT"))
	assert.Equal(t, "", Outward("nope"))
}
