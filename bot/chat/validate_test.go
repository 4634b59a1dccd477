package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidName(t *testing.T) {
	require.False(t, IsValidName(""))
	require.False(t, IsValidName("A"))
	require.True(t, IsValidName("Al"))
	require.True(t, IsValidName("Alice Johnson"))

	// Characters, not bytes
	require.False(t, IsValidName("李"))
	require.True(t, IsValidName("李四"))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"al@x.com", "first.last@sub.domain.io", "a+b@c.de"}
	for _, e := range valid {
		require.True(t, IsValidEmail(e), e)
	}

	invalid := []string{"", "nope", "a@b", "a b@c.com", "a@b c.com", "@x.com", "a@.com "}
	for _, e := range invalid {
		require.False(t, IsValidEmail(e), e)
	}
}

func TestIsValidPhone(t *testing.T) {
	require.True(t, IsValidPhone("5551234"))
	require.True(t, IsValidPhone("555-123-4567"))
	require.True(t, IsValidPhone("+1 (224) 844-5596"))
	require.False(t, IsValidPhone("12"))
	require.False(t, IsValidPhone("call me"))
	require.False(t, IsValidPhone("123-456"))
}

func TestPhoneDigits(t *testing.T) {
	require.Equal(t, "12248445596", PhoneDigits("+1 (224) 844-5596"))
	require.Equal(t, "", PhoneDigits("abc"))
}

func TestIsValidPurpose(t *testing.T) {
	require.False(t, IsValidPurpose("app"))
	require.False(t, IsValidPurpose("сайт")) // 4 characters, 8 bytes
	require.True(t, IsValidPurpose("новый сайт"))
	require.True(t, IsValidPurpose("I need a custom ERP system."))
}
