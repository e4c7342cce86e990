package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNewEncryptor(t *testing.T) {
	t.Run("hex key", func(t *testing.T) {
		enc, err := NewEncryptor(testKeyHex, "")
		require.NoError(t, err)
		require.NotNil(t, enc)
	})

	t.Run("passphrase fallback", func(t *testing.T) {
		enc, err := NewEncryptor("", "some-passphrase")
		require.NoError(t, err)
		require.NotNil(t, enc)
	})

	t.Run("invalid hex key", func(t *testing.T) {
		_, err := NewEncryptor("not-hex", "")
		assert.Error(t, err)
	})

	t.Run("short key", func(t *testing.T) {
		_, err := NewEncryptor("abcdef", "")
		assert.Error(t, err)
	})

	t.Run("nothing provided", func(t *testing.T) {
		_, err := NewEncryptor("", "")
		assert.Error(t, err)
	})
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc, err := NewEncryptor(testKeyHex, "")
	require.NoError(t, err)

	for _, plaintext := range []string{"hunter2", "", "päss wörd with spaces", "Tr0ub4dor&3"} {
		ciphertext, err := enc.Encrypt(plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, plaintext, ciphertext)

		decrypted, err := enc.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestEncryptNoncesDiffer(t *testing.T) {
	enc, err := NewEncryptor(testKeyHex, "")
	require.NoError(t, err)

	first, err := enc.Encrypt("same input")
	require.NoError(t, err)
	second, err := enc.Encrypt("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "fresh nonce per encryption")
}

func TestDecryptRejectsTamperedCiphertext(t *testing.T) {
	enc, err := NewEncryptor(testKeyHex, "")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("hunter2")
	require.NoError(t, err)

	raw, err := hex.DecodeString(ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff

	_, err = enc.Decrypt(hex.EncodeToString(raw))
	assert.Error(t, err)
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	enc, err := NewEncryptor(testKeyHex, "")
	require.NoError(t, err)
	other, err := NewEncryptor("", "different-passphrase")
	require.NoError(t, err)

	ciphertext, err := enc.Encrypt("hunter2")
	require.NoError(t, err)

	_, err = other.Decrypt(ciphertext)
	assert.Error(t, err)
}

func TestDecryptRejectsGarbage(t *testing.T) {
	enc, err := NewEncryptor(testKeyHex, "")
	require.NoError(t, err)

	_, err = enc.Decrypt("zz-not-hex")
	assert.Error(t, err)

	_, err = enc.Decrypt("ab")
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}
