// file: internals/features/users/auth/helper/password_helper_test.go
package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	require.NotEqual(t, "rahasia123", hash)

	require.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	require.Error(t, CheckPasswordHash(hash, "salah123"))

	// dua hash untuk password sama tetap beda (salt acak)
	hash2, err := HashPassword("rahasia123")
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}

func TestValidateRegisterInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateRegisterInput("budi", "budi@pabrikku.id", "rahasia123", "kucing"))
	})

	t.Run("field wajib kosong", func(t *testing.T) {
		require.Error(t, ValidateRegisterInput("", "budi@pabrikku.id", "rahasia123", "kucing"))
		require.Error(t, ValidateRegisterInput("budi", "", "rahasia123", "kucing"))
		require.Error(t, ValidateRegisterInput("budi", "budi@pabrikku.id", "", "kucing"))
		require.Error(t, ValidateRegisterInput("budi", "budi@pabrikku.id", "rahasia123", "  "))
	})

	t.Run("email tidak valid", func(t *testing.T) {
		require.Error(t, ValidateRegisterInput("budi", "bukan-email", "rahasia123", "kucing"))
		require.Error(t, ValidateRegisterInput("budi", "budi@tanpa-tld", "rahasia123", "kucing"))
	})

	t.Run("password lemah", func(t *testing.T) {
		require.Error(t, ValidateRegisterInput("budi", "budi@pabrikku.id", "pendek1", "kucing"))   // < 8
		require.Error(t, ValidateRegisterInput("budi", "budi@pabrikku.id", "hurufsemua", "kucing")) // tanpa angka
		require.Error(t, ValidateRegisterInput("budi", "budi@pabrikku.id", "12345678", "kucing"))   // tanpa huruf
	})
}

func TestValidateLoginInput(t *testing.T) {
	require.NoError(t, ValidateLoginInput("budi", "apapun"))
	require.Error(t, ValidateLoginInput("  ", "apapun"))
	require.Error(t, ValidateLoginInput("budi", ""))
}

func TestValidateResetPassword(t *testing.T) {
	require.NoError(t, ValidateResetPassword("budi@pabrikku.id", "barubanget1"))
	require.Error(t, ValidateResetPassword("bukan-email", "barubanget1"))
	require.Error(t, ValidateResetPassword("budi@pabrikku.id", "lemah"))
}
