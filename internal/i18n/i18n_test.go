//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	ErrKeyInvalidRequest,
	ErrKeyInvalidRequestBody,
	ErrKeyInternalError,
	ErrKeySessionRequired,
	ErrKeyNotFound,
	ErrKeyRateLimitExceeded,
	ErrKeyConflict,
	ErrKeyTimeout,
	ErrKeyIngredientNotFound,
	ErrKeyOrderNotFound,
	ErrKeyUpstreamFailed,
	ErrKeyValidationCategory,
	ErrKeyValidationDirection,
	ErrKeyValidationIndex,
	ErrKeyValidationOrderNumber,
	MsgKeyResetEmailSent,
	MsgKeyPasswordReset,
}

func TestEveryKeyIsTranslated(t *testing.T) {
	messages := getDefaultMessages()

	for _, locale := range []string{"en", "ru"} {
		require.Contains(t, messages, locale)
		for _, key := range allKeys {
			assert.NotEmpty(t, messages[locale][key], "%s missing in %s", key, locale)
		}
	}
	assert.Len(t, messages["ru"], len(messages["en"]), "locales drifted apart")
}

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Supports(t *testing.T) {
	translator := NewTranslator()
	assert.True(t, translator.Supports("en"))
	assert.True(t, translator.Supports("ru"))
	assert.False(t, translator.Supports("fr"))
	assert.False(t, translator.Supports(""))
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name   string
		key    string
		locale string
		want   string
	}{
		{name: "english", key: ErrKeyOrderNotFound, locale: "en", want: "Order not found"},
		{name: "russian", key: ErrKeyOrderNotFound, locale: "ru", want: "Заказ не найден"},
		{name: "russian confirmation", key: MsgKeyPasswordReset, locale: "ru", want: "Пароль успешно изменён"},
		{name: "empty locale is english", key: MsgKeyResetEmailSent, want: "Reset email sent"},
		{name: "unsupported locale is english", key: ErrKeyInvalidRequest, locale: "fr", want: "Invalid request"},
		{name: "unknown key echoes the key", key: "error.unknown", locale: "ru", want: "error.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: DefaultLocale},
		{header: "ru", want: "ru"},
		{header: "ru-RU,ru;q=0.9,en;q=0.8", want: "ru"},
		{header: "en-GB", want: "en"},
		{header: "RU", want: "ru"},
		{header: "de-DE,ru;q=0.5", want: "ru"},
		{header: "de-DE,fr", want: DefaultLocale},
		{header: " , ;q=0.1", want: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run("header="+tt.header, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/feed", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}

			assert.Equal(t, tt.want, GetLocale(c))
		})
	}
}
