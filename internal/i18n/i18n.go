// Package i18n provides internationalization support for the state service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale. Keys missing from locale
// fall back to DefaultLocale; unknown keys are returned as is.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language of the Accept-Language
// header, in the order the client listed them. Quality values are ignored.
func GetLocale(c *gin.Context) string {
	translator := GetTranslator()
	for _, part := range strings.Split(c.GetHeader(AcceptLanguageHeader), ",") {
		lang, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang, _, _ = strings.Cut(lang, "-")
		lang = strings.ToLower(lang)
		if translator.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.session_required":        "Sign in to continue",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.conflict":                "A request with this idempotency key is still in progress",
			"error.timeout":                 "The operation did not finish in time",
			"error.ingredient_not_found":    "Ingredient not found in the loaded catalog",
			"error.order_not_found":         "Order not found",
			"error.upstream_failed":         "The burger service could not complete the request",
			"error.validation.category":     "type: must be one of bun, main, sauce",
			"error.validation.direction":    "direction: must be up or down",
			"error.validation.index":        "index: must be a non-negative integer",
			"error.validation.order_number": "number: must be a positive integer",
			"message.reset_email_sent":      "Reset email sent",
			"message.password_reset":        "Password successfully reset",
		},
		"ru": {
			"error.invalid_request":         "Некорректный запрос",
			"error.invalid_request_body":    "Некорректное тело запроса",
			"error.internal_error":          "Произошла непредвиденная ошибка",
			"error.session_required":        "Войдите, чтобы продолжить",
			"error.not_found":               "Не найдено",
			"error.rate_limit_exceeded":     "Слишком много запросов, попробуйте позже",
			"error.conflict":                "Запрос с этим ключом идемпотентности ещё выполняется",
			"error.timeout":                 "Операция не завершилась вовремя",
			"error.ingredient_not_found":    "Ингредиент не найден в загруженном каталоге",
			"error.order_not_found":         "Заказ не найден",
			"error.upstream_failed":         "Сервис бургерной не смог выполнить запрос",
			"error.validation.category":     "type: допустимо bun, main или sauce",
			"error.validation.direction":    "direction: допустимо up или down",
			"error.validation.index":        "index: должен быть неотрицательным целым числом",
			"error.validation.order_number": "number: должен быть положительным целым числом",
			"message.reset_email_sent":      "Письмо для сброса пароля отправлено",
			"message.password_reset":        "Пароль успешно изменён",
		},
	}
}
