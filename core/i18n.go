package core

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/nl"
	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"
)

type Locale string

const (
	LocaleFR Locale = "fr"
	LocaleNL Locale = "nl"
	LocaleEN Locale = "en"
)

// Locales lists the supported locales in selector order.
var Locales = []Locale{LocaleFR, LocaleNL, LocaleEN}

// ParseLocale returns the supported Locale matching `s`, or `fallback`.
func ParseLocale(s string, fallback Locale) Locale {
	s = CleanString(s, true /* lower */)
	for _, l := range Locales {
		if string(l) == s {
			return l
		}
	}
	return fallback
}

// NewUniversalTranslator builds the fr/nl/en translators (fr is the fallback) and loads the portal messages in each.
func NewUniversalTranslator() (*ut.UniversalTranslator, error) {
	_fr := fr.New()
	uni := ut.New(_fr, _fr, nl.New(), en.New())

	for _, l := range Locales {
		trans, found := uni.GetTranslator(string(l))
		if !found {
			return nil, errors.Errorf("translator %q not found", l)
		}
		for key, texts := range messages {
			text, ok := texts[l]
			if !ok {
				text = texts[LocaleFR]
			}
			if err := trans.Add(key, text, false); err != nil {
				return nil, errors.Wrapf(err, "adding %q message %q", l, key)
			}
		}
	}
	if err := uni.VerifyTranslations(); err != nil {
		return nil, errors.Wrap(err, "verifying translations")
	}
	return uni, nil
}

// Translate returns the message for `key`, or `key` itself when the translator does not know it.
func Translate(trans ut.Translator, key string, params ...string) string {
	if trans == nil {
		return key
	}
	s, err := trans.T(key, params...)
	if err != nil || s == "" {
		return key
	}
	return s
}
