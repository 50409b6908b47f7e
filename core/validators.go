package core

import (
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
	nl_translations "github.com/go-playground/validator/v10/translations/nl"
	"github.com/pkg/errors"
)

var (
	// custom validation tags & texts
	notBlankTag  = "notblank"
	requiredTag  = "required"
	notBlankText = map[Locale]string{
		LocaleFR: "ce champ ne peut pas être vide",
		LocaleNL: "dit veld mag niet leeg zijn",
		LocaleEN: "this field cannot be blank",
	}
	requiredText = map[Locale]string{
		LocaleFR: "ce champ est obligatoire",
		LocaleNL: "dit veld is verplicht",
		LocaleEN: "this field is required",
	}

	defaultTranslations = map[Locale]func(*validator.Validate, ut.Translator) error{
		LocaleFR: fr_translations.RegisterDefaultTranslations,
		LocaleNL: nl_translations.RegisterDefaultTranslations,
		LocaleEN: en_translations.RegisterDefaultTranslations,
	}
)

// InitValidators instantiates the validator for use with every supported locale.
func InitValidators(validate *validator.Validate, uni *ut.UniversalTranslator) error {
	// Use form (then JSON) tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// register custom validators
	if err := validate.RegisterValidation(notBlankTag, notBlankValidation); err != nil {
		return errors.Wrap(err, "registering notblank validation")
	}

	for _, l := range Locales {
		trans, found := uni.GetTranslator(string(l))
		if !found {
			return errors.Errorf("translator %q not found", l)
		}
		if err := defaultTranslations[l](validate, trans); err != nil {
			return errors.Wrapf(err, "registering %q default translations", l)
		}
		RegisterCustomTranslation(validate, trans, notBlankTag, notBlankText[l])
		RegisterCustomTranslation(validate, trans, requiredTag, requiredText[l], true)
	}
	return nil
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// TranslateValidation converts validator errors into a *ValidationError with messages in the translator's locale.
// Any other error is returned unchanged.
func TranslateValidation(err error, trans ut.Translator) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(trans)})
	}
	return NewValidationError(err, flds...)
}

// Custom Global Validators

// notBlankValidation rejects strings made only of whitespace.
func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}
