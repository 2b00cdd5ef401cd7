package i18n

import "golang.org/x/text/language"

// Locales the API can answer in. English is the fallback.
var supported = []language.Tag{
	language.English,
	language.French,
}

var locales = []string{"en", "fr"}

var matcher = language.NewMatcher(supported)

// Negotiate picks the best supported locale for an Accept-Language header.
// Unparseable or empty headers fall back to English.
func Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return locales[0]
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return locales[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return locales[idx]
}

var messages = map[string]map[string]string{
	"en": {
		"not_found":           "not found",
		"invalid_credentials": "invalid email or password",
		"email_taken":         "this email is already registered",
		"brand_name_taken":    "a brand with this name already exists",
		"unauthenticated":     "authentication required",
		"forbidden":           "you are not allowed to do that",
		"invalid_request":     "invalid request",
		"server_error":        "something went wrong, please try again",
	},
	"fr": {
		"not_found":           "introuvable",
		"invalid_credentials": "email ou mot de passe invalide",
		"email_taken":         "cet email est déjà enregistré",
		"brand_name_taken":    "une marque porte déjà ce nom",
		"unauthenticated":     "authentification requise",
		"forbidden":           "vous n'êtes pas autorisé à faire cela",
		"invalid_request":     "requête invalide",
		"server_error":        "une erreur est survenue, veuillez réessayer",
	},
}

// T resolves a message key for a locale, falling back to English.
func T(locale, key string) string {
	if catalog, ok := messages[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := messages["en"][key]; ok {
		return msg
	}
	return key
}
