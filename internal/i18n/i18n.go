// Package i18n holds the user-facing notices. English strings are the catalog keys,
// translations are registered with x/text for the supported locales.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	NewPhoneNotice   = "Enter a new SOS phone number"
	EmptyPhone       = "The phone number cannot be empty"
	InvalidPhone     = "The phone number is not valid"
	StorageFailure   = "Could not save the phone number, try again"
	TargetOutOfRange = "Enter a value between %d and %d"
	RollInProgress   = "The dice are already rolling"
	DiceWon          = "Congratulations! You guessed %d"
	DiceLost         = "You missed. The sum was %d, you expected %d. Try again."
	PermissionNeeded = "You need to enable the permissions"
	OpeningURL       = "Opening URL"
	SurpriseTeaser   = "Will YouTube open or will a sound play?"
	PlayingSound     = "Playing alert sound"
	OpeningMedia     = "Opening multimedia content"
	SettingAlarm     = "Setting alarm for %d:%d"
	AlarmLabel       = "Auto-generated alarm"
	AlarmCreated     = "Alarm created"
	FormValid        = "Form correct: all fields are valid."
	FormInvalid      = "Form incorrect: check the required fields."
	NameRequired     = "The name cannot be empty"
	TextRequired     = "The text cannot be empty"
	OptionRequired   = "You must select an option."
	WrongScreen      = "That action is not available on this screen"
)

var spanish = map[string]string{
	NewPhoneNotice:   "Introduce un nuevo teléfono SOS",
	EmptyPhone:       "El teléfono no puede estar vacío",
	InvalidPhone:     "El número de teléfono no es válido",
	StorageFailure:   "No se pudo guardar el teléfono, inténtalo de nuevo",
	TargetOutOfRange: "Introduce un valor entre %d y %d",
	RollInProgress:   "Los dados ya están rodando",
	DiceWon:          "¡Felicidades! Acertaste el %d",
	DiceLost:         "Fallaste. La suma era %d, esperabas %d. Inténtalo de nuevo.",
	PermissionNeeded: "Necesitas habilitar los permisos",
	OpeningURL:       "Abriendo URL",
	SurpriseTeaser:   "¿Se abrirá YouTube o se reproducirá un sonido?",
	PlayingSound:     "Reproduciendo sonido de alerta",
	OpeningMedia:     "Abriendo contenido multimedia",
	SettingAlarm:     "Configurando alarma para %d:%d",
	AlarmLabel:       "Alarma Autogenerada",
	AlarmCreated:     "Alarma creada",
	FormValid:        "Formulario Correcto: Todos los campos válidos.",
	FormInvalid:      "Formulario Incorrecto: Revisa los campos obligatorios.",
	NameRequired:     "El nombre no puede estar vacío",
	TextRequired:     "El texto no puede estar vacío",
	OptionRequired:   "Debe seleccionar una opción de RadioButton.",
	WrongScreen:      "Esa acción no está disponible en esta pantalla",
}

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

func init() {
	for key, msg := range spanish {
		if err := message.SetString(language.Spanish, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
	}
}

// Printer returns a printer for the closest supported locale, English if nothing matches.
func Printer(locale string) *message.Printer {
	return message.NewPrinter(Match(locale))
}

func Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}
