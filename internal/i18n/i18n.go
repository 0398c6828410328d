// Package i18n formats the player-facing messages of both puzzles.
//
// Message keys are the English texts; translations are registered in the
// golang.org/x/text default catalog at init. English is the fallback for any
// unsupported language.
package i18n

import (
	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/physics"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	KeyTitle          = "Statics simulator"
	KeyLevel1         = "Level 1: Inclined plane"
	KeyLevel2         = "Level 2: Seesaw"
	KeyMass1          = "Mass 1 (kg)"
	KeyMass2          = "Mass 2 (kg)"
	KeyFriction       = "Friction coef."
	KeyWeightP1       = "P1 weight (kg)"
	KeyDistP1         = "P1 distance (cm)"
	KeyDistP2         = "P2 distance (cm)"
	KeyWeightP2       = "Weight P2 (kg)"
	KeyAttemptsLeft   = "Attempts left: %d"
	KeyInclineWin     = "EQUILIBRIUM! YOU WIN."
	KeyInclineRetry   = "Not balanced. Attempts left: %d"
	KeyInclineLost    = "Game over. You failed."
	KeyInclineSettled = "Already balanced. Reset to play again."
	KeySeesawPrompt   = "Enter the weight of P2 to balance."
	KeySeesawWin      = "EQUILIBRIUM REACHED! YOU WIN."
	KeySeesawMismatch = "UNBALANCED: enter another weight."
	KeyWon            = "won"
)

var spanish = map[string]string{
	KeyTitle:                   "Simulador de Estática",
	KeyLevel1:                  "NIVEL 1: Plano Inclinado",
	KeyLevel2:                  "NIVEL 2: Sube y Baja",
	KeyMass1:                   "Masa 1 (kg)",
	KeyMass2:                   "Masa 2 (kg)",
	KeyFriction:                "Coef. de friccion",
	KeyWeightP1:                "Peso P1 (kg)",
	KeyDistP1:                  "Distancia P1 (cm)",
	KeyDistP2:                  "Distancia P2 (cm)",
	KeyWeightP2:                "Peso P2 (kg)",
	KeyAttemptsLeft:            "Intentos restantes: %d",
	KeyInclineWin:              "EQUILIBRIO! GANASTE.",
	KeyInclineRetry:            "No equilibrado. Intentos: %d",
	KeyInclineLost:             "Juego terminado. Fallaste.",
	KeyInclineSettled:          "Ya esta en equilibrio. Reinicia para jugar de nuevo.",
	KeySeesawPrompt:            "Ingresa el peso de P2 para equilibrar.",
	KeySeesawWin:               "¡EQUILIBRIO LOGRADO! GANASTE.",
	KeySeesawMismatch:          "DESEQUILIBRIO: Ingresa otro peso.",
	KeyWon:                     "ganado",
	physics.MsgInvalidMasses:   "Introduce masas validas (>0)",
	physics.MsgInvalidFriction: "Introduce un coeficiente de friccion valido (>=0)",
	physics.MsgInvalidWeight:   "¡Ingresa un peso valido para P2!",
}

var supported = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supported)

func init() {
	for key, text := range spanish {
		if err := message.SetString(language.Spanish, key, text); err != nil {
			panic(err)
		}
	}
}

// Translator renders messages in one language.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New picks the closest supported language for a BCP 47 tag such as "es"
// or "es-MX". Anything unrecognised falls back to English.
func New(lang string) *Translator {
	_, idx, conf := matcher.Match(language.Make(lang))
	tag := supported[0]
	if conf != language.No {
		tag = supported[idx]
	}
	return &Translator{tag: tag, p: message.NewPrinter(tag)}
}

// Language is the base language in use, "en" or "es".
func (t *Translator) Language() string {
	base, _ := t.tag.Base()
	return base.String()
}

// Text translates a fixed label.
func (t *Translator) Text(key string) string {
	return t.p.Sprintf(message.Key(key, key))
}

// Attempts formats the remaining-attempts banner shown after a reset.
func (t *Translator) Attempts(n int) string {
	return t.p.Sprintf(message.Key(KeyAttemptsLeft, KeyAttemptsLeft), n)
}

// Incline describes a ramp evaluation.
func (t *Translator) Incline(res physics.InclineResult) string {
	switch res.Kind {
	case equilibrium.InvalidInput:
		return t.Text(res.Reason)
	case equilibrium.Success:
		return t.Text(KeyInclineWin)
	case equilibrium.RetryAvailable:
		return t.p.Sprintf(message.Key(KeyInclineRetry, KeyInclineRetry), res.AttemptsRemaining)
	case equilibrium.GameOver:
		return t.Text(KeyInclineLost)
	case equilibrium.Settled:
		return t.Text(KeyInclineSettled)
	}
	return ""
}

// Seesaw describes a seesaw evaluation.
func (t *Translator) Seesaw(res physics.SeesawResult) string {
	switch res.Kind {
	case equilibrium.InvalidInput:
		return t.Text(res.Reason)
	case equilibrium.Success:
		return t.Text(KeySeesawWin)
	case equilibrium.Mismatch:
		return t.Text(KeySeesawMismatch)
	}
	return ""
}
