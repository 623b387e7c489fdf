package verdict

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/GagliardeStefano/huetest/internal/tes"
)

// Message catalog keys.
const (
	keyVerdictNone         = "verdict.none"
	keyVerdictProbableRG   = "verdict.probable_rg"
	keyVerdictProbableBY   = "verdict.probable_by"
	keyVerdictInconclusive = "verdict.inconclusive"

	keyInterpretClean = "interpretation.clean"
	keyInterpretRG    = "interpretation.rg"
	keyInterpretBY    = "interpretation.by"
	keyInterpretMixed = "interpretation.mixed"
)

// DefaultLanguage is the language of the reference messages.
var DefaultLanguage = language.Italian

var supported = []language.Tag{language.Italian, language.English}

var matcher = language.NewMatcher(supported)

func init() {
	it := language.Italian
	message.SetString(it, keyVerdictNone, "Nessun problema evidente: punteggio troppo basso per segnalare un deficit")
	message.SetString(it, keyVerdictProbableRG, "Indicazione: possibile deficit sull'asse Rosso-Verde (protan/deutan)")
	message.SetString(it, keyVerdictProbableBY, "Indicazione: possibile deficit sull'asse Blu-Giallo (tritan-like)")
	message.SetString(it, keyVerdictInconclusive, "errori presenti ma non è possibile classificare un asse.")
	message.SetString(it, keyInterpretClean, "Tutto bene: non sono stati rilevati errori significativi")
	message.SetString(it, keyInterpretRG, "compromissione dell'asse rosso-verde")
	message.SetString(it, keyInterpretBY, "compromissione dell'asse blu-giallo")
	message.SetString(it, keyInterpretMixed, "Errori misti o inconcludenti")

	en := language.English
	message.SetString(en, keyVerdictNone, "No evident problem: score too low to indicate a deficit")
	message.SetString(en, keyVerdictProbableRG, "Indication: possible deficit on the red-green axis (protan/deutan)")
	message.SetString(en, keyVerdictProbableBY, "Indication: possible deficit on the blue-yellow axis (tritan-like)")
	message.SetString(en, keyVerdictInconclusive, "Errors present, but no axis can be classified.")
	message.SetString(en, keyInterpretClean, "All good: no significant errors detected")
	message.SetString(en, keyInterpretRG, "red-green axis compromised")
	message.SetString(en, keyInterpretBY, "blue-yellow axis compromised")
	message.SetString(en, keyInterpretMixed, "Mixed or inconclusive errors")
}

// Resolve maps a requested language to the closest supported one.
func Resolve(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage
	}
	return supported[idx]
}

// ParseLanguage parses a BCP 47 tag, falling back to DefaultLanguage.
func ParseLanguage(s string) language.Tag {
	if s == "" {
		return DefaultLanguage
	}
	tag, err := language.Parse(s)
	if err != nil {
		return DefaultLanguage
	}
	return Resolve(tag)
}

// Message returns the fixed human-readable text for v in lang.
func Message(v tes.Verdict, lang language.Tag) string {
	p := message.NewPrinter(Resolve(lang))
	switch v {
	case tes.VerdictNone:
		return p.Sprintf(keyVerdictNone)
	case tes.VerdictProbableRG:
		return p.Sprintf(keyVerdictProbableRG)
	case tes.VerdictProbableBY:
		return p.Sprintf(keyVerdictProbableBY)
	default:
		return p.Sprintf(keyVerdictInconclusive)
	}
}

// InterpretationMessage returns the report text for i in lang.
func InterpretationMessage(i tes.Interpretation, lang language.Tag) string {
	p := message.NewPrinter(Resolve(lang))
	switch i {
	case tes.InterpretationClean:
		return p.Sprintf(keyInterpretClean)
	case tes.InterpretationRG:
		return p.Sprintf(keyInterpretRG)
	case tes.InterpretationBY:
		return p.Sprintf(keyInterpretBY)
	default:
		return p.Sprintf(keyInterpretMixed)
	}
}
