package i18n

// Translator retrieves localized message fragments for error codes.
// data provides optional metadata to embed in the message (unused by the
// built-in dictionary, which returns fixed fragments the error types
// interpolate themselves).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_field":
			return "必須フィールドがありません"
		case "not_a_map":
			return "マップではありません"
		case "nested_failure":
			return "要素の解析に失敗しました"
		case "predicate_failure":
			return "条件を満たしていません"
		case "alternatives":
			return "一致する候補がありません"
		case "custom":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "missing_field":
			return "missing field"
		case "not_a_map":
			return "not a map"
		case "nested_failure":
			return "failed to decode element"
		case "predicate_failure":
			return "predicate rejected input"
		case "alternatives":
			return "no alternative matched"
		case "custom":
			return "parse failed"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
