package i18n

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "max" or "schemes").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return "値は必須です。"
		case "required_null":
			return "値は必須で、null は使用できません。"
		case "null_not_allowed":
			return "null は使用できません。"
		case "invalid_type":
			return "未対応の型です"
		case "coerce":
			return "未対応の型のため変換できません。"
		case "int_parse":
			return "文字列から整数を解析できません。"
		case "float_parse":
			return "文字列から数値を解析できません。"
		case "not_boolean":
			return "真偽値ではありません。"
		case "datetime_parse":
			return "日時を解析できません。"
		case "invalid_enum":
			return "列挙型として不正な値です。"
		case "pattern":
			return "不正な入力です。"
		case "not_found":
			return "オブジェクトが存在しません。"
		case "parse_error":
			return "入力を解析できません。"
		}
	default: // "en"
		switch code {
		case "required":
			return "Value is required."
		case "required_null":
			return "Value is required, and must not be null."
		case "null_not_allowed":
			return "Value must not be null."
		case "invalid_type":
			return "Unhandled type"
		case "coerce":
			return "Unhandled type, could not coerce."
		case "int_parse":
			return "Unable to parse int from given string."
		case "float_parse":
			return "Unable to parse float from given string."
		case "not_boolean":
			return "Value is not a boolean."
		case "datetime_parse":
			return "Could not parse datetime."
		case "invalid_enum":
			return "Invalid value for enum."
		case "pattern":
			return "Invalid input."
		case "not_found":
			return "Object does not exist."
		case "parse_error":
			return "Could not parse input."
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
