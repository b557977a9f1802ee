package auditoria_log

import (
	"encoding/json"
	"fmt"
	"strings"
)

const redacted = "***"

// campos que nunca vão para o log
var sensitiveKeys = map[string]bool{
	"password":      true,
	"password_hash": true,
	"senha":         true,
	"token":         true,
	"otp":           true,
}

// SerializeData converte o payload para JSON mascarando campos sensíveis.
// Se não for serializável, usa a representação do fmt.
func SerializeData(data interface{}) string {
	if data == nil {
		return ""
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%+v", data)
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return string(raw)
	}

	masked, err := json.Marshal(redact(generic))
	if err != nil {
		return string(raw)
	}
	return string(masked)
}

func redact(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if sensitiveKeys[strings.ToLower(k)] {
				val[k] = redacted
				continue
			}
			val[k] = redact(inner)
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = redact(inner)
		}
		return val
	default:
		return v
	}
}
