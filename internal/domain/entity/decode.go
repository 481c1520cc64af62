package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// rawObject es un documento JSON separado por campo. Cada campo se decodifica
// por su cuenta: un campo con forma inesperada queda en su valor cero sin
// invalidar el resto del registro.
type rawObject map[string]json.RawMessage

func parseObject(data []byte) (rawObject, bool) {
	var obj rawObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func (o rawObject) has(key string) bool {
	raw, ok := o[key]
	return ok && !isNull(raw)
}

func (o rawObject) str(key string) string {
	raw, ok := o[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func (o rawObject) strs(key string) []string {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		var s string
		if err := json.Unmarshal(it, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

func (o rawObject) boolean(key string) bool {
	raw, ok := o[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	return false
}

// number acepta un número JSON o una cadena numérica. NaN e infinitos quedan ausentes.
func (o rawObject) number(key string) (float64, bool) {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// maxCount tope de contadores y años; por encima el campo queda ausente.
const maxCount = math.MaxInt32

// count entero no negativo; fracciones o valores fuera de rango quedan ausentes.
func (o rawObject) count(key string) (int, bool) {
	f, ok := o.number(key)
	if !ok || f < 0 || f > maxCount || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func (o rawObject) object(key string) (rawObject, bool) {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return parseObject(raw)
}

func (o rawObject) objects(key string) []rawObject {
	raw, ok := o[key]
	if !ok || isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]rawObject, 0, len(items))
	for _, it := range items {
		if obj, ok := parseObject(it); ok {
			out = append(out, obj)
		}
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
