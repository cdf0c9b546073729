package payment

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// Params holds the request parameters of one operation, keyed by wire field name.
type Params map[Field]string

// Set stores v formatted the way the gateway expects and returns p for chaining.
func (p Params) Set(f Field, v any) Params {
	switch val := v.(type) {
	case string:
		p[f] = val
	case int:
		p[f] = strconv.Itoa(val)
	case int64:
		p[f] = strconv.FormatInt(val, 10)
	case uint:
		p[f] = strconv.FormatUint(uint64(val), 10)
	case bool:
		if val {
			p[f] = "1"
		} else {
			p[f] = "0"
		}
	case fmt.Stringer:
		p[f] = val.String()
	default:
		p[f] = fmt.Sprint(val)
	}
	return p
}

// Has reports whether f is present with a non-empty value.
func (p Params) Has(f Field) bool {
	return p[f] != ""
}

// Missing returns the fields of required that are absent or empty, in order.
func (p Params) Missing(required []Field) []Field {
	var missing []Field
	for _, f := range required {
		if !p.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func (p Params) clone() Params {
	out := make(Params, len(p)+4)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ParseField resolves a wire field name or a snake_case alias (order_id,
// client_field_1, ...) for the given family.
func ParseField(family Family, name string) (Field, bool) {
	aliases := shopAliases
	if family == FamilyRemittance {
		aliases = remittanceAliases
	}
	if f, ok := aliases[strings.ToLower(name)]; ok {
		return f, true
	}
	for _, f := range aliases {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// ParseParams converts "key=value" pairs into Params. Unknown keys are kept
// verbatim so newer gateway fields can still be sent.
func ParseParams(family Family, pairs []string) (Params, error) {
	p := make(Params, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", pair)
		}
		f, known := ParseField(family, key)
		if !known {
			f = Field(key)
		}
		p[f] = value
	}
	return p, nil
}

var sjisEncoder = encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder())

// encodeForm builds the form body. Non-ASCII values are converted to Shift_JIS.
func encodeForm(p Params) (string, error) {
	form := make(url.Values, len(p))
	for k, v := range p {
		if !isASCII(v) {
			converted, err := sjisEncoder.String(v)
			if err != nil {
				return "", fmt.Errorf("encode %s as Shift_JIS: %w", k, err)
			}
			v = converted
		}
		form.Set(string(k), v)
	}
	return form.Encode(), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
