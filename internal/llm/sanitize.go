package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var reCode = regexp.MustCompile(`^[A-Z0-9]{4,20}$`)

// SanitizeItems normalizes a raw extraction document so that near-miss output
// can still validate: codes are uppercased/trimmed, blank optional fields are
// dropped, and items whose code is unsalvageable are removed. We only touch
// item-level fields; the classification verdict is never altered.
// Returns the cleaned JSON plus the indices of dropped items.
func SanitizeItems(doc []byte) ([]byte, []int, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	rawItems, ok := m["items"].([]any)
	if !ok {
		b, err := json.Marshal(m)
		return b, nil, err
	}

	var dropped []int
	kept := make([]any, 0, len(rawItems))
	for i, ri := range rawItems {
		item, ok := ri.(map[string]any)
		if !ok {
			dropped = append(dropped, i)
			continue
		}

		code, _ := item["code"].(string)
		code = strings.ToUpper(strings.TrimSpace(code))
		if !reCode.MatchString(code) {
			dropped = append(dropped, i)
			continue
		}
		item["code"] = code

		for _, k := range []string{"subject", "description", "grade_level", "thematic_unit"} {
			switch v := item[k].(type) {
			case nil:
				delete(item, k)
			case string:
				s := strings.TrimSpace(v)
				if s == "" || strings.EqualFold(s, "null") {
					delete(item, k)
				} else {
					item[k] = s
				}
			default:
				delete(item, k)
			}
		}
		kept = append(kept, item)
	}
	m["items"] = kept

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
