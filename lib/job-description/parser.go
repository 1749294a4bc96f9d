package jobdeschandler

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	jobdescapimodels "jd-generator-backend/models/api/jobdesc"
)

// modelAnswer is the loose shape the model is asked to return.
type modelAnswer struct {
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
}

// ParseModelResponse turns a raw model answer into a complete
// DescriptionRecord. Total function: when the answer contains no usable JSON
// the record degrades to deterministic placeholders derived from the
// designation instead of failing. Designation and experience always come from
// the caller, never from the model, so all variations stay consistent.
func ParseModelResponse(response, designation string, yoe int, fallbackSkills []string) jobdescapimodels.DescriptionRecord {
	designation = strings.ToLower(strings.TrimSpace(designation))
	fallbackSkills = cleanSkills(fallbackSkills)

	answer := modelAnswer{}
	raw := replaceAnswerFormatTag(extractAnswer(response))
	if object, ok := extractJSONObject(raw); ok {
		if err := json.Unmarshal([]byte(object), &answer); err != nil {
			answer = modelAnswer{}
		}
	}

	record := jobdescapimodels.DescriptionRecord{
		Designation:      designation,
		Experience:       yoe,
		Description:      strings.TrimSpace(answer.Description),
		Responsibilities: cleanSkills(answer.Responsibilities),
		Requirements:     cleanSkills(answer.Requirements),
	}
	if record.Description == "" {
		record.Description = fmt.Sprintf("We are seeking a skilled %s to join our team.", designation)
	}
	if len(record.Responsibilities) == 0 {
		record.Responsibilities = []string{"Responsibilities to be determined based on role specifics."}
	}
	if len(record.Requirements) == 0 {
		record.Requirements = []string{"Requirements to be determined based on role specifics."}
	}

	modelSkills := cleanSkills(answer.Skills)
	switch {
	case len(fallbackSkills) > 0:
		// caller-provided skills win over whatever the model echoed
		record.Skills = fallbackSkills
	case len(modelSkills) > 0:
		record.Skills = modelSkills
	default:
		record.Skills = designationKeywords(designation)
	}
	return record
}

// extractAnswer drops everything up to a closing reasoning tag when the model
// emits one (deepseek-style "<think>...</think>" preambles).
func extractAnswer(response string) string {
	responseSlice := strings.Split(response, "</think>")
	if len(responseSlice) == 1 {
		return response
	}
	return responseSlice[1]
}

func replaceAnswerFormatTag(answer string) string {
	answer = strings.Replace(answer, "```json", "", 1)
	return strings.Replace(answer, "```", "", 1)
}

// extractJSONObject returns the first balanced JSON object in s. The scan
// tracks nesting depth and quoted-string state so braces inside string values
// or surrounding prose do not break the match.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// designationKeywords derives a deterministic generic skill set from the
// designation, used when neither the caller nor the model supplied skills.
func designationKeywords(designation string) []string {
	words := strings.FieldsFunc(designation, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	skills := make([]string, 0, len(words))
	for _, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		skills = append(skills, string(runes))
	}
	if len(skills) == 0 {
		skills = []string{"Communication"}
	}
	return skills
}
