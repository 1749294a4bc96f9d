package jobdeschandler

import (
	"encoding/json"
	"fmt"
	"strings"
)

const promptPattern = `Generate a detailed job description for a %s with %d years of experience.%s
%s

Return ONLY a single valid JSON object in this exact format (no additional text or explanation):

{
  "description": "Brief job description paragraph (2-3 sentences)",
  "responsibilities": [
    "Responsibility 1",
    "Responsibility 2",
    "Responsibility 3"
  ],
  "requirements": [
    "Requirement 1",
    "Requirement 2",
    "Requirement 3"
  ],
  "skills": %s
}

You may increase the content length if necessary, but ensure it remains concise and relevant to the job role. Do not include any markdown formatting, asterisks, or extra characters in the response. The JSON should be well-structured and easy to parse.`

// BuildPrompt renders the generation instruction for one variation. Pure
// function of its inputs; the same prompt is reused for every variation,
// the model's own sampling provides the variability.
func BuildPrompt(designation string, yoe int, skills []string, extraInfo string) string {
	designation = strings.ToLower(strings.TrimSpace(designation))
	cleaned := cleanSkills(skills)

	extra := ""
	if strings.TrimSpace(extraInfo) != "" {
		extra = fmt.Sprintf(" Use this additional information to provide a more contextual description: %s", strings.TrimSpace(extraInfo))
	}

	var skillsInstruction, skillsEcho string
	if len(cleaned) == 0 {
		skillsInstruction = `The skills list is empty, so infer 4-8 relevant skills typical for this role and experience level, and echo them in the "skills" field.`
		skillsEcho = `["Inferred skill 1", "Inferred skill 2"]`
	} else {
		skillsJSON, _ := json.Marshal(cleaned)
		skillsInstruction = fmt.Sprintf(`Use exactly these skills and echo them in the "skills" field: %s`, string(skillsJSON))
		skillsEcho = string(skillsJSON)
	}

	return fmt.Sprintf(promptPattern, designation, yoe, extra, skillsInstruction, skillsEcho)
}

// cleanSkills trims entries and drops blank ones, preserving order.
func cleanSkills(skills []string) []string {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill != "" {
			cleaned = append(cleaned, skill)
		}
	}
	return cleaned
}
