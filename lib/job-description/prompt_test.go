package jobdeschandler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	t.Run(`contains normalized designation and experience`, func(t *testing.T) {
		prompt := BuildPrompt("  Software Engineer ", 5, []string{"Go"}, "")
		require.Contains(t, prompt, "for a software engineer with 5 years of experience")
	})

	t.Run(`provided skills are passed through verbatim`, func(t *testing.T) {
		prompt := BuildPrompt("backend developer", 3, []string{"Go", "Kubernetes"}, "")
		require.Contains(t, prompt, `Use exactly these skills and echo them in the "skills" field: ["Go","Kubernetes"]`)
		require.NotContains(t, prompt, "infer 4-8 relevant skills")
	})

	t.Run(`empty skills ask the model to infer`, func(t *testing.T) {
		prompt := BuildPrompt("data scientist", 2, nil, "")
		require.Contains(t, prompt, "infer 4-8 relevant skills typical for this role and experience level")
	})

	t.Run(`blank skills are treated as empty`, func(t *testing.T) {
		prompt := BuildPrompt("data scientist", 2, []string{" ", ""}, "")
		require.Contains(t, prompt, "infer 4-8 relevant skills")
	})

	t.Run(`extra info is included when present`, func(t *testing.T) {
		withExtra := BuildPrompt("qa engineer", 1, nil, "remote-first team")
		require.Contains(t, withExtra, "remote-first team")

		withoutExtra := BuildPrompt("qa engineer", 1, nil, "  ")
		require.NotContains(t, withoutExtra, "additional information")
	})

	t.Run(`requests a single JSON object with the fixed keys`, func(t *testing.T) {
		prompt := BuildPrompt("engineer", 1, nil, "")
		require.Contains(t, prompt, "Return ONLY a single valid JSON object")
		for _, key := range []string{`"description"`, `"responsibilities"`, `"requirements"`, `"skills"`} {
			require.True(t, strings.Contains(prompt, key), "prompt should mention %s", key)
		}
	})

	t.Run(`pure function of its inputs`, func(t *testing.T) {
		first := BuildPrompt("engineer", 4, []string{"Go"}, "ctx")
		second := BuildPrompt("engineer", 4, []string{"Go"}, "ctx")
		require.Equal(t, first, second)
	})
}
