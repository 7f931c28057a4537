package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/domain"
	"resumelens/internal/prompt"
)

func TestDefaults_ContainPlaceholderExactlyOnce(t *testing.T) {
	defaults := prompt.Defaults()
	assert.Equal(t, 1, strings.Count(defaults.Interviewee, prompt.PlaceholderToken))
	assert.Equal(t, 1, strings.Count(defaults.Interviewer, prompt.PlaceholderToken))
}

func TestRender_SubstitutesResumeText(t *testing.T) {
	text := "Jane Doe, Go developer, 5 years"

	for _, p := range domain.Perspectives {
		rendered := prompt.Render(text, p, "", prompt.Defaults())
		assert.Contains(t, rendered, text)
		assert.NotContains(t, rendered, prompt.PlaceholderToken)
	}
}

func TestRender_OverrideWinsOverStoredTemplate(t *testing.T) {
	override := "Rate this résumé: {{resume}}"
	rendered := prompt.Render("some text", domain.PerspectiveInterviewee, override, prompt.Defaults())
	assert.Equal(t, "Rate this résumé: some text", rendered)
}

func TestRender_EmptyOverrideFallsBackToStoredTemplate(t *testing.T) {
	templates := domain.PromptTemplates{
		Interviewee: "candidate view: {{resume}}",
		Interviewer: "interviewer view: {{resume}}",
	}

	assert.Equal(t, "candidate view: abc",
		prompt.Render("abc", domain.PerspectiveInterviewee, "", templates))
	assert.Equal(t, "interviewer view: abc",
		prompt.Render("abc", domain.PerspectiveInterviewer, "", templates))
}

func TestRender_ReplacesOnlyFirstOccurrence(t *testing.T) {
	override := "a {{resume}} b {{resume}}"
	rendered := prompt.Render("X", domain.PerspectiveInterviewer, override, prompt.Defaults())
	assert.Equal(t, "a X b {{resume}}", rendered)
}

func TestRender_MissingPlaceholderIsPassThrough(t *testing.T) {
	override := "a template without any token"
	rendered := prompt.Render("résumé text", domain.PerspectiveInterviewee, override, prompt.Defaults())
	assert.Equal(t, override, rendered)
	assert.NotContains(t, rendered, "résumé text")
}

func TestRender_Deterministic(t *testing.T) {
	text := "repeatable input"
	first := prompt.Render(text, domain.PerspectiveInterviewer, "", prompt.Defaults())
	for i := 0; i < 3; i++ {
		require.Equal(t, first, prompt.Render(text, domain.PerspectiveInterviewer, "", prompt.Defaults()))
	}
}
