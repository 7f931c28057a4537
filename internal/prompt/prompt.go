package prompt

import (
	"log"
	"strings"

	"resumelens/internal/domain"
)

// PlaceholderToken marks where the extracted résumé text is inserted into a
// template. Each template is expected to contain it exactly once.
const PlaceholderToken = "{{resume}}"

// DefaultIntervieweeTemplate critiques the résumé from the candidate's side.
const DefaultIntervieweeTemplate = `You are a senior career advisor and résumé expert. Carefully review the résumé below from the candidate's point of view and identify its weaknesses.

## Résumé:
{{resume}}

## What to analyze:
Evaluate the résumé along these dimensions and give concrete improvement advice:
1. Completeness: is any key information missing (contact details, work history, education)?
2. Skills: is the tech stack described clearly, are outcomes quantified?
3. Projects: are there specific project descriptions, results, and contributions?
4. Wording: is the language professional, are there typos or grammar issues?
5. Targeting: has the résumé been tailored to the intended role?

## Output format:
List 3-5 weaknesses. For each one include:
- **Problem**: a short description of the issue
- **Impact**: how it could hurt the candidate in an interview
- **Suggestion**: a concrete way to fix it

Keep the tone professional but friendly.`

// DefaultInterviewerTemplate generates interview questions from the résumé.
const DefaultInterviewerTemplate = `You are an experienced technical interviewer. Based on the résumé below, design a set of interview questions that thoroughly assess the candidate's abilities and potential.

## Résumé:
{{resume}}

## Question design requirements:
1. Design technical depth questions around the candidate's stack
2. Design behavioral questions about their project experience (STAR method)
3. Assess learning ability and growth potential
4. Probe teamwork and communication skills
5. Explore career plans and motivation

## Output format:
Produce 5-10 interview questions. For each one include:
- **Question**: the interview question itself
- **Assesses**: the ability or quality the question targets
- **Reference answer**: a high-quality example answer grounded in the résumé, so the candidate can practice
- **Scoring notes**: what a strong answer should contain

## Suggested question mix:
- Technical: 2-3
- Project experience: 2-3
- Soft skills: 1-2
- Career development: 1-2

Questions should be open-ended and have depth; avoid yes/no questions. Reference answers should draw on the actual experience in the résumé.`

// Defaults returns the shipped template pair.
func Defaults() domain.PromptTemplates {
	return domain.PromptTemplates{
		Interviewee: DefaultIntervieweeTemplate,
		Interviewer: DefaultInterviewerTemplate,
	}
}

// Render produces the final prompt for the given perspective. A non-empty
// override wins over the stored template. Exactly the first occurrence of the
// placeholder token is replaced with text; a template without the token is
// returned verbatim (the résumé text is never inserted), which is documented
// pass-through behavior rather than an error.
func Render(text string, perspective domain.Perspective, override string, templates domain.PromptTemplates) string {
	template := override
	if template == "" {
		template = templates.ForPerspective(perspective)
	}
	if !strings.Contains(template, PlaceholderToken) {
		log.Printf("prompt.Render: template for %q has no %s placeholder, résumé text not inserted", perspective, PlaceholderToken)
		return template
	}
	return strings.Replace(template, PlaceholderToken, text, 1)
}
