package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeTextPrompt_FreshBranch(t *testing.T) {
	prompt := composeTextPrompt("", "Planning", nil, "Alice: hello")

	assert.Contains(t, prompt, "Meeting Title: Planning")
	assert.Contains(t, prompt, "Alice: hello")
	assert.NotContains(t, prompt, "summary so far")
	assert.NotContains(t, prompt, "Human Scribe Notes")
}

func TestComposeTextPrompt_IncrementalBranch(t *testing.T) {
	prompt := composeTextPrompt("Decision: ship v2.", "Planning", nil, "Bob: agreed")

	assert.Contains(t, prompt, "Here is the summary of the meeting so far:\nDecision: ship v2.")
	assert.Contains(t, prompt, "Here is the new transcript segment:\nBob: agreed")
	assert.Contains(t, prompt, "Korean")
}

func TestComposeTextPrompt_TitleDefaults(t *testing.T) {
	prompt := composeTextPrompt("", "", nil, "text")
	assert.Contains(t, prompt, "Meeting Title: General Meeting")
}

func TestComposeTextPrompt_NotesVerbatimAndOrdered(t *testing.T) {
	notes := []string{"A said X", "B decided Y"}

	for name, prompt := range map[string]string{
		"fresh":       composeTextPrompt("", "T", notes, "text"),
		"incremental": composeTextPrompt("prior", "T", notes, "text"),
	} {
		assert.Contains(t, prompt, "- A said X\n", name)
		assert.Contains(t, prompt, "- B decided Y\n", name)
		assert.Less(t,
			strings.Index(prompt, "A said X"),
			strings.Index(prompt, "B decided Y"),
			"%s: notes must keep submission order", name)
		assert.Contains(t, prompt, "(End of Human Notes)", name)
	}
}

func TestComposeTextPrompt_NotesBetweenTitleAndSegment(t *testing.T) {
	prompt := composeTextPrompt("", "T", []string{"note"}, "the segment")

	titleIdx := strings.Index(prompt, "Meeting Title:")
	notesIdx := strings.Index(prompt, "Human Scribe Notes")
	segmentIdx := strings.Index(prompt, "the segment")

	assert.Less(t, titleIdx, notesIdx)
	assert.Less(t, notesIdx, segmentIdx)
}

func TestComposeAudioPrompt_FreshBranchStructure(t *testing.T) {
	prompt := composeAudioPrompt("", "Kickoff", nil)

	assert.Contains(t, prompt, "professional meeting scribe")
	assert.Contains(t, prompt, "## 1. 회의 개요 (Overview)")
	assert.Contains(t, prompt, "## 2. 주요 논의 (Key Topics)")
	assert.Contains(t, prompt, "## 3. 결정 사항 (Decisions)")
	assert.Contains(t, prompt, "## 4. 향후 계획 (Action Items)")
	assert.Contains(t, prompt, "## 5. 상세 대화록 (Transcript)")
}

func TestComposeAudioPrompt_IncrementalBranchMerges(t *testing.T) {
	prompt := composeAudioPrompt("existing minute", "Kickoff", []string{"10:02 Bob joined"})

	assert.Contains(t, prompt, "Here is the meeting minute so far:\nexisting minute")
	assert.Contains(t, prompt, "**Merge** new information")
	assert.Contains(t, prompt, "TIMELINE LOG - CRITICAL")
	assert.Contains(t, prompt, "- 10:02 Bob joined\n")
	assert.NotContains(t, prompt, "## 5. 상세 대화록")
}

func TestTruncateContext(t *testing.T) {
	tests := []struct {
		name    string
		current string
		max     int
		want    string
	}{
		{"unlimited", "abcdef", 0, "abcdef"},
		{"under cap", "abc", 10, "abc"},
		{"at cap", "abcde", 5, "abcde"},
		{"over cap keeps tail", "abcdefgh", 4, contextElisionMarker + "\nefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateContext(tt.current, tt.max))
		})
	}
}
