package summarizer

import "strings"

// defaultTitle is used when the caller supplies no meeting title.
const defaultTitle = "General Meeting"

// contextElisionMarker replaces the trimmed head of an over-long running
// summary when a context cap is configured.
const contextElisionMarker = "[...earlier minutes elided...]"

func titleOrDefault(title string) string {
	if title == "" {
		return defaultTitle
	}
	return title
}

// notesBlock renders operator notes as a high-priority bulleted block.
// Notes appear verbatim and in submission order; an empty list renders
// nothing. The audio variant carries the timeline-log framing.
func notesBlock(notes []string, audio bool) string {
	if len(notes) == 0 {
		return ""
	}

	var sb strings.Builder
	if audio {
		sb.WriteString("\n\n📝 **Human Scribe Notes (TIMELINE LOG - CRITICAL):**\n")
		sb.WriteString("Use these timestamped notes to identify speakers and verify facts.\n")
	} else {
		sb.WriteString("\n\n📝 **Human Scribe Notes (HIGH PRIORITY - USE AS GUIDE):**\n")
	}
	for _, note := range notes {
		sb.WriteString("- ")
		sb.WriteString(note)
		sb.WriteString("\n")
	}
	sb.WriteString("\n(End of Human Notes)\n")
	return sb.String()
}

// truncateContext trims the head of the running summary so at most max
// characters are embedded into the next prompt. Minutes accrete newest-last,
// so the tail is kept. max <= 0 means unlimited.
func truncateContext(current string, max int) string {
	if max <= 0 || len(current) <= max {
		return current
	}
	return contextElisionMarker + "\n" + current[len(current)-max:]
}

// composeTextPrompt builds the instruction for a transcript segment,
// branching on whether prior context exists.
func composeTextPrompt(current, title string, notes []string, segment string) string {
	titleStr := titleOrDefault(title)
	notesSection := notesBlock(notes, false)

	if current != "" {
		return "Here is the summary of the meeting so far:\n" + current + "\n\n" +
			"Meeting Title: " + titleStr + "\n\n" +
			notesSection +
			"Here is the new transcript segment:\n" + segment + "\n\n" +
			"**Task**: Update the meeting minute.\n" +
			"**Instructions**:\n" +
			"1. Incorporate new information while keeping the previous key points concise.\n" +
			"2. **Pay close attention to the Human Scribe Notes** above. They indicate important decisions, corrections, or speaker identities.\n" +
			"3. Keep the output in Korean."
	}

	return "Meeting Title: " + titleStr + "\n\n" +
		notesSection +
		"Please provide a concise context-aware summary of the following transcription:\n\n" + segment + "\n\n" +
		"**Instructions**:\n" +
		"1. Create a structured summary.\n" +
		"2. **Reflect any Human Scribe Notes** in the summary as verified facts.\n" +
		"3. Keep the output in Korean (technical terms may stay in English)."
}

// composeAudioPrompt builds the instruction for an attached audio asset.
// The fresh branch asks for the five-section structured minute; the
// incremental branch asks for a merge into the existing structure.
func composeAudioPrompt(current, title string, notes []string) string {
	titleStr := titleOrDefault(title)
	notesSection := notesBlock(notes, true)

	if current != "" {
		return "You are a professional meeting scribe. \n" +
			"We are in the middle of a meeting. Here is the meeting minute so far:\n" +
			current + "\n\n" +
			"Meeting Title: " + titleStr + "\n\n" +
			notesSection +
			"**Task**: Listen to the ATTACHED AUDIO (which is the next part of the meeting) and UPDATE the meeting minute.\n" +
			"**Instructions:**\n" +
			"1. **Merge** new information into the existing structure (Overview, Key Topics, Decisions, Action Items).\n" +
			"2. **Identify Speakers**: Use the provided Human Scribe Notes to correctly label speakers.\n" +
			"3. Language: **Korean** (keep technical terms in English).\n" +
			"4. Output the **entire updated meeting minute** in Markdown."
	}

	return "You are a professional meeting scribe. " +
		"Listen to the attached audio and generate a structured meeting minute.\n" +
		"Meeting Title: " + titleStr + "\n\n" +
		notesSection +
		"**Instructions:**\n" +
		"1. **Identify Speakers**: Distinction between speakers is crucial. Use the Human Scribe Notes to assign names if provided.\n" +
		"2. Language: **Korean** (keep technical terms in English).\n" +
		"3. Format: Use Markdown.\n" +
		"4. Structure:\n" +
		"   - **## 1. 회의 개요 (Overview)**: Brief context.\n" +
		"   - **## 2. 주요 논의 (Key Topics)**: Bullet points of discussed items.\n" +
		"   - **## 3. 결정 사항 (Decisions)**: Clear conclusions.\n" +
		"   - **## 4. 향후 계획 (Action Items)**: To-do list.\n" +
		"   - **## 5. 상세 대화록 (Transcript)**: (Optional) If possible, provide a segmented transcript with speaker labels."
}
