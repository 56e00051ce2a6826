package classify

import (
	"regexp"
	"strings"

	"github.com/tsawler/vitae/internal/textutil"
	"github.com/tsawler/vitae/lexicon"
	"github.com/tsawler/vitae/model"
)

const (
	// sampleLength is how much content the cues look at
	sampleLength = 500

	// contactSampleLength is how much of the opening section the contact
	// prior looks at
	contactSampleLength = 200
)

// Evidence maps section types to accumulated content scores
type Evidence map[model.SectionType]float64

// Best returns the highest scoring type. Ties go to the type listed first
// in model.SectionTypes; an empty evidence set returns SectionUnknown.
func (e Evidence) Best() (model.SectionType, float64) {
	best, bestScore := model.SectionUnknown, 0.0
	for _, st := range model.SectionTypes {
		if score := e[st]; score > bestScore {
			best, bestScore = st, score
		}
	}
	return best, bestScore
}

// cue is one weighted content pattern. Each cue counts once per section.
type cue struct {
	name    string
	section model.SectionType
	pattern *regexp.Regexp
	weight  float64
}

func newCue(section model.SectionType, name, pattern string, weight float64) cue {
	return cue{name: name, section: section, pattern: regexp.MustCompile(pattern), weight: weight}
}

var cues = []cue{
	newCue(model.SectionEducation, "institution", `(?i)\b(?:university|college|school|academy|institute)\b`, 0.8),
	newCue(model.SectionEducation, "degree", `(?i)\b(?:degree|bachelor|master|phd|diploma|graduate|graduated|major)\b`, 0.8),
	newCue(model.SectionEducation, "degree_abbreviation", `\b(?:B\.S\.|M\.S\.|B\.A\.|M\.A\.|Ph\.D|MBA)`, 0.7),
	newCue(model.SectionEducation, "academic", `(?i)\b(?:gpa|honors|cum laude|scholarship|academic|coursework)\b`, 0.6),

	newCue(model.SectionExperience, "date_range", `(?i)\b(?:19|20)\d{2}\s*[-–—]\s*(?:(?:19|20)\d{2}|present|current|now)\b`, 1.0),
	newCue(model.SectionExperience, "month_year", `(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.? \d{4}\b`, 0.8),
	newCue(model.SectionExperience, "job_title", `(?i)\b(?:manager|director|engineer|developer|analyst|coordinator|assistant|specialist|consultant|intern)\b`, 0.6),
	newCue(model.SectionExperience, "company", `(?i)\b(?:company|corporation|corp|inc|llc|ltd|firm|organization)\b`, 0.5),
	newCue(model.SectionExperience, "action_verb", `(?i)\b(?:responsible for|managed|led|developed|implemented|created|improved|reduced|increased)\b`, 0.4),

	newCue(model.SectionSkills, "skill_words", `(?i)\b(?:proficient|expertise|familiar|knowledge|programming|software|tools|technologies)\b`, 0.7),
	newCue(model.SectionSkills, "programming_language", `\b(?:Java|Python|JavaScript|TypeScript|HTML|CSS|SQL|PHP|Swift|Kotlin|Ruby|Go|Rust)\b|C\+\+|C#`, 0.9),
	newCue(model.SectionSkills, "tool", `\b(?:AWS|Azure|GCP|Docker|Kubernetes|Linux|Git|REST|API|JSON|XML|Excel)\b`, 0.8),
	newCue(model.SectionSkills, "list", `(?:•|\*|,|;).*?(?:•|\*|,|;)`, 0.5),

	newCue(model.SectionSummary, "qualities", `(?i)\b(?:professional|experienced|skilled|motivated|passionate|detail-oriented|team player|driven|dedicated)\b`, 0.6),
	newCue(model.SectionSummary, "career_phrase", `(?i)\b(?:years of experience|background in|proven track record|expertise in|specialize in)\b`, 0.7),
	newCue(model.SectionSummary, "goal", `(?i)\b(?:seeking|looking for|aim to|goal|objective|career path|opportunity|position)\b`, 0.5),

	newCue(model.SectionProjects, "project_work", `(?i)\b(?:project|developed|created|built|designed|implemented|application|website|system)\b`, 0.7),
	newCue(model.SectionProjects, "project_link", `(?i)\b(?:github|gitlab|portfolio|demo|prototype|collaborated|collaboration)\b`, 0.8),
	newCue(model.SectionProjects, "url", `(?i)(?:https?://|www\.|\.com\b|\.org\b|\.net\b|\.io\b)`, 0.5),

	newCue(model.SectionCertifications, "credential", `(?i)\b(?:certified|certification|certificate|license|licensed|accredited|accreditation|exam|credential)\b`, 0.9),

	newCue(model.SectionContact, "email", `[\w.+-]+@[\w-]+(?:\.[\w-]+)+`, 0.8),
	newCue(model.SectionContact, "phone", `(?:\+\d{1,2}\s)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`, 0.7),
	newCue(model.SectionContact, "location", `\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?,\s*[A-Z]{2}\b`, 0.6),
	newCue(model.SectionContact, "profile", `(?i)(?:linkedin\.com|github\.com|https?://)`, 0.6),

	newCue(model.SectionLanguages, "spoken_language", `(?i)\b(?:english|spanish|french|german|mandarin|chinese|japanese|portuguese|italian|arabic|russian|korean|hindi)\b`, 0.8),
	newCue(model.SectionLanguages, "fluency", `(?i)\b(?:native|fluent|bilingual|conversational|intermediate|proficiency)\b`, 0.9),

	newCue(model.SectionAchievements, "award", `(?i)\b(?:award|awards|honored|recognized|recognition|achievement|winner|won|dean'?s list)\b`, 0.9),
	newCue(model.SectionInterests, "hobby", `(?i)\b(?:hobbies|enjoy|interests|hiking|reading|travel|photography|cooking|music|sports)\b`, 0.8),
	newCue(model.SectionReferences, "reference", `(?i)\b(?:references|upon request|referee)\b`, 1.5),
	newCue(model.SectionVolunteer, "volunteer", `(?i)\b(?:volunteer|volunteered|nonprofit|non-profit|community|charity|fundraising)\b`, 0.9),
	newCue(model.SectionPublications, "publication", `(?i)\b(?:journal|published|publication|conference|proceedings|doi|arxiv)\b`, 0.9),
}

var (
	// earnedPattern supports certifications unless the content already
	// reads as education
	earnedPattern = regexp.MustCompile(`(?i)\b(?:awarded|completed|earned|received|passed)\b`)

	namePattern = regexp.MustCompile(`^[A-Z][A-Za-z'-]+(?:\s+[A-Z][A-Za-z'-]*\.?)?\s+[A-Z][A-Za-z'-]+$`)
)

const (
	pairingBonus       = 0.5 // date range together with a job title
	earnedWeight       = 0.5
	contactPriorStrong = 2.0 // two or more contact cues
	contactPriorWeak   = 1.0 // one contact cue
	contactFirstFactor = 1.5
)

// gather accumulates content evidence. The header only feeds the contact
// prior of the opening section.
func gather(header, content string, isFirst bool) Evidence {
	ev := make(Evidence)
	sample := textutil.Truncate(content, sampleLength)

	fired := make(map[string]bool)
	for _, c := range cues {
		if c.pattern.MatchString(sample) {
			ev[c.section] += c.weight
			fired[c.name] = true
		}
	}

	if fired["date_range"] && fired["job_title"] {
		ev[model.SectionExperience] += pairingBonus
	}

	if ev[model.SectionEducation] == 0 && earnedPattern.MatchString(sample) {
		ev[model.SectionCertifications] += earnedWeight
	}

	if isFirst {
		ev[model.SectionContact] *= contactFirstFactor
		switch n := contactCues(header, content); {
		case n >= 2:
			ev[model.SectionContact] += contactPriorStrong
		case n == 1:
			ev[model.SectionContact] += contactPriorWeak
		}
	}

	for st, score := range ev {
		if score == 0 {
			delete(ev, st)
		}
	}
	return ev
}

// contactCues counts which of email, phone, profile URL and a personal
// name appear at the top of a section.
func contactCues(header, content string) int {
	sample := textutil.Truncate(strings.TrimSpace(header+"\n"+content), contactSampleLength)

	n := 0
	for _, c := range cues {
		if c.section == model.SectionContact && c.name != "location" && c.pattern.MatchString(sample) {
			n++
		}
	}
	if looksLikeName(sample) {
		n++
	}
	return n
}

// looksLikeName returns true if the first non-blank line is two or three
// capitalized words that are not a section header.
func looksLikeName(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return namePattern.MatchString(line) && !lexicon.IsHeaderTerm(line) && !lexicon.IsDenied(line)
	}
	return false
}
