// Package classify assigns a section type and confidence to a resume
// section from its header and content.
//
// A header that is a vocabulary term is trusted outright (0.9). Weaker
// header matches (a term as a whole word, 0.7, or as a substring, 0.6) are
// checked against content evidence: weighted cues for dates, job titles,
// degrees, institutions, programming languages, list structure, contact
// details and so on. Agreement raises the confidence; on disagreement the
// more confident answer wins and ties go to the header.
//
// The opening section of a document gets a prior toward contact when it
// shows at least two of an email address, a phone number, a profile URL and
// a personal name.
package classify
