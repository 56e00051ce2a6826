// Package normalize repairs raw OCR text into canonical, linearized text.
//
// The pipeline runs in a fixed order:
//
//  1. Unicode NFKC, line endings, tabs and whitespace
//  2. Rule categories from the rules package (headers, dates, locations,
//     contact, special cases, general)
//  3. Joining lines broken mid-sentence
//  4. Merged-word splitting (WorkHistory, BostonManaged)
//  5. Blank lines around standalone headers
//  6. Duplicate header demotion
//  7. Canonical whitespace
//
// Normalization never fails and is idempotent: normalizing its own output
// returns the same text.
//
// # Broken Lines
//
// OCR wraps long sentences onto several lines. A line is joined to the one
// before it when it starts lowercase or the one before ends in a connector
// word:
//
//	Responsible for managing the    =>   Responsible for managing the budget
//	budget and staff of ten               and staff of ten
//
// Headers, bullets, dates, email addresses, URLs and lines ending in
// sentence punctuation stay on their own lines.
//
// # Duplicate Headers
//
// When a header appears more than once, the occurrence owning the most
// content stays a header. The others become "• HEADER:" sub-bullets so
// later stages see one section per header:
//
//	SKILLS          SKILLS
//
//	Python, Java    Python, Java
//
//	SKILLS     =>   • SKILLS:
//	                SQL
//	SQL
package normalize
