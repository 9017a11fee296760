package catalog

import "github.com/clauselens/clauselens/internal/model"

// Clause-opening constructs: enumerations and legal connectors. Matched
// case-insensitively against the start of a trimmed candidate sentence.
var boundaryPatterns = []string{
	`^\s*(?:article|section|clause|paragraph)\s+\d+[\.\)\:]`,
	`^\s*\d+[\.\)]`,
	`^\s*[a-z]\)`,
	`^\s*\([a-z]\)`,
	`^\s*[ivx]+\)`,
	`^\s*\([ivx]+\)`,
	`^\s*whereas\s+`,
	`^\s*now\s+therefore\s+`,
	`^\s*in\s+witness\s+whereof\s+`,
	`^\s*therefore\s+`,
	`^\s*furthermore\s+`,
	`^\s*moreover\s+`,
	`^\s*however\s+`,
	`^\s*notwithstanding\s+`,
	`^\s*subject\s+to\s+`,
	`^\s*provided\s+that\s+`,
	`^\s*in\s+the\s+event\s+that\s+`,
	`^\s*in\s+case\s+of\s+`,
	`^\s*if\s+`,
	`^\s*unless\s+`,
	`^\s*except\s+`,
}

// Classification groups in fixed priority order; the first group with a
// matching pattern determines the clause type.
var typeGroups = []struct {
	clauseType model.ClauseType
	patterns   []string
}{
	{model.ClauseTypeDefinition, []string{
		`\b(?:means?|shall mean|refers to|is defined as)\b`,
		`\b(?:for the purposes? of|in this agreement)\b`,
	}},
	{model.ClauseTypeObligation, []string{
		`\b(?:shall|must|will|agree to|undertake to)\b`,
		`\b(?:responsible for|liable for|bound to)\b`,
	}},
	{model.ClauseTypeProhibition, []string{
		`\b(?:shall not|must not|will not|cannot|may not)\b`,
		`\b(?:prohibited|forbidden|restricted)\b`,
	}},
	{model.ClauseTypeCondition, []string{
		`\b(?:if|unless|provided that|subject to)\b`,
		`\b(?:in the event that|in case of)\b`,
	}},
	{model.ClauseTypeTermination, []string{
		`\b(?:terminate|end|expire|cease)\b`,
		`\b(?:breach|default|violation)\b`,
	}},
	{model.ClauseTypeLiability, []string{
		`\b(?:liability|damages|indemnify|hold harmless)\b`,
		`\b(?:responsible|accountable|liable)\b`,
	}},
	{model.ClauseTypePayment, []string{
		`\b(?:payment|fee|cost|expense|charge)\b`,
		`\b(?:due|payable|remit|transfer)\b`,
	}},
	{model.ClauseTypeConfidentiality, []string{
		`\b(?:confidential|proprietary|secret|private)\b`,
		`\b(?:disclose|reveal|share|divulge)\b`,
	}},
}

// Weighted risk-pattern groups. Matches are counted per group and normalized
// by clause word count before the weight is applied.
var riskGroups = []struct {
	name     string
	weight   float64
	patterns []string
}{
	{"high", 0.8, []string{
		`\b(?:unlimited|unrestricted|absolute)\s+(?:liability|responsibility)\b`,
		`\b(?:indemnify|hold harmless)\s+(?:against|for)\s+(?:all|any|every)\b`,
		`\b(?:without\s+limitation|without\s+restriction)\b`,
		`\b(?:consequential|punitive|special)\s+damages\b`,
		`\b(?:automatic|immediate)\s+(?:termination|cancellation)\b`,
		`\b(?:penalty|fine)\s+(?:of|in\s+the\s+amount\s+of)\s+\$?\d+`,
		`\b(?:breach|violation)\s+(?:shall|will)\s+(?:result\s+in|constitute)\b`,
		`\b(?:irrevocable|permanent|final)\b`,
		`\b(?:waive|waiver)\s+(?:all|any)\s+(?:rights?|claims?|defenses?)\b`,
		`\b(?:exclusive|sole)\s+(?:remedy|recourse)\b`,
	}},
	{"medium", 0.5, []string{
		`\b(?:reasonable|limited)\s+(?:liability|responsibility)\b`,
		`\b(?:terminate|end|cease)\s+(?:upon|in\s+case\s+of)\b`,
		`\b(?:breach|default|violation)\s+(?:of|under)\b`,
		`\b(?:notice|notification)\s+(?:of|regarding)\b`,
		`\b(?:remedy|recourse)\s+(?:for|against)\b`,
		`\b(?:damages?|losses?)\s+(?:arising\s+from|resulting\s+from)\b`,
		`\b(?:confidential|proprietary)\s+(?:information|data)\b`,
		`\b(?:payment|fee)\s+(?:due|payable)\s+(?:within|by)\b`,
		`\b(?:subject\s+to|conditioned\s+upon)\b`,
		`\b(?:provided\s+that|as\s+long\s+as)\b`,
	}},
	{"low", 0.2, []string{
		`\b(?:may|might|could)\s+(?:be|have|include)\b`,
		`\b(?:reasonable|good\s+faith)\s+(?:efforts?|attempts?)\b`,
		`\b(?:best\s+efforts?|reasonable\s+care)\b`,
		`\b(?:subject\s+to\s+availability|as\s+available)\b`,
		`\b(?:at\s+the\s+discretion\s+of|in\s+the\s+opinion\s+of)\b`,
		`\b(?:unless\s+otherwise\s+specified|except\s+as\s+noted)\b`,
		`\b(?:generally|typically|usually)\b`,
		`\b(?:approximately|about|around)\b`,
		`\b(?:if\s+possible|when\s+feasible)\b`,
		`\b(?:reasonable\s+time|appropriate\s+period)\b`,
	}},
}

// Named risk indicators, each evaluated independently
var factorDetectors = []struct {
	name    string
	pattern string
}{
	{"Unlimited Liability", `\b(?:unlimited|unrestricted)\s+(?:liability|responsibility)\b`},
	{"Automatic Termination", `\b(?:automatic|immediate)\s+(?:termination|cancellation)\b`},
	{"Penalty Clauses", `\b(?:penalty|fine)\s+(?:of|in\s+the\s+amount\s+of)\s+\$?\d+`},
	{"Indemnification", `\b(?:indemnify|hold harmless)\b`},
	{"Waiver of Rights", `\b(?:waive|waiver)\s+(?:all|any)\s+(?:rights?|claims?)\b`},
	{"Consequential Damages", `\b(?:consequential|punitive|special)\s+damages\b`},
	{"Irrevocable Terms", `\b(?:irrevocable|permanent|final)\b`},
	{"Exclusive Remedy", `\b(?:exclusive|sole)\s+(?:remedy|recourse)\b`},
	{"Confidentiality Breach", `\b(?:confidential|proprietary)\s+(?:information|data)\b`},
	{"Payment Default", `\b(?:payment|fee)\s+(?:due|payable)\s+(?:within|by)\b`},
}

// Keyword presence raises classification confidence by 0.05 per distinct
// keyword, capped at +0.3
var legalKeywords = []string{
	"shall", "must", "will", "agree", "party", "contract", "agreement",
	"liability", "damages", "breach", "terminate", "confidential",
	"payment", "fee", "obligation", "right", "duty", "responsibility",
}

var negationWords = []string{"not", "no", "never", "none", "neither", "nor", "without", "unless"}

var uncertaintyWords = []string{"may", "might", "could", "possibly", "potentially", "uncertain"}

var urgencyWords = []string{"immediately", "urgent", "asap", "promptly", "without delay"}
