package lighthouse

// remediationAdvice maps remote rule IDs to remediation text. Rules not in
// the table get genericAdvice.
var remediationAdvice = map[string]string{
	"color-contrast":              "Increase the contrast between text and its background to at least 4.5:1.",
	"image-alt":                   "Add descriptive alt text to every informative image.",
	"link-name":                   "Give links text that describes their destination.",
	"button-name":                 "Give buttons an accessible name describing their action.",
	"label":                       "Associate every form control with a visible label.",
	"html-has-lang":               "Declare the page language on the html element.",
	"document-title":              "Give the page a concise, descriptive title.",
	"heading-order":               "Keep heading levels sequential; do not skip levels.",
	"tap-targets":                 "Enlarge tap targets to at least 44x44px and space them apart.",
	"seo-meta-description":        "Write a meta description summarizing the page in under 160 characters.",
	"seo-crawlable-links":         "Use anchor elements with href attributes so crawlers can follow links.",
	"seo-robots-txt":              "Fix the robots.txt file so it parses and does not block important pages.",
	"performance-render-blocking": "Defer non-critical scripts and inline critical CSS.",
	"performance-unused-css":      "Remove or split CSS that the page does not use.",
	"speed-index":                 "Reduce main-thread work and prioritize visible content.",
	"load-time":                   "Compress assets and serve them from a CDN to cut load time.",
}

const genericAdvice = "Review this finding against the linked guidance and address the flagged elements."

// adviceFor returns remediation text for a rule ID, falling back to the
// generic advice when the rule is unknown.
func adviceFor(ruleID string) string {
	if advice, ok := remediationAdvice[ruleID]; ok {
		return advice
	}
	return genericAdvice
}
