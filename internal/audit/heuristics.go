package audit

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vedux98/UX-Audit/internal/figma"
)

// Rule is one heuristic check: an identifier plus a pure function over a
// subtree. Keeping the battery as a registry means an alternative matcher
// can replace one rule without touching traversal or scoring.
type Rule struct {
	ID    string
	Check func(root *figma.Node) []Issue
}

// DefaultHeuristics returns the built-in heuristic battery in run order.
func DefaultHeuristics() []Rule {
	return []Rule{
		{ID: "generic-button-labels", Check: checkGenericButtonLabels},
		{ID: "jargon", Check: checkJargon},
		{ID: "spacing-consistency", Check: checkSpacingConsistency},
		{ID: "missing-feedback", Check: checkMissingFeedback},
		{ID: "missing-close", Check: checkMissingClose},
		{ID: "missing-confirmation", Check: checkMissingConfirmation},
		{ID: "missing-label", Check: checkMissingLabel},
		{ID: "color-variety", Check: checkColorVariety},
		{ID: "font-variety", Check: checkFontVariety},
		{ID: "help-presence", Check: checkHelpPresence},
		{ID: "text-density", Check: checkTextDensity},
	}
}

// HeuristicIssues runs every rule in the battery over one subtree. Rules
// are independent: a failure inside one becomes a single error-severity
// issue and the remaining rules still run.
func HeuristicIssues(root *figma.Node) []Issue {
	var issues []Issue
	for _, rule := range DefaultHeuristics() {
		issues = append(issues, runRule(rule, root)...)
	}
	return issues
}

func runRule(rule Rule, root *figma.Node) (issues []Issue) {
	defer func() {
		if r := recover(); r != nil {
			issues = []Issue{{
				Category:    CategoryHeuristic,
				Severity:    SeverityError,
				Title:       "Analysis error",
				Description: fmt.Sprintf("Heuristic %q failed: %v.", rule.ID, r),
			}}
		}
	}()
	return rule.Check(root)
}

// All heuristic matching is exact or substring matching on lower-cased
// names and text content. This is deliberately simple: smarter matching
// would silently change which elements each rule fires on.

var genericLabels = map[string]bool{
	"button":     true,
	"click here": true,
	"submit":     true,
	"learn more": true,
	"go":         true,
}

var jargonWords = []string{"syscall", "backend", "cache", "api", "lambda", "framework", "async"}

const (
	maxDistinctColors = 10
	maxDistinctStyles = 5
	maxDenseTexts     = 5
	maxDenseChars     = 500
)

func nameContains(n *figma.Node, subs ...string) bool {
	name := strings.ToLower(n.Name)
	for _, s := range subs {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

func isContainer(n *figma.Node) bool {
	switch n.Kind() {
	case figma.KindContainer, figma.KindGroup:
		return true
	}
	return false
}

// checkGenericButtonLabels flags button-like containers whose first text
// descendant is a throwaway label like "click here".
func checkGenericButtonLabels(root *figma.Node) []Issue {
	var issues []Issue
	buttons := figma.FindDescendants(root, true, func(n *figma.Node) bool {
		return (isContainer(n) || n.Kind() == figma.KindInstance) && nameContains(n, "button")
	})
	for _, btn := range buttons {
		texts := figma.TextNodes(btn)
		if len(texts) == 0 {
			continue
		}
		label := strings.TrimSpace(strings.ToLower(texts[0].Characters))
		if !genericLabels[label] {
			continue
		}
		issues = append(issues, Issue{
			Category:    CategoryHeuristic,
			Severity:    SeverityInfo,
			Title:       "Generic button label",
			Description: fmt.Sprintf("Button %q is labeled %q, which does not describe its action.", btn.Name, label),
			Remediation: "Label buttons with the action they perform, e.g. \"Save draft\" instead of \"Submit\".",
			Node:        nodeRef(btn),
		})
	}
	return issues
}

// checkJargon scans every word of every text element against a fixed
// jargon list and reports the unique matches in first-encounter order.
func checkJargon(root *figma.Node) []Issue {
	jargon := make(map[string]bool, len(jargonWords))
	for _, w := range jargonWords {
		jargon[w] = true
	}

	var matches []string
	seen := make(map[string]bool)
	for _, text := range figma.TextNodes(root) {
		for _, word := range strings.Fields(strings.ToLower(text.Characters)) {
			word = stripNonLetters(word)
			if jargon[word] && !seen[word] {
				seen[word] = true
				matches = append(matches, word)
			}
		}
	}
	if len(matches) == 0 {
		return nil
	}
	return []Issue{{
		Category:    CategoryHeuristic,
		Severity:    SeverityWarning,
		Title:       "Technical jargon in copy",
		Description: fmt.Sprintf("Interface text uses technical terms users may not know: %s.", strings.Join(matches, ", ")),
		Remediation: "Replace technical terms with plain language or explain them in context.",
	}}
}

func stripNonLetters(word string) string {
	var b strings.Builder
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// checkSpacingConsistency measures horizontal gaps between the children of
// each container, rounded to whole pixels. More than two distinct gap
// values reads as an unintentional layout. Gap values are reported in the
// order they were first seen, not numerically sorted.
func checkSpacingConsistency(root *figma.Node) []Issue {
	var issues []Issue
	containers := figma.FindDescendants(root, true, func(n *figma.Node) bool {
		return isContainer(n) && len(n.Children) > 2
	})
	for _, c := range containers {
		children := make([]*figma.Node, len(c.Children))
		copy(children, c.Children)
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Bounds.X < children[j].Bounds.X
		})

		var gaps []int
		seen := make(map[int]bool)
		for i := 1; i < len(children); i++ {
			prev, next := children[i-1], children[i]
			gap := next.Bounds.X - (prev.Bounds.X + prev.Bounds.Width)
			if gap <= 0 {
				continue
			}
			rounded := int(math.Round(gap))
			if !seen[rounded] {
				seen[rounded] = true
				gaps = append(gaps, rounded)
			}
		}
		if len(gaps) <= 2 {
			continue
		}
		parts := make([]string, len(gaps))
		for i, g := range gaps {
			parts[i] = fmt.Sprintf("%dpx", g)
		}
		issues = append(issues, Issue{
			Category:    CategoryHeuristic,
			Severity:    SeverityInfo,
			Title:       "Inconsistent spacing",
			Description: fmt.Sprintf("%q uses %d different gaps between children: %s.", c.Name, len(gaps), strings.Join(parts, ", ")),
			Remediation: "Pick a spacing scale and reuse the same gap values throughout the layout.",
			Node:        nodeRef(c),
		})
	}
	return issues
}

// checkMissingFeedback flags forms that collect input but show no status,
// error, or success affordance.
func checkMissingFeedback(root *figma.Node) []Issue {
	var issues []Issue
	forms := figma.FindDescendants(root, true, func(n *figma.Node) bool {
		return isContainer(n) && nameContains(n, "form") && len(n.Children) > 0
	})
	for _, form := range forms {
		hasInputs, hasFeedback := false, false
		for _, child := range form.Children {
			if nameContains(child, "input", "field", "text") {
				hasInputs = true
			}
			if nameContains(child, "status", "feedback", "error", "success") {
				hasFeedback = true
			}
		}
		if !hasInputs || hasFeedback {
			continue
		}
		issues = append(issues, Issue{
			Category:    CategoryHeuristic,
			Severity:    SeverityInfo,
			Title:       "No status feedback",
			Description: fmt.Sprintf("Form %q has inputs but no visible status, error, or success state.", form.Name),
			Remediation: "Add inline validation and a clear success or error state to the form.",
			Node:        nodeRef(form),
		})
	}
	return issues
}

// checkMissingClose flags modals and dialogs without an obvious way out.
func checkMissingClose(root *figma.Node) []Issue {
	var issues []Issue
	modals := figma.FindDescendants(root, true, func(n *figma.Node) bool {
		return isContainer(n) && nameContains(n, "modal", "dialog", "popup")
	})
	for _, modal := range modals {
		hasClose := false
		for _, child := range modal.Children {
			if nameContains(child, "close", "cancel", "dismiss", "x") {
				hasClose = true
				break
			}
		}
		if hasClose {
			continue
		}
		issues = append(issues, Issue{
			Category:    CategoryHeuristic,
			Severity:    SeverityWarning,
			Title:       "No close control",
			Description: fmt.Sprintf("%q has no visible close, cancel, or dismiss control.", modal.Name),
			Remediation: "Give every overlay an explicit close control so users always have a way out.",
			Node:        nodeRef(modal),
		})
	}
	return issues
}

// checkMissingConfirmation flags destructive components with no sibling
// confirmation step.
func checkMissingConfirmation(root *figma.Node) []Issue {
	var issues []Issue
	destructive := figma.FindDescendants(root, true, func(n *figma.Node) bool {
		return n.Kind() == figma.KindInstance && nameContains(n, "delete", "remove", "destroy")
	})
	for _, n := range destructive {
		if n.Parent == nil {
			continue
		}
		hasConfirm := false
		for _, sibling := range n.Parent.Children {
			if sibling == n {
				continue
			}
			if nameContains(sibling, "confirm", "verification", "are you sure") {
				hasConfirm = true
				break
			}
		}
		if hasConfirm {
			continue
		}
		issues = append(issues, Issue{
			Category:    CategoryHeuristic,
			Severity:    SeverityWarning,
			Title:       "No delete confirmation",
			Description: fmt.Sprintf("Destructive action %q has no nearby confirmation step.", n.Name),
			Remediation: "Ask for confirmation before destructive actions, or offer an undo.",
			Node:        nodeRef(n),
		})
	}
	return issues
}

// checkMissingLabel flags input components with neither a text sibling nor
// a sibling named like a label.
func checkMissingLabel(root *figma.Node) []Issue {
	var issues []Issue
	inputs := figma.FindDescendants(root, true, func(n *figma.Node) bool {
		k := n.Kind()
		return (k == figma.KindInstance || n.Type == figma.NodeRectangle) &&
			nameContains(n, "input", "field", "textbox")
	})
	for _, input := range inputs {
		if input.Parent == nil {
			continue
		}
		hasLabel := false
		for _, sibling := range input.Parent.Children {
			if sibling == input {
				continue
			}
			if sibling.IsText() || nameContains(sibling, "label") {
				hasLabel = true
				break
			}
		}
		if hasLabel {
			continue
		}
		issues = append(issues, Issue{
			Category:    CategoryHeuristic,
			Severity:    SeverityWarning,
			Title:       "Input without label",
			Description: fmt.Sprintf("Input %q has no label next to it.", input.Name),
			Remediation: "Pair every input with a persistent label; placeholder text disappears on focus.",
			Node:        nodeRef(input),
		})
	}
	return issues
}

// checkColorVariety counts distinct solid fill colors across the subtree.
// Exact channel values are compared; two near-identical grays count twice,
// which is exactly the drift the check exists to surface.
func checkColorVariety(root *figma.Node) []Issue {
	seen := make(map[figma.Color]bool)
	for _, n := range figma.FindDescendants(root, true, func(*figma.Node) bool { return true }) {
		for _, p := range n.Fills {
			if p.IsSolid() && p.IsVisible() {
				seen[p.Color] = true
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	if len(seen) > maxDistinctColors {
		return []Issue{{
			Category:    CategoryHeuristic,
			Severity:    SeverityWarning,
			Title:       "Large color palette",
			Description: fmt.Sprintf("The design uses %d distinct fill colors; more than %d usually means the palette has drifted.", len(seen), maxDistinctColors),
			Remediation: "Consolidate fills into a small named palette and reuse it.",
		}}
	}
	return []Issue{{
		Category:    CategoryHeuristic,
		Severity:    SeverityInfo,
		Title:       "Concise color palette",
		Description: fmt.Sprintf("The design uses %d distinct fill colors.", len(seen)),
	}}
}

// checkFontVariety counts distinct family/style/size signatures across all
// text in the subtree.
func checkFontVariety(root *figma.Node) []Issue {
	seen := make(map[string]bool)
	for _, text := range figma.TextNodes(root) {
		if sig := text.StyleSignature(); sig != "" {
			seen[sig] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	if len(seen) > maxDistinctStyles {
		return []Issue{{
			Category:    CategoryHeuristic,
			Severity:    SeverityWarning,
			Title:       "Many text styles",
			Description: fmt.Sprintf("The design uses %d distinct text styles; more than %d makes the type system hard to follow.", len(seen), maxDistinctStyles),
			Remediation: "Define a small set of named text styles and apply them consistently.",
		}}
	}
	return []Issue{{
		Category:    CategoryHeuristic,
		Severity:    SeverityInfo,
		Title:       "Consistent typography",
		Description: fmt.Sprintf("The design uses %d distinct text styles.", len(seen)),
	}}
}

// checkHelpPresence looks for any hint of help or support: text mentioning
// it, a "?" affordance, or an element named for it.
func checkHelpPresence(root *figma.Node) []Issue {
	found := false
	for _, text := range figma.TextNodes(root) {
		content := strings.ToLower(text.Characters)
		if strings.Contains(content, "help") || strings.Contains(content, "support") ||
			strings.Contains(content, "?") || strings.Contains(content, "learn") {
			found = true
			break
		}
	}
	if !found {
		named := figma.FindDescendants(root, true, func(n *figma.Node) bool {
			return nameContains(n, "help", "support")
		})
		found = len(named) > 0
	}
	if found {
		return nil
	}
	return []Issue{{
		Category:    CategoryHeuristic,
		Severity:    SeverityInfo,
		Title:       "No obvious help",
		Description: "No help, support, or documentation affordance was found in this screen.",
		Remediation: "Add a help link or contextual hints where users are likely to get stuck.",
	}}
}

// checkTextDensity flags containers packing many long text blocks into one
// surface.
func checkTextDensity(root *figma.Node) []Issue {
	var issues []Issue
	containers := figma.FindDescendants(root, true, isContainer)
	for _, c := range containers {
		textCount, charCount := 0, 0
		for _, child := range c.Children {
			if child.IsText() {
				textCount++
				charCount += len(child.Characters)
			}
		}
		if textCount <= maxDenseTexts || charCount <= maxDenseChars {
			continue
		}
		issues = append(issues, Issue{
			Category:    CategoryHeuristic,
			Severity:    SeverityInfo,
			Title:       "Text-heavy interface",
			Description: fmt.Sprintf("%q holds %d text blocks totaling %d characters.", c.Name, textCount, charCount),
			Remediation: "Break up dense copy with headings, progressive disclosure, or separate screens.",
			Node:        nodeRef(c),
		})
	}
	return issues
}
