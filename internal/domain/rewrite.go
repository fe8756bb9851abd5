package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// resourceLink matches an embedded resource image link whose target is a
// bare 32-hex resource id: ![](:/<id>).
var resourceLink = regexp.MustCompile(`!\[\]\(:/([a-f0-9]{32})\)`)

// RenamePlan is the per-note assignment of output filenames to the
// resource ids referenced by one body. Built fresh for every note.
type RenamePlan struct {
	// Assigned maps each resolved resource id to its output filename.
	Assigned map[string]string
	// Missing lists referenced ids absent from the catalog, in first
	// occurrence order. Their references pass through unmodified.
	Missing []string
}

// PlanRenames scans body left to right and assigns each distinct referenced
// resource an output filename on its first occurrence. Images get
// "<baseName>-NNN.<ext>" with a 1-based zero-padded counter local to this
// body; other attachments keep their catalog filename.
func PlanRenames(body, baseName string, catalog Catalog) RenamePlan {
	plan := RenamePlan{Assigned: make(map[string]string)}
	seen := make(map[string]bool)
	imageSeq := 0

	for _, m := range resourceLink.FindAllStringSubmatch(body, -1) {
		id := m[1]
		if seen[id] {
			continue
		}
		seen[id] = true

		name, ok := catalog[id]
		if !ok {
			plan.Missing = append(plan.Missing, id)
			continue
		}
		if IsImageFilename(name) {
			imageSeq++
			plan.Assigned[id] = fmt.Sprintf("%s-%03d.%s", baseName, imageSeq, extensionOf(name))
		} else {
			plan.Assigned[id] = name
		}
	}

	return plan
}

// RewriteBody replaces every resolved resource link with its assigned
// filename and normalizes non-breaking-space entities to plain spaces.
// Links to unassigned ids are left exactly as written.
func RewriteBody(body string, plan RenamePlan) string {
	out := resourceLink.ReplaceAllStringFunc(body, func(match string) string {
		id := resourceLink.FindStringSubmatch(match)[1]
		if name, ok := plan.Assigned[id]; ok {
			return "![](" + name + ")"
		}
		return match
	})
	return strings.ReplaceAll(out, "&nbsp;", " ")
}
