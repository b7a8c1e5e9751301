package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/go-github/v62/github"

	"ghactivity/internal/domain"
)

// eventTemplates is the fixed lookup table from event type tag to line
// template. Payload access goes through go-github's nil-safe getters, so a
// missing or unparsed payload degrades to the documented defaults instead of
// failing the run.
var eventTemplates = map[string]func(domain.Event) string{
	"PushEvent": func(e domain.Event) string {
		p, _ := e.Payload.(*github.PushEvent)
		return fmt.Sprintf("Pushed %d commit(s) to %s", p.GetSize(), e.Repo)
	},
	"IssuesEvent": func(e domain.Event) string {
		p, _ := e.Payload.(*github.IssuesEvent)
		return fmt.Sprintf("%s an issue in %s", capitalize(p.GetAction()), e.Repo)
	},
	"WatchEvent": func(e domain.Event) string {
		return fmt.Sprintf("Starred %s", e.Repo)
	},
	"CreateEvent": func(e domain.Event) string {
		p, _ := e.Payload.(*github.CreateEvent)
		return fmt.Sprintf("Created %s in %s", refDescription(p.GetRefType(), p.GetRef(), "repository"), e.Repo)
	},
	"ForkEvent": func(e domain.Event) string {
		return fmt.Sprintf("Forked %s", e.Repo)
	},
	"PullRequestEvent": func(e domain.Event) string {
		p, _ := e.Payload.(*github.PullRequestEvent)
		return fmt.Sprintf("%s a pull request in %s", capitalize(p.GetAction()), e.Repo)
	},
	"DeleteEvent": func(e domain.Event) string {
		p, _ := e.Payload.(*github.DeleteEvent)
		return fmt.Sprintf("Deleted %s in %s", refDescription(p.GetRefType(), p.GetRef(), "branch"), e.Repo)
	},
	"ReleaseEvent": func(e domain.Event) string {
		return fmt.Sprintf("Published a release in %s", e.Repo)
	},
	"PublicEvent": func(e domain.Event) string {
		return fmt.Sprintf("Made %s public", e.Repo)
	},
}

// formatEvent renders one event as a bulleted line. Unknown event types fall
// back to a generic line rather than an error.
func formatEvent(e domain.Event) string {
	repo := e.Repo
	if repo == "" {
		repo = "unknown repository"
	}
	e.Repo = repo

	if template, ok := eventTemplates[e.Type]; ok {
		return "- " + trimLine(template(e))
	}
	return fmt.Sprintf("- Did a %s on %s", e.Type, repo)
}

// refDescription joins a ref type and ref name, e.g. "branch feature-x".
// Either part may be missing; refType falls back to the given default.
func refDescription(refType, ref, defaultType string) string {
	if refType == "" {
		refType = defaultType
	}
	if ref == "" {
		return refType
	}
	return refType + " " + ref
}

// capitalize upper-cases the first rune of an API action word ("opened" ->
// "Opened"). Empty actions stay empty; callers trim the result.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// trimLine collapses the leading gap left by an empty action word.
func trimLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
