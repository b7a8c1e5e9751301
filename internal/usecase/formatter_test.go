package usecase

import (
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"

	"ghactivity/internal/domain"
)

// TestFormatEvent covers every known event type plus the degraded cases:
// unknown types, missing payloads, and missing payload sub-fields.
func TestFormatEvent(t *testing.T) {
	testCases := []struct {
		name     string
		event    domain.Event
		expected string
	}{
		{
			name: "PushEvent",
			event: domain.Event{Type: "PushEvent", Repo: "octocat/hello-world",
				Payload: &github.PushEvent{Size: github.Int(3)}},
			expected: "- Pushed 3 commit(s) to octocat/hello-world",
		},
		{
			name: "IssuesEvent",
			event: domain.Event{Type: "IssuesEvent", Repo: "octocat/spoon-knife",
				Payload: &github.IssuesEvent{Action: github.String("opened")}},
			expected: "- Opened an issue in octocat/spoon-knife",
		},
		{
			name:     "WatchEvent",
			event:    domain.Event{Type: "WatchEvent", Repo: "octocat/linguist"},
			expected: "- Starred octocat/linguist",
		},
		{
			name: "CreateEvent with ref",
			event: domain.Event{Type: "CreateEvent", Repo: "octocat/hello-world",
				Payload: &github.CreateEvent{RefType: github.String("branch"), Ref: github.String("feature-x")}},
			expected: "- Created branch feature-x in octocat/hello-world",
		},
		{
			name: "CreateEvent for repository has no ref",
			event: domain.Event{Type: "CreateEvent", Repo: "octocat/hello-world",
				Payload: &github.CreateEvent{RefType: github.String("repository")}},
			expected: "- Created repository in octocat/hello-world",
		},
		{
			name:     "ForkEvent",
			event:    domain.Event{Type: "ForkEvent", Repo: "octocat/spoon-knife"},
			expected: "- Forked octocat/spoon-knife",
		},
		{
			name: "PullRequestEvent",
			event: domain.Event{Type: "PullRequestEvent", Repo: "octocat/hello-world",
				Payload: &github.PullRequestEvent{Action: github.String("closed")}},
			expected: "- Closed a pull request in octocat/hello-world",
		},
		{
			name: "DeleteEvent",
			event: domain.Event{Type: "DeleteEvent", Repo: "octocat/hello-world",
				Payload: &github.DeleteEvent{RefType: github.String("tag"), Ref: github.String("v1.0.0")}},
			expected: "- Deleted tag v1.0.0 in octocat/hello-world",
		},
		{
			name:     "ReleaseEvent",
			event:    domain.Event{Type: "ReleaseEvent", Repo: "octocat/hello-world"},
			expected: "- Published a release in octocat/hello-world",
		},
		{
			name:     "PublicEvent",
			event:    domain.Event{Type: "PublicEvent", Repo: "octocat/hello-world"},
			expected: "- Made octocat/hello-world public",
		},
		{
			name:     "unknown type falls back to the generic line",
			event:    domain.Event{Type: "XyzEvent", Repo: "octocat/hello-world"},
			expected: "- Did a XyzEvent on octocat/hello-world",
		},
		{
			name:     "PushEvent without payload degrades to zero commits",
			event:    domain.Event{Type: "PushEvent", Repo: "octocat/hello-world"},
			expected: "- Pushed 0 commit(s) to octocat/hello-world",
		},
		{
			name:     "IssuesEvent without payload drops the action word",
			event:    domain.Event{Type: "IssuesEvent", Repo: "octocat/spoon-knife"},
			expected: "- an issue in octocat/spoon-knife",
		},
		{
			name:     "CreateEvent without payload falls back to repository",
			event:    domain.Event{Type: "CreateEvent", Repo: "octocat/hello-world"},
			expected: "- Created repository in octocat/hello-world",
		},
		{
			name:     "DeleteEvent without payload falls back to branch",
			event:    domain.Event{Type: "DeleteEvent", Repo: "octocat/hello-world"},
			expected: "- Deleted branch in octocat/hello-world",
		},
		{
			name:     "missing repo name degrades to a placeholder",
			event:    domain.Event{Type: "WatchEvent"},
			expected: "- Starred unknown repository",
		},
		{
			name: "payload of the wrong type is ignored",
			event: domain.Event{Type: "PushEvent", Repo: "octocat/hello-world",
				Payload: &github.WatchEvent{}},
			expected: "- Pushed 0 commit(s) to octocat/hello-world",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatEvent(tc.event))
		})
	}
}
