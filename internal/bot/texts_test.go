package bot

import (
	"strings"
	"testing"

	"anonbot/internal/storage"
)

func TestCommentsTextEmpty(t *testing.T) {
	got := commentsText(5, nil)
	if !strings.Contains(got, "Post #5") {
		t.Errorf("missing post id: %q", got)
	}
	if !strings.Contains(got, "Hali sharh yo'q") {
		t.Errorf("missing empty-state line: %q", got)
	}
}

func TestCommentsTextNumbersAndEscapes(t *testing.T) {
	got := commentsText(1, []storage.Comment{
		{Text: "first"},
		{Text: "<script>alert(1)</script>"},
	})
	if !strings.Contains(got, "1. <i>first</i>") {
		t.Errorf("missing numbered comment: %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("user markup not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("escaped markup missing: %q", got)
	}
}

func TestModerationTextEscapesBody(t *testing.T) {
	got := moderationText(7, "a <b>bold</b> claim & more")
	if !strings.Contains(got, "Post ID: #7") {
		t.Errorf("missing post id: %q", got)
	}
	if strings.Contains(got, "<b>bold</b>") {
		t.Errorf("user markup not escaped: %q", got)
	}
	if !strings.Contains(got, "&amp; more") {
		t.Errorf("ampersand not escaped: %q", got)
	}
}

func TestWelcomeTextEscapesName(t *testing.T) {
	got := welcomeText("<Evil>")
	if strings.Contains(got, "<Evil>") {
		t.Errorf("name not escaped: %q", got)
	}
}

func TestStatsTexts(t *testing.T) {
	user := userStatsText(&storage.UserStats{TotalPosts: 4, ApprovedPosts: 2, RejectedPosts: 1, PendingPosts: 1, TotalComments: 3})
	for _, want := range []string{": 4", ": 2", ": 1", ": 3"} {
		if !strings.Contains(user, want) {
			t.Errorf("user stats missing %q: %q", want, user)
		}
	}

	global := globalStatsText(&storage.GlobalStats{TotalUsers: 10, TotalPosts: 4})
	if !strings.Contains(global, "foydalanuvchilar: 10") {
		t.Errorf("global stats missing user count: %q", global)
	}
}
