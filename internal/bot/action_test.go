package bot

import "testing"

func TestParseActionStatic(t *testing.T) {
	tests := []struct {
		data string
		want Action
	}{
		{"create_post", CreatePostAction{}},
		{"skip_image", SkipImageAction{}},
		{"cancel", CancelAction{}},
		{"my_stats", MyStatsAction{}},
		{"about", AboutAction{}},
		{"back_to_menu", BackToMenuAction{}},
		{"\fcancel", CancelAction{}},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.data)
		if !ok {
			t.Errorf("ParseAction(%q): not recognized", tt.data)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %#v, want %#v", tt.data, got, tt.want)
		}
	}
}

func TestParseActionWithID(t *testing.T) {
	tests := []struct {
		data string
		want Action
	}{
		{"approve_42", ApproveAction{PostID: 42}},
		{"reject_7", RejectAction{PostID: 7}},
		{"add_comment_13", AddCommentAction{PostID: 13}},
		{"view_comments_99", ViewCommentsAction{PostID: 99}},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.data)
		if !ok {
			t.Errorf("ParseAction(%q): not recognized", tt.data)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %#v, want %#v", tt.data, got, tt.want)
		}
	}
}

func TestParseActionRejectsMalformed(t *testing.T) {
	for _, data := range []string{
		"",
		"unknown",
		"approve_",
		"approve_abc",
		"approve_-5",
		"approve_0",
		"reject_1x",
		"add_comment_",
		"view_comments_abc",
		"createpost",
	} {
		if got, ok := ParseAction(data); ok {
			t.Errorf("ParseAction(%q) = %#v, want rejection", data, got)
		}
	}
}

func TestParseStartParam(t *testing.T) {
	if got, ok := ParseStartParam("view_post_5"); !ok || got != (ViewPostParam{PostID: 5}) {
		t.Errorf("view_post_5 = %#v, %v", got, ok)
	}
	if got, ok := ParseStartParam("comment_post_12"); !ok || got != (CommentPostParam{PostID: 12}) {
		t.Errorf("comment_post_12 = %#v, %v", got, ok)
	}
	for _, payload := range []string{"", "view_post_", "view_post_x", "comment_post_-1", "something"} {
		if got, ok := ParseStartParam(payload); ok {
			t.Errorf("ParseStartParam(%q) = %#v, want rejection", payload, got)
		}
	}
}
