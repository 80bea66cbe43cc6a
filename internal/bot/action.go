package bot

import (
	"strconv"
	"strings"
)

// Action is a decoded callback payload. The set of variants is closed:
// every inline button the bot emits decodes into exactly one of them,
// and handlers switch exhaustively instead of re-parsing strings.
type Action interface {
	isAction()
}

type (
	// CreatePostAction starts the two-step post dialogue.
	CreatePostAction struct{}
	// SkipImageAction skips the image step of the post dialogue.
	SkipImageAction struct{}
	// CancelAction abandons the current dialogue.
	CancelAction struct{}
	// MyStatsAction shows the acting user's posting statistics.
	MyStatsAction struct{}
	// AboutAction shows the bot description.
	AboutAction struct{}
	// BackToMenuAction returns to the main menu.
	BackToMenuAction struct{}
	// ApproveAction approves a pending post.
	ApproveAction struct{ PostID int64 }
	// RejectAction rejects a pending post.
	RejectAction struct{ PostID int64 }
	// AddCommentAction starts the comment dialogue for a post.
	AddCommentAction struct{ PostID int64 }
	// ViewCommentsAction lists the comments on a post.
	ViewCommentsAction struct{ PostID int64 }
)

func (CreatePostAction) isAction()   {}
func (SkipImageAction) isAction()    {}
func (CancelAction) isAction()       {}
func (MyStatsAction) isAction()      {}
func (AboutAction) isAction()        {}
func (BackToMenuAction) isAction()   {}
func (ApproveAction) isAction()      {}
func (RejectAction) isAction()       {}
func (AddCommentAction) isAction()   {}
func (ViewCommentsAction) isAction() {}

// Callback payload identifiers. They are wire format: buttons already on
// published messages keep working only if these stay stable.
const (
	cbCreatePost   = "create_post"
	cbSkipImage    = "skip_image"
	cbCancel       = "cancel"
	cbMyStats      = "my_stats"
	cbAbout        = "about"
	cbBackToMenu   = "back_to_menu"
	cbApprove      = "approve_"
	cbReject       = "reject_"
	cbAddComment   = "add_comment_"
	cbViewComments = "view_comments_"
)

// ParseAction decodes a raw callback payload. Unknown or malformed
// payloads return false; the caller drops them.
func ParseAction(data string) (Action, bool) {
	data = strings.TrimPrefix(data, "\f")
	switch data {
	case cbCreatePost:
		return CreatePostAction{}, true
	case cbSkipImage:
		return SkipImageAction{}, true
	case cbCancel:
		return CancelAction{}, true
	case cbMyStats:
		return MyStatsAction{}, true
	case cbAbout:
		return AboutAction{}, true
	case cbBackToMenu:
		return BackToMenuAction{}, true
	}

	switch {
	case strings.HasPrefix(data, cbApprove):
		if id, ok := parseID(data, cbApprove); ok {
			return ApproveAction{PostID: id}, true
		}
	case strings.HasPrefix(data, cbReject):
		if id, ok := parseID(data, cbReject); ok {
			return RejectAction{PostID: id}, true
		}
	case strings.HasPrefix(data, cbAddComment):
		if id, ok := parseID(data, cbAddComment); ok {
			return AddCommentAction{PostID: id}, true
		}
	case strings.HasPrefix(data, cbViewComments):
		if id, ok := parseID(data, cbViewComments); ok {
			return ViewCommentsAction{PostID: id}, true
		}
	}
	return nil, false
}

// Deep-link start parameters carried by t.me links on published posts.
const (
	startViewPost    = "view_post_"
	startCommentPost = "comment_post_"
)

// StartParam is a decoded /start deep-link parameter.
type StartParam interface {
	isStartParam()
}

type (
	// ViewPostParam opens the comment list of a published post.
	ViewPostParam struct{ PostID int64 }
	// CommentPostParam starts the comment dialogue for a published post.
	CommentPostParam struct{ PostID int64 }
)

func (ViewPostParam) isStartParam()    {}
func (CommentPostParam) isStartParam() {}

// ParseStartParam decodes the payload of a /start command. An empty or
// unrecognized payload returns false and the plain welcome flow runs.
func ParseStartParam(payload string) (StartParam, bool) {
	switch {
	case strings.HasPrefix(payload, startViewPost):
		if id, ok := parseID(payload, startViewPost); ok {
			return ViewPostParam{PostID: id}, true
		}
	case strings.HasPrefix(payload, startCommentPost):
		if id, ok := parseID(payload, startCommentPost); ok {
			return CommentPostParam{PostID: id}, true
		}
	}
	return nil, false
}

func parseID(data, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
