package bot

import (
	"errors"

	tele "gopkg.in/telebot.v4"

	"anonbot/internal/posting"
	"anonbot/internal/session"
	"anonbot/internal/storage"
	"anonbot/internal/telegram/helpers"
)

// onAddComment starts the comment dialogue for a published post.
func (b *Bot) onAddComment(c tele.Context, postID int64) error {
	if !b.requireMember(c) {
		return nil
	}
	ctx := helpers.BuildContext(c)

	post, err := b.store.GetPost(ctx, postID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && post.Status != storage.StatusApproved) {
		return helpers.RespondAlert(c, textPostNotFound)
	}
	if err != nil {
		return err
	}

	userID := c.Sender().ID
	b.sessions.SetTargetPost(userID, postID)
	b.sessions.SetState(userID, session.StateAwaitingCommentText)
	if err := helpers.SendHTML(c, commentPromptText(postID), cancelMarkup()); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{})
}

// onViewComments lists a post's comments in response to a button press.
func (b *Bot) onViewComments(c tele.Context, postID int64) error {
	if !b.requireMember(c) {
		return nil
	}
	if err := b.sendCommentsView(c, postID); err != nil {
		return err
	}
	return c.Respond(&tele.CallbackResponse{})
}

// sendCommentsView sends the comment list of a post, or an alert when the
// post is unknown. Shared by the callback and the deep-link entry.
func (b *Bot) sendCommentsView(c tele.Context, postID int64) error {
	ctx := helpers.BuildContext(c)

	post, err := b.store.GetPost(ctx, postID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && post.Status != storage.StatusApproved) {
		if c.Callback() != nil {
			return helpers.RespondAlert(c, textPostNotFound)
		}
		return helpers.SendHTML(c, textPostNotFound)
	}
	if err != nil {
		return err
	}

	comments, err := b.store.ListComments(ctx, postID)
	if err != nil {
		return err
	}
	return helpers.SendHTML(c, commentsText(postID, comments), backToPostMarkup(postID))
}

// submitComment finishes the comment dialogue.
func (b *Bot) submitComment(c tele.Context, text string) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID
	sess := b.sessions.Get(userID)
	postID := sess.TargetPostID

	_, err := b.posts.SubmitComment(ctx, userID, postID, text)
	switch {
	case errors.Is(err, posting.ErrEmptyText):
		return helpers.SendHTML(c, commentPromptText(postID), cancelMarkup())
	case errors.Is(err, posting.ErrPostNotFound), errors.Is(err, posting.ErrNotCommentable):
		b.sessions.Clear(userID)
		return helpers.SendHTML(c, textPostNotFound, backToMenuMarkup())
	case err != nil:
		b.sessions.Clear(userID)
		return err
	}

	b.sessions.Clear(userID)
	return helpers.SendHTML(c, textCommentAccepted, backToPostMarkup(postID))
}
