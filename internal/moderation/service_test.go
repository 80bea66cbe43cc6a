package moderation

import (
	"context"
	"errors"
	"testing"

	"anonbot/internal/storage"
)

type fakeStore struct {
	posts map[int64]*storage.Post
}

func (f *fakeStore) GetPost(_ context.Context, postID int64) (*storage.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (f *fakeStore) UpdatePostStatus(_ context.Context, postID int64, status storage.Status, channelMessageID *int64) error {
	post, ok := f.posts[postID]
	if !ok {
		return storage.ErrNotFound
	}
	if post.Status != storage.StatusPending {
		return storage.ErrNotPending
	}
	post.Status = status
	if channelMessageID != nil {
		post.ChannelMessageID = channelMessageID
	}
	return nil
}

type fakePublisher struct {
	calls     int
	messageID int64
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, _ *storage.Post) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.messageID, nil
}

type fakeNotifier struct {
	approved []int64
	rejected []int64
	err      error
}

func (f *fakeNotifier) NotifyApproved(_ context.Context, userID int64) error {
	f.approved = append(f.approved, userID)
	return f.err
}

func (f *fakeNotifier) NotifyRejected(_ context.Context, userID int64) error {
	f.rejected = append(f.rejected, userID)
	return f.err
}

const (
	adminID  = int64(100)
	authorID = int64(200)
)

func fixture(status storage.Status) (*fakeStore, *fakePublisher, *fakeNotifier, *Service) {
	store := &fakeStore{posts: map[int64]*storage.Post{
		1: {ID: 1, UserID: authorID, Text: "body", Status: status},
	}}
	pub := &fakePublisher{messageID: 555}
	notif := &fakeNotifier{}
	svc := NewService(store, pub, notif, []int64{adminID})
	return store, pub, notif, svc
}

func TestApprove(t *testing.T) {
	store, pub, notif, svc := fixture(storage.StatusPending)

	post, err := svc.Approve(context.Background(), 1, adminID)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if post.Status != storage.StatusApproved {
		t.Errorf("Status = %q, want approved", post.Status)
	}
	if post.ChannelMessageID == nil || *post.ChannelMessageID != 555 {
		t.Errorf("ChannelMessageID = %v, want 555", post.ChannelMessageID)
	}
	if pub.calls != 1 {
		t.Errorf("Publish calls = %d, want 1", pub.calls)
	}
	if stored := store.posts[1]; stored.Status != storage.StatusApproved {
		t.Errorf("stored Status = %q, want approved", stored.Status)
	}
	if len(notif.approved) != 1 || notif.approved[0] != authorID {
		t.Errorf("approved notifications = %v, want [%d]", notif.approved, authorID)
	}
}

func TestApproveDeniesNonAdmin(t *testing.T) {
	_, pub, _, svc := fixture(storage.StatusPending)

	if _, err := svc.Approve(context.Background(), 1, 999); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("err = %v, want ErrNotAdmin", err)
	}
	if pub.calls != 0 {
		t.Fatalf("Publish calls = %d, want 0", pub.calls)
	}
}

func TestApproveUnknownPost(t *testing.T) {
	_, _, _, svc := fixture(storage.StatusPending)
	if _, err := svc.Approve(context.Background(), 42, adminID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
}

func TestApproveTwicePublishesOnce(t *testing.T) {
	_, pub, _, svc := fixture(storage.StatusPending)

	if _, err := svc.Approve(context.Background(), 1, adminID); err != nil {
		t.Fatalf("first Approve: %v", err)
	}
	if _, err := svc.Approve(context.Background(), 1, adminID); !errors.Is(err, ErrAlreadyModerated) {
		t.Fatalf("second Approve err = %v, want ErrAlreadyModerated", err)
	}
	if pub.calls != 1 {
		t.Fatalf("Publish calls = %d, want 1", pub.calls)
	}
}

func TestApproveAfterReject(t *testing.T) {
	_, pub, _, svc := fixture(storage.StatusRejected)

	if _, err := svc.Approve(context.Background(), 1, adminID); !errors.Is(err, ErrAlreadyModerated) {
		t.Fatalf("err = %v, want ErrAlreadyModerated", err)
	}
	if pub.calls != 0 {
		t.Fatalf("Publish calls = %d, want 0", pub.calls)
	}
}

func TestApprovePublishFailureKeepsPending(t *testing.T) {
	store, pub, notif, svc := fixture(storage.StatusPending)
	pub.err = errors.New("channel unavailable")

	if _, err := svc.Approve(context.Background(), 1, adminID); err == nil {
		t.Fatal("Approve succeeded despite publish failure")
	}
	if stored := store.posts[1]; stored.Status != storage.StatusPending {
		t.Errorf("stored Status = %q, want pending", stored.Status)
	}
	if len(notif.approved) != 0 {
		t.Errorf("approved notifications = %v, want none", notif.approved)
	}
}

func TestApproveNotifyFailureKeepsDecision(t *testing.T) {
	store, _, notif, svc := fixture(storage.StatusPending)
	notif.err = errors.New("user blocked the bot")

	if _, err := svc.Approve(context.Background(), 1, adminID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if stored := store.posts[1]; stored.Status != storage.StatusApproved {
		t.Errorf("stored Status = %q, want approved", stored.Status)
	}
}

func TestReject(t *testing.T) {
	store, pub, notif, svc := fixture(storage.StatusPending)

	post, err := svc.Reject(context.Background(), 1, adminID)
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if post.Status != storage.StatusRejected {
		t.Errorf("Status = %q, want rejected", post.Status)
	}
	if pub.calls != 0 {
		t.Errorf("Publish calls = %d, want 0", pub.calls)
	}
	if stored := store.posts[1]; stored.Status != storage.StatusRejected {
		t.Errorf("stored Status = %q, want rejected", stored.Status)
	}
	if len(notif.rejected) != 1 || notif.rejected[0] != authorID {
		t.Errorf("rejected notifications = %v, want [%d]", notif.rejected, authorID)
	}
}

func TestRejectDeniesNonAdmin(t *testing.T) {
	_, _, _, svc := fixture(storage.StatusPending)
	if _, err := svc.Reject(context.Background(), 1, 999); !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("err = %v, want ErrNotAdmin", err)
	}
}

func TestIsAdmin(t *testing.T) {
	_, _, _, svc := fixture(storage.StatusPending)
	if !svc.IsAdmin(adminID) {
		t.Error("IsAdmin(admin) = false")
	}
	if svc.IsAdmin(authorID) {
		t.Error("IsAdmin(author) = true")
	}
}
