package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlx.Connect("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=on", path))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "0001_init.up.sql"))
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return New(db, Config{Path: path})
}

func seedUser(t *testing.T, store *Store, userID int64) {
	t.Helper()
	username := fmt.Sprintf("user%d", userID)
	if err := store.UpsertUser(context.Background(), userID, &username, "First"); err != nil {
		t.Fatalf("seed user %d: %v", userID, err)
	}
}

func TestUpsertUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedUser(t, store, 1)
	newName := "renamed"
	if err := store.UpsertUser(ctx, 1, &newName, "Second"); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	user, err := store.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.Username == nil || *user.Username != "renamed" {
		t.Errorf("Username = %v, want renamed", user.Username)
	}
	if user.FirstName != "Second" {
		t.Errorf("FirstName = %q, want Second", user.FirstName)
	}
}

func TestGetUserNotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetUser(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPostLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)

	image := "file-abc"
	id, err := store.CreatePost(ctx, 1, "hello", &image)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	post, err := store.GetPost(ctx, id)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post.Status != StatusPending {
		t.Errorf("Status = %q, want pending", post.Status)
	}
	if post.ImageFileID == nil || *post.ImageFileID != "file-abc" {
		t.Errorf("ImageFileID = %v, want file-abc", post.ImageFileID)
	}

	msgID := int64(777)
	if err := store.UpdatePostStatus(ctx, id, StatusApproved, &msgID); err != nil {
		t.Fatalf("UpdatePostStatus: %v", err)
	}
	post, _ = store.GetPost(ctx, id)
	if post.Status != StatusApproved {
		t.Errorf("Status = %q, want approved", post.Status)
	}
	if post.ChannelMessageID == nil || *post.ChannelMessageID != 777 {
		t.Errorf("ChannelMessageID = %v, want 777", post.ChannelMessageID)
	}
}

func TestUpdatePostStatusOnlyOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)

	id, _ := store.CreatePost(ctx, 1, "post", nil)
	if err := store.UpdatePostStatus(ctx, id, StatusRejected, nil); err != nil {
		t.Fatalf("first transition: %v", err)
	}
	if err := store.UpdatePostStatus(ctx, id, StatusApproved, nil); !errors.Is(err, ErrNotPending) {
		t.Fatalf("second transition err = %v, want ErrNotPending", err)
	}
	post, _ := store.GetPost(ctx, id)
	if post.Status != StatusRejected {
		t.Errorf("Status = %q, want rejected to stick", post.Status)
	}
}

func TestUpdatePostStatusNotFound(t *testing.T) {
	store := newTestStore(t)
	err := store.UpdatePostStatus(context.Background(), 404, StatusApproved, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestComments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)
	seedUser(t, store, 2)

	postID, _ := store.CreatePost(ctx, 1, "post", nil)
	for _, text := range []string{"first", "second", "third"} {
		if _, err := store.CreateComment(ctx, postID, 2, text); err != nil {
			t.Fatalf("CreateComment(%q): %v", text, err)
		}
	}

	comments, err := store.ListComments(ctx, postID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("len(comments) = %d, want 3", len(comments))
	}
	if comments[0].Text != "first" || comments[2].Text != "third" {
		t.Errorf("comments out of order: %q ... %q", comments[0].Text, comments[2].Text)
	}

	count, err := store.CountComments(ctx, postID)
	if err != nil {
		t.Fatalf("CountComments: %v", err)
	}
	if count != 3 {
		t.Errorf("CountComments = %d, want 3", count)
	}

	if err := store.DeleteComment(ctx, comments[1].ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if count, _ = store.CountComments(ctx, postID); count != 2 {
		t.Errorf("after delete: CountComments = %d, want 2", count)
	}
}

func TestListCommentsEmpty(t *testing.T) {
	store := newTestStore(t)
	comments, err := store.ListComments(context.Background(), 99)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("len = %d, want 0", len(comments))
	}
}

func TestDeletePostCascade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)

	postID, _ := store.CreatePost(ctx, 1, "post", nil)
	_, _ = store.CreateComment(ctx, postID, 1, "comment")

	if err := store.DeletePost(ctx, postID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if _, err := store.GetPost(ctx, postID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetPost err = %v, want ErrNotFound", err)
	}
	count, _ := store.CountComments(ctx, postID)
	if count != 0 {
		t.Fatalf("orphaned comments: %d", count)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)
	seedUser(t, store, 2)

	statuses := []Status{StatusApproved, StatusApproved, StatusRejected, StatusPending}
	for i, status := range statuses {
		id, _ := store.CreatePost(ctx, 1, fmt.Sprintf("post %d", i), nil)
		if status != StatusPending {
			if err := store.UpdatePostStatus(ctx, id, status, nil); err != nil {
				t.Fatalf("transition post %d: %v", id, err)
			}
		}
	}
	for i := 0; i < 3; i++ {
		_, _ = store.CreateComment(ctx, 1, 1, fmt.Sprintf("comment %d", i))
	}

	stats, err := store.UserStatsFor(ctx, 1)
	if err != nil {
		t.Fatalf("UserStatsFor: %v", err)
	}
	want := UserStats{TotalPosts: 4, ApprovedPosts: 2, RejectedPosts: 1, PendingPosts: 1, TotalComments: 3}
	if *stats != want {
		t.Errorf("UserStats = %+v, want %+v", *stats, want)
	}

	empty, err := store.UserStatsFor(ctx, 2)
	if err != nil {
		t.Fatalf("UserStatsFor(2): %v", err)
	}
	if *empty != (UserStats{}) {
		t.Errorf("UserStats for inactive user = %+v, want zeros", *empty)
	}

	global, err := store.GlobalStatsAll(ctx)
	if err != nil {
		t.Fatalf("GlobalStatsAll: %v", err)
	}
	wantGlobal := GlobalStats{TotalUsers: 2, TotalPosts: 4, ApprovedPosts: 2, RejectedPosts: 1, PendingPosts: 1, TotalComments: 3}
	if *global != wantGlobal {
		t.Errorf("GlobalStats = %+v, want %+v", *global, wantGlobal)
	}
}

func TestSearchPostsApprovedOnly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)

	approvedID, _ := store.CreatePost(ctx, 1, "sunset over the bay", nil)
	_ = store.UpdatePostStatus(ctx, approvedID, StatusApproved, nil)
	_, _ = store.CreatePost(ctx, 1, "sunset but pending", nil)

	posts, err := store.SearchPosts(ctx, "sunset", 10)
	if err != nil {
		t.Fatalf("SearchPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != approvedID {
		t.Fatalf("SearchPosts = %+v, want only the approved post", posts)
	}
}

func TestListRecentApproved(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)

	id, _ := store.CreatePost(ctx, 1, "published", nil)
	_ = store.UpdatePostStatus(ctx, id, StatusApproved, nil)
	_, _ = store.CreateComment(ctx, id, 1, "one")
	_, _ = store.CreateComment(ctx, id, 1, "two")

	posts, err := store.ListRecentApproved(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentApproved: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("len = %d, want 1", len(posts))
	}
	if posts[0].CommentCount != 2 {
		t.Errorf("CommentCount = %d, want 2", posts[0].CommentCount)
	}
}

func TestPurgeRejectedPosts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)

	oldID, _ := store.CreatePost(ctx, 1, "old rejected", nil)
	_ = store.UpdatePostStatus(ctx, oldID, StatusRejected, nil)
	if _, err := store.db.ExecContext(ctx,
		`UPDATE posts SET created_at = datetime('now', '-60 days') WHERE post_id = ?`, oldID); err != nil {
		t.Fatalf("age post: %v", err)
	}

	freshID, _ := store.CreatePost(ctx, 1, "fresh rejected", nil)
	_ = store.UpdatePostStatus(ctx, freshID, StatusRejected, nil)

	deleted, err := store.PurgeRejectedPosts(ctx, 30)
	if err != nil {
		t.Fatalf("PurgeRejectedPosts: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}
	if _, err := store.GetPost(ctx, oldID); !errors.Is(err, ErrNotFound) {
		t.Errorf("old post survived purge")
	}
	if _, err := store.GetPost(ctx, freshID); err != nil {
		t.Errorf("fresh post purged: %v", err)
	}
}

func TestBackup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, 1)

	dir := t.TempDir()
	path, err := store.Backup(ctx, dir)
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat backup: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("backup file is empty")
	}
}
