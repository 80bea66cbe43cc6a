package gate

import (
	"context"
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"
)

type fakeMemberClient struct {
	role tele.MemberStatus
	err  error
}

func (f *fakeMemberClient) ChatMemberOf(_, _ tele.Recipient) (*tele.ChatMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &tele.ChatMember{Role: f.role}, nil
}

func TestIsMemberRoles(t *testing.T) {
	tests := []struct {
		role tele.MemberStatus
		want bool
	}{
		{tele.Creator, true},
		{tele.Administrator, true},
		{tele.Member, true},
		{tele.Restricted, false},
		{tele.Left, false},
		{tele.Kicked, false},
	}
	for _, tt := range tests {
		g := New(&fakeMemberClient{role: tt.role}, -100123)
		if got := g.IsMember(context.Background(), 1); got != tt.want {
			t.Errorf("IsMember(role=%s) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestIsMemberFailsClosed(t *testing.T) {
	g := New(&fakeMemberClient{err: errors.New("api down")}, -100123)
	if g.IsMember(context.Background(), 1) {
		t.Fatal("IsMember = true on lookup failure, want false")
	}
}
