package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/model"
)

func TestMessageService_SubmitIsPublic(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMessageService(env.guard, env.stores, env.messages)
	owner := env.createUser(t, "owner@example.com")
	store := env.createStore(t, owner, "inbox")

	msg, err := svc.Submit(context.Background(), store.ID, &dto.MessageCreateReq{
		Name:    " Visitor ",
		Email:   "visitor@example.com",
		Message: " Hello there ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Visitor", msg.Name)
	assert.Equal(t, "Hello there", msg.Message)
	assert.False(t, msg.IsRead)

	_, err = svc.Submit(context.Background(), 9999, &dto.MessageCreateReq{Name: "a", Email: "a@b.co", Message: "m"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Submit(context.Background(), store.ID, &dto.MessageCreateReq{Name: "a", Email: "a@b.co", Message: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMessageService_Inbox(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMessageService(env.guard, env.stores, env.messages)
	owner := env.createUser(t, "owner@example.com")
	viewer := env.createUser(t, "viewer@example.com")
	stranger := env.createUser(t, "stranger@example.com")
	store := env.createStore(t, owner, "inbox")
	env.addMember(t, store, viewer, model.RoleViewer)

	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		msg, err := svc.Submit(context.Background(), store.ID, &dto.MessageCreateReq{
			Name: name, Email: name + "@example.com", Message: "hi",
		})
		require.NoError(t, err)
		ids = append(ids, msg.ID)
	}

	_, err := svc.List(asUser(stranger), store.ID, dto.MessageListReq{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	page, err := svc.List(asUser(viewer), store.ID, dto.MessageListReq{PageReq: dto.PageReq{Page: 1, PageSize: 2}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.List, 2)

	assert.ErrorIs(t, svc.MarkRead(asUser(viewer), store.ID, ids[0]), ErrAccessDenied)
	require.NoError(t, svc.MarkRead(asUser(owner), store.ID, ids[0]))

	unread, err := svc.List(asUser(owner), store.ID, dto.MessageListReq{Unread: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread.Total)

	require.NoError(t, svc.Delete(asUser(owner), store.ID, ids[1]))
	assert.ErrorIs(t, svc.Delete(asUser(owner), store.ID, ids[1]), ErrNotFound)

	// 其他店铺的留言不可操作
	other := env.createStore(t, owner, "other-inbox")
	assert.ErrorIs(t, svc.MarkRead(asUser(owner), other.ID, ids[2]), ErrNotFound)
}
