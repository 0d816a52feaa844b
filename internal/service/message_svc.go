package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

// MessageService 店面留言
type MessageService struct {
	guard    *AccessGuard
	stores   repository.StoreRepository
	messages repository.MessageRepository
}

func NewMessageService(guard *AccessGuard, stores repository.StoreRepository, messages repository.MessageRepository) *MessageService {
	return &MessageService{guard: guard, stores: stores, messages: messages}
}

// Submit 访客提交联系表单，无需登录
func (s *MessageService) Submit(ctx context.Context, storeID int64, req *dto.MessageCreateReq) (*model.StoreMessage, error) {
	if _, found, err := s.stores.GetOwnerID(ctx, storeID); err != nil {
		return nil, err
	} else if !found {
		return nil, notFound("店铺")
	}

	msg := &model.StoreMessage{
		StoreID: storeID,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, invalidInput("姓名、邮箱和留言内容不能为空")
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("保存留言失败: %w", err)
	}
	return msg, nil
}

// List 留言列表，需要 Viewer
func (s *MessageService) List(ctx context.Context, storeID int64, req dto.MessageListReq) (*dto.PageResp[model.StoreMessage], error) {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleViewer); err != nil {
		return nil, err
	}

	list, total, err := s.messages.List(ctx, repository.MessageFilter{
		StoreID:    storeID,
		UnreadOnly: req.Unread,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("查询留言失败: %w", err)
	}
	return dto.NewPageResp(list, total, req.Page, req.PageSize), nil
}

// MarkRead 标记已读，需要 Editor
func (s *MessageService) MarkRead(ctx context.Context, storeID, messageID int64) error {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor); err != nil {
		return err
	}
	if err := s.ensureExists(ctx, storeID, messageID); err != nil {
		return err
	}
	return s.messages.MarkRead(ctx, storeID, messageID)
}

// Delete 删除留言，需要 Editor
func (s *MessageService) Delete(ctx context.Context, storeID, messageID int64) error {
	if _, err := s.guard.EnsureAccess(ctx, storeID, model.RoleEditor); err != nil {
		return err
	}
	if err := s.ensureExists(ctx, storeID, messageID); err != nil {
		return err
	}
	return s.messages.Delete(ctx, storeID, messageID)
}

func (s *MessageService) ensureExists(ctx context.Context, storeID, messageID int64) error {
	msg, err := s.messages.GetByID(ctx, storeID, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return notFound("留言")
	}
	return nil
}
