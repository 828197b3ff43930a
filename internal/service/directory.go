package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jask/courierapp/internal/form"
	"github.com/jask/courierapp/internal/record"
	"github.com/jask/courierapp/internal/store"
)

const defaultDateFormat = "01/02/2006"

// NoticeKind tells the UI how to style a notice.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
)

// Notice is the message shown after an operation completes.
type Notice struct {
	Text string
	Kind NoticeKind
}

// DirectoryService routes doctor mutations from the UI through the store.
type DirectoryService struct {
	Store      *store.Store
	Log        *zap.Logger
	DateFormat string
}

// Submit applies the open edit session.
func (s *DirectoryService) Submit(ctx context.Context, sess *form.Session) (Notice, error) {
	mode := sess.Mode()
	id := sess.EditingID()
	ch, err := sess.Submit(ctx, s.Store)
	if err != nil {
		s.logger().Info("submit rejected",
			zap.String("op", "submit"),
			zap.String("mode", mode.String()),
			zap.String("id", id),
			zap.Error(err))
		return Notice{}, err
	}
	s.logger().Info("doctor saved",
		zap.String("op", "submit"),
		zap.String("mode", mode.String()),
		zap.String("id", ch.Record.ID),
		zap.Int("count", len(ch.Collection)))
	if mode == form.Editing {
		return Notice{Text: "Doctor updated successfully!", Kind: NoticeSuccess}, nil
	}
	return Notice{Text: "Doctor added successfully!", Kind: NoticeSuccess}, nil
}

// DeletePrompt returns the confirmation question for removing id.
func (s *DirectoryService) DeletePrompt(ctx context.Context, id string) (string, error) {
	doc, err := s.Store.Read(ctx, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Are you sure you want to delete %s?", doc.Name), nil
}

// Delete removes id only once the user has confirmed.
func (s *DirectoryService) Delete(ctx context.Context, id string, confirmed bool) (Notice, error) {
	if !confirmed {
		s.logger().Debug("delete declined", zap.String("op", "delete"), zap.String("id", id))
		return Notice{}, record.ErrConfirmationDeclined
	}
	ch, err := s.Store.Delete(ctx, id)
	if err != nil {
		s.logger().Warn("delete failed", zap.String("op", "delete"), zap.String("id", id), zap.Error(err))
		return Notice{}, err
	}
	s.logger().Info("doctor deleted",
		zap.String("op", "delete"),
		zap.String("id", id),
		zap.Int("count", len(ch.Collection)))
	return Notice{Text: "Doctor deleted successfully!", Kind: NoticeSuccess}, nil
}

// ToggleStatus flips id between active and inactive.
func (s *DirectoryService) ToggleStatus(ctx context.Context, id string) (Notice, error) {
	ch, err := s.Store.ToggleStatus(ctx, id)
	if err != nil {
		s.logger().Warn("toggle failed", zap.String("op", "toggle"), zap.String("id", id), zap.Error(err))
		return Notice{}, err
	}
	s.logger().Info("status toggled",
		zap.String("op", "toggle"),
		zap.String("id", id),
		zap.String("status", string(ch.Record.Status)))
	return Notice{
		Text: fmt.Sprintf("%s is now %s", ch.Record.Name, ch.Record.Status),
		Kind: NoticeInfo,
	}, nil
}

// Details renders every field of id as plain text.
func (s *DirectoryService) Details(ctx context.Context, id string) (string, error) {
	doc, err := s.Store.Read(ctx, id)
	if err != nil {
		return "", err
	}
	layout := s.DateFormat
	if layout == "" {
		layout = defaultDateFormat
	}
	var b strings.Builder
	b.WriteString("Doctor Details:\n")
	fmt.Fprintf(&b, "Name: %s\n", doc.Name)
	fmt.Fprintf(&b, "Email: %s\n", doc.Email)
	fmt.Fprintf(&b, "Phone: %s\n", doc.Phone)
	fmt.Fprintf(&b, "Specialization: %s\n", doc.Specialization)
	fmt.Fprintf(&b, "Address: %s\n", doc.Address)
	fmt.Fprintf(&b, "Status: %s\n", doc.Status)
	fmt.Fprintf(&b, "Join Date: %s\n", doc.JoinDate.Format(layout))
	fmt.Fprintf(&b, "Total Orders: %d", doc.TotalOrders)
	return b.String(), nil
}

// IsDeclined reports whether err is a declined confirmation.
func IsDeclined(err error) bool {
	return errors.Is(err, record.ErrConfirmationDeclined)
}

func (s *DirectoryService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
