package memory

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type messagesRepo struct{ s *Store }

func (r messagesRepo) FindByID(_ context.Context, id string) (*models.Message, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(m), nil
}

func (r messagesRepo) ListByRooms(_ context.Context, roomIDs []string) ([]*models.Message, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := set(roomIDs)
	var result []*models.Message
	for _, m := range s.messages {
		if _, ok := want[m.RoomID]; ok {
			result = append(result, clone(m))
		}
	}
	sortByCreated(result, func(m *models.Message) (time.Time, string) { return m.CreatedAt, m.ID })
	return result, nil
}

func (r messagesRepo) ListBefore(_ context.Context, roomID string, before time.Time, limit int) ([]*models.Message, error) {
	s := r.s
	s.mu.RLock()
	var result []*models.Message
	for _, m := range s.messages {
		if m.RoomID == roomID && !m.IsDeleted && m.CreatedAt.Before(before) {
			result = append(result, clone(m))
		}
	}
	s.mu.RUnlock()

	sortByCreated(result, func(m *models.Message) (time.Time, string) { return m.CreatedAt, m.ID })
	slices.Reverse(result)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r messagesRepo) Upsert(_ context.Context, msg *models.Message) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	existing, ok := s.messages[msg.ID]
	if !ok {
		if _, ok := s.rooms[msg.RoomID]; !ok {
			return false, common.ErrorNotFound
		}
		c := clone(msg)
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		c.UpdatedAt, c.IsDeleted = now, false
		s.messages[msg.ID] = c
		return true, nil
	}
	if existing.IsDeleted || existing.UserID != msg.UserID || existing.RoomID != msg.RoomID {
		return false, common.ErrorConflict
	}
	existing.Cipher, existing.Type = msg.Cipher, msg.Type
	if msg.SentAt != nil {
		existing.SentAt = msg.SentAt
	}
	existing.UpdatedAt = now
	return false, nil
}

func (r messagesRepo) SoftDelete(_ context.Context, id, userID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok || m.IsDeleted || m.UserID != userID {
		return common.ErrorNotFound
	}
	m.IsDeleted, m.UpdatedAt = true, s.now()
	return nil
}

type receiptsRepo struct{ s *Store }

func (r receiptsRepo) FindByID(_ context.Context, id string) (*models.ReadReceipt, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rr, ok := s.receipts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(rr), nil
}

func (r receiptsRepo) ListChangedByRooms(_ context.Context, roomIDs []string, since time.Time) ([]*models.ReadReceipt, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := set(roomIDs)
	var result []*models.ReadReceipt
	for _, rr := range s.receipts {
		if _, ok := want[rr.RoomID]; ok && rr.UpdatedAt.After(since) {
			result = append(result, clone(rr))
		}
	}
	sortByCreated(result, func(rr *models.ReadReceipt) (time.Time, string) { return rr.CreatedAt, rr.ID })
	return result, nil
}

func (r receiptsRepo) LastSeenByUser(_ context.Context, userID string, roomIDs []string) (map[string]time.Time, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := set(roomIDs)
	result := make(map[string]time.Time)
	for _, rr := range s.receipts {
		if rr.UserID != userID || rr.IsDeleted || rr.SeenAt == nil {
			continue
		}
		if _, ok := want[rr.RoomID]; !ok {
			continue
		}
		if cur, ok := result[rr.RoomID]; !ok || rr.SeenAt.After(cur) {
			result[rr.RoomID] = *rr.SeenAt
		}
	}
	return result, nil
}

func (r receiptsRepo) Upsert(_ context.Context, rr *models.ReadReceipt) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	existing, ok := s.receipts[rr.ID]
	if !ok {
		if _, ok := s.messages[rr.MessageID]; !ok {
			return common.ErrorNotFound
		}
		c := clone(rr)
		c.CreatedAt, c.UpdatedAt, c.IsDeleted = now, now, false
		s.receipts[rr.ID] = c
		return nil
	}
	if existing.IsDeleted || existing.UserID != rr.UserID {
		return common.ErrorConflict
	}
	if rr.ReceivedAt != nil {
		existing.ReceivedAt = rr.ReceivedAt
	}
	if rr.SeenAt != nil {
		existing.SeenAt = rr.SeenAt
	}
	existing.UpdatedAt = now
	return nil
}

func (r receiptsRepo) SoftDelete(_ context.Context, id, userID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rr, ok := s.receipts[id]
	if !ok || rr.IsDeleted || rr.UserID != userID {
		return common.ErrorNotFound
	}
	rr.IsDeleted, rr.UpdatedAt = true, s.now()
	return nil
}

type attachmentsRepo struct{ s *Store }

func (r attachmentsRepo) FindByID(_ context.Context, id string) (*models.Attachment, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.attachments[id]
	if !ok || a.IsDeleted {
		return nil, common.ErrorNotFound
	}
	return clone(a), nil
}

func (r attachmentsRepo) ListByMessages(_ context.Context, messageIDs []string) ([]*models.Attachment, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := set(messageIDs)
	var result []*models.Attachment
	for _, a := range s.attachments {
		if _, ok := want[a.MessageID]; ok {
			result = append(result, clone(a))
		}
	}
	sortByCreated(result, func(a *models.Attachment) (time.Time, string) { return a.CreatedAt, a.ID })
	return result, nil
}

func (r attachmentsRepo) Upsert(_ context.Context, a *models.Attachment) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	existing, ok := s.attachments[a.ID]
	if !ok {
		if _, ok := s.messages[a.MessageID]; !ok {
			return common.ErrorNotFound
		}
		c := clone(a)
		c.CreatedAt, c.UpdatedAt = now, now
		s.attachments[a.ID] = c
		return nil
	}
	if existing.UserID != a.UserID {
		return common.ErrorConflict
	}
	existing.CipherURI, existing.Type, existing.Width, existing.Height = a.CipherURI, a.Type, a.Width, a.Height
	existing.UpdatedAt = now
	return nil
}

type devicesRepo struct{ s *Store }

func (r devicesRepo) DeleteByToken(_ context.Context, token string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.devices, token)
	return nil
}

func (r devicesRepo) Create(_ context.Context, d *models.Device) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.devices[d.Token]; ok {
		return common.ErrorAlreadyExists
	}
	d.CreatedAt = s.now()
	s.devices[d.Token] = clone(d)
	return nil
}

func (r devicesRepo) DeleteByTokens(_ context.Context, userID string, tokens []string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tokens {
		if d, ok := s.devices[t]; ok && d.UserID == userID {
			delete(s.devices, t)
		}
	}
	return nil
}

func (r devicesRepo) ListByUsers(_ context.Context, userIDs []string, platform models.DevicePlatform) ([]*models.Device, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := set(userIDs)
	var result []*models.Device
	for _, d := range s.devices {
		if _, ok := want[d.UserID]; ok && d.Platform == platform {
			result = append(result, clone(d))
		}
	}
	sortByCreated(result, func(d *models.Device) (time.Time, string) { return d.CreatedAt, d.Token })
	return result, nil
}
