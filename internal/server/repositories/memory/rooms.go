package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type roomsRepo struct{ s *Store }

func (r roomsRepo) FindByID(_ context.Context, id string) (*models.Room, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(room), nil
}

func (r roomsRepo) FindByIDs(_ context.Context, ids []string) ([]*models.Room, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Room
	for id := range set(ids) {
		if room, ok := s.rooms[id]; ok {
			result = append(result, clone(room))
		}
	}
	sortByCreated(result, func(r *models.Room) (time.Time, string) { return r.CreatedAt, r.ID })
	return result, nil
}

func (r roomsRepo) Upsert(_ context.Context, room *models.Room) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	existing, ok := s.rooms[room.ID]
	if !ok {
		c := clone(room)
		c.CreatedAt, c.UpdatedAt, c.IsDeleted = now, now, false
		s.rooms[room.ID] = c
		return nil
	}
	if existing.IsDeleted {
		return common.ErrorConflict
	}
	existing.Name, existing.PictureURI, existing.UpdatedAt = room.Name, room.PictureURI, now
	return nil
}

func (r roomsRepo) SoftDelete(_ context.Context, id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok || room.IsDeleted {
		return common.ErrorNotFound
	}
	room.IsDeleted, room.UpdatedAt = true, s.now()
	return nil
}

func (r roomsRepo) Touch(_ context.Context, id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if room, ok := s.rooms[id]; ok {
		room.UpdatedAt = s.now()
	}
	return nil
}

type membersRepo struct{ s *Store }

func (r membersRepo) Find(_ context.Context, roomID, userID string) (*models.Membership, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[pair{roomID, userID}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(m), nil
}

func (r membersRepo) IsMember(_ context.Context, roomID, userID string) (bool, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[pair{roomID, userID}]
	return ok && !m.IsDeleted, nil
}

func (r membersRepo) ListByUser(_ context.Context, userID string) ([]*models.Membership, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Membership
	for _, m := range s.members {
		if m.UserID == userID {
			result = append(result, clone(m))
		}
	}
	sortByCreated(result, func(m *models.Membership) (time.Time, string) { return m.CreatedAt, m.RoomID })
	return result, nil
}

func (r membersRepo) ListByRooms(_ context.Context, roomIDs []string) ([]*models.Membership, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := set(roomIDs)
	var result []*models.Membership
	for _, m := range s.members {
		if _, ok := want[m.RoomID]; ok {
			result = append(result, clone(m))
		}
	}
	sortByCreated(result, func(m *models.Membership) (time.Time, string) { return m.CreatedAt, m.RoomID + ":" + m.UserID })
	return result, nil
}

func (r membersRepo) Upsert(_ context.Context, roomID, userID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[roomID]; !ok {
		return common.ErrorNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return common.ErrorNotFound
	}
	now := s.now()
	if m, ok := s.members[pair{roomID, userID}]; ok {
		m.IsDeleted, m.UpdatedAt = false, now
		return nil
	}
	s.members[pair{roomID, userID}] = &models.Membership{RoomID: roomID, UserID: userID, CreatedAt: now, UpdatedAt: now}
	return nil
}

func (r membersRepo) SoftDelete(_ context.Context, roomID, userID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[pair{roomID, userID}]
	if !ok || m.IsDeleted {
		return common.ErrorNotFound
	}
	m.IsDeleted, m.UpdatedAt = true, s.now()
	return nil
}

type preferencesRepo struct{ s *Store }

func (r preferencesRepo) Find(_ context.Context, userID, roomID string) (*models.RoomPreferences, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prefs[pair{userID, roomID}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(p), nil
}

func (r preferencesRepo) ListByUser(_ context.Context, userID string) ([]*models.RoomPreferences, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.RoomPreferences
	for _, p := range s.prefs {
		if p.UserID == userID {
			result = append(result, clone(p))
		}
	}
	return result, nil
}

func (r preferencesRepo) ListByRoom(_ context.Context, roomID string) ([]*models.RoomPreferences, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.RoomPreferences
	for _, p := range s.prefs {
		if p.RoomID == roomID {
			result = append(result, clone(p))
		}
	}
	return result, nil
}

func (r preferencesRepo) Upsert(_ context.Context, p *models.RoomPreferences) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := pair{p.UserID, p.RoomID}
	c := clone(p)
	c.UpdatedAt = now
	if existing, ok := s.prefs[key]; ok {
		c.CreatedAt = existing.CreatedAt
	} else {
		c.CreatedAt = now
	}
	s.prefs[key] = c
	return nil
}
