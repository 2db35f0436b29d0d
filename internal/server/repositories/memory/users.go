package memory

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type usersRepo struct{ s *Store }

func (r usersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; ok {
		return nil, common.ErrorAlreadyExists
	}
	for _, existing := range s.users {
		if !existing.IsDeleted && strings.EqualFold(existing.Email, u.Email) {
			return nil, common.ErrorAlreadyExists
		}
	}
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	s.users[u.ID] = clone(u)
	return u, nil
}

func (r usersRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok || u.IsDeleted {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

func (r usersRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if !u.IsDeleted && strings.EqualFold(u.Email, email) {
			return clone(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r usersRepo) FindByIDs(_ context.Context, ids []string) ([]*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.User
	for id := range set(ids) {
		if u, ok := s.users[id]; ok && !u.IsDeleted {
			result = append(result, clone(u))
		}
	}
	return result, nil
}

func (r usersRepo) UpdateProfile(_ context.Context, id string, p models.UserProfile) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.IsDeleted {
		return common.ErrorNotFound
	}
	u.Name, u.Email, u.PictureURI, u.PublicKey, u.DerivedSalt = p.Name, p.Email, p.PictureURI, p.PublicKey, p.DerivedSalt
	u.UpdatedAt = s.now()
	return nil
}

func (r usersRepo) TouchLastAccess(_ context.Context, id string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[id]; ok {
		now := s.now()
		u.LastAccessAt = &now
	}
	return nil
}

func (r usersRepo) Touch(_ context.Context, ids ...string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			u.UpdatedAt = now
		}
	}
	return nil
}

func (r usersRepo) Follow(_ context.Context, followerID, followingID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[followerID]; !ok {
		return common.ErrorNotFound
	}
	if _, ok := s.users[followingID]; !ok {
		return common.ErrorNotFound
	}
	s.follows[pair{followerID, followingID}] = struct{}{}
	return nil
}

func (r usersRepo) Unfollow(_ context.Context, followerID, followingID string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.follows, pair{followerID, followingID})
	return nil
}

func (r usersRepo) Followers(_ context.Context, userID string) ([]string, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for p := range s.follows {
		if p.b == userID {
			ids = append(ids, p.a)
		}
	}
	return ids, nil
}

func (r usersRepo) Following(_ context.Context, userID string) ([]string, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for p := range s.follows {
		if p.a == userID {
			ids = append(ids, p.b)
		}
	}
	return ids, nil
}

type tokensRepo struct{ s *Store }

func (r usersRepo) Search(_ context.Context, q models.UserQuery) ([]*models.User, error) {
	name, email := ilike(q.Name), ilike(q.Email)
	for _, o := range q.OrderBy {
		if o.Field != models.OrderByName && o.Field != models.OrderByEmail {
			return nil, fmt.Errorf("%w: cannot order users by %q", common.ErrorValidation, o.Field)
		}
	}

	s := r.s
	s.mu.RLock()
	var result []*models.User
	for _, u := range s.users {
		if u.IsDeleted || !name(u.Name) || !email(u.Email) {
			continue
		}
		result = append(result, clone(u))
	}
	s.mu.RUnlock()

	slices.SortFunc(result, func(a, b *models.User) int {
		for _, o := range q.OrderBy {
			x, y := a.Name, b.Name
			if o.Field == models.OrderByEmail {
				x, y = a.Email, b.Email
			}
			c := strings.Compare(x, y)
			if o.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return strings.Compare(a.ID, b.ID)
	})

	if q.Skip > 0 {
		result = result[min(q.Skip, len(result)):]
	}
	if q.Take > 0 && len(result) > q.Take {
		result = result[:q.Take]
	}
	return result, nil
}

// ilike compiles an SQL ILIKE pattern into a matcher. An empty pattern
// matches everything.
func ilike(pattern string) func(string) bool {
	if pattern == "" {
		return func(string) bool { return true }
	}
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, c := range pattern {
		switch c {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	re := regexp.MustCompile(b.String())
	return re.MatchString
}

func (r usersRepo) SetPasswordCode(_ context.Context, id, code string, expiresAt time.Time) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.IsDeleted {
		return common.ErrorNotFound
	}
	for otherID, other := range s.users {
		if otherID != id && other.PasswordCode != nil && *other.PasswordCode == code {
			return common.ErrorAlreadyExists
		}
	}
	u.PasswordCode, u.PasswordCodeExpiresAt = &code, &expiresAt
	return nil
}

func (r usersRepo) FindByPasswordCode(_ context.Context, code string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if !u.IsDeleted && u.PasswordCode != nil && *u.PasswordCode == code {
			return clone(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r usersRepo) ResetPassword(_ context.Context, id, passwordHash string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok || u.IsDeleted {
		return common.ErrorNotFound
	}
	u.Password = passwordHash
	u.PasswordCode, u.PasswordCodeExpiresAt = nil, nil
	u.UpdatedAt = s.now()
	return nil
}

func (r tokensRepo) Create(_ context.Context, userID, sessionID, token string, validity time.Duration) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.tokens[token] = &models.RefreshToken{UserID: userID, SessionID: sessionID, Token: token, Expires: now.Add(validity), CreatedAt: now}
	return nil
}

func (r tokensRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rt, ok := s.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(rt), nil
}

func (r tokensRepo) Delete(_ context.Context, token string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, token)
	return nil
}
