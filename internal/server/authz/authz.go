// Package authz holds the role grants and turns them into request-scoped
// permissions. Grants live in a casbin model and policy embedded in the
// binary. A Permission is a value: callers pass it to whatever needs to
// filter attributes instead of stashing it in shared state.
package authz

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/models"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Possession says whether the grant covers the caller's own records or any.
type Possession string

const (
	Own Possession = "own"
	Any Possession = "any"
)

type Resource string

const (
	ResourceAccount Resource = "account"
	ResourceRoom    Resource = "room"
	ResourceMessage Resource = "message"
)

// Scope is one action:possession:resource triple, e.g. "read:own:account".
type Scope struct {
	Action     Action
	Possession Possession
	Resource   Resource
}

func (s Scope) String() string {
	return string(s.Action) + ":" + string(s.Possession) + ":" + string(s.Resource)
}

func ParseScope(s string) (Scope, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Scope{}, fmt.Errorf("%w: malformed scope %q", common.ErrorValidation, s)
	}
	return Scope{Action: Action(parts[0]), Possession: Possession(parts[1]), Resource: Resource(parts[2])}, nil
}

//go:embed model.conf
var modelText string

//go:embed policy.csv
var policyText string

// allAttributes is the attribute placeholder used when checking a whole scope.
const allAttributes = "*"

var (
	enforcerOnce sync.Once
	enforcer     *casbin.Enforcer
	enforcerErr  error
)

// Enforcer returns the process-wide enforcer built from the embedded grants.
func Enforcer() (*casbin.Enforcer, error) {
	enforcerOnce.Do(func() {
		enforcer, enforcerErr = NewEnforcer(policyText)
	})
	return enforcer, enforcerErr
}

// NewEnforcer builds an enforcer over the embedded model with the given
// policy lines.
func NewEnforcer(policy string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("authz model: %w", err)
	}
	e, err := casbin.NewEnforcer(m, stringadapter.NewAdapter(policy))
	if err != nil {
		return nil, fmt.Errorf("authz policy: %w", err)
	}
	return e, nil
}

// Permission is the outcome of one check.
type Permission struct {
	Scope    Scope
	Granted  bool
	role     models.Role
	enforcer *casbin.Enforcer
}

// Can checks role against scope. An "any" grant also satisfies "own". The
// error is common.ErrorForbidden when nothing grants the scope.
func Can(role models.Role, scope Scope) (Permission, error) {
	e, err := Enforcer()
	if err != nil {
		return Permission{Scope: scope}, err
	}
	return check(e, role, scope)
}

func check(e *casbin.Enforcer, role models.Role, scope Scope) (Permission, error) {
	ok, err := enforce(e, role, scope, allAttributes)
	if err != nil {
		return Permission{Scope: scope}, err
	}
	if !ok {
		return Permission{Scope: scope}, fmt.Errorf("%w: %s may not %s", common.ErrorForbidden, role, scope)
	}
	return Permission{Scope: scope, Granted: true, role: role, enforcer: e}, nil
}

func enforce(e *casbin.Enforcer, role models.Role, scope Scope, attr string) (bool, error) {
	ok, err := e.Enforce(string(role), string(scope.Resource), string(scope.Action), string(scope.Possession), attr)
	if err != nil {
		return false, fmt.Errorf("authz enforce: %w", err)
	}
	return ok, nil
}

// Allowed reports whether attr may be exposed or written under p.
func (p Permission) Allowed(attr string) bool {
	if !p.Granted || p.enforcer == nil {
		return false
	}
	ok, err := enforce(p.enforcer, p.role, p.Scope, attr)
	return err == nil && ok
}

// Filter returns a copy of data without the attributes p denies.
func (p Permission) Filter(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if p.Allowed(k) {
			out[k] = v
		}
	}
	return out
}
