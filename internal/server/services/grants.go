package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/chatsync/internal/common"
	"github.com/dmitrijs2005/chatsync/internal/server/authz"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/users"
)

// widestGrant returns the broadest possession the caller's role holds for
// action on resource. A role holding neither gets common.ErrorForbidden.
func widestGrant(ctx context.Context, repo users.Repository, userID string, action authz.Action, resource authz.Resource) (authz.Possession, error) {
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	for _, poss := range []authz.Possession{authz.Any, authz.Own} {
		_, err := authz.Can(user.Role, authz.Scope{Action: action, Possession: poss, Resource: resource})
		if err == nil {
			return poss, nil
		}
		if !errors.Is(err, common.ErrorForbidden) {
			return "", err
		}
	}
	return "", common.ErrorForbidden
}
