package wire

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/chatsync/internal/common"
)

// MemberKeySeparator joins room and user ids in a membership record id.
const MemberKeySeparator = ":"

// MemberKey identifies a membership row.
type MemberKey struct {
	RoomID string
	UserID string
}

func (k MemberKey) String() string {
	return k.RoomID + MemberKeySeparator + k.UserID
}

// ParseMemberKey splits a composite membership id at the first separator.
func ParseMemberKey(id string) (MemberKey, error) {
	room, user, ok := strings.Cut(id, MemberKeySeparator)
	if !ok || room == "" || user == "" {
		return MemberKey{}, fmt.Errorf("%w: malformed membership id %q", common.ErrorValidation, id)
	}
	return MemberKey{RoomID: room, UserID: user}, nil
}
