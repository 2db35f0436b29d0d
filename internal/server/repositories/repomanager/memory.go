package repomanager

import "github.com/dmitrijs2005/chatsync/internal/server/repositories/memory"

var _ RepositoryManager = (*memory.Store)(nil)

// NewMemoryRepositoryManager returns an in-process store.
func NewMemoryRepositoryManager(opts ...memory.Option) RepositoryManager {
	return memory.NewStore(opts...)
}
