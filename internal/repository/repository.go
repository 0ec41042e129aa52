package repository

import "asks_web/internal/storage"

type Repositories struct {
	Ask AskRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Ask: NewAskRepository(db),
	}
}
