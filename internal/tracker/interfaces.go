package tracker

import (
	"github.com/ytget/video-tracker/internal/model"
)

// Persister writes the whole state somewhere durable. *store.Store implements it.
type Persister interface {
	Save(state *model.TrackerState) error
}

// Dispatcher is the surface shells depend on.
type Dispatcher interface {
	Dispatch(ev Event) Result
	SetUpdateCallback(func(Result))
	Folder() string
	Files() []string
	Record(name string) (model.VideoRecord, bool)
	Summary() map[model.WatchStatus]int
	Stale() []string
	Close() error
}
