package local

import (
	"sync"

	"gitlab.mdcatapult.io/informatics/software-engineering/coreference-annotation/lib/cache"
)

func New() Client {
	return &local{
		store: make(map[string]*cache.Entry),
		mut:   &sync.RWMutex{},
	}
}

type Client interface {
	Get(key string) *cache.Entry
	Set(key string, entry *cache.Entry)
	Delete(key string)
}

type local struct {
	store map[string]*cache.Entry
	mut   *sync.RWMutex
}

func (l *local) Get(key string) *cache.Entry {
	l.mut.RLock()
	defer l.mut.RUnlock()

	entry, ok := l.store[key]
	if !ok {
		return nil
	}

	return entry
}

func (l *local) Set(key string, entry *cache.Entry) {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.store[key] = entry
}

func (l *local) Delete(key string) {
	l.mut.Lock()
	defer l.mut.Unlock()

	delete(l.store, key)
}
