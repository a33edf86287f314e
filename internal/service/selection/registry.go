package selection

import "sync"

// Registry реестр селекторов по идентификатору сессии.
// Каждая сессия держит собственный селектор; общего изменяемого состояния
// между сессиями нет — за консистентность ёмкости слотов между
// конкурентными абитуриентами отвечает backend.
type Registry struct {
	mu        sync.Mutex
	selectors map[string]*Selector

	bookUC BookInterviewUseCase
	logger Logger
}

// NewRegistry создает новый реестр селекторов
func NewRegistry(bookUC BookInterviewUseCase, logger Logger) *Registry {
	return &Registry{
		selectors: make(map[string]*Selector),
		bookUC:    bookUC,
		logger:    logger,
	}
}

// Get возвращает селектор сессии, создавая его при первом обращении
func (r *Registry) Get(sessionID string) *Selector {
	r.mu.Lock()
	defer r.mu.Unlock()

	sel := r.selectors[sessionID]
	if sel == nil {
		sel = NewSelector(r.bookUC, nil, r.logger)
		r.selectors[sessionID] = sel
	}
	return sel
}

// Remove удаляет селектор сессии (logout)
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.selectors, sessionID)
}
