package navigation

import "fmt"

// Shell - состояние навигации одного клиента
type Shell struct {
	route  string
	active Tab
}

// NewShell открывает корневой маршрут на вкладке; пустая или неизвестная - Home
func NewShell(active Tab) *Shell {
	if !active.Valid() {
		active = TabHome
	}
	return &Shell{route: RootRoute, active: active}
}

func (s *Shell) Route() string {
	return s.route
}

func (s *Shell) HeaderShown() bool {
	return false
}

func (s *Shell) Active() Tab {
	return s.active
}

// Select меняет видимую вкладку, состояние экранов хранится не здесь
func (s *Shell) Select(tab Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTab, string(tab))
	}
	s.active = tab
	return nil
}

// Next и Prev листают вкладки по кругу
func (s *Shell) Next() Tab {
	s.active = tabs[(s.active.Index()+1)%len(tabs)]
	return s.active
}

func (s *Shell) Prev() Tab {
	s.active = tabs[(s.active.Index()+len(tabs)-1)%len(tabs)]
	return s.active
}
