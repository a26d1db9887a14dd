// Package session - состояние клиента: вкладка, калькуляторы профиля и
// ожидаемый ботом ввод
package session

import (
	"context"

	"github.com/kspsusmitha/fitness-app/internal/calculator"
)

// Awaiting - какое поле бот ждёт следующим сообщением
type Awaiting string

const (
	AwaitingNone     Awaiting = ""
	AwaitingDistance Awaiting = "distance"
	AwaitingProtein  Awaiting = "protein"
)

type State struct {
	Tab      string             `json:"tab"`
	Profile  calculator.Profile `json:"profile"`
	Awaiting Awaiting           `json:"awaiting,omitempty"`
}

// NewState - состояние нового сеанса; пустая вкладка означает Home
func NewState() *State {
	return &State{}
}

type Store interface {
	// Load для неизвестного ключа отдаёт новое состояние
	Load(ctx context.Context, key string) (*State, error)
	Save(ctx context.Context, key string, state *State) error
	Delete(ctx context.Context, key string) error
}
