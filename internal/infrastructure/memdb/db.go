package memdb

import (
	"context"
	"errors"
	"sync"

	"equipment-api/internal/entities"

	"go.uber.org/zap"
)

var ErrClosed = errors.New("memdb: база данных закрыта")

// DB - единственное хранилище сервиса. Все чтения и записи идут через View/Update,
// которые сериализуют запись одним RWMutex.
type DB struct {
	mu     sync.RWMutex
	closed bool
	logger *zap.Logger

	equipments          *Table[entities.Equipment]
	parameters          *Table[entities.Parameter]
	equipmentParameters *Index
}

// Tx - представление базы внутри View/Update. После выхода из колбэка его нельзя хранить.
type Tx struct {
	Equipments *Table[entities.Equipment]
	Parameters *Table[entities.Parameter]

	// EquipmentParameters: Equipment.ID -> Parameter.ID по Parameter.EquipmentID.
	EquipmentParameters *Index
}

type Stats struct {
	Equipments int `json:"equipment"`
	Parameters int `json:"parameters"`
}

func Open(logger *zap.Logger) *DB {
	db := &DB{
		logger:              logger,
		equipments:          newTable[entities.Equipment](),
		parameters:          newTable[entities.Parameter](),
		equipmentParameters: newIndex(),
	}
	logger.Info("memdb: хранилище открыто")
	return db
}

// Close можно вызывать повторно. После Close все вызовы возвращают ErrClosed.
func (db *DB) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return nil
	}
	db.closed = true
	db.logger.Info("memdb: хранилище закрыто",
		zap.Int("equipments", db.equipments.Len()),
		zap.Int("parameters", db.parameters.Len()),
	)
	return nil
}

func (db *DB) View(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	if db.closed {
		return ErrClosed
	}
	return fn(db.tx())
}

// Update выполняет fn под эксклюзивной блокировкой. Отката нет: fn проверяет
// условия до того, как что-то менять.
func (db *DB) Update(ctx context.Context, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.closed {
		return ErrClosed
	}
	return fn(db.tx())
}

func (db *DB) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := db.View(ctx, func(tx *Tx) error {
		st.Equipments = tx.Equipments.Len()
		st.Parameters = tx.Parameters.Len()
		return nil
	})
	return st, err
}

func (db *DB) tx() *Tx {
	return &Tx{
		Equipments:          db.equipments,
		Parameters:          db.parameters,
		EquipmentParameters: db.equipmentParameters,
	}
}
