package saves

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DedS3t/cashflow-backend/app/models"
	log "github.com/sirupsen/logrus"
)

// SlotCount is the number of manual save slots scanned by ListSaves.
const SlotCount = 5

const autoSaveKey = "autosave"

// TimeLayout is the ISO-8601 form used for savedAt.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

var ErrNotFound = errors.New("save not found")

// Store is the key-value backend. Get returns ErrNotFound for absent keys.
type Store interface {
	Get(key string) (string, error)
	Set(key string, value string) error
	Del(key string) error
	Exists(key string) (bool, error)
}

// Adapter reads and writes whole game states under slot keys. Failures are
// logged and reported as false; they never reach the caller as errors.
type Adapter struct {
	store  Store
	prefix string
	now    func() time.Time
}

func New(store Store, prefix string) *Adapter {
	return &Adapter{store: store, prefix: prefix, now: time.Now}
}

// WithClock replaces the timestamp source.
func (a *Adapter) WithClock(now func() time.Time) *Adapter {
	a.now = now
	return a
}

func (a *Adapter) SlotKey(slot int) string {
	return fmt.Sprintf("%ssave-%d", a.prefix, slot)
}

func (a *Adapter) AutoSaveKey() string {
	return a.prefix + autoSaveKey
}

func validSlot(slot int) bool {
	return slot >= 0 && slot < SlotCount
}

func (a *Adapter) Save(slot int, state models.GameState) bool {
	if !validSlot(slot) {
		log.WithField("slot", slot).Warn("save slot out of range")
		return false
	}
	return a.write(a.SlotKey(slot), state)
}

func (a *Adapter) Load(slot int) (models.GameState, bool) {
	if !validSlot(slot) {
		return models.GameState{}, false
	}
	return a.read(a.SlotKey(slot))
}

func (a *Adapter) AutoSave(state models.GameState) bool {
	return a.write(a.AutoSaveKey(), state)
}

func (a *Adapter) LoadAutoSave() (models.GameState, bool) {
	return a.read(a.AutoSaveKey())
}

func (a *Adapter) HasAutoSave() bool {
	ok, err := a.store.Exists(a.AutoSaveKey())
	if err != nil {
		log.WithError(err).WithField("key", a.AutoSaveKey()).Error("failed checking auto-save")
		return false
	}
	return ok
}

// ListSaves reports the populated slots. Slots Load would refuse are skipped.
func (a *Adapter) ListSaves() []models.SaveSummary {
	summaries := []models.SaveSummary{}
	for slot := 0; slot < SlotCount; slot++ {
		state, ok := a.read(a.SlotKey(slot))
		if !ok {
			continue
		}
		savedAt := state.SavedAt
		if savedAt == "" {
			savedAt = "Unknown"
		}
		names := make([]string, 0, len(state.Players))
		for _, p := range state.Players {
			names = append(names, p.Name)
		}
		summaries = append(summaries, models.SaveSummary{Slot: slot, SavedAt: savedAt, Players: names})
	}
	return summaries
}

func (a *Adapter) DeleteSave(slot int) bool {
	if !validSlot(slot) {
		return false
	}
	if err := a.store.Del(a.SlotKey(slot)); err != nil {
		log.WithError(err).WithField("slot", slot).Error("failed to delete saved game")
		return false
	}
	return true
}

func (a *Adapter) write(key string, state models.GameState) bool {
	state.SavedAt = a.now().UTC().Format(TimeLayout)
	raw, err := json.Marshal(state)
	if err != nil {
		log.WithError(err).WithField("key", key).Error("failed to encode game")
		return false
	}
	if err := a.store.Set(key, string(raw)); err != nil {
		log.WithError(err).WithField("key", key).Error("failed to save game")
		return false
	}
	return true
}

func (a *Adapter) read(key string) (models.GameState, bool) {
	raw, err := a.store.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).WithField("key", key).Error("failed to load game")
		}
		return models.GameState{}, false
	}
	var state models.GameState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		log.WithError(err).WithField("key", key).Error("failed to decode saved game")
		return models.GameState{}, false
	}
	if state.Turn < 1 || len(state.Board) == 0 {
		log.WithField("key", key).Error("saved game has no board or turn")
		return models.GameState{}, false
	}
	return state, true
}
