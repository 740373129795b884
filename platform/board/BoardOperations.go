package board

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/DedS3t/cashflow-backend/app/models"
)

// FastTrackSize is the number of spaces on the fast-track ring.
const FastTrackSize = 12

//go:embed board.json
var boardJSON []byte

var ErrNotFound = errors.New("not found")

// LoadSpaces returns a fresh copy of the rat-race layout.
func LoadSpaces() []models.BoardSpace {
	var spaces []models.BoardSpace
	if err := json.Unmarshal(boardJSON, &spaces); err != nil {
		panic(err)
	}
	return spaces
}

func GetByPos(pos int, spaces []models.BoardSpace) (models.BoardSpace, error) {
	if pos < 0 || pos >= len(spaces) {
		return models.BoardSpace{}, ErrNotFound
	}
	return spaces[pos], nil
}

// Wrap moves pos forward by steps around a ring of the given size.
func Wrap(pos, steps, size int) int {
	if size <= 0 {
		return pos
	}
	n := (pos + steps) % size
	if n < 0 {
		n += size
	}
	return n
}
