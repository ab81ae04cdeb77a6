// Package catalog хранит список машин, загруженный один раз при старте.
//
// Записи — непрозрачные JSON-значения: сервис не смотрит внутрь, только
// сохраняет порядок и отдает их обратно.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "github.com/psds-microservice/vehicle-service/internal/errors"
)

// Vehicles — неизменяемый упорядоченный список записей. Нулевое значение — пустой список.
type Vehicles struct {
	records []json.RawMessage
}

// New копирует records в Vehicles
func New(records []json.RawMessage) Vehicles {
	out := make([]json.RawMessage, len(records))
	for i, r := range records {
		out[i] = cloneRaw(r)
	}
	return Vehicles{records: out}
}

func (v Vehicles) Len() int {
	return len(v.records)
}

// At возвращает копию i-й записи
func (v Vehicles) At(i int) json.RawMessage {
	return cloneRaw(v.records[i])
}

// MarshalJSON кодирует список JSON-массивом в порядке загрузки
func (v Vehicles) MarshalJSON() ([]byte, error) {
	if v.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.records)
}

func cloneRaw(r json.RawMessage) json.RawMessage {
	if r == nil {
		return nil
	}
	out := make(json.RawMessage, len(r))
	copy(out, r)
	return out
}

// Loader поставляет список машин при старте
type Loader interface {
	Load() (Vehicles, error)
}

// FileLoader читает JSON-массив записей из Path
type FileLoader struct {
	Path string
}

func (l FileLoader) Load() (Vehicles, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return Vehicles{}, fmt.Errorf("%w: %s: %v", apperrors.ErrDataNotFound, l.Path, err)
	}
	return Parse(data)
}

// Parse разбирает JSON-массив записей. Верхний уровень не-массив — ErrDataMalformed.
func Parse(data []byte) (Vehicles, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return Vehicles{}, fmt.Errorf("%w: %v", apperrors.ErrDataMalformed, err)
	}
	// "null" разбирается в nil без ошибки
	if records == nil {
		return Vehicles{}, fmt.Errorf("%w: top-level value is not an array", apperrors.ErrDataMalformed)
	}
	return Vehicles{records: records}, nil
}
