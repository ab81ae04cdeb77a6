package command

import (
	"github.com/psds-microservice/vehicle-service/internal/catalog"
)

// Check загружает данные так же, как сервер при старте, и возвращает число записей.
func Check(loader catalog.Loader) (int, error) {
	vehicles, err := loader.Load()
	if err != nil {
		return 0, err
	}
	return vehicles.Len(), nil
}
