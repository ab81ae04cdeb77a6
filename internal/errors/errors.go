package errors

import "errors"

// Ошибки старта процесса. cmd печатает их и завершает процесс с ненулевым кодом.
var (
	ErrDataNotFound  = errors.New("vehicle data file not found")
	ErrDataMalformed = errors.New("vehicle data file malformed")
	ErrListen        = errors.New("listen failed")
)
