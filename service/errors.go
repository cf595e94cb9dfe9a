package service

import "errors"

var (
	// ErrInvalidInput marca cualquier entrada fuera de rango o mal formada.
	// Se envuelve con detalle vía fmt.Errorf("%w: ...").
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrZeroCreditHours is the internal division guard: cumulative credit
	// hours would be zero. Input validation prevents it before any division,
	// so it never reaches a handler.
	ErrZeroCreditHours = errors.New("horas crédito acumuladas en cero")
)
