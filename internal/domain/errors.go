package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrLotExpired         = errors.New("lote vencido")
	ErrSessionClosed      = errors.New("la sesión de caja no está abierta")
	ErrSessionOpen        = errors.New("ya existe una sesión de caja abierta")
	ErrPaymentMismatch    = errors.New("los pagos no cubren el total de la venta")
	ErrPromotionInvalid   = errors.New("promoción inválida o fuera de vigencia")
)
