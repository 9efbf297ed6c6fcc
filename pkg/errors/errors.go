package errors

import "fmt"

var (
	// Generales
	ErrNotFound   = fmt.Errorf("registro no encontrado")
	ErrBadRequest = fmt.Errorf("solicitud inválida")

	// Dominio
	ErrEquipmentAssigned = fmt.Errorf("no se puede eliminar un equipo asignado a una estación; primero hay que desasignarlo")
	ErrForbidden         = fmt.Errorf("acceso denegado")
	ErrActorNotFound     = fmt.Errorf("usuario actor no encontrado")
)

// HttpError lleva el código HTTP junto con el mensaje para el cliente
// y la causa original para los logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}
