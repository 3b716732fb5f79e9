package errors

import "fmt"

var (
	// Авторизация
	ErrUnauthorized = fmt.Errorf("Unauthorized")

	// Общие
	ErrNotFound         = fmt.Errorf("Item not found")
	ErrBadRequest       = fmt.Errorf("Bad request")
	ErrMethodNotAllowed = fmt.Errorf("Method not allowed")
)

// HttpError несёт код и сообщение для клиента плюс внутреннюю ошибку и контекст
// только для логов. Наружу уходит исключительно Message.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context ...map[string]interface{}) *HttpError {
	httpErr := &HttpError{Code: code, Message: message, Err: err}
	if len(context) > 0 {
		httpErr.Context = context[0]
	}
	return httpErr
}
