package appointment

import "github.com/BruksfildServices01/salon-backoffice/internal/httperr"

func NotFound() error {
	return httperr.ErrNotFound("Cita no encontrada")
}

func UnknownClient() error {
	return httperr.ErrReference("ClienteId", "El cliente no existe")
}

func UnknownService() error {
	return httperr.ErrReference("ServicioId", "El servicio no existe")
}
