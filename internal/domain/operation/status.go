// Package operation contiene los servicios de dominio puros de la orden de
// trabajo: el grafo de estados y las reglas de acumulación de abonos.
package operation

// Estados de una operación, en el orden del ciclo de vida.
const (
	EstadoCotizacion   = "cotizacion"
	EstadoOrdenTrabajo = "orden_trabajo"
	EstadoPendiente    = "pendiente"
	EstadoEnProceso    = "en_proceso"
	EstadoTerminada    = "terminada"
	EstadoCompletada   = "completada"
	EstadoEntregada    = "entregada"
	EstadoPagada       = "pagada"
	EstadoAnulada      = "anulada"
)

// transitions es la tabla explícita de transiciones permitidas.
// Toda validación de cambio de estado pasa por CanTransition; ningún otro
// punto del código decide legalidad de transiciones.
var transitions = map[string][]string{
	EstadoCotizacion:   {EstadoOrdenTrabajo, EstadoAnulada},
	EstadoOrdenTrabajo: {EstadoPendiente, EstadoAnulada},
	EstadoPendiente:    {EstadoEnProceso, EstadoAnulada},
	EstadoEnProceso:    {EstadoTerminada, EstadoAnulada},
	EstadoTerminada:    {EstadoCompletada, EstadoAnulada},
	EstadoCompletada:   {EstadoEntregada, EstadoAnulada},
	EstadoEntregada:    {EstadoPagada, EstadoAnulada},
	EstadoPagada:       {},
	EstadoAnulada:      {},
}

// IsValid verifica que el estado pertenezca al conjunto conocido.
func IsValid(estado string) bool {
	_, ok := transitions[estado]
	return ok
}

// CanTransition indica si el cambio from -> to está permitido por el grafo.
// No hay saltos, no hay retrocesos y los estados terminales no se abandonan.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal indica si el estado es final (pagada o anulada).
func IsTerminal(estado string) bool {
	return estado == EstadoPagada || estado == EstadoAnulada
}

// CommitsStock indica si entrar al estado descuenta materiales del inventario.
// El compromiso ocurre cuando el trabajo inicia físicamente, no al cotizar.
func CommitsStock(to string) bool {
	return to == EstadoEnProceso
}

// Surveyable indica si el estado admite encuesta de satisfacción.
func Surveyable(estado string) bool {
	switch estado {
	case EstadoEntregada, EstadoPagada, EstadoCompletada:
		return true
	}
	return false
}

// ValidInitial indica si el estado puede usarse como estado inicial de una
// operación recién creada (flujo cotización-primero u orden directa).
func ValidInitial(estado string) bool {
	switch estado {
	case EstadoCotizacion, EstadoOrdenTrabajo, EstadoPendiente:
		return true
	}
	return false
}
