package queue

// ===============================
// Queue Status
// ===============================

type Status string

const (
	StatusAguardando Status = "AGUARDANDO"
	StatusAtendendo  Status = "ATENDENDO"
	StatusAtendido   Status = "ATENDIDO"
	StatusDesistiu   Status = "DESISTIU"
	StatusFaltou     Status = "FALTOU"
)

func InitialStatus() Status {
	return StatusAguardando
}

func IsValid(s Status) bool {
	switch s {
	case StatusAguardando, StatusAtendendo, StatusAtendido, StatusDesistiu, StatusFaltou:
		return true
	}
	return false
}

// IsActive define quem ainda conta na fila (ordenação e posição).
func IsActive(s Status) bool {
	return s == StatusAguardando || s == StatusAtendendo
}

func IsTerminal(s Status) bool {
	return s == StatusAtendido || s == StatusDesistiu || s == StatusFaltou
}

// ActiveStatuses é a forma usada em cláusulas `status IN ?`.
var ActiveStatuses = []string{string(StatusAguardando), string(StatusAtendendo)}

// ===============================
// Transições
// ===============================

// Fluxo pretendido do produto. Transições fora deste mapa continuam
// permitidas (qualquer status pode ir para qualquer outro); o mapa só
// serve para marcar transições incomuns na auditoria.
var intendedNext = map[Status][]Status{
	StatusAguardando: {StatusAtendendo, StatusDesistiu, StatusFaltou},
	StatusAtendendo:  {StatusAtendido, StatusDesistiu, StatusFaltou},
}

func IsIntended(from, to Status) bool {
	for _, next := range intendedNext[from] {
		if next == to {
			return true
		}
	}
	return false
}
