package avisos

import "time"

// Tipo define los tipos de mascota soportados.
// @Enum gato, perro
type Tipo string

const (
	TipoGato  Tipo = "gato"
	TipoPerro Tipo = "perro"
)

func TipoValido(t Tipo) bool {
	return t == TipoGato || t == TipoPerro
}

// UnidadEdad: 'a' años, 'm' meses.
type UnidadEdad string

const (
	UnidadAnios UnidadEdad = "a"
	UnidadMeses UnidadEdad = "m"
)

func UnidadValida(u UnidadEdad) bool {
	return u == UnidadAnios || u == UnidadMeses
}

// Canal define los medios de contacto soportados.
type Canal string

const (
	CanalWhatsapp  Canal = "whatsapp"
	CanalTelegram  Canal = "telegram"
	CanalX         Canal = "X"
	CanalInstagram Canal = "instagram"
	CanalTiktok    Canal = "tiktok"
	CanalOtra      Canal = "otra"
)

func CanalValido(c Canal) bool {
	switch c {
	case CanalWhatsapp, CanalTelegram, CanalX, CanalInstagram, CanalTiktok, CanalOtra:
		return true
	}
	return false
}

// Aviso representa una publicación de adopción.
// Se crea solo vía Service.Submit; no se edita.
type Aviso struct {
	ID           int64
	FechaIngreso time.Time
	ComunaID     int64
	Sector       string // opcional
	Nombre       string
	Email        string
	Celular      string // opcional
	Tipo         Tipo
	Cantidad     int
	Edad         int
	UnidadMedida UnidadEdad
	FechaEntrega time.Time
	Descripcion  string
}

// Contacto es un medio de contacto de un aviso.
// Todo aviso persistido tiene al menos uno (lo garantiza la validación).
type Contacto struct {
	ID            int64
	Canal         Canal
	Identificador string
	AvisoID       int64
}

// Foto referencia un archivo subido, guardado bajo el directorio de uploads.
type Foto struct {
	ID            int64
	RutaArchivo   string
	NombreArchivo string
	AvisoID       int64
}
