package avisos

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FormInput contiene los valores crudos del formulario de agregar aviso,
// con los nombres tal como llegan del template. Todo el manejo de
// strings sin tipo queda aislado aquí.
type FormInput struct {
	Nombre       string
	Email        string
	Celular      string
	ComunaID     string
	Sector       string
	Tipo         string
	Descripcion  string
	FechaEntrega string
	Cantidad     string
	Edad         string
	UnidadMedida string

	// Listas paralelas contacto_nombre[] / contacto_id[].
	ContactoNombres []string
	ContactoIDs     []string

	// Nombres originales de los archivos subidos (para validar extensión).
	NombresFotos []string
}

// ParContacto es un par canal/identificador adicional ya filtrado
// (ambos no vacíos).
type ParContacto struct {
	Canal         string
	Identificador string
}

// Submission es el registro normalizado listo para persistir.
type Submission struct {
	ComunaID     int64
	Sector       string
	Nombre       string
	Email        string
	Celular      string
	Tipo         Tipo
	Cantidad     int
	Edad         int
	UnidadMedida UnidadEdad
	FechaEntrega time.Time
	Descripcion  string
	Contactos    []ParContacto
}

// ValidationErrors acumula todos los mensajes de validación de un envío.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

var emailRegexp = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Validate aplica todas las reglas del formulario de forma independiente:
// junta todas las violaciones en vez de cortar en la primera. Input
// malformado es un error reportado, nunca un panic.
func Validate(in FormInput) (Submission, ValidationErrors) {
	var errs ValidationErrors

	sub := Submission{
		Nombre:      strings.TrimSpace(in.Nombre),
		Email:       strings.TrimSpace(in.Email),
		Celular:     strings.TrimSpace(in.Celular),
		Sector:      strings.TrimSpace(in.Sector),
		Descripcion: strings.TrimSpace(in.Descripcion),
	}

	if sub.Nombre == "" {
		errs = append(errs, "El nombre es obligatorio")
	}

	if sub.Email == "" {
		errs = append(errs, "El email es obligatorio")
	} else if !emailRegexp.MatchString(sub.Email) {
		errs = append(errs, "El email debe tener formato válido")
	}

	comunaStr := strings.TrimSpace(in.ComunaID)
	if comunaStr == "" {
		errs = append(errs, "Debe seleccionar una comuna")
	} else {
		id, err := strconv.ParseInt(comunaStr, 10, 64)
		if err != nil {
			errs = append(errs, "Debe seleccionar una comuna válida")
		} else {
			sub.ComunaID = id
		}
	}

	tipo := strings.TrimSpace(in.Tipo)
	if tipo == "" {
		errs = append(errs, "Debe seleccionar un tipo de animal")
	} else if !TipoValido(Tipo(tipo)) {
		errs = append(errs, "Debe seleccionar un tipo de animal válido")
	} else {
		sub.Tipo = Tipo(tipo)
	}

	if sub.Descripcion == "" {
		errs = append(errs, "La descripción es obligatoria")
	}

	fecha := strings.TrimSpace(in.FechaEntrega)
	if fecha == "" {
		errs = append(errs, "Debe especificar una fecha de entrega")
	} else {
		t, err := parseFechaEntrega(fecha)
		if err != nil {
			errs = append(errs, "La fecha de entrega no es válida")
		} else {
			sub.FechaEntrega = t
		}
	}

	cantidad, cantErrs := parseEntero(in.Cantidad, "La cantidad")
	errs = append(errs, cantErrs...)
	if len(cantErrs) == 0 && (cantidad < 1 || cantidad > 20) {
		errs = append(errs, "La cantidad debe ser un número entero entre 1 y 20")
	}
	sub.Cantidad = cantidad

	edad, edadErrs := parseEntero(in.Edad, "La edad")
	errs = append(errs, edadErrs...)
	if len(edadErrs) == 0 && edad < 1 {
		errs = append(errs, "La edad debe ser un número mayor a 0")
	}
	sub.Edad = edad

	unidad := strings.TrimSpace(in.UnidadMedida)
	if unidad == "" {
		sub.UnidadMedida = UnidadMeses
	} else if !UnidadValida(UnidadEdad(unidad)) {
		errs = append(errs, "La unidad de edad no es válida")
	} else {
		sub.UnidadMedida = UnidadEdad(unidad)
	}

	sub.Contactos = paresValidos(in.ContactoNombres, in.ContactoIDs)
	if sub.Email == "" && sub.Celular == "" && len(sub.Contactos) == 0 {
		errs = append(errs, "Debe proporcionar al menos un medio de contacto válido")
	}

	for _, nombre := range in.NombresFotos {
		if strings.TrimSpace(nombre) == "" {
			continue
		}
		if !ExtensionPermitida(nombre) {
			errs = append(errs, "Formato de archivo no permitido: "+nombre)
		}
	}

	return sub, errs
}

// parseEntero acepta números con decimales y trunca hacia cero.
// Si no se puede parsear, reporta error y deja 1 como valor de
// respaldo para seguir validando el resto del formulario.
func parseEntero(s, campo string) (int, ValidationErrors) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1, ValidationErrors{campo + " debe ser un número entero válido"}
	}
	return int(f), nil
}

// parseFechaEntrega acepta fecha con o sin hora, como manda el input
// datetime-local del formulario.
func parseFechaEntrega(s string) (time.Time, error) {
	if strings.Contains(s, "T") {
		return time.Parse("2006-01-02T15:04", s)
	}
	return time.Parse("2006-01-02", s)
}

// paresValidos recorre las listas paralelas y se queda solo con los
// pares donde canal e identificador vienen ambos no vacíos.
func paresValidos(nombres, ids []string) []ParContacto {
	n := len(nombres)
	if len(ids) < n {
		n = len(ids)
	}

	out := make([]ParContacto, 0, n)
	for i := 0; i < n; i++ {
		canal := strings.TrimSpace(nombres[i])
		ident := strings.TrimSpace(ids[i])
		if canal == "" || ident == "" {
			continue
		}
		out = append(out, ParContacto{Canal: canal, Identificador: ident})
	}
	return out
}
