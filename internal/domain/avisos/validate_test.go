package avisos

import (
	"strings"
	"testing"
	"time"
)

func formValida() FormInput {
	return FormInput{
		Nombre:       "  María Pérez  ",
		Email:        "maria@example.com",
		Celular:      "+56912345678",
		ComunaID:     "1301",
		Sector:       "Barrio Yungay",
		Tipo:         "gato",
		Descripcion:  "Tres gatitos buscan hogar",
		FechaEntrega: "2026-09-15T10:00",
		Cantidad:     "3",
		Edad:         "2",
		UnidadMedida: "m",
	}
}

func TestValidate_FormularioCompleto(t *testing.T) {
	sub, errs := Validate(formValida())
	if len(errs) != 0 {
		t.Fatalf("no esperaba errores, got %v", errs)
	}

	if sub.Nombre != "María Pérez" {
		t.Errorf("nombre sin trim: %q", sub.Nombre)
	}
	if sub.ComunaID != 1301 {
		t.Errorf("comuna_id = %d, want 1301", sub.ComunaID)
	}
	if sub.Tipo != TipoGato {
		t.Errorf("tipo = %q", sub.Tipo)
	}
	if sub.Cantidad != 3 || sub.Edad != 2 {
		t.Errorf("cantidad/edad = %d/%d", sub.Cantidad, sub.Edad)
	}
	want := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	if !sub.FechaEntrega.Equal(want) {
		t.Errorf("fecha_entrega = %v, want %v", sub.FechaEntrega, want)
	}
}

func TestValidate_FechaSoloDia(t *testing.T) {
	in := formValida()
	in.FechaEntrega = "2026-09-15"

	sub, errs := Validate(in)
	if len(errs) != 0 {
		t.Fatalf("no esperaba errores, got %v", errs)
	}
	if sub.FechaEntrega.Hour() != 0 {
		t.Errorf("fecha_entrega = %v", sub.FechaEntrega)
	}
}

func TestValidate_CamposObligatorios(t *testing.T) {
	_, errs := Validate(FormInput{Cantidad: "1", Edad: "1"})
	if len(errs) == 0 {
		t.Fatal("esperaba errores para formulario vacío")
	}

	esperados := []string{
		"El nombre es obligatorio",
		"El email es obligatorio",
		"Debe seleccionar una comuna",
		"Debe seleccionar un tipo de animal",
		"La descripción es obligatoria",
		"Debe especificar una fecha de entrega",
		"Debe proporcionar al menos un medio de contacto válido",
	}
	for _, msg := range esperados {
		if !contiene(errs, msg) {
			t.Errorf("falta mensaje %q en %v", msg, errs)
		}
	}
}

func TestValidate_CantidadFueraDeRango(t *testing.T) {
	in := formValida()
	in.Cantidad = "25"

	sub, errs := Validate(in)
	if !contiene(errs, "La cantidad debe ser un número entero entre 1 y 20") {
		t.Fatalf("esperaba error de rango, got %v", errs)
	}
	if sub.Cantidad != 25 {
		t.Errorf("cantidad parseada = %d", sub.Cantidad)
	}
}

func TestValidate_CantidadNoNumerica(t *testing.T) {
	in := formValida()
	in.Cantidad = "abc"

	sub, errs := Validate(in)
	if !contiene(errs, "La cantidad debe ser un número entero válido") {
		t.Fatalf("esperaba error de número inválido, got %v", errs)
	}
	// valor de respaldo para seguir validando
	if sub.Cantidad != 1 {
		t.Errorf("cantidad de respaldo = %d, want 1", sub.Cantidad)
	}
}

func TestValidate_CantidadDecimalTrunca(t *testing.T) {
	in := formValida()
	in.Cantidad = "3.9"

	sub, errs := Validate(in)
	if len(errs) != 0 {
		t.Fatalf("no esperaba errores, got %v", errs)
	}
	if sub.Cantidad != 3 {
		t.Errorf("cantidad = %d, want 3 (truncada hacia cero)", sub.Cantidad)
	}
}

func TestValidate_EdadMenorAUno(t *testing.T) {
	in := formValida()
	in.Edad = "0"

	_, errs := Validate(in)
	if !contiene(errs, "La edad debe ser un número mayor a 0") {
		t.Fatalf("esperaba error de edad, got %v", errs)
	}
}

func TestValidate_EmailInvalido(t *testing.T) {
	in := formValida()
	in.Email = "no-es-un-email"

	_, errs := Validate(in)
	if !contiene(errs, "El email debe tener formato válido") {
		t.Fatalf("esperaba error de email, got %v", errs)
	}
}

func TestValidate_SinMediosDeContacto(t *testing.T) {
	in := formValida()
	in.Email = ""
	in.Celular = ""
	in.ContactoNombres = []string{"whatsapp"}
	in.ContactoIDs = []string{"   "} // identificador en blanco no cuenta

	_, errs := Validate(in)

	n := 0
	for _, e := range errs {
		if strings.Contains(e, "al menos un medio de contacto") {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("esperaba exactamente un error de contacto, got %v", errs)
	}
}

func TestValidate_CelularBastaComoContacto(t *testing.T) {
	in := formValida()
	in.Email = ""
	in.Celular = "+56911111111"

	_, errs := Validate(in)
	if contieneParcial(errs, "al menos un medio de contacto") {
		t.Fatalf("el celular debería bastar como contacto, got %v", errs)
	}
}

func TestValidate_ParesDeContacto(t *testing.T) {
	in := formValida()
	in.ContactoNombres = []string{"whatsapp", "", "instagram", "telegram"}
	in.ContactoIDs = []string{"+5691234", "x", "  ", "@maria"}

	sub, errs := Validate(in)
	if len(errs) != 0 {
		t.Fatalf("no esperaba errores, got %v", errs)
	}

	// solo los pares con canal e identificador no vacíos
	if len(sub.Contactos) != 2 {
		t.Fatalf("pares válidos = %d, want 2 (%v)", len(sub.Contactos), sub.Contactos)
	}
	if sub.Contactos[0].Canal != "whatsapp" || sub.Contactos[1].Canal != "telegram" {
		t.Errorf("pares = %v", sub.Contactos)
	}
}

func TestValidate_ExtensionDeFotoNoPermitida(t *testing.T) {
	in := formValida()
	in.NombresFotos = []string{"gatitos.jpg", "virus.exe"}

	_, errs := Validate(in)
	if !contiene(errs, "Formato de archivo no permitido: virus.exe") {
		t.Fatalf("esperaba error de extensión, got %v", errs)
	}
}

func contiene(errs ValidationErrors, msg string) bool {
	for _, e := range errs {
		if e == msg {
			return true
		}
	}
	return false
}

func contieneParcial(errs ValidationErrors, frag string) bool {
	for _, e := range errs {
		if strings.Contains(e, frag) {
			return true
		}
	}
	return false
}
