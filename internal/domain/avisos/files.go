package avisos

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"strings"
)

// FileStore guarda el contenido de una foto bajo el nombre dado y
// devuelve la ruta relativa con que se sirve por web.
type FileStore interface {
	Guardar(ctx context.Context, nombre string, datos io.Reader) (string, error)
}

// ArchivoFoto es un archivo subido junto con su nombre original.
type ArchivoFoto struct {
	Nombre string
	Datos  io.Reader
}

var extensionesPermitidas = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

func ExtensionPermitida(nombre string) bool {
	return extensionesPermitidas[strings.ToLower(filepath.Ext(nombre))]
}

// SanitizarNombre deja el nombre de archivo seguro para escribir a disco:
// descarta componentes de directorio y todo caracter fuera de
// [A-Za-z0-9._-]. Los espacios pasan a '_'. Puede devolver vacío,
// en cuyo caso el archivo se descarta.
func SanitizarNombre(nombre string) string {
	// path.Base además de filepath.Base, por si llega un nombre con '/'
	// desde un cliente en otra plataforma.
	nombre = filepath.Base(path.Base(strings.ReplaceAll(nombre, "\\", "/")))
	nombre = strings.ReplaceAll(nombre, " ", "_")

	var b strings.Builder
	for _, r := range nombre {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "._")
}
