// Package uploads guarda los archivos de fotos en disco local bajo el
// directorio configurado (UPLOAD_FOLDER). La ruta devuelta es la ruta
// relativa con que el router sirve el archivo (/uploads/...).
package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalStore struct {
	base string
}

// NewLocalStore crea el directorio de uploads si no existe.
func NewLocalStore(base string) (*LocalStore, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("creando directorio de uploads: %w", err)
	}
	return &LocalStore{base: base}, nil
}

// Guardar escribe el archivo bajo el nombre dado. Si ya existe un
// archivo con ese nombre, se sobreescribe sin renombrar: el último
// que escribe gana.
func (s *LocalStore) Guardar(ctx context.Context, nombre string, datos io.Reader) (string, error) {
	destino := filepath.Join(s.base, nombre)

	f, err := os.Create(destino)
	if err != nil {
		return "", fmt.Errorf("creando archivo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, datos); err != nil {
		_ = os.Remove(destino)
		return "", fmt.Errorf("escribiendo archivo: %w", err)
	}

	return "uploads/" + nombre, nil
}
