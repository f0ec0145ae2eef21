package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGuardar(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	ruta, err := store.Guardar(context.Background(), "gato.jpg", strings.NewReader("jpegdata"))
	if err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	if ruta != "uploads/gato.jpg" {
		t.Errorf("ruta = %q, want uploads/gato.jpg", ruta)
	}

	b, err := os.ReadFile(filepath.Join(dir, "gato.jpg"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != "jpegdata" {
		t.Errorf("contenido = %q", b)
	}
}

func TestGuardarSobreescribe(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	if _, err := store.Guardar(context.Background(), "gato.jpg", strings.NewReader("primero")); err != nil {
		t.Fatalf("Guardar: %v", err)
	}
	if _, err := store.Guardar(context.Background(), "gato.jpg", strings.NewReader("segundo")); err != nil {
		t.Fatalf("Guardar: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "gato.jpg"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(b) != "segundo" {
		t.Errorf("contenido = %q, want segundo", b)
	}
}

func TestNewLocalStoreCreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "uploads")

	if _, err := NewLocalStore(dir); err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("esperaba un directorio")
	}
}
