// Package storage implementa el colaborador de archivos sobre disco local.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
)

var _ usecase.Storage = (*Local)(nil)

// Local guarda archivos bajo un directorio raíz con nombres UUID, de modo
// que el nombre visible del documento vive solo en su fila.
type Local struct {
	root string
}

// NewLocal crea el directorio raíz si no existe.
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de archivos: %w", err)
	}
	return &Local{root: root}, nil
}

// SaveFile persiste los bytes y devuelve la ruta relativa a la raíz.
func (s *Local) SaveFile(data []byte, extension string) (string, error) {
	name := uuid.NewString()
	if ext := strings.TrimPrefix(extension, "."); ext != "" {
		name += "." + ext
	}
	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return name, nil
}

// Remove elimina el archivo de la ruta devuelta por SaveFile.
func (s *Local) Remove(path string) error {
	// La ruta viene de una fila nuestra, pero nunca se sale de la raíz.
	clean := filepath.Base(path)
	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("eliminar archivo: %w", err)
	}
	return nil
}

// ReadFile devuelve los bytes del archivo (descarga de documentos).
func (s *Local) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.Base(path)))
	if err != nil {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	return data, nil
}
