// Package photo lee archivos locales como blobs para Employee.Photo.
package photo

import (
	"fmt"
	"os"

	"github.com/HaosShot/zapateria-pos/internal/application/registrar"
)

var _ registrar.PhotoReader = (*FileReader)(nil)

// FileReader implementa registrar.PhotoReader sobre el sistema de archivos local.
// No valida ni transcodifica el formato: el blob se guarda tal cual.
type FileReader struct{}

// NewFileReader construye el lector.
func NewFileReader() *FileReader { return &FileReader{} }

// Read lee el archivo completo en memoria.
func (FileReader) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer foto %s: %w", path, err)
	}
	return data, nil
}
