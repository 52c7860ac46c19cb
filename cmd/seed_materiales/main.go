// seed_materiales genera un script SQL para poblar el catálogo de materiales
// a partir del CSV que exporta el proveedor (codificado en ISO-8859-1).
//
// Columnas esperadas: nombre;unidad;precio_unitario;stock;stock_minimo;proveedor
//
// Uso: go run ./cmd/seed_materiales [ruta/materiales.csv]
// Por defecto busca materiales.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/010_seed_materiales.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "materiales.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exports del proveedor vienen en ISO-8859-1 (tildes y eñes)
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 6

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) > 0 && strings.EqualFold(records[0][0], "nombre") {
		records = records[1:] // fila de cabecera
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "010_seed_materiales.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de materiales del taller\n")
	out.WriteString("-- Generado desde materiales.csv (export del proveedor)\n\n")

	count := 0
	for _, rec := range records {
		nombre := strings.TrimSpace(rec[0])
		if nombre == "" {
			continue
		}
		fmt.Fprintf(out, "INSERT INTO materials (id, nombre, unidad, precio_unitario, stock, stock_minimo, proveedor, activo, created_at, updated_at)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', '%s', %s, %s, %s, '%s', true, now(), now())\n",
			escapeSQL(nombre),
			escapeSQL(strings.TrimSpace(rec[1])),
			strings.TrimSpace(rec[2]),
			strings.TrimSpace(rec[3]),
			strings.TrimSpace(rec[4]),
			escapeSQL(strings.TrimSpace(rec[5])),
		)
		out.WriteString("ON CONFLICT (nombre) DO UPDATE SET precio_unitario = EXCLUDED.precio_unitario, proveedor = EXCLUDED.proveedor;\n")
		count++
	}

	fmt.Printf("Generado %s: %d materiales\n", outPath, count)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
