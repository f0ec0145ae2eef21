package memory

import "adopciones/internal/domain/regiones"

// SeedRegiones entrega un set chico de regiones y comunas para correr
// sin base de datos (modo dev y tests). El set completo vive en
// cmd/create-schema.
func SeedRegiones() ([]regiones.Region, []regiones.Comuna) {
	regs := []regiones.Region{
		{ID: 5, Nombre: "Región de Valparaíso"},
		{ID: 13, Nombre: "Región Metropolitana de Santiago"},
		{ID: 8, Nombre: "Región del Biobío"},
	}
	comunas := []regiones.Comuna{
		{ID: 501, Nombre: "Valparaíso", RegionID: 5},
		{ID: 502, Nombre: "Viña del Mar", RegionID: 5},
		{ID: 503, Nombre: "Quilpué", RegionID: 5},
		{ID: 1301, Nombre: "Santiago", RegionID: 13},
		{ID: 1302, Nombre: "Providencia", RegionID: 13},
		{ID: 1303, Nombre: "Maipú", RegionID: 13},
		{ID: 1304, Nombre: "La Florida", RegionID: 13},
		{ID: 801, Nombre: "Concepción", RegionID: 8},
		{ID: 802, Nombre: "Talcahuano", RegionID: 8},
	}
	return regs, comunas
}
