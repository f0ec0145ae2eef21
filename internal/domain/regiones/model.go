package regiones

// Region representa una región de Chile. Datos de referencia,
// se cargan una sola vez con cmd/create-schema.
type Region struct {
	ID     int64
	Nombre string
}

// Comuna pertenece a exactamente una región.
type Comuna struct {
	ID       int64
	Nombre   string
	RegionID int64
}
